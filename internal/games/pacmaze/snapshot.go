package pacmaze

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a flat copy of a round for determinism checks and replays.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick       int
	Outcome    int
	Score      int
	Lives      int
	PlayerX    float64
	PlayerY    float64
	Dir        int
	Powered    bool
	PowerTicks int

	// Ghost state, 7 values per ghost: X, Y, Frightened, Scattering,
	// ScatterTicks, Caged, ExitTimer.
	GhostData []float64

	// Pellet existence, plain pellets first, then power pellets.
	PelletMask []bool
}

// Snapshot returns the current round as a Snapshot.
func (r *Round) Snapshot() Snapshot {
	p := r.Player
	snap := Snapshot{
		Tick:       r.tick,
		Outcome:    int(r.Outcome()),
		Score:      p.Score,
		Lives:      p.Lives,
		PlayerX:    p.Pos.X,
		PlayerY:    p.Pos.Y,
		Dir:        int(p.Dir),
		Powered:    p.Powered,
		PowerTicks: p.PowerTicks,
		GhostData:  make([]float64, 0, len(r.Ghosts)*7),
		PelletMask: make([]bool, 0, len(r.Pellets)+len(r.PowerPellets)),
	}

	for _, g := range r.Ghosts {
		snap.GhostData = append(snap.GhostData,
			g.Pos.X, g.Pos.Y,
			boolF(g.Frightened), boolF(g.Scattering), float64(g.ScatterTicks),
			boolF(g.Caged), float64(g.ExitTimer),
		)
	}
	for _, pl := range r.Pellets {
		snap.PelletMask = append(snap.PelletMask, pl.Exists)
	}
	for _, pl := range r.PowerPellets {
		snap.PelletMask = append(snap.PelletMask, pl.Exists)
	}
	return snap
}

// Snapshot returns the active round as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.round.Snapshot()
}

// Hash returns an FNV-64a digest of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putI := func(v int) { putU(uint64(v)) } //#nosec G115 -- hash computation
	putF := func(v float64) { putU(math.Float64bits(v)) }

	putI(snap.Tick)
	putI(snap.Outcome)
	putI(snap.Score)
	putI(snap.Lives)
	putF(snap.PlayerX)
	putF(snap.PlayerY)
	putI(snap.Dir)
	putF(boolF(snap.Powered))
	putI(snap.PowerTicks)
	for _, v := range snap.GhostData {
		putF(v)
	}
	for _, v := range snap.PelletMask {
		putF(boolF(v))
	}
	return h.Sum64()
}

func boolF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
