package pacmaze

// Outcome is the terminal status of a round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeVictory
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Round is one play session from start to a terminal outcome.
// A new game always builds a new Round; nothing is reset in place.
type Round struct {
	Player       *Player
	Maze         *Maze
	Ghosts       []*Ghost
	Pellets      []Pellet
	PowerPellets []Pellet

	params   Params
	bounds   Bounds
	rng      Rand
	tick     int
	gameOver bool
	victory  bool
}

// NewRound builds the fixed maze, pellets, player and ghost lineup.
// Every ghost is respawned so each draws its own exit countdown.
func NewRound(params Params, rng Rand) *Round {
	maze := NewMaze()
	plain, power := NewPellets(maze)

	r := &Round{
		Player:       NewPlayer(params),
		Maze:         maze,
		Pellets:      plain,
		PowerPellets: power,
		params:       params,
		bounds:       WorldBounds(),
		rng:          rng,
	}

	r.Ghosts = make([]*Ghost, 0, len(ghostLineup))
	for _, slot := range ghostLineup {
		g := NewGhost(slot.spawn, slot.color, slot.strategy, params)
		g.Respawn(rng)
		r.Ghosts = append(r.Ghosts, g)
	}
	return r
}

// SetIntent overwrites the player's movement intent. Only the four
// cardinal directions are accepted.
func (r *Round) SetIntent(d Direction) bool {
	if !d.Cardinal() {
		return false
	}
	r.Player.Dir = d
	return true
}

// SetGhostSpeed changes the base speed of every ghost.
func (r *Round) SetGhostSpeed(speed float64) {
	for _, g := range r.Ghosts {
		g.Speed = speed
	}
}

// Outcome reports whether the round has ended and how.
func (r *Round) Outcome() Outcome {
	switch {
	case r.gameOver:
		return OutcomeGameOver
	case r.victory:
		return OutcomeVictory
	default:
		return OutcomeNone
	}
}

// Tick returns the number of steps simulated so far.
func (r *Round) Tick() int {
	return r.tick
}

// Params returns the tuning the round was built with.
func (r *Round) Params() Params {
	return r.params
}

// Remaining returns the number of pellets of both kinds still on the board.
func (r *Round) Remaining() int {
	return countRemaining(r.Pellets) + countRemaining(r.PowerPellets)
}

// Step advances the round by one tick. Terminal rounds do not change.
func (r *Round) Step() {
	if r.Outcome() != OutcomeNone {
		return
	}
	r.tick++

	p := r.Player
	p.ResolveMove(p.ProposeMove(r.params.PlayerSpeed), r.Maze, r.bounds)
	p.Animate(r.params.ChompPeriod)

	if p.TickPower(r.params.PowerTicks) {
		r.setFrightened(false)
	}

	if r.advanceGhosts() {
		// A final capture on a cleared board sets both flags.
		r.victory = r.Remaining() == 0
		return
	}

	for i := range r.Pellets {
		if r.Pellets[i].TryConsume(p.Pos.X, p.Pos.Y, p.Radius).Consumed {
			p.Score += r.params.PelletPoints
		}
	}

	for i := range r.PowerPellets {
		if r.PowerPellets[i].TryConsume(p.Pos.X, p.Pos.Y, p.Radius).Consumed {
			p.Score += r.params.PowerPelletPoints
			p.PowerUp()
			r.setFrightened(true)
		}
	}

	if r.Remaining() == 0 {
		r.victory = true
	}
}

// advanceGhosts moves each ghost and resolves its contact with the player.
// Caged ghosts never capture. Returns true when the round ended.
func (r *Round) advanceGhosts() bool {
	p := r.Player
	for _, g := range r.Ghosts {
		g.Advance(p, r.Maze, r.rng, r.bounds)
		if g.Caged || !Overlaps(g.Pos, g.Radius, p.Pos, p.Radius) {
			continue
		}

		if p.Powered {
			g.Respawn(r.rng)
			p.Score += r.params.GhostPoints
			continue
		}

		p.Lives--
		if p.Lives <= 0 {
			p.Lives = 0
			r.gameOver = true
			return true
		}

		p.Pos = r.params.RespawnPoint
		p.Dir = DirNone
		for _, other := range r.Ghosts {
			other.Respawn(r.rng)
		}
	}
	return false
}

func (r *Round) setFrightened(on bool) {
	for _, g := range r.Ghosts {
		g.Frightened = on
	}
}
