// Package registry maps game ids to factories. Game packages register in
// init(), and the commands and SSH server create instances by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pacmaze/internal/core"
)

// Game is the contract between a simulation and the terminal platform.
// Implementations hold no Bubble Tea state; the platform owns timing,
// input mapping and drawing to the terminal.
type Game interface {
	// ID is the stable key used by the CLI and the score tables.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new session from the runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions collected since the
	// previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score, lives and terminal status.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. The title is read from one throwaway
// instance. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title()},
	}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
