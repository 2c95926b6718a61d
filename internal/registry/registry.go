// Package registry maps game IDs to factories. Game packages register
// themselves from init, and hosts look games up by ID.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// ErrUnknownGame is returned for ids nothing registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Factory builds a fresh game instance.
type Factory func() engine.Game

var catalog = struct {
	sync.RWMutex
	byID map[string]Factory
}{byID: make(map[string]Factory)}

// Register adds a factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	catalog.Lock()
	defer catalog.Unlock()
	if _, dup := catalog.byID[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	catalog.byID[id] = f
}

func lookup(id string) (Factory, bool) {
	catalog.RLock()
	defer catalog.RUnlock()
	f, ok := catalog.byID[id]
	return f, ok
}

// List returns every registered game ordered by ID. Titles are read from
// a new instance on each call, after configuration flags took effect.
func List() []GameInfo {
	catalog.RLock()
	infos := make([]GameInfo, 0, len(catalog.byID))
	factories := make([]Factory, 0, len(catalog.byID))
	for id, f := range catalog.byID {
		infos = append(infos, GameInfo{ID: id})
		factories = append(factories, f)
	}
	catalog.RUnlock()

	for i, f := range factories {
		infos[i].Title = f().Title()
	}
	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := lookup(id)
	return ok
}

// Create builds a new instance of the game registered under id.
func Create(id string) (engine.Game, error) {
	f, ok := lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// NewSession creates the game registered under id and wraps it in a
// session in the Ready phase.
func NewSession(id string, opts ...engine.Option) (*engine.Session, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	return engine.NewSession(g, opts...), nil
}

func unregister(id string) {
	catalog.Lock()
	defer catalog.Unlock()
	delete(catalog.byID, id)
}
