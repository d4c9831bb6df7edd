// Package terminal keeps one cashier engine per till session.
package terminal

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"cafepos/pkg/cashier"
	"cafepos/pkg/order"
)

// ErrNotFound indicates the requested terminal does not exist.
var ErrNotFound = errors.New("terminal not found")

// Factory builds a fresh engine for a new terminal.
type Factory func() (*cashier.Cashier, error)

// NewFactory returns a Factory sharing catalog across terminals.
func NewFactory(catalog *order.Catalog, opts cashier.Options) Factory {
	return func() (*cashier.Cashier, error) {
		return cashier.New(catalog, opts)
	}
}

type terminal struct {
	mu       sync.Mutex
	c        *cashier.Cashier
	lastUsed atomic.Int64 // unix nanoseconds
}

func (t *terminal) touch(now time.Time) { t.lastUsed.Store(now.UnixNano()) }

// Registry maps session ids to engines. Calls on one engine are serialised.
// Engines unused for longer than the idle timeout are dropped the next time
// a terminal is opened.
type Registry struct {
	mu        sync.RWMutex
	terminals map[string]*terminal
	factory   Factory
	idle      time.Duration
	now       func() time.Time
}

// New creates an empty registry. An idle timeout of zero keeps engines until
// Close.
func New(factory Factory, idle time.Duration) *Registry {
	return &Registry{
		terminals: make(map[string]*terminal),
		factory:   factory,
		idle:      idle,
		now:       time.Now,
	}
}

// Open creates the engine for id unless it already exists.
func (r *Registry) Open(id string) error {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.terminals[id]; ok {
		t.touch(now)
		return nil
	}
	r.evictLocked(now)
	c, err := r.factory()
	if err != nil {
		return err
	}
	t := &terminal{c: c}
	t.touch(now)
	r.terminals[id] = t
	return nil
}

// Evict drops engines idle for longer than the timeout and reports how many
// were removed.
func (r *Registry) Evict() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.evictLocked(now)
}

func (r *Registry) evictLocked(now time.Time) int {
	if r.idle <= 0 {
		return 0
	}
	cutoff := now.Add(-r.idle).UnixNano()
	n := 0
	for id, t := range r.terminals {
		if t.lastUsed.Load() < cutoff {
			delete(r.terminals, id)
			n++
		}
	}
	return n
}

// Do runs fn with exclusive access to the engine for id.
func (r *Registry) Do(id string, fn func(c *cashier.Cashier) error) error {
	r.mu.RLock()
	t, ok := r.terminals[id]
	r.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	t.touch(r.now())
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.c)
}

// Close drops the engine for id along with any order in progress.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.terminals[id]; !ok {
		return ErrNotFound
	}
	delete(r.terminals, id)
	return nil
}

// Len returns the number of open terminals.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.terminals)
}
