package snake

import (
	"errors"
	"testing"
)

// memStore is an in-memory ScoreStore that can be told to fail.
type memStore struct {
	values map[string]int
	fail   bool
}

var errStoreDown = errors.New("store down")

func newMemStore() *memStore {
	return &memStore{values: make(map[string]int)}
}

func (m *memStore) Get(key string) (int, error) {
	if m.fail {
		return 0, errStoreDown
	}
	return m.values[key], nil
}

func (m *memStore) Raise(key string, value int) (int, error) {
	if m.fail {
		return 0, errStoreDown
	}
	if cur, ok := m.values[key]; ok && cur >= value {
		return cur, nil
	}
	m.values[key] = value
	return value, nil
}

func (m *memStore) Remove(key string) error {
	if m.fail {
		return errStoreDown
	}
	delete(m.values, key)
	return nil
}

// recorder collects emitted events.
type recorder struct {
	events []Event
}

func (r *recorder) listen(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) count(k EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// newTestSession builds a seeded session on a 10x6 grid with an in-memory store.
func newTestSession(t *testing.T) (*Session, *memStore, *recorder) {
	t.Helper()
	store := newMemStore()
	s := New(Options{Area: 10, Speed: 10, Seed: 42, Store: store})
	rec := &recorder{}
	s.Subscribe(rec.listen)
	return s, store, rec
}

// place puts the session in Playing with the given body, direction and apple.
func place(s *Session, dir Direction, apple Apple, head Position, rest ...Position) {
	s.body = NewBody(head, rest...)
	s.dir = dir
	s.pending = nil
	s.apple = apple
	s.phase = PhasePlaying
}
