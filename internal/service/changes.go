package service

import "sync"

// ChangeKind names the store mutation that produced a ChangeEvent.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
)

// ChangeEvent is delivered to listeners after a mutation has been stored.
type ChangeEvent struct {
	Kind ChangeKind
	IDs  []string
}

// ChangeListener is notified synchronously, on the mutating goroutine.
type ChangeListener func(ChangeEvent)

type listenerSet struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]ChangeListener
}

func (s *listenerSet) add(l ChangeListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byID == nil {
		s.byID = make(map[int]ChangeListener)
	}
	id := s.nextID
	s.nextID++
	s.byID[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.byID, id)
		})
	}
}

func (s *listenerSet) notify(ev ChangeEvent) {
	s.mu.Lock()
	ls := make([]ChangeListener, 0, len(s.byID))
	for i := 0; i < s.nextID; i++ {
		if l, ok := s.byID[i]; ok {
			ls = append(ls, l)
		}
	}
	s.mu.Unlock()

	for _, l := range ls {
		l(ev)
	}
}
