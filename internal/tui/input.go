package tui

import "github.com/nicobailon/kecap/internal/grid"

// keySource feeds key presses from the bubbletea loop to grid subscribers.
type keySource struct {
	next     int
	handlers map[int]func(grid.Direction)
	order    []int
}

func newKeySource() *keySource {
	return &keySource{handlers: map[int]func(grid.Direction){}}
}

func (s *keySource) Subscribe(handler func(grid.Direction)) func() {
	id := s.next
	s.next++
	s.handlers[id] = handler
	s.order = append(s.order, id)
	return func() {
		delete(s.handlers, id)
		for i, o := range s.order {
			if o == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *keySource) Subscribers() int {
	return len(s.handlers)
}

func (s *keySource) dispatch(d grid.Direction) {
	for _, id := range s.order {
		s.handlers[id](d)
	}
}
