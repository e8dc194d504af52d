package overlay

// Stack manages the routes of nested overlays.
// The topmost entry is the overlay currently receiving input.
type Stack struct {
	entries []*Route
}

// NewStack creates a new empty overlay stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*Route, 0),
	}
}

// Push adds a route to the top of the stack.
// Called when a new overlay is presented.
func (s *Stack) Push(route *Route) {
	s.entries = append(s.entries, route)
}

// Pop removes and returns the topmost route.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Route {
	if len(s.entries) == 0 {
		return nil
	}
	route := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return route
}

// Peek returns the topmost route without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Route {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsEmpty returns true if no overlay is presented.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of presented routes.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all routes without resolving them.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
