package history

// stack is a fixed-capacity LIFO ring buffer of operations.
// Pushing onto a full stack overwrites the oldest entry.
type stack struct {
	ops  []Operation
	head int // index of the oldest entry
	size int
}

func newStack(capacity int) *stack {
	return &stack{ops: make([]Operation, capacity)}
}

// push adds op on top, returning true if the oldest entry was evicted.
func (s *stack) push(op Operation) bool {
	if s.size == len(s.ops) {
		s.ops[s.head] = op
		s.head = (s.head + 1) % len(s.ops)
		return true
	}

	s.ops[(s.head+s.size)%len(s.ops)] = op
	s.size++
	return false
}

// pop removes and returns the most recent entry.
func (s *stack) pop() (Operation, bool) {
	if s.size == 0 {
		return Operation{}, false
	}

	i := (s.head + s.size - 1) % len(s.ops)
	op := s.ops[i]
	s.ops[i] = Operation{}
	s.size--
	return op, true
}

// peek returns the most recent entry without removing it.
func (s *stack) peek() (Operation, bool) {
	if s.size == 0 {
		return Operation{}, false
	}
	return s.ops[(s.head+s.size-1)%len(s.ops)], true
}

// clear drops every entry.
func (s *stack) clear() {
	clear(s.ops)
	s.head = 0
	s.size = 0
}

func (s *stack) len() int {
	return s.size
}

// entries returns the stack contents, oldest first.
func (s *stack) entries() []Operation {
	out := make([]Operation, s.size)
	for i := range out {
		out[i] = s.ops[(s.head+i)%len(s.ops)]
	}
	return out
}
