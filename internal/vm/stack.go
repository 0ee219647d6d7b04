package vm

// Stack is a LIFO sequence mutated only by Push and Pop/PopN.
type Stack[T any] []T

func (s *Stack[T]) Push(value T) {
	*s = append(*s, value)
}

// Pop removes and returns the most recently pushed element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(*s) == 0 {
		return zero, false
	}
	last := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return last, true
}

// PopN removes the n most recently pushed elements and returns them in their
// original push order (the top of the stack is last). If fewer than n
// elements are present the stack is left untouched and ok is false.
func (s *Stack[T]) PopN(n int) ([]T, bool) {
	if n < 0 || len(*s) < n {
		return nil, false
	}
	cut := len(*s) - n
	out := make([]T, n)
	copy(out, (*s)[cut:])
	*s = (*s)[:cut]
	return out, true
}

// Top returns the most recently pushed element without removing it.
func (s *Stack[T]) Top() (T, bool) {
	var zero T
	if len(*s) == 0 {
		return zero, false
	}
	return (*s)[len(*s)-1], true
}

func (s *Stack[T]) Len() int {
	return len(*s)
}
