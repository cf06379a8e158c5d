package review

import "sync"

// Surface is the modal confirmation gate. It is either fully open or fully
// closed; confirming and cancelling are the only two exits. Confirming hands
// the draft to the completion callback exactly once, cancelling discards the
// review state without touching the draft.
type Surface struct {
	mu        sync.Mutex
	open      bool
	draft     Draft
	result    Result
	onConfirm func(Draft)
}

// NewSurface creates a closed surface. onConfirm simulates submission and may
// be nil.
func NewSurface(onConfirm func(Draft)) *Surface {
	return &Surface{onConfirm: onConfirm}
}

// Open shows the surface for a draft and returns the evaluated result.
// Reopening replaces any previous review state.
func (s *Surface) Open(p Policy, d Draft) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.draft = d
	s.result = p.Evaluate(d)
	return s.result
}

// IsOpen reports whether the surface is showing.
func (s *Surface) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Result returns the current evaluation while the surface is open.
func (s *Surface) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.open
}

// Confirm closes the surface and fires the completion callback with the
// reviewed draft. Confirming a closed surface is a no-op and reports false.
func (s *Surface) Confirm() bool {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return false
	}
	s.open = false
	draft := s.draft
	callback := s.onConfirm
	s.mu.Unlock()

	if callback != nil {
		callback(draft)
	}
	return true
}

// Cancel closes the surface without confirming. Cancelling a closed surface
// is a no-op and reports false.
func (s *Surface) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return false
	}
	s.open = false
	return true
}
