package animations

// DefaultCyclesPerLayer is how many play-throughs a transition layer gets
// before it is popped.
const DefaultCyclesPerLayer = 2

// Stack layers one-shot transition ranges over a steady-state loop. Ranges[0]
// is the steady state; the last element is the layer currently playing.
type Stack struct {
	Ranges         []FrameRange
	Cycles         int
	CyclesPerLayer int
}

func NewStack(ranges ...FrameRange) *Stack {
	s := &Stack{CyclesPerLayer: DefaultCyclesPerLayer}
	s.Reset(ranges...)
	return s
}

// Reset replaces every layer and clears the cycle counter.
func (s *Stack) Reset(ranges ...FrameRange) {
	s.Ranges = append(s.Ranges[:0], ranges...)
	s.Cycles = 0
}

func (s *Stack) Len() int {
	return len(s.Ranges)
}

func (s *Stack) Top() (FrameRange, bool) {
	if len(s.Ranges) == 0 {
		return FrameRange{}, false
	}
	return s.Ranges[len(s.Ranges)-1], true
}

// CompleteCycle records one full play-through of the top layer. Once the
// layer has played CyclesPerLayer times it is popped, unless it is the
// steady state. It reports whether a layer was popped.
func (s *Stack) CompleteCycle() bool {
	s.Cycles++
	limit := s.CyclesPerLayer
	if limit <= 0 {
		limit = DefaultCyclesPerLayer
	}
	if s.Cycles < limit {
		return false
	}
	s.Cycles = 0
	if len(s.Ranges) <= 1 {
		return false
	}
	s.Ranges = s.Ranges[:len(s.Ranges)-1]
	return true
}
