package animations

// FrameRange is an inclusive span of sprite sheet indices.
type FrameRange struct {
	First int
	Last  int
}

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FPS              float64 // frames shown per second
	elapsed          float64
	frame            int
	Cycles           int  // completed play-throughs since the last restart
	Looped           bool // at least one play-through has completed
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update advances the animation by dt seconds and returns the number of
// play-throughs completed during this call.
func (a *Animation) Update(dt float64) int {
	if a.FPS <= 0 || dt <= 0 {
		return 0
	}
	period := 1 / a.FPS
	a.elapsed += dt
	completed := 0
	for a.elapsed >= period {
		a.elapsed -= period
		if a.advance() {
			completed++
		}
	}
	return completed
}

func (a *Animation) advance() bool {
	step := a.Step
	if step <= 0 {
		step = 1
	}
	a.frame += step
	if a.frame <= a.Last {
		return false
	}
	a.Looped = true
	a.Cycles++
	if a.FreezeOnComplete {
		a.frame = a.Last
	} else {
		a.frame = a.First
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Range() FrameRange {
	return FrameRange{First: a.First, Last: a.Last}
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Cycles = 0
	a.Looped = false
}

// SetRange switches to r and restarts, unless r is already playing.
func (a *Animation) SetRange(r FrameRange) {
	if a.First == r.First && a.Last == r.Last {
		return
	}
	a.First = r.First
	a.Last = r.Last
	a.Restart()
}

func NewAnimation(first, last, step int, fps float64) *Animation {
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		FPS:   fps,
		frame: first,
	}
}
