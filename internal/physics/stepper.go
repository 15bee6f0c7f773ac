package physics

// Stepper turns variable frame times into fixed simulation steps.
// At most MaxSteps run per frame; the remainder carries to the next frame.
type Stepper struct {
	Fixed    float32
	MaxSteps int

	acc float32
}

// Advance adds dt to the accumulator and calls step(Fixed) while a full step is
// available, up to MaxSteps times. It returns the number of steps run.
func (s *Stepper) Advance(dt float32, step func(dt float32)) int {
	if dt > 0 {
		s.acc += dt
	}
	n := 0
	for s.acc >= s.Fixed && n < s.MaxSteps {
		step(s.Fixed)
		s.acc -= s.Fixed
		n++
	}
	return n
}

// Pending returns the unconsumed time.
func (s *Stepper) Pending() float32 {
	return s.acc
}

// Reset drops the accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
