package dynarray

import "strconv"

// Growth decides how far a buffer over-allocates when it must grow.
// The zero value is the doubling policy.
type Growth struct {
	step int
}

// Doubling returns the doubling policy: 0 -> 1 -> 2 -> 4 -> ...
func Doubling() Growth {
	return Growth{}
}

// FixedStep returns a policy that grows capacity in increments of step.
// It panics if step is not positive.
func FixedStep(step int) Growth {
	if step <= 0 {
		panic(usageErr("FixedStep", ErrNegativeCount, "step %d", step))
	}
	return Growth{step: step}
}

// IsDoubling reports whether g is the doubling policy.
func (g Growth) IsDoubling() bool {
	return g.step == 0
}

// Step returns the fixed increment, or 0 for the doubling policy.
func (g Growth) Step() int {
	return g.step
}

// Next returns the capacity to grow to from current so that at least
// needed elements fit. The doubling policy never returns 0.
func (g Growth) Next(current, needed int) int {
	n := current
	if g.step > 0 {
		for n < needed {
			n += g.step
		}
		return n
	}
	if n == 0 {
		n = 1
	}
	for n < needed {
		n *= 2
	}
	return n
}

func (g Growth) String() string {
	if g.step == 0 {
		return "doubling"
	}
	return "fixed+" + strconv.Itoa(g.step)
}
