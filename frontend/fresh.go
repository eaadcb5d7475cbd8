package frontend

import (
	"strconv"
)

// FreshNames mints names for the variables the desugarer introduces.
//
// Names start with '$', which no surface identifier can contain, and end with
// a counter, so two names minted by the same FreshNames never collide.
// A FreshNames must not be shared by concurrent desugaring runs
type FreshNames struct {
	counter int
}

func NewFreshNames() *FreshNames {
	return &FreshNames{}
}

// Fresh returns "$" + prefix + counter, then increments the counter
func (n *FreshNames) Fresh(prefix string) string {
	name := "$" + prefix + strconv.Itoa(n.counter)
	n.counter++
	return name
}

// Reset sets the counter back to zero. Names minted before and after
// a Reset may collide
func (n *FreshNames) Reset() {
	n.counter = 0
}
