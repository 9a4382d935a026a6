// Package paging tracks offset/limit state for the paged search view.
package paging

import "inquest/internal/api"

// Controller carries pagination state across search runs. Params is the
// merged filter set of the last run so page navigation reuses it with only
// the offset changed.
type Controller struct {
	Limit         int
	Offset        int
	MatchedTotal  int
	ReturnedCount int
	Params        map[string]string
}

// Apply records the server-side counts from a successful search envelope.
func (c *Controller) Apply(env *api.Envelope) {
	if n, ok := env.Int("matched_total"); ok {
		c.MatchedTotal = n
	} else {
		c.MatchedTotal = 0
	}
	if n, ok := env.Int("returned_count"); ok {
		c.ReturnedCount = n
	} else {
		c.ReturnedCount = len(env.List("events"))
	}
}

func (c *Controller) HasPrev() bool {
	return c.Offset > 0
}

// HasNext compares against the exact matched total rather than the
// returned_count >= limit heuristic, which over-enables by one page at an
// exact boundary.
func (c *Controller) HasNext() bool {
	return c.Offset+c.ReturnedCount < c.MatchedTotal
}

func (c *Controller) PrevOffset() int {
	o := c.Offset - c.Limit
	if o < 0 {
		o = 0
	}
	return o
}

func (c *Controller) NextOffset() int {
	return c.Offset + c.Limit
}

// Window describes the 1-based range of the current page for the status
// line, e.g. "51-100 of 120".
func (c *Controller) Window() (from, to, total int) {
	if c.ReturnedCount == 0 {
		return 0, 0, c.MatchedTotal
	}
	return c.Offset + 1, c.Offset + c.ReturnedCount, c.MatchedTotal
}
