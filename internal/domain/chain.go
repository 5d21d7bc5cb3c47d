package domain

// Chain is a derived, never-persisted grouping of bookings that belong
// to one logical job. Parts are ordered by start time ascending; the
// master part carries the shared metadata (title, status badge, price)
// for the whole chain.
//
// Invariant: parts of a chain never overlap in time (upstream guarantee).
type Chain struct {
	Key    string
	Parts  []*Booking
	Master *Booking
}

// Earliest returns the first part of the chain (by start time)
func (c *Chain) Earliest() *Booking {
	if len(c.Parts) == 0 {
		return nil
	}
	return c.Parts[0]
}

// Latest returns the last part of the chain (by start time)
func (c *Chain) Latest() *Booking {
	if len(c.Parts) == 0 {
		return nil
	}
	return c.Parts[len(c.Parts)-1]
}

// IsFragmented returns true if the chain consists of more than one part
func (c *Chain) IsFragmented() bool {
	return len(c.Parts) > 1
}
