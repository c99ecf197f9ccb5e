// Package cart maintains the per-token set of line items for a storefront
// session. A line is either piece-based (integer quantity) or weight-based
// (integer grams priced per 100g); never both at once.
package cart

import "github.com/google/uuid"

// Line is one cart entry. Grams non-nil marks weight mode; in that mode
// Quantity is pinned to the sentinel value 1.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Grams     *int      `json:"grams,omitempty"`
}

// AddInput describes one addToCart call. Grams non-nil selects the weight
// path and carries an absolute target; otherwise Quantity is a delta
// (zero means the default of +1).
type AddInput struct {
	ProductID uuid.UUID
	Quantity  int
	Grams     *int
}

// Cart is the in-memory snapshot of a session's lines, at most one per
// product id, in insertion order.
type Cart struct {
	lines []Line
}

// NewCart builds a cart from previously persisted lines. Zero and negative
// entries are dropped rather than retained.
func NewCart(lines []Line) *Cart {
	c := &Cart{}
	for _, line := range lines {
		if line.Grams != nil {
			if *line.Grams > 0 {
				g := *line.Grams
				c.lines = append(c.lines, Line{ProductID: line.ProductID, Quantity: 1, Grams: &g})
			}
			continue
		}
		if line.Quantity > 0 {
			c.lines = append(c.lines, Line{ProductID: line.ProductID, Quantity: line.Quantity})
		}
	}
	return c
}

// Lines returns a copy of the current snapshot.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Find returns the line for the product id, or false.
func (c *Cart) Find(productID uuid.UUID) (Line, bool) {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return Line{}, false
}

// Add merges one add call into the cart.
//
// Weight path (input.Grams set): the grams value is an absolute overwrite,
// with zero meaning removal. Quantity is forced to 1 so the line cannot
// carry both modes.
//
// Piece path: Quantity is a delta, defaulting to +1 when zero. Driving the
// total to zero or below removes the line; a negative delta on a missing
// line is a no-op. Grams is cleared so a former weight line switches mode.
func (c *Cart) Add(input AddInput) {
	if input.Grams != nil {
		if *input.Grams <= 0 {
			c.Remove(input.ProductID)
			return
		}
		g := *input.Grams
		for i := range c.lines {
			if c.lines[i].ProductID == input.ProductID {
				c.lines[i].Grams = &g
				c.lines[i].Quantity = 1
				return
			}
		}
		c.lines = append(c.lines, Line{ProductID: input.ProductID, Quantity: 1, Grams: &g})
		return
	}

	delta := input.Quantity
	if delta == 0 {
		delta = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == input.ProductID {
			total := c.lines[i].Quantity + delta
			if total <= 0 {
				c.removeAt(i)
				return
			}
			c.lines[i].Quantity = total
			c.lines[i].Grams = nil
			return
		}
	}
	if delta > 0 {
		c.lines = append(c.lines, Line{ProductID: input.ProductID, Quantity: delta})
	}
}

// Remove deletes the line for the product id, no-op if absent.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.removeAt(i)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
