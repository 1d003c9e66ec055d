package scorecard

import (
	"errors"
)

var ErrAlreadyFilled = errors.New("category already filled")

// Category is one slot on the card. filled tells an open slot from a
// scratched one, a zero in points is a legal score.
type Category struct {
	name   string
	rule   Rule
	filled bool
	points int
}

func NewCategory(name string, rule Rule) *Category {
	return &Category{name: name, rule: rule}
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Rule() Rule {
	return c.rule
}

func (c *Category) Filled() bool {
	return c.filled
}

func (c *Category) Points() int {
	return c.points
}

// Evaluate previews the payout without committing it.
func (c *Category) Evaluate(values []int) (int, error) {
	if c.filled {
		return 0, ErrAlreadyFilled
	}
	return c.rule.Evaluate(values), nil
}

func (c *Category) Commit(points int) error {
	if c.filled {
		return ErrAlreadyFilled
	}
	c.filled = true
	c.points = points
	return nil
}

func (c *Category) Entry() Entry {
	return Entry{Name: c.name, Filled: c.filled, Points: c.points}
}

// Entry is a read only snapshot of a category.
type Entry struct {
	Name   string
	Filled bool
	Points int
}
