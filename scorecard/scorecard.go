package scorecard

import (
	"errors"
)

var ErrCategoryOutOfRange = errors.New("category index out of range")

type Definition struct {
	Name string
	Rule Rule
}

var definitions = []Definition{
	{Name: "Aces", Rule: NumberMatch(1)},
	{Name: "Twos", Rule: NumberMatch(2)},
	{Name: "Threes", Rule: NumberMatch(3)},
	{Name: "Fours", Rule: NumberMatch(4)},
	{Name: "Fives", Rule: NumberMatch(5)},
	{Name: "Sixes", Rule: NumberMatch(6)},
	{Name: "3 of a Kind", Rule: OfAKind(3)},
	{Name: "4 of a Kind", Rule: OfAKind(4)},
	{Name: "Yahtzee", Rule: OfAKind(5)},
	{Name: "Small Straight", Rule: Straight(3)},
	{Name: "Large Straight", Rule: Straight(4)},
	{Name: "Full House", Rule: Straight(5)},
	{Name: "Chance", Rule: Chance()},
}

// Definitions returns the canonical card layout in display order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

type Scorecard struct {
	categories []*Category
}

func New() *Scorecard {
	categories := make([]*Category, 0, len(definitions))
	for _, definition := range definitions {
		categories = append(categories, NewCategory(definition.Name, definition.Rule))
	}
	return &Scorecard{categories: categories}
}

func (s *Scorecard) Size() int {
	return len(s.categories)
}

func (s *Scorecard) At(index int) (*Category, error) {
	if index < 0 || index >= len(s.categories) {
		return nil, ErrCategoryOutOfRange
	}
	return s.categories[index], nil
}

// Evaluate previews the payout of one category for a roll.
func (s *Scorecard) Evaluate(index int, values []int) (int, error) {
	category, err := s.At(index)
	if err != nil {
		return 0, err
	}
	return category.Evaluate(values)
}

// Apply evaluates a category and commits the payout in one step.
func (s *Scorecard) Apply(index int, values []int) (int, error) {
	category, err := s.At(index)
	if err != nil {
		return 0, err
	}
	points, err := category.Evaluate(values)
	if err != nil {
		return 0, err
	}
	if err := category.Commit(points); err != nil {
		return 0, err
	}
	return points, nil
}

func (s *Scorecard) Total() int {
	total := 0
	for _, category := range s.categories {
		if category.Filled() {
			total += category.Points()
		}
	}
	return total
}

func (s *Scorecard) HasOpen() bool {
	for _, category := range s.categories {
		if !category.Filled() {
			return true
		}
	}
	return false
}

func (s *Scorecard) Entries() []Entry {
	entries := make([]Entry, 0, len(s.categories))
	for _, category := range s.categories {
		entries = append(entries, category.Entry())
	}
	return entries
}
