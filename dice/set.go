package dice

import "errors"

var ErrDieOutOfRange = errors.New("die index out of range")

type Set struct {
	dice []*Die
}

func NewSet(size int) *Set {
	dice := make([]*Die, 0, size)
	for i := 0; i < size; i++ {
		dice = append(dice, NewDie())
	}
	return &Set{dice: dice}
}

func (s *Set) Size() int {
	return len(s.dice)
}

// RollAll rerolls every die whose frozen flag is off.
func (s *Set) RollAll(src Source) {
	for _, die := range s.dice {
		die.Roll(src)
	}
}

func (s *Set) ToggleFreeze(index int) error {
	if index < 0 || index >= len(s.dice) {
		return ErrDieOutOfRange
	}
	s.dice[index].ToggleFreeze()
	return nil
}

func (s *Set) Values() []int {
	values := make([]int, 0, len(s.dice))
	for _, die := range s.dice {
		values = append(values, die.Value())
	}
	return values
}

func (s *Set) Views() []View {
	views := make([]View, 0, len(s.dice))
	for _, die := range s.dice {
		views = append(views, die.View())
	}
	return views
}

func (s *Set) Reset() {
	for _, die := range s.dice {
		die.Reset()
	}
}
