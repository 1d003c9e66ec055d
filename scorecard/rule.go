package scorecard

import (
	"github.com/ratel-online/yahtzee/dice"
)

type Kind int

const (
	_ Kind = iota
	KindNumberMatch
	KindOfAKind
	KindStraight
)

// Rule is a closed scoring variant. Evaluate is pure, the committed
// points live on the category. A zero value marks an unrolled die and
// never counts as a face.
type Rule struct {
	kind Kind
	arg  int
}

// NumberMatch pays face times the number of dice showing face.
func NumberMatch(face int) Rule {
	return Rule{kind: KindNumberMatch, arg: face}
}

// OfAKind pays the sum of the whole roll once some face shows at least
// threshold times. A zero threshold always pays.
func OfAKind(threshold int) Rule {
	return Rule{kind: KindOfAKind, arg: threshold}
}

// Straight pays length x 10 when the roll contains a run of length
// consecutive faces.
func Straight(length int) Rule {
	return Rule{kind: KindStraight, arg: length}
}

func Chance() Rule {
	return OfAKind(0)
}

func (r Rule) Kind() Kind {
	return r.kind
}

func (r Rule) Arg() int {
	return r.arg
}

func (r Rule) Evaluate(values []int) int {
	switch r.kind {
	case KindNumberMatch:
		points := 0
		for _, value := range values {
			if value == r.arg {
				points += value
			}
		}
		return points
	case KindOfAKind:
		counts := map[int]int{}
		highest := 0
		sum := 0
		for _, value := range values {
			sum += value
			if value == 0 {
				continue
			}
			counts[value]++
			if counts[value] > highest {
				highest = counts[value]
			}
		}
		if highest >= r.arg {
			return sum
		}
		return 0
	case KindStraight:
		present := map[int]bool{}
		for _, value := range values {
			present[value] = true
		}
		for low := 1; low+r.arg-1 <= dice.Faces; low++ {
			run := true
			for face := low; face < low+r.arg; face++ {
				if !present[face] {
					run = false
					break
				}
			}
			if run {
				return r.arg * 10
			}
		}
		return 0
	}
	return 0
}
