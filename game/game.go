package game

import (
	"errors"

	"github.com/ratel-online/yahtzee/dice"
	"github.com/ratel-online/yahtzee/event"
	"github.com/ratel-online/yahtzee/scorecard"
)

const (
	DefaultRolls = 3
	DefaultDice  = 5
)

var (
	ErrNoRollsLeft = errors.New("no rolls left this turn")
	ErrNotRolled   = errors.New("dice have not been rolled this turn")
)

// Config tunes a single game. Zero values fall back to the defaults.
type Config struct {
	Rolls  int
	Dice   int
	Source dice.Source
}

// Game drives one solo run over the card. A turn is roll, freeze and
// reroll at will, then commit one category. Committing resets the dice
// and refills the roll budget.
type Game struct {
	set    *dice.Set
	card   *scorecard.Scorecard
	src    dice.Source
	budget int
	rolls  int
	turns  int
}

func New(config Config) *Game {
	budget := config.Rolls
	if budget <= 0 {
		budget = DefaultRolls
	}
	size := config.Dice
	if size <= 0 {
		size = DefaultDice
	}
	src := config.Source
	if src == nil {
		src = dice.NewSource(0)
	}
	return &Game{
		set:    dice.NewSet(size),
		card:   scorecard.New(),
		src:    src,
		budget: budget,
		rolls:  budget,
	}
}

func (g *Game) Roll() error {
	if g.rolls <= 0 {
		return ErrNoRollsLeft
	}
	g.set.RollAll(g.src)
	g.rolls--
	event.DiceRolled.Emit(event.DiceRolledPayload{
		Values:    g.set.Values(),
		RollsLeft: g.rolls,
	})
	return nil
}

func (g *Game) ToggleFreeze(index int) error {
	if err := g.set.ToggleFreeze(index); err != nil {
		return err
	}
	view := g.set.Views()[index]
	event.DieToggled.Emit(event.DieToggledPayload{
		Index:  index,
		Value:  view.Value,
		Frozen: view.Frozen,
	})
	return nil
}

// Score commits the current roll to one category and starts the next
// turn. A die still on its unrolled marker blocks the commit, frozen
// or not. Rejected commits leave the turn untouched.
func (g *Game) Score(index int) (int, error) {
	values := g.set.Values()
	for _, value := range values {
		if value == 0 {
			return 0, ErrNotRolled
		}
	}
	points, err := g.card.Apply(index, values)
	if err != nil {
		return 0, err
	}
	category, _ := g.card.At(index)
	event.CategoryScored.Emit(event.CategoryScoredPayload{
		Category: category.Name(),
		Points:   points,
		Total:    g.card.Total(),
	})
	g.turns++
	g.set.Reset()
	g.rolls = g.budget
	if !g.card.HasOpen() {
		event.GameFinished.Emit(event.GameFinishedPayload{
			Total: g.card.Total(),
			Turns: g.turns,
		})
	}
	return points, nil
}

func (g *Game) RollsRemaining() int {
	return g.rolls
}

func (g *Game) Budget() int {
	return g.budget
}

// Turns counts completed turns.
func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) Finished() bool {
	return !g.card.HasOpen()
}

func (g *Game) Total() int {
	return g.card.Total()
}
