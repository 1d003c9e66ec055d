package scorecard_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/yahtzee/scorecard"
	"github.com/stretchr/testify/require"
)

func TestCanonicalOrder(t *testing.T) {
	names := make([]string, 0)
	for _, entry := range scorecard.New().Entries() {
		names = append(names, entry.Name)
	}
	require.Equal(t, []string{
		"Aces", "Twos", "Threes", "Fours", "Fives", "Sixes",
		"3 of a Kind", "4 of a Kind", "Yahtzee",
		"Small Straight", "Large Straight", "Full House",
		"Chance",
	}, names)
}

func TestDefinitionsMatchCard(t *testing.T) {
	definitions := scorecard.Definitions()
	card := scorecard.New()
	require.Equal(t, card.Size(), len(definitions))
	for index, definition := range definitions {
		category, err := card.At(index)
		require.NoError(t, err)
		require.Equal(t, definition.Name, category.Name())
		require.Equal(t, definition.Rule, category.Rule())
	}
}

func TestAtOutOfRange(t *testing.T) {
	card := scorecard.New()
	_, err := card.At(-1)
	require.True(t, errors.Is(err, scorecard.ErrCategoryOutOfRange))
	_, err = card.At(card.Size())
	require.True(t, errors.Is(err, scorecard.ErrCategoryOutOfRange))
}

func TestApplyFillsAndTotals(t *testing.T) {
	card := scorecard.New()
	points, err := card.Apply(3, []int{4, 4, 2, 4, 6}) // Fours
	require.NoError(t, err)
	require.Equal(t, 12, points)
	require.Equal(t, 12, card.Total())

	points, err = card.Apply(6, []int{2, 2, 2, 5, 6}) // 3 of a Kind
	require.NoError(t, err)
	require.Equal(t, 17, points)
	require.Equal(t, 29, card.Total())

	_, err = card.Apply(3, []int{4, 4, 4, 4, 4})
	require.True(t, errors.Is(err, scorecard.ErrAlreadyFilled))
	require.Equal(t, 29, card.Total())
}

func TestScratchedCategoryCountsAsFilled(t *testing.T) {
	card := scorecard.New()
	points, err := card.Apply(8, []int{1, 2, 3, 4, 5}) // Yahtzee on a straight
	require.NoError(t, err)
	require.Equal(t, 0, points)

	category, err := card.At(8)
	require.NoError(t, err)
	require.True(t, category.Filled())
	require.Equal(t, 0, card.Total())
}

func TestHasOpen(t *testing.T) {
	card := scorecard.New()
	require.True(t, card.HasOpen())
	for index := 0; index < card.Size(); index++ {
		_, err := card.Apply(index, []int{1, 1, 1, 1, 1})
		require.NoError(t, err)
	}
	require.False(t, card.HasOpen())
}
