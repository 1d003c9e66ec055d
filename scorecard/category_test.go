package scorecard_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/yahtzee/scorecard"
	"github.com/stretchr/testify/require"
)

func TestCommitOnce(t *testing.T) {
	category := scorecard.NewCategory("Fives", scorecard.NumberMatch(5))
	require.False(t, category.Filled())

	require.NoError(t, category.Commit(15))
	require.True(t, category.Filled())
	require.Equal(t, 15, category.Points())

	require.True(t, errors.Is(category.Commit(10), scorecard.ErrAlreadyFilled))
	require.Equal(t, 15, category.Points())
}

func TestEvaluateRejectsFilledCategory(t *testing.T) {
	category := scorecard.NewCategory("Chance", scorecard.Chance())
	points, err := category.Evaluate([]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, 15, points)

	require.NoError(t, category.Commit(points))
	_, err = category.Evaluate([]int{1, 2, 3, 4, 5})
	require.True(t, errors.Is(err, scorecard.ErrAlreadyFilled))
}

func TestCommittedZeroStillFills(t *testing.T) {
	category := scorecard.NewCategory("Yahtzee", scorecard.OfAKind(5))
	require.NoError(t, category.Commit(0))
	require.True(t, category.Filled())
	require.Equal(t, 0, category.Points())
}
