package player_test

import (
	"testing"

	"github.com/ratel-online/yahtzee/dice"
	"github.com/ratel-online/yahtzee/game"
	"github.com/ratel-online/yahtzee/player"
	"github.com/ratel-online/yahtzee/scorecard"
	"github.com/stretchr/testify/require"
)

type scriptedSource struct {
	faces []int
	next  int
}

func newScriptedSource(faces ...int) *scriptedSource {
	return &scriptedSource{faces: faces}
}

func (s *scriptedSource) Intn(n int) int {
	face := s.faces[s.next%len(s.faces)]
	s.next++
	return (face - 1) % n
}

func playOut(t *testing.T, bot player.Player, g *game.Game) {
	for steps := 0; !g.Finished(); steps++ {
		require.Less(t, steps, 500)
		command, err := bot.Play(g.View())
		require.NoError(t, err)
		switch command.Kind {
		case player.CommandRoll:
			require.NoError(t, g.Roll())
		case player.CommandFreeze:
			require.NoError(t, g.ToggleFreeze(command.Index))
		case player.CommandScore:
			_, err := g.Score(command.Index)
			require.NoError(t, err)
		default:
			t.Fatalf("unexpected command kind %d", command.Kind)
		}
	}
}

func TestNaivePlayerFinishesAGame(t *testing.T) {
	g := game.New(game.Config{Source: newScriptedSource(1, 2, 3, 4, 5)})
	playOut(t, player.NewNaivePlayer("Bones"), g)
	require.Equal(t, 13, g.Turns())
	require.Equal(t, 150, g.Total())
}

func TestGreedyPlayerFinishesAGame(t *testing.T) {
	g := game.New(game.Config{Source: newScriptedSource(3, 1, 4, 1, 5, 6, 2)})
	playOut(t, player.NewGreedyPlayer("Lucky"), g)
	require.Equal(t, 13, g.Turns())
	require.Equal(t, g.View().Total, g.Total())
}

func TestGreedyPlayerTakesTheBestCategory(t *testing.T) {
	view := game.View{
		Dice:      []dice.View{{Value: 6}, {Value: 6}, {Value: 6}, {Value: 2}, {Value: 3}},
		Values:    []int{6, 6, 6, 2, 3},
		RollsLeft: 0,
		Entries:   scorecard.New().Entries(),
	}
	command, err := player.NewGreedyPlayer("Lucky").Play(view)
	require.NoError(t, err)
	require.Equal(t, player.CommandScore, command.Kind)
	require.Equal(t, 6, command.Index) // 3 of a Kind pays 23
}

func TestGreedyPlayerFreezesTheDominantFace(t *testing.T) {
	view := game.View{
		Dice:      []dice.View{{Value: 4}, {Value: 2}, {Value: 4}, {Value: 1}, {Value: 6}},
		Values:    []int{4, 2, 4, 1, 6},
		RollsLeft: 2,
		Entries:   scorecard.New().Entries(),
	}
	command, err := player.NewGreedyPlayer("Lucky").Play(view)
	require.NoError(t, err)
	require.Equal(t, player.CommandFreeze, command.Kind)
	require.Equal(t, 0, command.Index)
}

func TestGreedyPlayerRollsWhenTheDominantFaceIsKept(t *testing.T) {
	view := game.View{
		Dice:      []dice.View{{Value: 4, Frozen: true}, {Value: 4, Frozen: true}, {Value: 2}, {Value: 1}, {Value: 6}},
		Values:    []int{4, 4, 2, 1, 6},
		RollsLeft: 1,
		Entries:   scorecard.New().Entries(),
	}
	command, err := player.NewGreedyPlayer("Lucky").Play(view)
	require.NoError(t, err)
	require.Equal(t, player.CommandRoll, command.Kind)
}

func TestNaivePlayerScoresInOrder(t *testing.T) {
	entries := scorecard.New().Entries()
	entries[0].Filled = true
	entries[1].Filled = true
	view := game.View{
		Values:    []int{1, 1, 1, 1, 1},
		RollsLeft: 0,
		Entries:   entries,
	}
	command, err := player.NewNaivePlayer("Bones").Play(view)
	require.NoError(t, err)
	require.Equal(t, player.CommandScore, command.Kind)
	require.Equal(t, 2, command.Index)
}

func TestCreateBot(t *testing.T) {
	require.Equal(t, "Bones", player.CreateBot(player.LevelNaive, "Bones").Name())
	require.Equal(t, "Lucky", player.CreateBot(player.LevelGreedy, "Lucky").Name())
	require.NotEmpty(t, player.CreateBot(player.LevelGreedy, "").Name())
}
