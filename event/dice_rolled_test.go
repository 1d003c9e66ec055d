package event_test

import (
	"testing"

	"github.com/ratel-online/yahtzee/event"
	"github.com/stretchr/testify/require"
)

func TestDiceRolled(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.DiceRolled.AddListener(listenerOne)
	event.DiceRolled.AddListener(listenerTwo)

	payloads := []event.DiceRolledPayload{
		{
			Values:    []int{1, 3, 3, 5, 6},
			RollsLeft: 2,
		},
		{
			Values:    []int{2, 3, 3, 5, 6},
			RollsLeft: 1,
		},
	}

	for _, payload := range payloads {
		event.DiceRolled.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
