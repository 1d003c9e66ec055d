package event_test

import (
	"testing"

	"github.com/ratel-online/yahtzee/event"
	"github.com/stretchr/testify/require"
)

func TestGameFinished(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	event.GameFinished.AddListener(listenerOne)
	event.GameFinished.AddListener(listenerTwo)

	payloads := []event.GameFinishedPayload{
		{
			Total: 148,
			Turns: 13,
		},
		{
			Total: 205,
			Turns: 13,
		},
	}

	for _, payload := range payloads {
		event.GameFinished.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
