package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/yahtzee/consts"
	"github.com/ratel-online/yahtzee/database"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateGame, &yahtzee{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// State is one screen of the session. Next blocks on input and returns
// the following state, zero keeps the current one. Exit names where an
// exit from this screen lands, zero ends the session.
type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Run drives a player through the session states until exit.
func Run(player *database.Player) error {
	player.State(Root())
	for {
		state, ok := states[player.GetState()]
		if !ok {
			return consts.ErrorsStateInvalid
		}
		stateId, err := state.Next(player)
		if err != nil {
			if err == consts.ErrorsExit {
				stateId = state.Exit(player)
				if stateId == 0 {
					return nil
				}
				player.State(stateId)
				continue
			}
			log.Error(err)
			return err
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}
