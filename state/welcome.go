package state

import (
	"fmt"

	"github.com/ratel-online/yahtzee/consts"
	"github.com/ratel-online/yahtzee/database"
	"github.com/ratel-online/yahtzee/ui"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	err := player.WriteString(fmt.Sprintf("Welcome to %s! \n", ui.Title()))
	if err != nil {
		return 0, player.WriteError(err)
	}
	for player.Name == "" {
		_ = player.WriteString("What's your name? \n")
		name, err := player.AskForString()
		if err != nil {
			return 0, player.WriteError(err)
		}
		player.Name = name
	}
	return consts.StateHome, nil
}

func (*welcome) Exit(player *database.Player) consts.StateID {
	return 0
}
