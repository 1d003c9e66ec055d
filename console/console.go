package console

import (
	"github.com/fatih/color"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/yahtzee/config"
	"github.com/ratel-online/yahtzee/database"
	"github.com/ratel-online/yahtzee/state"
)

// Serve runs one console session until the player exits.
func Serve(cfg config.Config) error {
	if cfg.NoColor {
		color.NoColor = true
	}
	registerListeners()
	player := database.Connected(NewTerminal(), cfg)
	log.Infof("session %d started\n", player.ID)
	return state.Run(player)
}
