package state

import (
	"fmt"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/yahtzee/consts"
	"github.com/ratel-online/yahtzee/database"
	playerx "github.com/ratel-online/yahtzee/player"
	"github.com/ratel-online/yahtzee/ui"
)

type yahtzee struct{}

func (s *yahtzee) Next(player *database.Player) (consts.StateID, error) {
	g := database.GetGame(player.GameID)
	if g == nil {
		_ = player.WriteError(consts.ErrorsGameInvalid)
		return consts.StateHome, nil
	}
	view := g.Engine.View()
	_ = player.WriteString(fmt.Sprintf("Game %d started, %s plays %d dice with %d rolls per turn. \n",
		g.ID, g.Actor.Name(), len(view.Values), g.Engine.Budget()))
	for {
		if g.Engine.Finished() {
			return s.finish(player, g)
		}
		view = g.Engine.View()
		_ = player.WriteString(ui.RenderBoard(view))
		if g.Mode != consts.ModeHuman {
			time.Sleep(consts.BotPlayInterval)
		}
		command, err := g.Actor.Play(view)
		if err != nil {
			return 0, player.WriteError(err)
		}
		switch command.Kind {
		case playerx.CommandRoll:
			err = g.Engine.Roll()
		case playerx.CommandFreeze:
			err = g.Engine.ToggleFreeze(command.Index)
		case playerx.CommandScore:
			var points int
			points, err = g.Engine.Score(command.Index)
			if err == nil {
				_ = player.WriteString(fmt.Sprintf("%s scored %d points. \n", g.Actor.Name(), points))
			}
		case playerx.CommandBoard:
			continue
		case playerx.CommandQuit:
			return s.abandon(player, g)
		default:
			err = consts.ErrorsInputInvalid
		}
		if err != nil {
			_ = player.WriteError(err)
		}
	}
}

func (s *yahtzee) Exit(player *database.Player) consts.StateID {
	if g := database.GetGame(player.GameID); g != nil {
		database.DeleteGame(g.ID)
	}
	player.GameID = 0
	return consts.StateHome
}

func (s *yahtzee) finish(player *database.Player, g *database.Game) (consts.StateID, error) {
	result := database.SaveResult(g)
	database.DeleteGame(g.ID)
	player.GameID = 0
	err := player.WriteString(fmt.Sprintf("Game over! %s finished with %d points in %d turns (%s). \n",
		result.Player, result.Score, result.Turns, result.Duration.Round(time.Second)))
	if err != nil {
		return 0, player.WriteError(err)
	}
	log.Infof("game %d finished, %s got %d points\n", g.ID, result.Player, result.Score)
	return consts.StateHome, nil
}

func (s *yahtzee) abandon(player *database.Player, g *database.Game) (consts.StateID, error) {
	database.DeleteGame(g.ID)
	player.GameID = 0
	err := player.WriteString("Game abandoned. \n")
	if err != nil {
		return 0, player.WriteError(err)
	}
	log.Infof("game %d abandoned\n", g.ID)
	return consts.StateHome, nil
}
