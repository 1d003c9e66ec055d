package database

import (
	"strconv"
	"strings"

	"github.com/ratel-online/yahtzee/consts"
	"github.com/ratel-online/yahtzee/game"
	"github.com/ratel-online/yahtzee/player"
)

type humanActor struct {
	playerID int64
}

// NewHumanActor adapts a session player to the engine player interface.
func NewHumanActor(p *Player) player.Player {
	return &humanActor{playerID: p.ID}
}

func (h *humanActor) Name() string {
	return getPlayer(h.playerID).Name
}

func (h *humanActor) Play(view game.View) (player.Command, error) {
	p := getPlayer(h.playerID)
	for {
		p.WriteString("r.roll  f <die>.freeze  s <category>.score  v.view  q.quit\n")
		ans, err := p.AskForString()
		if err != nil {
			return player.Command{}, err
		}
		fields := strings.Fields(strings.ToLower(ans))
		if len(fields) == 0 {
			_ = p.WriteError(consts.ErrorsInputInvalid)
			continue
		}
		switch fields[0] {
		case "r", "roll":
			return player.Command{Kind: player.CommandRoll}, nil
		case "v", "ls":
			return player.Command{Kind: player.CommandBoard}, nil
		case "q", "quit":
			return player.Command{Kind: player.CommandQuit}, nil
		case "f", "freeze":
			index, err := askIndex(p, fields, "Which die? \n")
			if err != nil {
				if err == consts.ErrorsExit {
					return player.Command{}, err
				}
				_ = p.WriteError(err)
				continue
			}
			return player.Command{Kind: player.CommandFreeze, Index: index - 1}, nil
		case "s", "score":
			index, err := askIndex(p, fields, "Which category? \n")
			if err != nil {
				if err == consts.ErrorsExit {
					return player.Command{}, err
				}
				_ = p.WriteError(err)
				continue
			}
			return player.Command{Kind: player.CommandScore, Index: index - 1}, nil
		default:
			_ = p.WriteError(consts.ErrorsInputInvalid)
		}
	}
}

// askIndex takes the number from the command line when present, else
// prompts for it. Commands address dice and categories one based.
func askIndex(p *Player, fields []string, prompt string) (int, error) {
	if len(fields) > 1 {
		index, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, consts.ErrorsInputInvalid
		}
		return index, nil
	}
	p.WriteString(prompt)
	return p.AskForInt()
}
