package database

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/yahtzee/config"
	"github.com/ratel-online/yahtzee/consts"
)

// Conn is the terminal side of a session.
type Conn interface {
	ReadLine() (string, error)
	WriteString(data string) error
}

type Player struct {
	ID     int64
	Name   string
	GameID int64
	Config config.Config

	conn  Conn
	state consts.StateID
}

func (p *Player) WriteString(data string) error {
	return p.conn.WriteString(data)
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExit {
		return err
	}
	return p.conn.WriteString(err.Error() + "\n")
}

// AskForString reads one trimmed line. Typing exit or closing the
// input both surface as ErrorsExit.
func (p *Player) AskForString() (string, error) {
	line, err := p.conn.ReadLine()
	if err != nil {
		if err != io.EOF {
			log.Error(err)
		}
		return "", consts.ErrorsExit
	}
	line = strings.TrimSpace(line)
	if strings.ToLower(line) == "exit" {
		return "", consts.ErrorsExit
	}
	return line, nil
}

func (p *Player) AskForInt() (int, error) {
	line, err := p.AskForString()
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, consts.ErrorsInputInvalid
	}
	return value, nil
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
