package database

import (
	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/yahtzee/config"
	"github.com/ratel-online/yahtzee/game"
	"github.com/ratel-online/yahtzee/player"
	"sort"
	"sync/atomic"
	"time"
)

var playerIds int64 = 0
var gameIds int64 = 0
var resultIds int64 = 0
var players = hashmap.New()
var games = hashmap.New()
var results = hashmap.New()

// Connected registers a fresh session player for a terminal.
func Connected(conn Conn, cfg config.Config) *Player {
	p := &Player{
		ID:     atomic.AddInt64(&playerIds, 1),
		Name:   cfg.Name,
		Config: cfg,
		conn:   conn,
	}
	players.Set(p.ID, p)
	return p
}

func GetPlayer(playerId int64) *Player {
	return getPlayer(playerId)
}

func getPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

// Game binds a running engine to the actor playing it.
type Game struct {
	ID      int64
	Owner   int64
	Mode    string
	Engine  *game.Game
	Actor   player.Player
	StartAt time.Time
}

func CreateGame(owner *Player, engine *game.Game, actor player.Player, mode string) *Game {
	g := &Game{
		ID:      atomic.AddInt64(&gameIds, 1),
		Owner:   owner.ID,
		Mode:    mode,
		Engine:  engine,
		Actor:   actor,
		StartAt: time.Now(),
	}
	games.Set(g.ID, g)
	return g
}

func GetGame(gameId int64) *Game {
	if v, ok := games.Get(gameId); ok {
		return v.(*Game)
	}
	return nil
}

func DeleteGame(gameId int64) {
	games.Del(gameId)
}

// Result is one finished game. Results live for the process lifetime.
type Result struct {
	ID       int64
	Player   string
	Mode     string
	Score    int
	Turns    int
	Duration time.Duration
	EndAt    time.Time
}

func SaveResult(g *Game) *Result {
	result := &Result{
		ID:       atomic.AddInt64(&resultIds, 1),
		Player:   g.Actor.Name(),
		Mode:     g.Mode,
		Score:    g.Engine.Total(),
		Turns:    g.Engine.Turns(),
		Duration: time.Since(g.StartAt),
		EndAt:    time.Now(),
	}
	results.Set(result.ID, result)
	return result
}

// GetResults returns finished games, best score first.
func GetResults() []*Result {
	list := make([]*Result, 0)
	results.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Result))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Score != list[j].Score {
			return list[i].Score > list[j].Score
		}
		return list[i].ID < list[j].ID
	})
	return list
}
