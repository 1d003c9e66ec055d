package main

import (
	"fmt"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/yahtzee/config"
	"github.com/ratel-online/yahtzee/console"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		return
	}
	if err := console.Serve(cfg); err != nil {
		log.Error(err)
	}
}
