// Package main is the entry point for fitplayer.
package main

import (
	"github.com/jeremyfitness/fitplayer/cmd"
	"github.com/jeremyfitness/fitplayer/config"
	"github.com/jeremyfitness/fitplayer/internal/cache"
	"github.com/jeremyfitness/fitplayer/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage()

	cmd.Execute()
}
