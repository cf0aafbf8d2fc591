package cmd

import (
	"github.com/urfave/cli"

	"github.com/aurora-render/aurora/log"
)

var logger = log.New("cmd")

// setupLogging applies the global verbosity flags.
func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	} else if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
}
