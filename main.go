package main

import (
	"os"
	"relearn/cli"

	"github.com/rs/zerolog/log"
)

func main() {
	cli.SetupLogging(os.Stderr)

	if err := relearn(); err != nil {
		log.Error().Err(err).Msg("relearn failed")
		os.Exit(1)
	}
}

func relearn() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
