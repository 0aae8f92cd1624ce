package main

import (
	"fmt"
	"os"

	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/adapters/inbound/cli"
	"github.com/cleitonmarx/symbiont-ai-weatherbot/internal/app"
)

func main() {
	cmd, err := cli.ParseCommandLine(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "weatherbot: %v\n", err)
		os.Exit(2)
	}

	err = app.NewWeatherBotApp(&cli.Shell{
		Command: cmd,
		In:      os.Stdin,
		Out:     os.Stdout,
	}).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "weatherbot: %v\n", err)
		os.Exit(1)
	}
}
