package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/som1414/sea-battle/internal/config"
	"github.com/som1414/sea-battle/internal/console"
)

// Plays sea battle against the computer in the terminal.
func main() {
	cfg, err := config.Load(log.WarnLevel)
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	log.SetLevel(cfg.LogLevel)

	c := console.New(os.Stdin, os.Stdout, cfg.ComputerDelay)
	if err := c.Run(cfg.GridSize); err != nil {
		log.Fatal("game ended unexpectedly", "err", err)
	}
}
