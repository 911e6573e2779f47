package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	mb "github.com/som1414/sea-battle/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort          = 9191
	defaultComputerDelay = time.Second
)

type Config struct {
	Stage string
	Port  int

	// 0 means the console asks for it.
	GridSize      int
	ComputerDelay time.Duration
	PsqlUrl       string
	LogLevel      log.Level
}

// Load reads the environment. Outside prod, a .env file in the working
// directory is loaded first when present.
func Load(defaultLevel log.Level) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:         StageDev,
		Port:          defaultPort,
		ComputerDelay: defaultComputerDelay,
		PsqlUrl:       os.Getenv("PSQL_URL"),
		LogLevel:      defaultLevel,
	}

	if stage := os.Getenv("STAGE"); stage != "" {
		if stage != StageDev && stage != StageProd {
			return Config{}, fmt.Errorf("stage must be either dev or prod, got %q", stage)
		}
		cfg.Stage = stage
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", portEnv)
		}
		cfg.Port = port
	}

	if sizeEnv := os.Getenv("GRID_SIZE"); sizeEnv != "" {
		size, err := strconv.Atoi(sizeEnv)
		if err != nil || (size != 0 && !mb.IsGridSizeValid(size)) {
			return Config{}, fmt.Errorf("GRID_SIZE must be %d or %d, got %q", mb.GridSizeSmall, mb.GridSizeLarge, sizeEnv)
		}
		cfg.GridSize = size
	}

	if delayEnv := os.Getenv("COMPUTER_DELAY"); delayEnv != "" {
		delay, err := time.ParseDuration(delayEnv)
		if err != nil || delay < 0 {
			return Config{}, fmt.Errorf("invalid COMPUTER_DELAY %q", delayEnv)
		}
		cfg.ComputerDelay = delay
	}

	if levelEnv := os.Getenv("LOG_LEVEL"); levelEnv != "" {
		level, err := log.ParseLevel(levelEnv)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
