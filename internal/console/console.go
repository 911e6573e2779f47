package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	cerr "github.com/som1414/sea-battle/internal/error"
	mb "github.com/som1414/sea-battle/models/battleship"
)

const separatorWidth = 60

// Console plays games against the computer over a text stream.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	delay time.Duration

	newGame func(gridSize int) (*mb.Game, error)
	sleep   func(time.Duration)
}

type Option func(*Console)

// WithGameFactory replaces random game creation.
func WithGameFactory(newGame func(gridSize int) (*mb.Game, error)) Option {
	return func(c *Console) {
		c.newGame = newGame
	}
}

func New(in io.Reader, out io.Writer, delay time.Duration, optFuncs ...Option) *Console {
	c := &Console{
		in:    bufio.NewScanner(in),
		out:   out,
		delay: delay,
		newGame: func(gridSize int) (*mb.Game, error) {
			return mb.NewGame(gridSize)
		},
		sleep: time.Sleep,
	}
	for _, opt := range optFuncs {
		opt(c)
	}
	return c
}

// Run plays until the user declines a rematch or input ends. A
// gridSize of 0 asks the user for it on every game.
func (c *Console) Run(gridSize int) error {
	for {
		c.greet()

		size := gridSize
		if size == 0 {
			var err error
			if size, err = c.askGridSize(); err != nil {
				return ignoreEOF(err)
			}
		}

		game, err := c.newGame(size)
		if err != nil {
			return err
		}
		log.Debug("game created", "uuid", game.Uuid(), "gridSize", size)

		if _, err := c.Play(game); err != nil {
			return ignoreEOF(err)
		}

		again, err := c.readLine("Play again? y/n: ")
		if err != nil {
			return ignoreEOF(err)
		}
		if strings.ToLower(again) != "y" {
			return nil
		}
	}
}

// Play alternates turns until one board is defeated and returns the
// winner.
func (c *Console) Play(game *mb.Game) (mb.Side, error) {
	c.println("input format: row column, e.g. 1 3")

	for !game.IsFinished() {
		c.printBoards(game)

		if game.Turn() == mb.SideUser {
			if err := c.userMove(game); err != nil {
				return mb.SideUser, err
			}
			continue
		}

		c.println("Computer's move!")
		c.sleep(c.delay)
		target, outcome, err := game.ComputerMove()
		if err != nil {
			return mb.SideUser, err
		}
		log.Debug("shot", "side", mb.SideComputer, "dot", target, "outcome", outcome)
		c.printf("Computer fired at: %d %d\n", target.X+1, target.Y+1)
		c.printOutcome(outcome)
	}

	c.printBoards(game)
	c.println(strings.Repeat("-", 20))
	winner, _ := game.Winner()
	if winner == mb.SideUser {
		c.println("You won!")
	} else {
		c.println("Computer won!")
	}
	log.Info("game finished", "uuid", game.Uuid(), "winner", winner)
	return winner, nil
}

func (c *Console) userMove(game *mb.Game) error {
	for {
		target, err := c.askDot()
		if err != nil {
			return err
		}

		outcome, err := game.Attack(target)
		switch {
		case errors.Is(err, cerr.ErrOutOfBounds):
			c.println("You are trying to shoot off the board!")
			continue
		case errors.Is(err, cerr.ErrAlreadyFired):
			c.println("You already fired at this cell")
			continue
		case err != nil:
			return err
		}

		log.Debug("shot", "side", mb.SideUser, "dot", target, "outcome", outcome)
		c.printOutcome(outcome)
		return nil
	}
}

// askDot reads two 1-based numbers and converts them to a 0-based dot.
func (c *Console) askDot() (mb.Dot, error) {
	for {
		line, err := c.readLine("Your move: ")
		if err != nil {
			return mb.Dot{}, err
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			c.println("Enter 2 coordinates!")
			continue
		}

		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if errX != nil || errY != nil {
			c.println("Enter numbers!")
			continue
		}
		return mb.NewDot(x-1, y-1), nil
	}
}

func (c *Console) askGridSize() (int, error) {
	for {
		line, err := c.readLine(fmt.Sprintf("Enter the sea size - %d or %d: ", mb.GridSizeSmall, mb.GridSizeLarge))
		if err != nil {
			return 0, err
		}

		size, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && mb.IsGridSizeValid(size) {
			return size, nil
		}
		c.printf("The sea size must be %d or %d\n", mb.GridSizeSmall, mb.GridSizeLarge)
	}
}

func (c *Console) greet() {
	c.println(strings.Repeat("-", 20))
	c.println("  Welcome to")
	c.println("    sea battle")
	c.println(strings.Repeat("-", 20))
}

func (c *Console) printBoards(game *mb.Game) {
	c.println(strings.Repeat("-", separatorWidth))
	c.println(RenderBoards(game.UserBoard(), game.ComputerBoard()))
}

func (c *Console) printOutcome(outcome mb.ShotOutcome) {
	switch outcome {
	case mb.ShotSunk:
		c.println("Ship destroyed!")
	case mb.ShotHit:
		c.println("Ship wounded!")
	default:
		c.println("Miss!")
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
