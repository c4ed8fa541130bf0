package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/rolls"
)

// ScoreCmd scores a single match from the command line.
type ScoreCmd struct {
	Frames   []string `arg:"" optional:"" name:"frame" help:"Rolls of each frame, comma separated (e.g. 10 7,3 9,0)"`
	Notation string   `short:"n" help:"Scoresheet notation instead of frame arguments (e.g. 'X 7/ 9-')"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}
	return c.run(os.Stdout, logger)
}

func (c *ScoreCmd) run(w io.Writer, logger *log.Logger) error {
	frames, err := c.frames()
	if err != nil {
		return err
	}

	m, err := bowling.CreateGame(frames, bowling.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Debug("Scored match", "frames", m.Len(), "complete", m.IsComplete())
	_, err = fmt.Fprintln(w, scoreStyle.Render(strconv.Itoa(m.Score())))
	return err
}

func (c *ScoreCmd) frames() ([][]int, error) {
	switch {
	case c.Notation != "" && len(c.Frames) > 0:
		return nil, errors.New("give either frame arguments or --notation, not both")
	case c.Notation != "":
		return rolls.ParseNotation(c.Notation)
	default:
		return rolls.ParseFrames(c.Frames)
	}
}
