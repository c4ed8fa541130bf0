package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/tenpin/internal/bowling"
	"github.com/lox/tenpin/internal/rolls"
)

// FileCmd scores the games stored in YAML files.
type FileCmd struct {
	Paths []string `arg:"" name:"path" help:"YAML game files" type:"existingfile"`
}

// ValidateCmd checks the games stored in YAML files.
type ValidateCmd struct {
	Paths []string `arg:"" name:"path" help:"YAML game files" type:"existingfile"`
}

// gameResult is the outcome of scoring one game
type gameResult struct {
	Name  string
	Score int
	Err   error
}

func (c *FileCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(logger)
	defer cancel()
	return c.run(ctx, os.Stdout, logger, cfg.CLI.Workers)
}

func (c *FileCmd) run(ctx context.Context, w io.Writer, logger *log.Logger, workers int) error {
	results, err := scoreFiles(ctx, c.Paths, logger, workers)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("game %q: %w", r.Name, r.Err)
		}
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: %s\n", nameStyle.Render(r.Name), scoreStyle.Render(fmt.Sprint(r.Score))); err != nil {
			return err
		}
	}
	return nil
}

func (c *ValidateCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(logger)
	defer cancel()
	return c.run(ctx, os.Stdout, logger, cfg.CLI.Workers)
}

func (c *ValidateCmd) run(ctx context.Context, w io.Writer, logger *log.Logger, workers int) error {
	results, err := scoreFiles(ctx, c.Paths, logger, workers)
	if err != nil {
		return err
	}

	invalid := 0
	for _, r := range results {
		if r.Err != nil {
			invalid++
			if _, err := fmt.Fprintf(w, "%s: %s\n", nameStyle.Render(r.Name), errorStyle.Render(r.Err.Error())); err != nil {
				return err
			}
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d games invalid", invalid, len(results))
	}
	logger.Info("All games valid", "games", len(results))
	return nil
}

// scoreFiles loads every game from paths and scores them concurrently.
// Results keep the order of the games in the files.
func scoreFiles(ctx context.Context, paths []string, logger *log.Logger, workers int) ([]gameResult, error) {
	var games []rolls.Game
	for _, path := range paths {
		loaded, err := rolls.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded game file", "path", path, "games", len(loaded))
		games = append(games, loaded...)
	}

	results := make([]gameResult, len(games))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, game := range games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scoreGame(game, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func scoreGame(game rolls.Game, logger *log.Logger) gameResult {
	result := gameResult{Name: game.Name}

	frames, err := game.Rolls()
	if err != nil {
		result.Err = err
		return result
	}

	m, err := bowling.CreateGame(frames, bowling.WithLogger(logger.With("game", game.Name)))
	if err != nil {
		result.Err = err
		return result
	}

	result.Score = m.Score()
	logger.Debug("Scored game", "game", game.Name, "score", result.Score, "complete", m.IsComplete())
	return result
}
