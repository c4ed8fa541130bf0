package rolls

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Game is one game in a YAML game file. Rolls are given either as frame
// lists or as scoresheet notation:
//
//	name: league night
//	frames: [[10], [7, 3], [9, 0]]
//	---
//	name: perfect
//	notation: X X X X X X X X X XXX
type Game struct {
	Name     string  `yaml:"name"`
	Frames   [][]int `yaml:"frames,omitempty"`
	Notation string  `yaml:"notation,omitempty"`
}

// Rolls returns the per-frame rolls of the game.
func (g Game) Rolls() ([][]int, error) {
	if g.Notation != "" {
		if len(g.Frames) > 0 {
			return nil, fmt.Errorf("game %q: both frames and notation given", g.Name)
		}
		return ParseNotation(g.Notation)
	}
	return g.Frames, nil
}

// Decode reads every YAML document from r as a Game.
func Decode(r io.Reader) ([]Game, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var games []Game
	for {
		var game Game
		err := dec.Decode(&game)
		if errors.Is(err, io.EOF) {
			return games, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode game %d: %w", len(games)+1, err)
		}
		games = append(games, game)
	}
}

// LoadFile reads the games in a YAML file. Games without a name are named
// after the file and their position in it.
func LoadFile(path string) ([]Game, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	games, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i := range games {
		if games[i].Name == "" {
			games[i].Name = fmt.Sprintf("%s#%d", filepath.Base(path), i+1)
		}
	}
	return games, nil
}
