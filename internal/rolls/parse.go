// Package rolls reads per-frame roll lists from command-line arguments,
// scoresheet notation and YAML game files. It checks syntax only; pin and
// frame rules are enforced by the bowling package.
package rolls

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseFrames parses one frame per argument. Rolls inside a frame are
// separated by commas, e.g. "10" "7,3" "9,0". An empty argument or "-" is
// an empty frame.
func ParseFrames(args []string) ([][]int, error) {
	frames := make([][]int, 0, len(args))
	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" || arg == "-" {
			frames = append(frames, []int{})
			continue
		}

		parts := strings.Split(arg, ",")
		frame := make([]int, 0, len(parts))
		for _, part := range parts {
			pins, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("frame %d: invalid roll %q: %w", i+1, part, err)
			}
			frame = append(frame, pins)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// ParseNotation parses scoresheet notation. Frames are separated by spaces
// or "|"; inside a frame "X" is a strike, "/" a spare, "-" a miss and a digit
// a pin count, e.g. "X 7/ 9- X -8 8/ -6 X X X81".
func ParseNotation(s string) ([][]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '|'
	})

	frames := make([][]int, 0, len(fields))
	for i, field := range fields {
		frame, err := parseFrameNotation(field)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i+1, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func parseFrameNotation(field string) ([]int, error) {
	var frame []int
	// fresh is true when the next roll faces a full rack
	fresh := true
	for _, r := range field {
		var pins int
		switch {
		case r == 'X' || r == 'x':
			if !fresh {
				return nil, fmt.Errorf("strike %q on a rack with pins down", field)
			}
			pins = 10
			fresh = true
		case r == '/':
			if fresh {
				return nil, fmt.Errorf("spare %q without a first roll", field)
			}
			pins = 10 - frame[len(frame)-1]
			fresh = true
		case r == '-':
			fresh = !fresh
		case r >= '0' && r <= '9':
			pins = int(r - '0')
			fresh = !fresh
		default:
			return nil, fmt.Errorf("unexpected symbol %q in %q", r, field)
		}
		frame = append(frame, pins)
	}
	return frame, nil
}
