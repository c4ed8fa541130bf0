package bowling

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Match is an ordered sequence of up to ten frames. The zero value is an
// empty match ready to use.
type Match struct {
	frames []*Frame
	logger *log.Logger
}

// MatchOption configures a Match during creation.
type MatchOption func(*Match)

// WithLogger sets the logger used to report frame changes at debug level.
// A nil logger discards output.
func WithLogger(logger *log.Logger) MatchOption {
	return func(m *Match) {
		m.logger = logger
	}
}

// NewMatch creates an empty match.
func NewMatch(opts ...MatchOption) *Match {
	m := &Match{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewMatchFromFrames creates a match holding the given standalone frames in
// order. Nothing is linked when an error is returned.
func NewMatchFromFrames(frames []*Frame, opts ...MatchOption) (*Match, error) {
	if len(frames) > MaxFrames {
		return nil, fmt.Errorf("%w: %d frames, at most %d allowed", ErrFrameLimitExceeded, len(frames), MaxFrames)
	}

	seen := make(map[*Frame]bool, len(frames))
	for i, frame := range frames {
		if err := checkPlaceable(frame); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i+1, err)
		}
		if seen[frame] {
			return nil, fmt.Errorf("frame %d: %w: frame listed twice", i+1, ErrCannotInsertFrame)
		}
		seen[frame] = true

		final := i == len(frames)-1
		if err := checkRolls(frame.rolls, final); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i+1, err)
		}
	}

	m := NewMatch(opts...)
	for _, frame := range frames {
		m.attach(frame)
	}
	return m, nil
}

// CreateGame builds a match from per-frame roll lists. Each inner slice
// becomes one frame.
func CreateGame(rollsList [][]int, opts ...MatchOption) (*Match, error) {
	if len(rollsList) > MaxFrames {
		return nil, fmt.Errorf("%w: %d frames, at most %d allowed", ErrFrameLimitExceeded, len(rollsList), MaxFrames)
	}

	frames := make([]*Frame, 0, len(rollsList))
	for i, rolls := range rollsList {
		frame, err := NewFrame(rolls...)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i+1, err)
		}
		frames = append(frames, frame)
	}
	return NewMatchFromFrames(frames, opts...)
}

// AddFrame appends a standalone frame to the tail of the match. The current
// tail stops being the final frame, so it must fit an ordinary frame's roll
// limits. The match is unchanged when an error is returned.
func (m *Match) AddFrame(frame *Frame) error {
	if err := m.checkAppend(frame); err != nil {
		m.debug("Rejected frame", "frame", len(m.frames)+1, "error", err)
		return err
	}
	m.attach(frame)
	m.debug("Added frame", "frame", frame.FrameNumber(), "rolls", frame.String(), "total", m.Score())
	return nil
}

func (m *Match) checkAppend(frame *Frame) error {
	if err := checkPlaceable(frame); err != nil {
		return err
	}
	if len(m.frames) >= MaxFrames {
		return fmt.Errorf("%w: match already has %d frames", ErrFrameLimitExceeded, MaxFrames)
	}
	if tail := m.Tail(); tail != nil {
		if err := checkRolls(tail.rolls, false); err != nil {
			return fmt.Errorf("frame %d: %w", tail.FrameNumber(), err)
		}
	}
	return nil
}

func (m *Match) debug(msg string, keyvals ...interface{}) {
	if m.logger != nil {
		m.logger.Debug(msg, keyvals...)
	}
}

func checkPlaceable(frame *Frame) error {
	if frame == nil {
		return fmt.Errorf("%w: nil frame", ErrCannotInsertFrame)
	}
	if frame.match != nil {
		return fmt.Errorf("%w: frame already placed at position %d", ErrCannotInsertFrame, frame.FrameNumber())
	}
	return nil
}

func (m *Match) attach(frame *Frame) {
	frame.match = m
	frame.index = len(m.frames)
	m.frames = append(m.frames, frame)
}

// Score returns the total score of the match.
func (m *Match) Score() int {
	total := 0
	for _, frame := range m.frames {
		total += frame.Score()
	}
	return total
}

// Len returns the number of frames in the match.
func (m *Match) Len() int {
	return len(m.frames)
}

// Frames returns the frames from head to tail.
func (m *Match) Frames() []*Frame {
	frames := make([]*Frame, len(m.frames))
	copy(frames, m.frames)
	return frames
}

// Frame returns the frame with the given 1-based number, or nil.
func (m *Match) Frame(number int) *Frame {
	if number < 1 || number > len(m.frames) {
		return nil
	}
	return m.frames[number-1]
}

// Head returns the first frame, or nil for an empty match.
func (m *Match) Head() *Frame {
	return m.Frame(1)
}

// Tail returns the last frame, or nil for an empty match.
func (m *Match) Tail() *Frame {
	return m.Frame(len(m.frames))
}

// IsComplete reports whether all ten frames have been bowled.
func (m *Match) IsComplete() bool {
	return len(m.frames) == MaxFrames && m.Tail().IsComplete()
}
