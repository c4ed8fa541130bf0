package bowling

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// MaxPins is the number of pins in a full rack.
	MaxPins = 10
	// MaxFrames is the number of frames in a match.
	MaxFrames = 10
	// MaxRolls is the roll limit of an ordinary frame.
	MaxRolls = 2
	// MaxFinalRolls is the roll limit of a final frame that earned a bonus.
	MaxFinalRolls = 3
)

// Frame is one round of rolls. A frame placed in a Match knows its position
// and reaches its neighbours through the match; a standalone frame has none.
type Frame struct {
	rolls []int
	match *Match
	index int
}

// NewFrame creates a standalone frame holding the given rolls.
func NewFrame(rolls ...int) (*Frame, error) {
	f := &Frame{}
	for i, pins := range rolls {
		if err := f.AddRoll(pins); err != nil {
			return nil, fmt.Errorf("roll %d: %w", i+1, err)
		}
	}
	return f, nil
}

// AddRoll records a roll. The frame is unchanged when an error is returned.
func (f *Frame) AddRoll(pins int) error {
	rolls := append(slices.Clone(f.rolls), pins)
	if err := checkRolls(rolls, f.IsFinal()); err != nil {
		if f.match != nil {
			f.match.debug("Rejected roll", "frame", f.FrameNumber(), "pins", pins, "error", err)
		}
		return err
	}
	f.rolls = rolls
	return nil
}

// Rolls returns a copy of the recorded rolls.
func (f *Frame) Rolls() []int {
	return slices.Clone(f.rolls)
}

// IsStrike reports whether the first roll knocked down every pin.
func (f *Frame) IsStrike() bool {
	return len(f.rolls) > 0 && f.rolls[0] == MaxPins
}

// IsSpare reports whether the first two rolls cleared the rack without a strike.
func (f *Frame) IsSpare() bool {
	return len(f.rolls) >= 2 && f.rolls[0] < MaxPins && f.rolls[0]+f.rolls[1] == MaxPins
}

// IsOpen reports whether the frame is neither a strike nor a spare.
func (f *Frame) IsOpen() bool {
	return !f.IsStrike() && !f.IsSpare()
}

// IsFinal reports whether the frame is the last one of its match.
// Standalone frames are final since they may still be placed last.
func (f *Frame) IsFinal() bool {
	return f.match == nil || f.index == len(f.match.frames)-1
}

// IsComplete reports whether the frame holds every roll it needs. An
// ordinary strike is complete after one roll. A final frame that opened with
// a strike or a spare needs its third roll, including a standalone frame.
func (f *Frame) IsComplete() bool {
	if !f.IsFinal() {
		return f.IsStrike() || len(f.rolls) >= MaxRolls
	}
	if f.IsStrike() || f.IsSpare() {
		return len(f.rolls) == MaxFinalRolls
	}
	return len(f.rolls) == MaxRolls
}

// Match returns the match holding this frame, or nil.
func (f *Frame) Match() *Match {
	return f.match
}

// FrameNumber returns the 1-based position of the frame in its match.
func (f *Frame) FrameNumber() int {
	return f.index + 1
}

// Previous returns the frame before this one, or nil.
func (f *Frame) Previous() *Frame {
	if f.match == nil || f.index == 0 {
		return nil
	}
	return f.match.frames[f.index-1]
}

// Next returns the frame after this one, or nil.
func (f *Frame) Next() *Frame {
	if f.match == nil || f.index+1 >= len(f.match.frames) {
		return nil
	}
	return f.match.frames[f.index+1]
}

// Score returns this frame's score including strike and spare bonuses taken
// from the following frames. Earlier frames are not included.
func (f *Frame) Score() int {
	if f.IsOpen() || f.IsFinal() {
		return f.pins()
	}

	next := f.Next()
	if f.IsSpare() {
		return MaxPins + next.roll(0)
	}
	return MaxPins + next.roll(0) + f.secondBonus(next)
}

// secondBonus returns a strike's second bonus roll. When an ordinary next
// frame holds a single roll the bonus comes from the frame after it. The
// final frame records its own bonus rolls and is read directly.
func (f *Frame) secondBonus(next *Frame) int {
	if len(next.rolls) < 2 && !next.IsFinal() {
		return next.Next().roll(0)
	}
	return next.roll(1)
}

// TotalScore returns the running total through this frame.
func (f *Frame) TotalScore() int {
	if f.match == nil {
		return f.Score()
	}
	total := 0
	for _, frame := range f.match.frames[:f.index+1] {
		total += frame.Score()
	}
	return total
}

// Append links next directly after this frame. Only the tail of a match
// accepts a new frame. A standalone frame becomes the head of a new match.
func (f *Frame) Append(next *Frame) error {
	if f.match == nil {
		_, err := NewMatchFromFrames([]*Frame{f, next})
		return err
	}
	if !f.IsFinal() {
		return fmt.Errorf("%w: frame %d is followed by frame %d", ErrCannotInsertFrame, f.FrameNumber(), f.FrameNumber()+1)
	}
	return f.match.AddFrame(next)
}

// String renders the frame in scoresheet notation, e.g. "X", "7/", "9-", "XX5".
func (f *Frame) String() string {
	var sb strings.Builder
	for i, pins := range f.rolls {
		sb.WriteString(f.symbol(i, pins))
	}
	return sb.String()
}

func (f *Frame) symbol(i, pins int) string {
	// A roll on a fresh rack can strike; otherwise it can only spare.
	fresh := i == 0 || f.rolls[i-1] == MaxPins || (i == 2 && f.IsSpare())
	switch {
	case fresh && pins == MaxPins:
		return "X"
	case !fresh && f.rolls[i-1]+pins == MaxPins:
		return "/"
	case pins == 0:
		return "-"
	default:
		return strconv.Itoa(pins)
	}
}

func (f *Frame) pins() int {
	total := 0
	for _, pins := range f.rolls {
		total += pins
	}
	return total
}

// roll returns the i-th roll, or 0 when the frame or roll does not exist yet.
func (f *Frame) roll(i int) int {
	if f == nil || i >= len(f.rolls) {
		return 0
	}
	return f.rolls[i]
}

// checkRolls validates a roll sequence for a frame that is, or is not, the
// final frame of its match.
func checkRolls(rolls []int, final bool) error {
	for i, pins := range rolls {
		if pins < 0 || pins > MaxPins {
			return fmt.Errorf("%w: %d pins on roll %d", ErrInvalidRoll, pins, i+1)
		}
	}

	if len(rolls) >= 2 && rolls[0] < MaxPins && rolls[0]+rolls[1] > MaxPins {
		return fmt.Errorf("%w: %d and %d pins on one rack", ErrPinCountExceeded, rolls[0], rolls[1])
	}

	if limit := rollLimit(rolls, final); len(rolls) > limit {
		return fmt.Errorf("%w: %d rolls, at most %d allowed", ErrTooManyRolls, len(rolls), limit)
	}

	// After a strike the second and third rolls share a fresh rack unless
	// the second one was also a strike.
	if len(rolls) == MaxFinalRolls && rolls[0] == MaxPins && rolls[1] < MaxPins && rolls[1]+rolls[2] > MaxPins {
		return fmt.Errorf("%w: %d and %d pins on one rack", ErrPinCountExceeded, rolls[1], rolls[2])
	}
	return nil
}

func rollLimit(rolls []int, final bool) int {
	if !final {
		return MaxRolls
	}
	strike := len(rolls) > 0 && rolls[0] == MaxPins
	if strike || (len(rolls) >= 2 && rolls[0]+rolls[1] == MaxPins) {
		return MaxFinalRolls
	}
	return MaxRolls
}
