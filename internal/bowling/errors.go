package bowling

import "errors"

var (
	// ErrInvalidRoll indicates a pin count outside [0,10].
	ErrInvalidRoll = errors.New("bowling: invalid roll")

	// ErrPinCountExceeded indicates two rolls on the same rack knocked down
	// more than ten pins.
	ErrPinCountExceeded = errors.New("bowling: pin count exceeded")

	// ErrTooManyRolls indicates a frame holds more rolls than its position allows.
	ErrTooManyRolls = errors.New("bowling: too many rolls")

	// ErrFrameLimitExceeded indicates a match would hold more than ten frames.
	ErrFrameLimitExceeded = errors.New("bowling: frame limit exceeded")

	// ErrCannotInsertFrame indicates a frame was linked anywhere but the tail,
	// or a frame that already belongs to a match was placed again.
	ErrCannotInsertFrame = errors.New("bowling: cannot insert frame")
)
