// Package bowling implements ten-pin bowling scoring.
//
// A Match owns an ordered sequence of up to ten Frames. Each Frame records
// its own rolls and scores itself, looking ahead into the following frames
// of its match for strike and spare bonuses.
//
// # Basic Usage
//
// Build a match from per-frame rolls:
//
//	m, err := bowling.CreateGame([][]int{{10}, {7, 3}, {9, 0}})
//	if err != nil {
//	    return err
//	}
//	total := m.Score() // 48
//
// Or frame by frame:
//
//	m := bowling.NewMatch()
//	f, _ := bowling.NewFrame(10)
//	if err := m.AddFrame(f); err != nil {
//	    return err
//	}
//
// # Final Frame
//
// The last frame of a match is its final frame. It scores only its own
// rolls and may hold a third roll when it opens with a strike or a spare.
// Every other frame holds at most two rolls; after a strike the second roll
// is optional and may be any pin count. When a frame is appended, the previous tail stops being final and
// must satisfy the ordinary limits.
//
// Bonus rolls that have not been bowled yet count as zero, so a match can
// be scored at any point while it is being built.
//
// # Errors
//
// Mutations validate before changing anything and return one of the
// sentinel errors (ErrInvalidRoll, ErrPinCountExceeded, ErrTooManyRolls,
// ErrFrameLimitExceeded, ErrCannotInsertFrame), wrapped with detail. Use
// errors.Is to match them.
//
// Frames and matches are not safe for concurrent use.
package bowling
