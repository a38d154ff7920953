package models

import "strconv"

// KeyState is the state of a master key cache.
type KeyState int

const (
	KeyStateNoKey KeyState = iota
	KeyStateCached
)

func (s KeyState) String() string {
	switch s {
	case KeyStateNoKey:
		return "NO_KEY"
	case KeyStateCached:
		return "CACHED"
	default:
		return "KeyState(" + strconv.Itoa(int(s)) + ")"
	}
}
