package edid

import (
	"fmt"
)

// UnknownVersionError indicates a version byte outside the supported range.
type UnknownVersionError struct {
	Version byte
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown EDID version %d", e.Version)
}

// LengthMismatchError indicates a payload whose length differs from the
// length resolved from its version byte.
type LengthMismatchError struct {
	Got  int
	Want int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("input must be %d bytes, got %d", e.Want, e.Got)
}

// ChecksumError indicates that the trailing byte does not match the
// computed checksum.
type ChecksumError struct {
	Stored   byte
	Computed byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum is BAD: stored 0x%02X, calculated 0x%02X",
		e.Stored, e.Computed)
}
