package edid

import (
	"fmt"
	"io"
)

// ReadBlock reads a complete EDID block from r. The stream is consumed to
// EOF, the total length is resolved from the version byte, and the payload
// must be exactly that long.
//
// The checksum is NOT verified here; callers decide between Validate and
// Fix.
//
// Example:
//
//	block, err := edid.ReadBlock(os.Stdin)
func ReadBlock(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read block: %w", err)
	}

	length, err := ResolveLength(data)
	if err != nil {
		return nil, err
	}

	if len(data) != length {
		return nil, &LengthMismatchError{Got: len(data), Want: length}
	}

	return data, nil
}
