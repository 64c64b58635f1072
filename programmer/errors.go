package programmer

import (
	"fmt"
)

// VerifyError indicates that a byte read back after writing did not match
// the value written.
type VerifyError struct {
	Offset int
	Wrote  byte
	Read   byte
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("verify failed at offset %d: wrote 0x%02X, read back 0x%02X",
		e.Offset, e.Wrote, e.Read)
}
