package programmer

// EDIDAddr is the fixed 7-bit I2C address at which displays expose their
// EDID storage.
const EDIDAddr = 0x50

// Device is the minimal register-addressed transfer interface the
// programmer needs. The register is the EDID byte offset.
//
// An I2C implementation maps ReadReg to a write of the register byte
// followed by a read, and WriteReg to a single write of register plus
// payload (periph.io's i2c.Dev.Tx does both). Mock implementations back
// the registers with a byte array.
type Device interface {
	// ReadReg reads len(buf) bytes starting at register reg
	ReadReg(reg byte, buf []byte) error

	// WriteReg writes buf starting at register reg
	WriteReg(reg byte, buf []byte) error
}
