// Package edid provides the EDID block model: length resolution, checksum
// computation, validation and repair, and reading a complete block from a
// byte stream.
//
// # EDID Block Format
//
// An EDID block is a flat byte sequence of exactly 128 or 256 bytes. The
// total length is selected by the version byte at offset 18:
//
//	version 1 -> 128 bytes
//	version 2 -> 256 bytes
//
// Any other version value (including 0) is an error; there is no fallback
// length.
//
// The final byte of the block is a checksum chosen so that the whole block
// sums to zero modulo 256:
//
//	checksum = two's complement of sum(block[0 : len-1])
//
// # Usage
//
// Read and validate a block from a stream:
//
//	block, err := edid.ReadBlock(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := edid.Validate(block); err != nil {
//	    log.Fatal(err)
//	}
//
// Repair a bad checksum in place:
//
//	stored, computed, fixed := edid.Fix(block)
//	if fixed {
//	    fmt.Printf("checksum was 0x%02X, fixed to 0x%02X\n", stored, computed)
//	}
//
// # Error Handling
//
// The package returns structured error types:
//   - UnknownVersionError: version byte outside the supported range
//   - LengthMismatchError: payload length differs from the resolved length
//   - ChecksumError: trailing byte does not match the computed checksum
//
// Validation is deliberately limited to length and checksum; the fixed
// header magic bytes and interior structural fields are not inspected.
package edid
