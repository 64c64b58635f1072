// Package programmer provides a high-level API for reading and writing
// display EDID blocks over a per-byte register device.
//
// # Overview
//
// This package orchestrates the two transfer sequences:
//   - Read: fetch the header one byte at a time, resolve the total block
//     length, fetch the remaining bytes
//   - Write: validate length and checksum, then write one byte per register
//     offset in ascending order, with an optional inter-byte delay
//
// # Basic Usage
//
// The simplest way to read a display's EDID:
//
//	// User provides hardware communication (programmer.Device)
//	device := openBus(1)
//
//	prog := programmer.New(device)
//	block, err := prog.Read(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
// Track transfer progress with a callback:
//
//	prog := programmer.New(device,
//	    programmer.WithProgressCallback(func(p programmer.Progress) {
//	        fmt.Printf("[%s] %.1f%% - byte %d/%d\n",
//	            p.Phase, p.Percentage, p.CurrentByte, p.TotalBytes)
//	    }),
//	)
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	prog := programmer.New(device,
//	    programmer.WithByteDelay(10*time.Millisecond),
//	    programmer.WithVerifyAfterWrite(true),
//	    programmer.WithLogger(myLogger),
//	)
//
// # Error Handling
//
// The package surfaces structured error types:
//   - edid.UnknownVersionError: version byte outside the supported range
//   - edid.LengthMismatchError: payload length differs from the resolved length
//   - edid.ChecksumError: trailing byte does not match the computed checksum
//   - VerifyError: read-back after a write returned a different byte
//
// # Hardware Independence
//
// This package does NOT implement bus communication. Users provide a
// Device implementation for their hardware; periph.io's i2c.Dev adapts
// trivially, and in-memory implementations serve for testing.
package programmer
