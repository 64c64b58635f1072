package programmer

import (
	"context"
	"fmt"
	"time"

	"github.com/displaykit/edidprog/edid"
)

// Programmer orchestrates EDID transfers against a register device.
// Every transfer is a plain sequential per-byte loop; there is no
// batching and a failure partway through a write leaves the device
// partially written.
type Programmer struct {
	device Device
	config Config
}

// New creates a new Programmer with the given device and options.
//
// Example:
//
//	prog := programmer.New(device,
//	    programmer.WithByteDelay(10*time.Millisecond),
//	    programmer.WithVerifyAfterWrite(true),
//	)
func New(device Device, opts ...Option) *Programmer {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Programmer{
		device: device,
		config: cfg,
	}
}

// Read fetches a complete EDID block from the device:
//  1. Read the header one byte at a time
//  2. Resolve the total block length from the version byte
//  3. Read the remaining bytes one at a time
//
// An unknown version aborts before any byte past the header is read.
// The operation can be cancelled via context.
func (p *Programmer) Read(ctx context.Context) ([]byte, error) {
	startTime := time.Now()

	header := make([]byte, edid.HeaderSize)
	if err := p.readRange(ctx, header, 0, startTime, edid.HeaderSize); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	length, err := edid.ResolveLength(header)
	if err != nil {
		return nil, err
	}

	p.logDebug("resolved block length",
		"version", header[edid.VersionOffset],
		"length", length,
	)

	block := make([]byte, length)
	copy(block, header)

	if err := p.readRange(ctx, block, edid.HeaderSize, startTime, length); err != nil {
		return nil, fmt.Errorf("read block: %w", err)
	}

	p.reportProgress(Progress{
		Phase:       PhaseComplete,
		CurrentByte: length,
		TotalBytes:  length,
		Percentage:  100,
		ElapsedTime: time.Since(startTime),
	})

	p.logInfo("read complete", "bytes", length, "elapsed", time.Since(startTime).String())

	return block, nil
}

// readRange fills block[start:] one byte per register transaction.
func (p *Programmer) readRange(ctx context.Context, block []byte, start int, startTime time.Time, total int) error {
	for i := start; i < len(block); i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		if err := p.device.ReadReg(byte(i), block[i:i+1]); err != nil {
			return fmt.Errorf("read byte %d: %w", i, err)
		}

		p.reportProgress(Progress{
			Phase:       PhaseReading,
			CurrentByte: i + 1,
			TotalBytes:  total,
			Percentage:  float64(i+1) / float64(total) * 100,
			ElapsedTime: time.Since(startTime),
		})
	}

	return nil
}

// Write transfers a complete EDID block to the device, one byte per
// register offset in ascending order, pausing ByteDelay between
// consecutive writes.
//
// The block is validated before any device access: its length must match
// the length resolved from its version byte, and its trailing byte must be
// the correct checksum. Callers wanting auto-repair apply edid.Fix first.
//
// There is no rollback: an error partway through leaves the device
// partially written.
func (p *Programmer) Write(ctx context.Context, block []byte) error {
	length, err := edid.ResolveLength(block)
	if err != nil {
		return err
	}
	if len(block) != length {
		return &edid.LengthMismatchError{Got: len(block), Want: length}
	}

	if err := edid.Validate(block); err != nil {
		return err
	}

	startTime := time.Now()

	p.logDebug("writing block",
		"length", length,
		"byte_delay", p.config.ByteDelay.String(),
		"verify", p.config.VerifyAfterWrite,
	)

	for i, b := range block {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		if err := p.device.WriteReg(byte(i), block[i:i+1]); err != nil {
			return fmt.Errorf("write byte %d: %w", i, err)
		}

		if p.config.VerifyAfterWrite {
			if err := p.verifyByte(i, b, startTime, length); err != nil {
				return err
			}
		}

		p.reportProgress(Progress{
			Phase:       PhaseWriting,
			CurrentByte: i + 1,
			TotalBytes:  length,
			Percentage:  float64(i+1) / float64(length) * 100,
			ElapsedTime: time.Since(startTime),
		})

		if p.config.ByteDelay > 0 && i < length-1 {
			time.Sleep(p.config.ByteDelay)
		}
	}

	p.reportProgress(Progress{
		Phase:       PhaseComplete,
		CurrentByte: length,
		TotalBytes:  length,
		Percentage:  100,
		ElapsedTime: time.Since(startTime),
	})

	p.logInfo("write complete", "bytes", length, "elapsed", time.Since(startTime).String())

	return nil
}

// verifyByte reads back the byte at offset and compares it to the value
// just written.
func (p *Programmer) verifyByte(offset int, wrote byte, startTime time.Time, total int) error {
	p.reportProgress(Progress{
		Phase:       PhaseVerifying,
		CurrentByte: offset + 1,
		TotalBytes:  total,
		Percentage:  float64(offset+1) / float64(total) * 100,
		ElapsedTime: time.Since(startTime),
	})

	var buf [1]byte
	if err := p.device.ReadReg(byte(offset), buf[:]); err != nil {
		return fmt.Errorf("verify byte %d: %w", offset, err)
	}

	if buf[0] != wrote {
		return &VerifyError{
			Offset: offset,
			Wrote:  wrote,
			Read:   buf[0],
		}
	}

	return nil
}

// reportProgress calls the progress callback if configured.
func (p *Programmer) reportProgress(progress Progress) {
	if p.config.ProgressCallback != nil {
		p.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (p *Programmer) logDebug(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (p *Programmer) logInfo(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Info(msg, keysAndValues...)
	}
}
