package programmer

import "time"

// Transfer phases reported through Progress.Phase.
const (
	PhaseReading   = "reading"
	PhaseWriting   = "writing"
	PhaseVerifying = "verifying"
	PhaseComplete  = "complete"
)

// Progress contains information about an in-flight transfer.
// Passed to ProgressCallback during Read and Write operations.
type Progress struct {
	// Phase describes the current operation phase:
	//   "reading"   - Fetching bytes from the device
	//   "writing"   - Writing bytes to the device
	//   "verifying" - Reading back a written byte
	//   "complete"  - Operation completed successfully
	Phase string

	// CurrentByte is the number of bytes transferred so far
	CurrentByte int

	// TotalBytes is the total number of bytes in the block, once known.
	// During the header phase of a read this is the header size.
	TotalBytes int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the transfer started
	ElapsedTime time.Duration
}

// ProgressCallback is called periodically during a transfer to report
// progress. Implementations should return quickly to avoid slowing the
// per-byte transfer loop.
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// programmer. This allows integration with any logging framework.
//
// Example with log/slog:
//
//	type SlogLogger struct{ l *slog.Logger }
//	func (s *SlogLogger) Debug(msg string, kv ...interface{}) { s.l.Debug(msg, kv...) }
//	func (s *SlogLogger) Info(msg string, kv ...interface{})  { s.l.Info(msg, kv...) }
//	func (s *SlogLogger) Error(msg string, kv ...interface{}) { s.l.Error(msg, kv...) }
//
//	prog := programmer.New(device, programmer.WithLogger(&SlogLogger{l: slog.Default()}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
