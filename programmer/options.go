package programmer

import "time"

// Config holds the programmer configuration.
type Config struct {
	// ProgressCallback is called during transfers to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ByteDelay is the pause inserted between consecutive byte writes.
	// Default is zero (no delay).
	ByteDelay time.Duration

	// VerifyAfterWrite enables reading back each byte after it is written
	VerifyAfterWrite bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ByteDelay:        0,
		VerifyAfterWrite: false,
	}
}

// Option is a functional option for configuring the Programmer.
type Option func(*Config)

// WithProgressCallback sets a callback function to track transfer progress.
//
// Example:
//
//	prog := programmer.New(device,
//	    programmer.WithProgressCallback(func(p programmer.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the programmer operations.
//
// Example:
//
//	prog := programmer.New(device, programmer.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithByteDelay sets the pause inserted between consecutive byte writes.
// Some EEPROMs need time to commit each byte. Default is zero.
//
// Example:
//
//	prog := programmer.New(device, programmer.WithByteDelay(10*time.Millisecond))
func WithByteDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.ByteDelay = delay
		}
	}
}

// WithVerifyAfterWrite enables or disables reading back each byte after it
// is written. Default is false.
//
// Example:
//
//	prog := programmer.New(device, programmer.WithVerifyAfterWrite(true))
func WithVerifyAfterWrite(verify bool) Option {
	return func(c *Config) {
		c.VerifyAfterWrite = verify
	}
}
