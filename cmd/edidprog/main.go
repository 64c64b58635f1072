// Command edidprog reads Extended Display Identification Data (EDID) from
// a display over an I2C bus, or writes it back after validating the block
// checksum.
//
// Read mode (default) emits the raw EDID bytes on stdout:
//
//	edidprog 1 > edid.bin
//
// Write mode consumes raw EDID bytes from stdin:
//
//	edidprog -w 1 < edid.bin
//
// A bad checksum aborts a write unless --fix is given, in which case the
// trailing byte is corrected in place before the transfer.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/displaykit/edidprog/edid"
	"github.com/displaykit/edidprog/programmer"
)

var (
	writeMode    bool
	fixChecksum  bool
	verbose      bool
	sleepSeconds float64
)

func main() {
	root := &cobra.Command{
		Use:   "edidprog <i2c_device_num>",
		Short: "Read or write display EDID over an I2C bus",
		Long: `edidprog transfers EDID blocks between a display's EDID storage
(I2C address 0x50) and stdin/stdout, one byte per bus transaction.

Write mode validates the block length and checksum before touching the
device; --fix corrects a bad checksum instead of failing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	root.Flags().BoolVarP(&writeMode, "write", "w", false, "write EDID from stdin to the device instead of reading")
	root.Flags().BoolVarP(&fixChecksum, "fix", "f", false, "in write mode, auto-correct a bad checksum instead of failing")
	root.Flags().Float64VarP(&sleepSeconds, "sleep", "s", 0, "delay in seconds between consecutive byte writes")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging and progress output on stderr")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	busNum, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid i2c device number %q", args[0])
	}

	if err := loadDriver(); err != nil {
		return err
	}

	bus, err := openBus(busNum)
	if err != nil {
		return err
	}
	defer bus.Close()

	opts := []programmer.Option{
		programmer.WithByteDelay(time.Duration(sleepSeconds * float64(time.Second))),
	}
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts,
			programmer.WithLogger(&slogLogger{l: logger}),
			programmer.WithProgressCallback(printProgress),
		)
	}

	prog := programmer.New(bus.EDID(), opts...)

	if writeMode {
		return runWrite(cmd, prog)
	}
	return runRead(cmd, prog)
}

// runRead fetches the block from the device and emits it on stdout.
func runRead(cmd *cobra.Command, prog *programmer.Programmer) error {
	block, err := prog.Read(cmd.Context())
	if err != nil {
		return err
	}

	if _, err := os.Stdout.Write(block); err != nil {
		return fmt.Errorf("write to stdout: %w", err)
	}
	return nil
}

// runWrite reads the block from stdin, validates or fixes the checksum,
// and transfers it to the device.
func runWrite(cmd *cobra.Command, prog *programmer.Programmer) error {
	block, err := edid.ReadBlock(os.Stdin)
	if err != nil {
		return err
	}

	if fixChecksum {
		if stored, computed, fixed := edid.Fix(block); fixed {
			fmt.Printf("Checksum was 0x%02X, fixed to 0x%02X\n", stored, computed)
		}
	} else if err := edid.Validate(block); err != nil {
		return err
	}

	return prog.Write(cmd.Context(), block)
}

// printProgress renders a single updating progress line on stderr.
func printProgress(p programmer.Progress) {
	fmt.Fprintf(os.Stderr, "\r[%s] %3.0f%% (%d/%d bytes)",
		p.Phase, p.Percentage, p.CurrentByte, p.TotalBytes)
	if p.Phase == programmer.PhaseComplete {
		fmt.Fprintln(os.Stderr)
	}
}

// slogLogger adapts log/slog to the programmer.Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, kv ...interface{}) { s.l.Debug(msg, kv...) }
func (s *slogLogger) Info(msg string, kv ...interface{})  { s.l.Info(msg, kv...) }
func (s *slogLogger) Error(msg string, kv ...interface{}) { s.l.Error(msg, kv...) }
