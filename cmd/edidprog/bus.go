package main

import (
	"fmt"
	"os/exec"
	"strconv"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/displaykit/edidprog/programmer"
)

// loadDriver makes sure the i2c-dev kernel module is present. Without it
// there are no /dev/i2c-* nodes to open, so failure is fatal before any
// device access.
func loadDriver() error {
	if out, err := exec.Command("modprobe", "i2c-dev").CombinedOutput(); err != nil {
		return fmt.Errorf("i2c-dev driver unavailable: %v (%s)", err, out)
	}
	return nil
}

// edidBus owns the bus handle for the duration of one invocation.
type edidBus struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// openBus initializes the host drivers and opens the numbered I2C bus with
// the display's EDID storage as the target device.
func openBus(busNum int) (*edidBus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}

	bus, err := i2creg.Open(strconv.Itoa(busNum))
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %d: %w", busNum, err)
	}

	return &edidBus{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: programmer.EDIDAddr},
	}, nil
}

// EDID returns the register device for the display's EDID storage.
func (b *edidBus) EDID() programmer.Device {
	return (*busDevice)(b.dev)
}

func (b *edidBus) Close() error {
	return b.bus.Close()
}

// busDevice adapts i2c.Dev transactions to the programmer.Device register
// interface: a read is a write of the register byte followed by a read,
// a write is a single transaction of register plus payload.
type busDevice i2c.Dev

func (d *busDevice) ReadReg(reg byte, buf []byte) error {
	return (*i2c.Dev)(d).Tx([]byte{reg}, buf)
}

func (d *busDevice) WriteReg(reg byte, buf []byte) error {
	return (*i2c.Dev)(d).Tx(append([]byte{reg}, buf...), nil)
}
