// Package platform is the hardware surface the smoke test runs against: the
// serial diagnostic channel, the indicator pin, blocking sleep and the static
// chip facts. One implementation per chip family is selected by build tag;
// host builds get a simulator for tests.
package platform

import "esptest-go/types"

// Serial is the line-oriented diagnostic output channel. It is opened once
// and never closed; the running program owns it for its entire lifetime.
type Serial interface {
	// Configure opens the channel at the given bit rate. There is no
	// observable failure mode at this level; callers discard the error.
	Configure(baud uint32) error
	WriteLine(s string)
}

// LEDPin is the indicator output.
type LEDPin interface {
	ConfigureOutput() error
	Set(level bool)
}

// Platform bundles what one chip build provides.
type Platform interface {
	Serial() Serial
	LED(pin int) (LEDPin, bool)

	// Sleep blocks for approximately ms milliseconds. It is the only form
	// of suspension in the program.
	Sleep(ms uint32)

	// Supported reports which diagnostic fields this chip family can
	// answer. Queried once at startup.
	Supported() types.FieldSet

	// Chip reads the static hardware facts. Pure read, no side effects.
	Chip() types.ChipInfo
}
