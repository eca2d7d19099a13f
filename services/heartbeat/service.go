// Package heartbeat is the infinite pin-toggle-and-report cycle that makes
// up the program's entire post-startup behaviour.
package heartbeat

import (
	"esptest-go/platform"
	"esptest-go/types"
)

// Config parameterizes one blink loop.
type Config struct {
	Pin        int
	ActiveLow  bool
	IntervalMs uint32 // hold per phase
	Label      string // device label in the liveness line
	Cycles     int    // 0 = loop forever
}

// FromProfile builds a loop config from a device profile. Firmware mains
// leave Cycles at zero; tests set a bound.
func FromProfile(p types.Profile) Config {
	return Config{Pin: p.LED, ActiveLow: p.ActiveLow, IntervalMs: p.IntervalMs, Label: p.Name}
}

// Run drives the indicator through on/off phases and emits one liveness line
// per full cycle, after the off-phase wait. The first transition always
// drives the on level, so the sequence is self-synchronizing regardless of
// prior pin state. With Cycles == 0 it never returns; a hardware reset is
// the only way execution leaves the loop.
func Run(p platform.Platform, cfg Config) {
	led, ok := p.LED(cfg.Pin)
	if !ok {
		return
	}
	ser := p.Serial()

	on := !cfg.ActiveLow
	for n := 0; cfg.Cycles == 0 || n < cfg.Cycles; n++ {
		led.Set(on)
		p.Sleep(cfg.IntervalMs)
		led.Set(!on)
		p.Sleep(cfg.IntervalMs)
		ser.WriteLine(cfg.Label + " is alive and blinking!")
	}
}
