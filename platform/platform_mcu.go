//go:build esp32 || esp32c3 || esp32s3 || esp8266

package platform

import (
	"machine"
	"runtime"
	"time"

	"esptest-go/types"
)

// Get returns the hardware platform for the chip selected at build time.
func Get() Platform { return mcu{} }

type mcu struct{}

func (mcu) Serial() Serial { return mcuSerial{} }

func (mcu) LED(pin int) (LEDPin, bool) {
	if pin < 0 || pin > 0xFE {
		return nil, false
	}
	return mcuPin{p: machine.Pin(pin)}, true
}

func (mcu) Sleep(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }

func (mcu) Supported() types.FieldSet { return chipFields }

func (mcu) Chip() types.ChipInfo { return readChip() }

// ---- serial ----

type mcuSerial struct{}

func (mcuSerial) Configure(baud uint32) error {
	return machine.Serial.Configure(machine.UARTConfig{BaudRate: baud})
}

func (mcuSerial) WriteLine(s string) {
	for i := 0; i < len(s); i++ {
		_ = machine.Serial.WriteByte(s[i])
	}
	_ = machine.Serial.WriteByte('\r')
	_ = machine.Serial.WriteByte('\n')
}

// ---- GPIO ----

type mcuPin struct{ p machine.Pin }

func (m mcuPin) ConfigureOutput() error {
	m.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (m mcuPin) Set(level bool) { m.p.Set(level) }

// ---- shared chip facts ----

func freeHeap() uint32 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return uint32(ms.HeapIdle)
}

func cpuMHz() uint32 { return machine.CPUFrequency() / machine.MHz }
