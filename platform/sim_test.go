package platform

import (
	"testing"

	"esptest-go/types"
)

func TestSimClockAndRecording(t *testing.T) {
	sim := NewSim(types.ChipInfo{CPUFreqMHz: 240}, types.Fields(types.FieldCPUFreq))

	ser := sim.Serial()
	if err := ser.Configure(115200); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if sim.Baud() != 115200 {
		t.Fatalf("Baud = %d, want 115200", sim.Baud())
	}

	led, ok := sim.LED(2)
	if !ok {
		t.Fatal("LED(2) not available")
	}
	if err := led.ConfigureOutput(); err != nil {
		t.Fatalf("ConfigureOutput: %v", err)
	}

	led.Set(true)
	sim.Sleep(1000)
	led.Set(false)
	ser.WriteLine("tick")

	if sim.NowMs() != 1000 {
		t.Errorf("NowMs = %d, want 1000", sim.NowMs())
	}
	pin := sim.Pin(2)
	if !pin.Configured || len(pin.Transitions) != 2 {
		t.Fatalf("pin state: %+v", pin)
	}
	if pin.Transitions[0] != (SimTransition{Level: true, AtMs: 0}) ||
		pin.Transitions[1] != (SimTransition{Level: false, AtMs: 1000}) {
		t.Errorf("transitions: %+v", pin.Transitions)
	}
	lines := sim.Lines()
	if len(lines) != 1 || lines[0] != (SimLine{Text: "tick", AtMs: 1000}) {
		t.Errorf("lines: %+v", lines)
	}
}

func TestSimSamePinHandle(t *testing.T) {
	sim := NewSim(types.ChipInfo{}, 0)
	a, _ := sim.LED(8)
	b, _ := sim.LED(8)
	if a != b {
		t.Error("LED must return the same handle for the same pin")
	}
	if _, ok := sim.LED(-1); ok {
		t.Error("negative pin must not resolve")
	}
}
