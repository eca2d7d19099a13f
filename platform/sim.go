//go:build !esp32 && !esp32c3 && !esp32s3 && !esp8266

package platform

import "esptest-go/types"

// Sim is a simulated platform for host-side tests. Sleep advances a virtual
// millisecond clock instead of blocking, and every serial line and pin
// transition is recorded against that clock, so timing and ordering
// invariants can be asserted exactly.
type Sim struct {
	facts types.ChipInfo
	caps  types.FieldSet

	now   uint64 // virtual ms since boot
	baud  uint32 // last configured serial bit rate
	lines []SimLine
	pins  map[int]*SimPin
}

// SimLine is one recorded serial line.
type SimLine struct {
	Text string
	AtMs uint64
}

// SimTransition is one recorded pin level change.
type SimTransition struct {
	Level bool
	AtMs  uint64
}

// SimPin records output configuration and driven levels.
type SimPin struct {
	sim         *Sim
	Number      int
	Configured  bool
	Transitions []SimTransition
}

// NewSim creates a simulator reporting the given facts and capability set.
func NewSim(facts types.ChipInfo, caps types.FieldSet) *Sim {
	return &Sim{facts: facts, caps: caps, pins: map[int]*SimPin{}}
}

// Get returns a simulator with placeholder facts so the firmware mains stay
// compilable off-target. Tests construct their own via NewSim.
func Get() Platform {
	return NewSim(types.ChipInfo{Model: "host-sim", CPUFreqMHz: 160, FreeHeap: 1 << 18},
		types.Fields(types.FieldChipID, types.FieldChipModel, types.FieldChipRevision,
			types.FieldCPUFreq, types.FieldFreeHeap, types.FieldFlashSize, types.FieldPSRAMSize))
}

func (s *Sim) Serial() Serial { return simSerial{s} }

func (s *Sim) LED(pin int) (LEDPin, bool) {
	if pin < 0 {
		return nil, false
	}
	p, ok := s.pins[pin]
	if !ok {
		p = &SimPin{sim: s, Number: pin}
		s.pins[pin] = p
	}
	return p, true
}

func (s *Sim) Sleep(ms uint32) { s.now += uint64(ms) }

func (s *Sim) Supported() types.FieldSet { return s.caps }

func (s *Sim) Chip() types.ChipInfo { return s.facts }

// ---- inspection for tests ----

// NowMs returns the virtual clock.
func (s *Sim) NowMs() uint64 { return s.now }

// Baud returns the last configured serial bit rate (0 if never configured).
func (s *Sim) Baud() uint32 { return s.baud }

// Lines returns every serial line written so far.
func (s *Sim) Lines() []SimLine { return s.lines }

// Pin returns the recorded state for a pin, or nil if it was never requested.
func (s *Sim) Pin(n int) *SimPin { return s.pins[n] }

// ---- serial ----

type simSerial struct{ s *Sim }

func (w simSerial) Configure(baud uint32) error {
	w.s.baud = baud
	return nil
}

func (w simSerial) WriteLine(text string) {
	w.s.lines = append(w.s.lines, SimLine{Text: text, AtMs: w.s.now})
}

// ---- GPIO ----

func (p *SimPin) ConfigureOutput() error {
	p.Configured = true
	return nil
}

func (p *SimPin) Set(level bool) {
	p.Transitions = append(p.Transitions, SimTransition{Level: level, AtMs: p.sim.now})
}
