package types

// -----------------------------------------------------------------------------
// Diagnostic fields & capability set
// -----------------------------------------------------------------------------

// FieldKind identifies one static hardware fact a chip can report.
type FieldKind uint8

const (
	FieldChipID FieldKind = iota
	FieldChipModel
	FieldChipRevision
	FieldCPUFreq
	FieldFreeHeap
	FieldFlashSize
	FieldPSRAMSize
)

// FieldSet is a bitmask of FieldKinds: the fields a chip family can answer,
// or the fields a profile wants printed. The zero value is the empty set.
type FieldSet uint8

// Fields builds a set from the given kinds.
func Fields(kinds ...FieldKind) FieldSet {
	var s FieldSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s FieldSet) Has(k FieldKind) bool { return s&(1<<k) != 0 }

// Intersect returns the fields present in both sets.
func (s FieldSet) Intersect(o FieldSet) FieldSet { return s & o }

// -----------------------------------------------------------------------------
// Chip facts
// -----------------------------------------------------------------------------

// ChipInfo is a one-shot snapshot of the static hardware facts. Each value is
// a pure read with no failure path; fields outside the platform's capability
// set stay zero and are never printed.
type ChipInfo struct {
	ID         uint64 // efuse MAC or chip id, right-aligned
	Model      string
	Revision   uint8
	CPUFreqMHz uint32
	FreeHeap   uint32 // bytes
	FlashSize  uint32 // bytes
	PSRAMSize  uint32 // bytes
}

// -----------------------------------------------------------------------------
// Device profiles
// -----------------------------------------------------------------------------

// Profile is the compile-time constant set for one target chip variant:
// which pin is the indicator, its polarity, the blink timing and the
// diagnostic fields meaningful for that chip family.
type Profile struct {
	Name        string // label prefix, e.g. "ESP32-C3"
	LED         int    // indicator GPIO number
	ActiveLow   bool   // true when driving low turns the LED on
	IntervalMs  uint32 // hold per blink phase
	Baud        uint32 // serial diagnostic channel bit rate
	IDHexDigits int    // chip id print width: 12 for efuse-MAC chips, 8 for ESP8266
	Fields      FieldSet
}

// OnLevel returns the pin level that turns the indicator on.
func (p Profile) OnLevel() bool { return !p.ActiveLow }
