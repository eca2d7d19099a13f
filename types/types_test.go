package types

import "testing"

func TestFieldSet(t *testing.T) {
	s := Fields(FieldChipID, FieldCPUFreq, FieldFreeHeap)

	for _, k := range []FieldKind{FieldChipID, FieldCPUFreq, FieldFreeHeap} {
		if !s.Has(k) {
			t.Errorf("set missing field %d", k)
		}
	}
	for _, k := range []FieldKind{FieldChipModel, FieldChipRevision, FieldFlashSize, FieldPSRAMSize} {
		if s.Has(k) {
			t.Errorf("set unexpectedly has field %d", k)
		}
	}

	var empty FieldSet
	if empty.Has(FieldChipID) {
		t.Error("zero value must be the empty set")
	}

	o := Fields(FieldCPUFreq, FieldFlashSize)
	if got, want := s.Intersect(o), Fields(FieldCPUFreq); got != want {
		t.Errorf("Intersect = %b, want %b", got, want)
	}
}

func TestProfileOnLevel(t *testing.T) {
	if (Profile{}).OnLevel() != true {
		t.Error("default polarity must be active-high")
	}
	if (Profile{ActiveLow: true}).OnLevel() != false {
		t.Error("active-low profile must drive low for on")
	}
}
