package config

import (
	"testing"

	"esptest-go/boards"
)

func withLookup(t *testing.T, fn func(string) ([]byte, bool)) {
	t.Helper()
	prev := EmbeddedConfigLookup
	EmbeddedConfigLookup = fn
	t.Cleanup(func() { EmbeddedConfigLookup = prev })
}

func TestApplyOverridesInterval(t *testing.T) {
	withLookup(t, func(string) ([]byte, bool) {
		return []byte(`{"heartbeat": {"interval_ms": 1234}}`), true
	})

	prof := boards.ESP32
	Apply(&prof)
	if prof.IntervalMs != 1234 {
		t.Fatalf("IntervalMs = %d, want 1234", prof.IntervalMs)
	}
}

func TestApplyClampsInterval(t *testing.T) {
	cases := []struct {
		raw  string
		want uint32
	}{
		{`{"heartbeat": {"interval_ms": 5}}`, 50},
		{`{"heartbeat": {"interval_ms": 10000000}}`, 60000},
	}
	for _, c := range cases {
		withLookup(t, func(string) ([]byte, bool) { return []byte(c.raw), true })
		prof := boards.ESP32C3
		Apply(&prof)
		if prof.IntervalMs != c.want {
			t.Errorf("%s: IntervalMs = %d, want %d", c.raw, prof.IntervalMs, c.want)
		}
	}
}

func TestApplyWithoutConfigKeepsDefaults(t *testing.T) {
	withLookup(t, func(string) ([]byte, bool) { return nil, false })

	prof := boards.ESP8266
	Apply(&prof)
	if prof.IntervalMs != 750 {
		t.Fatalf("IntervalMs = %d, want compiled default 750", prof.IntervalMs)
	}
}

func TestApplyIgnoresMissingKeys(t *testing.T) {
	withLookup(t, func(string) ([]byte, bool) {
		return []byte(`{"heartbeat": {}}`), true
	})

	prof := boards.ESP32S3
	Apply(&prof)
	if prof.IntervalMs != 500 {
		t.Fatalf("IntervalMs = %d, want 500", prof.IntervalMs)
	}
}

// The shipped embedded documents restate the compiled defaults, so applying
// them must be a no-op for every profile in the build matrix.
func TestEmbeddedDefaultsMatchProfiles(t *testing.T) {
	for _, want := range boards.All {
		prof := want
		Apply(&prof)
		if prof.IntervalMs != want.IntervalMs {
			t.Errorf("%s: embedded default changed interval %d -> %d",
				want.Name, want.IntervalMs, prof.IntervalMs)
		}
	}
}
