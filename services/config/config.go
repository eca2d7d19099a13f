// Package config overlays per-device overrides from embedded JSON onto the
// compiled profile defaults. The firmware has no CLI, file or environment
// configuration; embedded data is the only source.
package config

import (
	"github.com/andreyvit/tinyjson"

	"esptest-go/types"
	"esptest-go/x/mathx"
)

// Blink interval bounds; overrides outside this window are pulled back in.
const (
	minIntervalMs = 50
	maxIntervalMs = 60_000
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Apply overlays the device's embedded config onto prof. A missing config or
// missing keys leave the compiled defaults untouched.
func Apply(prof *types.Profile) {
	raw, ok := EmbeddedConfigLookup(prof.Name)
	if !ok || len(raw) == 0 {
		return
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return
	}
	hb, ok := m["heartbeat"].(map[string]any)
	if !ok {
		return
	}
	if iv, ok := hb["interval_ms"].(float64); ok && iv > 0 {
		prof.IntervalMs = mathx.Clamp(uint32(iv), minIntervalMs, maxIntervalMs)
	}
}
