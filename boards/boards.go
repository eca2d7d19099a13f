// Package boards holds the per-chip device profiles of the build matrix.
// Each cmd/<chip>-test program flashes exactly one of these; they are never
// simultaneously active.
package boards

import "esptest-go/types"

// ESP32: most devkits wire the onboard LED to GPIO2.
var ESP32 = types.Profile{
	Name:        "ESP32",
	LED:         2,
	IntervalMs:  1000,
	Baud:        115200,
	IDHexDigits: 12,
	Fields: types.Fields(
		types.FieldChipID,
		types.FieldChipModel,
		types.FieldChipRevision,
		types.FieldCPUFreq,
		types.FieldFreeHeap,
	),
}

// ESP32C3: DevKitM-1 LED on GPIO8.
var ESP32C3 = types.Profile{
	Name:        "ESP32-C3",
	LED:         8,
	IntervalMs:  500,
	Baud:        115200,
	IDHexDigits: 12,
	Fields: types.Fields(
		types.FieldChipID,
		types.FieldChipModel,
		types.FieldChipRevision,
		types.FieldCPUFreq,
		types.FieldFreeHeap,
		types.FieldFlashSize,
	),
}

// ESP32S3: XIAO ESP32S3 user LED on GPIO21.
var ESP32S3 = types.Profile{
	Name:        "ESP32-S3",
	LED:         21,
	IntervalMs:  500,
	Baud:        115200,
	IDHexDigits: 12,
	Fields: types.Fields(
		types.FieldChipID,
		types.FieldChipModel,
		types.FieldChipRevision,
		types.FieldCPUFreq,
		types.FieldFreeHeap,
		types.FieldPSRAMSize,
	),
}

// ESP8266: NodeMCU LED on GPIO2, wired active-low.
var ESP8266 = types.Profile{
	Name:        "ESP8266",
	LED:         2,
	ActiveLow:   true,
	IntervalMs:  750,
	Baud:        115200,
	IDHexDigits: 8,
	Fields: types.Fields(
		types.FieldChipID,
		types.FieldCPUFreq,
		types.FieldFreeHeap,
		types.FieldFlashSize,
	),
}

// All lists the build matrix; host-side tests range over it.
var All = []types.Profile{ESP32, ESP32C3, ESP32S3, ESP8266}
