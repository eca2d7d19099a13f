// Package diag emits the one-time startup inventory of static hardware
// facts used to verify a fresh build/flash.
package diag

import (
	"esptest-go/platform"
	"esptest-go/types"
	"esptest-go/x/conv"
)

// fieldOrder fixes the diagnostic block line order across all profiles.
var fieldOrder = [...]types.FieldKind{
	types.FieldChipID,
	types.FieldChipModel,
	types.FieldChipRevision,
	types.FieldCPUFreq,
	types.FieldFreeHeap,
	types.FieldFlashSize,
	types.FieldPSRAMSize,
}

// Report opens the serial channel, configures the indicator pin as an output
// (mode only, no level driven yet) and writes the diagnostic block. It runs
// to completion exactly once per boot.
func Report(p platform.Platform, prof types.Profile) {
	ser := p.Serial()
	_ = ser.Configure(prof.Baud) // fire and forget

	if led, ok := p.LED(prof.LED); ok {
		_ = led.ConfigureOutput()
	}

	ser.WriteLine(prof.Name + " Test Program Started")

	show := p.Supported().Intersect(prof.Fields)
	info := p.Chip()
	var buf [20]byte
	for _, k := range fieldOrder {
		if show.Has(k) {
			ser.WriteLine(fieldLine(buf[:], prof, info, k))
		}
	}
}

func fieldLine(buf []byte, prof types.Profile, info types.ChipInfo, k types.FieldKind) string {
	switch k {
	case types.FieldChipID:
		return prof.Name + " Chip ID: " + string(conv.UHex(buf, info.ID, prof.IDHexDigits))
	case types.FieldChipModel:
		return prof.Name + " Chip Model: " + info.Model
	case types.FieldChipRevision:
		return prof.Name + " Chip Revision: " + string(conv.Utoa(buf, uint64(info.Revision)))
	case types.FieldCPUFreq:
		return prof.Name + " CPU Frequency: " + string(conv.Utoa(buf, uint64(info.CPUFreqMHz))) + " MHz"
	case types.FieldFreeHeap:
		return "Free Heap: " + string(conv.Utoa(buf, uint64(info.FreeHeap))) + " bytes"
	case types.FieldFlashSize:
		return "Flash Size: " + string(conv.Utoa(buf, uint64(info.FlashSize))) + " bytes"
	case types.FieldPSRAMSize:
		return "PSRAM Size: " + string(conv.Utoa(buf, uint64(info.PSRAMSize))) + " bytes"
	}
	return ""
}
