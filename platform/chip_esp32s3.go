//go:build esp32s3

package platform

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"esptest-go/types"
)

// Efuse controller, addresses from the ESP32-S3 TRM.
var (
	efuseMACLo = (*volatile.Register32)(unsafe.Pointer(uintptr(0x60007044))) // EFUSE_RD_MAC_0
	efuseMACHi = (*volatile.Register32)(unsafe.Pointer(uintptr(0x60007048))) // EFUSE_RD_MAC_1
	efuseWafer = (*volatile.Register32)(unsafe.Pointer(uintptr(0x60007058))) // EFUSE_RD_MAC_5
)

// Octal PSRAM on the usual N8R8 devkit module.
const psramBytes = 8 * 1024 * 1024

var chipFields = types.Fields(
	types.FieldChipID,
	types.FieldChipModel,
	types.FieldChipRevision,
	types.FieldCPUFreq,
	types.FieldFreeHeap,
	types.FieldPSRAMSize,
)

func readChip() types.ChipInfo {
	return types.ChipInfo{
		ID:         uint64(efuseMACHi.Get()&0xFFFF)<<32 | uint64(efuseMACLo.Get()),
		Model:      machine.Device,
		Revision:   uint8(efuseWafer.Get() >> 24 & 0x7), // WAFER_VERSION
		CPUFreqMHz: cpuMHz(),
		FreeHeap:   freeHeap(),
		PSRAMSize:  psramBytes,
	}
}
