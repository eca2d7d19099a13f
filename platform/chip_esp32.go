//go:build esp32

package platform

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"esptest-go/types"
)

// Efuse controller block 0, addresses from the ESP32 TRM.
var (
	efuseMACLo = (*volatile.Register32)(unsafe.Pointer(uintptr(0x3FF5A004))) // EFUSE_BLK0_RDATA1
	efuseMACHi = (*volatile.Register32)(unsafe.Pointer(uintptr(0x3FF5A008))) // EFUSE_BLK0_RDATA2
	efuseRev   = (*volatile.Register32)(unsafe.Pointer(uintptr(0x3FF5A00C))) // EFUSE_BLK0_RDATA3
)

var chipFields = types.Fields(
	types.FieldChipID,
	types.FieldChipModel,
	types.FieldChipRevision,
	types.FieldCPUFreq,
	types.FieldFreeHeap,
)

func readChip() types.ChipInfo {
	return types.ChipInfo{
		// 48-bit factory MAC: high 16 bits in RDATA2, low 32 in RDATA1.
		ID:         uint64(efuseMACHi.Get()&0xFFFF)<<32 | uint64(efuseMACLo.Get()),
		Model:      machine.Device,
		Revision:   uint8(efuseRev.Get() >> 15 & 0x1), // CHIP_VER_REV1 bit
		CPUFreqMHz: cpuMHz(),
		FreeHeap:   freeHeap(),
	}
}
