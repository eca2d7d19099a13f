//go:build esp32c3

package platform

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"esptest-go/types"
)

// Efuse controller, addresses from the ESP32-C3 TRM.
var (
	efuseMACLo = (*volatile.Register32)(unsafe.Pointer(uintptr(0x60008844))) // EFUSE_RD_MAC_SPI_SYS_0
	efuseMACHi = (*volatile.Register32)(unsafe.Pointer(uintptr(0x60008848))) // EFUSE_RD_MAC_SPI_SYS_1
	efuseWafer = (*volatile.Register32)(unsafe.Pointer(uintptr(0x60008858))) // EFUSE_RD_MAC_SPI_SYS_5
)

// DevKitM-1 ships a 4 MB flash part.
const flashBytes = 4 * 1024 * 1024

var chipFields = types.Fields(
	types.FieldChipID,
	types.FieldChipModel,
	types.FieldChipRevision,
	types.FieldCPUFreq,
	types.FieldFreeHeap,
	types.FieldFlashSize,
)

func readChip() types.ChipInfo {
	return types.ChipInfo{
		ID:         uint64(efuseMACHi.Get()&0xFFFF)<<32 | uint64(efuseMACLo.Get()),
		Model:      machine.Device,
		Revision:   uint8(efuseWafer.Get() >> 24 & 0x7), // WAFER_VERSION
		CPUFreqMHz: cpuMHz(),
		FreeHeap:   freeHeap(),
		FlashSize:  flashBytes,
	}
}
