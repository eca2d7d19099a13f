//go:build esp8266

package platform

import (
	"runtime/volatile"
	"unsafe"

	"esptest-go/types"
)

// Efuse words; the SDK derives system_get_chip_id from these.
var (
	efuse0 = (*volatile.Register32)(unsafe.Pointer(uintptr(0x3FF00050)))
	efuse1 = (*volatile.Register32)(unsafe.Pointer(uintptr(0x3FF00054)))
)

// NodeMCU boards carry a 4 MB flash part.
const flashBytes = 4 * 1024 * 1024

// No model/revision efuse fields on this family; they are omitted at build
// time rather than checked at run time.
var chipFields = types.Fields(
	types.FieldChipID,
	types.FieldCPUFreq,
	types.FieldFreeHeap,
	types.FieldFlashSize,
)

func readChip() types.ChipInfo {
	return types.ChipInfo{
		ID:         uint64(chipID()),
		CPUFreqMHz: cpuMHz(),
		FreeHeap:   freeHeap(),
		FlashSize:  flashBytes,
	}
}

// chipID reproduces the SDK's 32-bit chip id layout.
func chipID() uint32 {
	return (efuse1.Get()&0x00FFFFFF)<<8 | efuse0.Get()>>24
}
