// Package conv holds allocation-free numeric formatting for firmware output
// paths; no fmt/strconv dependency.
package conv

const hexdigits = "0123456789ABCDEF"

// UHex writes n as zero-padded uppercase hex of exactly width digits, without
// 0x. Matches the fixed-width chip id formats: 12 digits for a 48-bit efuse
// MAC, 8 for a 32-bit id. buf must hold at least width bytes.
func UHex(buf []byte, n uint64, width int) []byte {
	if width <= 0 || len(buf) < width {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < width; j++ {
		i--
		buf[i] = hexdigits[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Utoa writes the base-10 representation of n into buf and returns the used
// slice. buf should be length >= 20 for uint64.
func Utoa(buf []byte, n uint64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	} else {
		for n > 0 && i > 0 {
			i--
			buf[i] = byte('0' + (n % 10))
			n /= 10
		}
	}
	return buf[i:]
}
