package token

import (
	"fmt"
	"unicode/utf16"
)

// tokenFor computes the per-request signing token from the seed and the
// input text. The algorithm mirrors the checksum the translation site's
// frontend JavaScript produces; it is verified against captured
// input/output fixtures only, not derived from any documented contract.
func tokenFor(seed Seed, text string) string {
	units := utf16.Encode([]rune(text))

	// Expand the UTF-16 code units into a UTF-8-style byte sequence,
	// recombining surrogate pairs into their code point first.
	var e []int64
	for g := 0; g < len(units); g++ {
		l := int64(units[g])
		switch {
		case l < 128:
			e = append(e, l)
		case l < 2048:
			e = append(e, l>>6|192, l&63|128)
		case l&64512 == 55296 && g+1 < len(units) && int64(units[g+1])&64512 == 56320:
			g++
			l = 65536 + (l&1023)<<10 + int64(units[g])&1023
			e = append(e, l>>18|240, l>>12&63|128, l>>6&63|128, l&63|128)
		default:
			e = append(e, l>>12|224, l>>6&63|128, l&63|128)
		}
	}

	a := seed.First
	for _, v := range e {
		a += v
		a = mix(a, "+-a^+6")
	}
	a = mix(a, "+-3^+b+-f")
	a ^= seed.Second
	if a < 0 {
		a = a&0x7FFFFFFF + 0x80000000
	}
	a %= 1_000_000

	return fmt.Sprintf("%d.%d", a, a^seed.First)
}

// mix applies a sequence of shift-then-combine steps encoded as character
// triples: [+^] selects add-or-xor, [+-] selects unsigned-right or left
// shift, and the third character is the shift amount (digit or base-36).
func mix(a int64, ops string) int64 {
	for c := 0; c+2 < len(ops); c += 3 {
		d := int64(ops[c+2])
		if d >= 'a' {
			d -= 87
		} else {
			d -= '0'
		}
		if ops[c+1] == '+' {
			d = int64(uint32(a) >> uint(d))
		} else {
			d = a << uint(d)
		}
		if ops[c] == '+' {
			a = (a + d) & 0xFFFFFFFF
		} else {
			a ^= d
		}
	}
	return a
}
