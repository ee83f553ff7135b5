package iban

const modulus = 97

// checksum returns the mod-97 remainder of s after moving its first four
// characters to the end and replacing letters with 10..35.
// s must hold only digits and upper-case ASCII letters.
func checksum(s string) int {
	n := min(4, len(s))
	return fold(fold(0, s[n:]), s[:n])
}

// fold continues a running mod-97 remainder over the numerised characters of s.
// Digits contribute one decimal digit, letters two.
func fold(rem int, s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDigit(c) {
			rem = (rem*10 + int(c-'0')) % modulus
			continue
		}
		rem = (rem*100 + int(c-'A') + 10) % modulus
	}
	return rem
}
