// Package document validates and formats Brazilian taxpayer numbers:
// CPF for individuals and CNPJ for companies.
package document

import (
	"errors"
	"strings"
)

const (
	cpfLen  = 11
	cnpjLen = 14
)

var ErrInvalidDocument = errors.New("invalid document")

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// digits drops every non digit rune.
func digits(s string) []int {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, int(r-'0'))
		}
	}
	return out
}

func allSame(d []int) bool {
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}

func checkDigit(sum int) int {
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

// ValidCPF reports whether s holds a CPF with correct check digits.
// Punctuation is ignored.
func ValidCPF(s string) bool {
	d := digits(s)
	if len(d) != cpfLen || allSame(d) {
		return false
	}

	sum := 0
	for i := range 9 {
		sum += (10 - i) * d[i]
	}
	first := checkDigit(sum)

	sum = 0
	for i := range 10 {
		sum += (11 - i) * d[i]
	}
	second := checkDigit(sum)

	return d[9] == first && d[10] == second
}

// ValidCNPJ reports whether s holds a CNPJ with correct check digits.
// Punctuation is ignored.
func ValidCNPJ(s string) bool {
	d := digits(s)
	if len(d) != cnpjLen || allSame(d) {
		return false
	}

	weighted := func(vals, weights []int) int {
		sum := 0
		for i, w := range weights {
			sum += vals[i] * w
		}
		return checkDigit(sum)
	}

	first := weighted(d[:12], cnpjWeights1)
	second := weighted(append(append([]int{}, d[:12]...), first), cnpjWeights2)

	return d[12] == first && d[13] == second
}

// Valid accepts either a CPF or a CNPJ.
func Valid(s string) bool {
	return ValidCPF(s) || ValidCNPJ(s)
}

// Format renders s as 000.000.000-00 or 00.000.000/0000-00 depending on its
// digit count. Check digits are not verified.
func Format(s string) (string, error) {
	d := digits(s)

	var b strings.Builder
	switch len(d) {
	case cpfLen:
		for i, v := range d {
			switch i {
			case 3, 6:
				b.WriteByte('.')
			case 9:
				b.WriteByte('-')
			}
			b.WriteByte(byte('0' + v))
		}
	case cnpjLen:
		for i, v := range d {
			switch i {
			case 2, 5:
				b.WriteByte('.')
			case 8:
				b.WriteByte('/')
			case 12:
				b.WriteByte('-')
			}
			b.WriteByte(byte('0' + v))
		}
	default:
		return "", ErrInvalidDocument
	}

	return b.String(), nil
}
