package validator

import "regexp"

// AadhaarLength is the number of digits in an Aadhaar number, check digit included.
const AadhaarLength = 12

var aadhaarRegex = regexp.MustCompile(`^\d{12}$`)

// verhoeffD is the multiplication table of the dihedral group D5.
var verhoeffD = [10][10]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// verhoeffP is the position permutation table, indexed by position mod 8.
var verhoeffP = [8][10]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

// VerhoeffValid reports whether s is a 12-digit number whose last digit
// matches the Verhoeff fold of the 11 digits before it.
//
// The last digit is taken as the expected checksum and compared against the
// fold of the remaining digits read right to left, with the first of them at
// permutation row 1. This is not the textbook "fold all digits to zero" form,
// and the two accept different sets of numbers.
//
// Input that is not exactly 12 ASCII digits is rejected before the fold runs.
func VerhoeffValid(s string) bool {
	if !aadhaarRegex.MatchString(s) {
		return false
	}
	return verhoeffFold(s[:AadhaarLength-1]) == s[AadhaarLength-1]-'0'
}

// VerhoeffCheckDigit returns the digit that completes an 11-digit prefix into
// a number accepted by VerhoeffValid.
func VerhoeffCheckDigit(prefix string) (byte, error) {
	if len(prefix) != AadhaarLength-1 {
		return 0, ErrInvalidChecksumInput
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return 0, ErrInvalidChecksumInput
		}
	}
	return '0' + verhoeffFold(prefix), nil
}

// verhoeffFold expects digits only; callers check the format first.
func verhoeffFold(digits string) uint8 {
	var c uint8
	n := len(digits)
	for i := 0; i < n; i++ {
		d := digits[n-1-i] - '0'
		c = verhoeffD[c][verhoeffP[(i+1)%8][d]]
	}
	return c
}
