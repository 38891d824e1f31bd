package model

// IsValidCode reports whether code is a well-formed currency code:
// exactly 3 uppercase ASCII letters. The set of currencies actually
// supported at any moment is defined by the installed snapshot, not here.
func IsValidCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
