package ffx

// These helpers are not part of the FFX-A2 engine; they are the kind of
// formatting glue an external collaborator (a credit-card or SSN
// tokenizer, say) builds on top of the core Encrypt/Decrypt operations.
// They only ever see the characters that make up a formatted value
// (hyphens, dots, the '@' in an e-mail address), never the cryptographic
// internals.

// SeparateFormatAndData splits s into a format mask (true at each position
// that holds a non-alphanumeric format character) and the alphanumeric data
// characters in order, with format characters removed.
func SeparateFormatAndData(s string) ([]bool, string) {
	formatMask := make([]bool, len(s))
	dataChars := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			formatMask[i] = false
			dataChars = append(dataChars, c)
		default:
			formatMask[i] = true
		}
	}

	return formatMask, string(dataChars)
}

// ReconstructWithFormat re-interleaves data (the tokenized or detokenized
// data characters) with the format characters recorded in formatMask,
// reading format characters back from original.
func ReconstructWithFormat(data string, formatMask []bool, original string) string {
	result := make([]byte, len(formatMask))
	dataIdx := 0

	for i := range formatMask {
		if formatMask[i] {
			result[i] = original[i]
			continue
		}
		if dataIdx < len(data) {
			result[i] = data[dataIdx]
			dataIdx++
		}
	}

	return string(result)
}

// DetermineRadix picks the smallest FFX-A2 radix — 10 or 36 — whose
// alphabet (the first r characters of "0123456789abc...") covers every
// character in dataChars. Data containing only digits needs radix 10;
// data containing any letter needs radix 36. Empty input defaults to 10.
func DetermineRadix(dataChars string) int {
	for i := 0; i < len(dataChars); i++ {
		c := dataChars[i]
		if !(c >= '0' && c <= '9') {
			return 36
		}
	}
	return 10
}
