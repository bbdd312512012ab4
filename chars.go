package multipart

// fieldChars are the bytes a part header field may consist of: a-z A-Z and '-'. Field
// names start with a letter, so the hyphen is checked separately where it matters.
var fieldChars = [256]bool{
	'-': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
	'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
	'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
	'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
	'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
	'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
	'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
}

func isAlpha(c byte) bool {
	return c != '-' && fieldChars[c]
}

func isFieldChar(c byte) bool {
	return fieldChars[c]
}
