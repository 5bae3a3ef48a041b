/*
Copyright 2025 URI Parser Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uriparser

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// isASCIIHexDigit checks if a byte is an ASCII hexadecimal digit.
func isASCIIHexDigit(b byte) bool {
	return isASCIIDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// unhex maps an ASCII hexadecimal digit to its value.
func unhex(b byte) byte {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// isUnreserved checks if a byte is in the unreserved set used for
// registered-name labels. Note that '.' is the label separator and is
// therefore not part of this set.
func isUnreserved(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '-' || b == '_' || b == '~'
}

// isSubDelim checks if a byte is in the sub-delims set as defined by
// RFC 3986, Section 2.2.
func isSubDelim(b byte) bool {
	switch b {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// isSchemeName checks a candidate scheme token against the grammar of
// RFC 3986, Section 3.1: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func isSchemeName(s string) bool {
	if s == "" || !isASCIILetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		b := s[i]
		if !isASCIILetter(b) && !isASCIIDigit(b) && b != '+' && b != '-' && b != '.' {
			return false
		}
	}
	return true
}
