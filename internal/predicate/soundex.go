package predicate

import "strings"

// Soundex reports whether value and reference encode to the same Soundex
// code under fuzzydb's encoding (see soundexEncode). No parameters.
func Soundex(value, reference string, _ []string) (bool, error) {
	return soundexEncodeCached(value) == soundexEncodeCached(reference), nil
}

// soundexEncode implements fuzzydb's deliberately non-textbook Soundex
// variant:
//
//  1. The first character is kept unchanged.
//  2. Every subsequent character is mapped to a class code; 'h'/'w' map to
//     '7', space is kept as a separator, anything else unclassified maps
//     to the vowel placeholder 'v'.
//  3. All '7's are dropped.
//  4. Consecutive duplicate codes are collapsed.
//  5. All 'v' placeholders are dropped — critically, this happens AFTER
//     dedup, so a vowel still breaks a run of otherwise-identical
//     consonant codes (e.g. it prevents two 'l's separated by a vowel from
//     collapsing into one).
//
// This is not classical Soundex: there is no 3-digit truncation, and
// vowels are not a dedup-only separator — they are a full pipeline stage
// applied after dedup. Do not "fix" this to match textbook Soundex; the
// deviation is intentional and must be preserved bit-exact.
func soundexEncode(s string) string {
	if len(s) == 0 {
		return ""
	}

	runes := []rune(s)
	first := string(runes[0])

	// step 2: classify everything after the first character
	classified := make([]rune, 0, len(runes)-1)
	for _, c := range runes[1:] {
		classified = append(classified, soundexClass(c))
	}

	// step 3: drop '7' (h/w)
	dropped := make([]rune, 0, len(classified))
	for _, c := range classified {
		if c != '7' {
			dropped = append(dropped, c)
		}
	}

	// step 4: collapse consecutive duplicates
	collapsed := make([]rune, 0, len(dropped))
	for i, c := range dropped {
		if i == 0 || c != dropped[i-1] {
			collapsed = append(collapsed, c)
		}
	}

	// step 5: drop 'v' placeholders, after dedup
	var sb strings.Builder
	sb.WriteString(first)
	for _, c := range collapsed {
		if c != 'v' {
			sb.WriteRune(c)
		}
	}

	return sb.String()
}

func soundexClass(c rune) rune {
	switch lower(c) {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	case 'h', 'w':
		return '7'
	case ' ':
		return ' '
	default:
		return 'v'
	}
}

func lower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
