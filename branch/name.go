package branch

import (
	"regexp"
	"strings"
)

// RE2's \w, \d and \s only match ASCII. Branch names may carry any letters,
// so the classes are spelled out in Unicode terms.
const (
	wordClass  = `[\p{L}\p{N}\p{Mn}\p{Pc}]`
	digitClass = `\p{Nd}`
	spaceChars = `\s\x{0B}\x{85}\p{Z}`
)

var (
	prefixPattern = regexp.MustCompile(`^[^` + spaceChars + `]+/` + wordClass + `+-` + digitClass + `+`)
	titlePattern  = regexp.MustCompile(`^(` + wordClass + `+)/(` + wordClass + `+-` + digitClass + `+)((-` + wordClass + `+)*)$`)
)

// Recognize returns the leading owner/WORD-NUMBER part of s. Anything after
// the number is ignored, so "owner/BAR-123-detail" yields "owner/BAR-123".
func Recognize(s string) (string, bool) {
	loc := prefixPattern.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[loc[0]:loc[1]], true
}

// Title renders a readable title such as "BAR-123: add thing" from a full
// branch name. Names that do not look like owner/TICKET-N[-words] are
// returned unchanged.
func Title(name string) string {
	m := titlePattern.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	ticket := strings.ToUpper(m[2])
	rest := strings.ReplaceAll(m[3], "-", " ")
	if strings.TrimSpace(rest) == "" {
		return ticket
	}
	return ticket + ":" + rest
}

// Join composes a full branch name from a prefix and suffix words.
func Join(prefix string, words ...string) string {
	parts := make([]string, 0, len(words)+1)
	parts = append(parts, prefix)
	parts = append(parts, words...)
	return strings.Join(parts, "-")
}
