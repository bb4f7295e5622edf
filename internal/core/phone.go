package core

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minDigits = 10
	maxDigits = 13

	threeGroups    = "${1}-${2}-${3}"
	twoGroups      = "${1}-${2}"
	countryPrefix  = "62"
	displayCountry = "+62 "
)

var (
	localPattern  = regexp.MustCompile(`(\d{4})(\d{4})(\d{4})`)
	mobilePattern = regexp.MustCompile(`(\d{3})(\d{4})(\d{4})`)
	typingShort   = regexp.MustCompile(`(\d{3})(\d{1,4})`)
	typingLong    = regexp.MustCompile(`(\d{3})(\d{4})(\d{1,4})`)
)

// NormalizeDigits strips every character that is not an ASCII digit
func NormalizeDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ParsePhoneDigits normalizes raw input and enforces the 10 to 13 digit length
func ParsePhoneDigits(raw string) (PhoneDigits, error) {
	digits := NormalizeDigits(raw)
	if len(digits) < minDigits || len(digits) > maxDigits {
		return "", fmt.Errorf("%w: %d digits", ErrInvalidInput, len(digits))
	}
	return PhoneDigits(digits), nil
}

// FormatForDisplay groups a number the way results and history show it
func FormatForDisplay(number string) string {
	cleaned := NormalizeDigits(number)

	switch {
	case strings.HasPrefix(cleaned, "0"):
		return replaceFirst(localPattern, cleaned, threeGroups)
	case strings.HasPrefix(cleaned, countryPrefix):
		return displayCountry + replaceFirst(mobilePattern, cleaned[len(countryPrefix):], threeGroups)
	case strings.HasPrefix(cleaned, "8"):
		return replaceFirst(mobilePattern, cleaned, threeGroups)
	}

	return cleaned
}

// FormatInput groups digits while the number is being typed, e.g. 812-3456-7890
func FormatInput(raw string) string {
	value := NormalizeDigits(raw)

	switch {
	case len(value) <= 3:
		return value
	case len(value) <= 7:
		return replaceFirst(typingShort, value, twoGroups)
	default:
		return replaceFirst(typingLong, value, threeGroups)
	}
}

// replaceFirst expands template over the leftmost match only
func replaceFirst(re *regexp.Regexp, s, template string) string {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	expanded := re.ExpandString(nil, template, s, loc)
	return s[:loc[0]] + string(expanded) + s[loc[1]:]
}
