package util

import "time"

// DateLayout is the canonical date form used across queries and summaries.
// Because it is fixed-width and zero-padded, date strings order
// lexicographically.
const DateLayout = "2006-01-02"

// IsValidDate checks the strict YYYY-MM-DD form: exactly 10 characters,
// hyphens at positions 4 and 7, digits elsewhere, month 1-12 and day 1-31.
// Month length and leap years are deliberately not checked.
func IsValidDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	return true
}

// FormatDate renders a timestamp in the canonical date form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayStart parses a canonical date string into the midnight UTC instant that
// opens that day. The caller must have validated the string first.
func DayStart(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
