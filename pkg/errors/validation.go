package errors

import (
	"unicode"
	"unicode/utf8"
)

// Bounds for the note mutation period, in milliseconds.
const (
	MinSpeedMS  = 100
	MaxSpeedMS  = 2000
	SpeedStepMS = 50
)

// MaxHeadlineRunes caps the headline so one sweep stays brief.
const MaxHeadlineRunes = 64

// ValidateSpeed checks a note mutation period in milliseconds.
//
// Validation rules:
//   - Between MinSpeedMS and MaxSpeedMS inclusive
//   - A multiple of SpeedStepMS
func ValidateSpeed(ms int) error {
	if ms < MinSpeedMS || ms > MaxSpeedMS {
		return New(ErrCodeInvalidSpeed, "speed %dms out of range (%d-%d)", ms, MinSpeedMS, MaxSpeedMS)
	}
	if ms%SpeedStepMS != 0 {
		return New(ErrCodeInvalidSpeed, "speed %dms must be a multiple of %dms", ms, SpeedStepMS)
	}
	return nil
}

// ValidatePeriod checks a fixed tick period in milliseconds.
func ValidatePeriod(name string, ms int) error {
	if ms <= 0 {
		return New(ErrCodeInvalidPeriod, "%s must be positive, got %d", name, ms)
	}
	return nil
}

// ValidateHeadline checks the animated headline.
//
// Validation rules:
//   - Not empty
//   - At most MaxHeadlineRunes runes
//   - Valid UTF-8 with no control characters (single line)
func ValidateHeadline(s string) error {
	if s == "" {
		return New(ErrCodeInvalidHeadline, "headline cannot be empty")
	}
	if !utf8.ValidString(s) {
		return New(ErrCodeInvalidHeadline, "headline is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(s); n > MaxHeadlineRunes {
		return New(ErrCodeInvalidHeadline, "headline too long (%d runes, max %d)", n, MaxHeadlineRunes)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidHeadline, "headline contains control characters")
		}
	}
	return nil
}

// ClampSpeed snaps ms into the valid speed range.
func ClampSpeed(ms int) int {
	return max(MinSpeedMS, min(ms, MaxSpeedMS))
}
