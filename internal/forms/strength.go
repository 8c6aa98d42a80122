package forms

import "regexp"

// Strength labels, weakest to strongest, as the platform displays them.
const (
	StrengthWeak       = "fraca"
	StrengthMedium     = "média"
	StrengthStrong     = "forte"
	StrengthVeryStrong = "muito forte"
)

var hasSymbol = regexp.MustCompile(`[!@#$%^&*]`)

// PasswordStrength scores a password 0–5 from five independent checks and
// buckets the score into a display label. It is advisory feedback only and
// never blocks submission.
func PasswordStrength(password string) (int, string) {
	score := 0
	if len(password) >= MinPasswordLength {
		score++
	}
	if hasLower.MatchString(password) {
		score++
	}
	if hasUpper.MatchString(password) {
		score++
	}
	if hasDigit.MatchString(password) {
		score++
	}
	if hasSymbol.MatchString(password) {
		score++
	}

	switch {
	case score <= 2:
		return score, StrengthWeak
	case score == 3:
		return score, StrengthMedium
	case score == 4:
		return score, StrengthStrong
	default:
		return score, StrengthVeryStrong
	}
}
