package engine

import (
	"strconv"
	"strings"
)

// ParseActivity normalizes user input to a catalog activity.
func ParseActivity(input string) (ActivityID, error) {
	a := ActivityID(strings.TrimSpace(strings.ToLower(input)))
	if !a.IsValid() {
		return "", UnknownActivityError{Input: input}
	}
	return a, nil
}

// ParseAge reads the leading decimal digits of input, the way a number
// form field is read. Empty, non-numeric or negative input yields 0.
func ParseAge(input string) int {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Overflow.
		return 0
	}
	return n
}

// NormalizeProfile trims the name and clamps the age.
// An empty name falls back to DefaultProfile's.
func NormalizeProfile(p Profile) Profile {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		p.Name = DefaultProfile().Name
	}
	if p.Age < 0 {
		p.Age = 0
	}
	return p
}
