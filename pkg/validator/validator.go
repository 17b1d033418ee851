package validator

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone accepts any phone with at least 10 significant characters.
// Formatting characters are kept, matching what patients actually type.
func ValidatePhone(phone string) bool {
	return len(strings.TrimSpace(phone)) >= 10
}

func ValidateName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func ValidateAge(age int) bool {
	return age >= 1 && age <= 120
}

func ValidateGender(gender string) bool {
	switch gender {
	case "Male", "Female", "Other":
		return true
	}
	return false
}

func FormatName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}

	return strings.Join(parts, " ")
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s)
}
