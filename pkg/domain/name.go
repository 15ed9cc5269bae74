package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	dErrors "realestate/pkg/domain-errors"
)

const (
	nameMinLength = 2
	nameMaxLength = 200
)

var (
	nameAllowedChars = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ\s\-.]+$`)
	nameHasLetter    = regexp.MustCompile(`[a-zA-Zа-яА-ЯёЁ]`)
	folder           = cases.Fold()
)

// Name is a person or organisation name.
// Invariant: trimmed, 2..200 characters, only Latin/Cyrillic letters, spaces,
// hyphens and dots, at least one letter.
type Name struct {
	value string
}

// ParseName validates a raw name. A blank input yields a single "empty"
// message; otherwise every failed rule is reported.
func ParseName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Name{}, dErrors.New(dErrors.CodeValidation, "name cannot be empty")
	}

	var v dErrors.Validation
	length := utf8.RuneCountInString(trimmed)
	v.Check(length >= nameMinLength, fmt.Sprintf("name must be at least %d characters", nameMinLength))
	v.Check(length <= nameMaxLength, fmt.Sprintf("name must be at most %d characters", nameMaxLength))
	v.Check(nameAllowedChars.MatchString(trimmed), "name may contain only letters, spaces, hyphens and dots")
	v.Check(nameHasLetter.MatchString(trimmed), "name must contain at least one letter")
	if err := v.Err(); err != nil {
		return Name{}, err
	}
	return Name{value: trimmed}, nil
}

// MustName panics on invalid input. Use only in tests and fixtures.
func MustName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) String() string { return n.value }

func (n Name) IsZero() bool { return n.value == "" }

// Equal compares names case-insensitively.
func (n Name) Equal(other Name) bool {
	return folder.String(n.value) == folder.String(other.value)
}

// Initials returns the upper-cased first letter of each word joined by dots,
// e.g. "Ivanov Ivan" -> "I.I".
func (n Name) Initials() string {
	var parts []string
	for _, word := range strings.Fields(n.value) {
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsLetter(r) {
			parts = append(parts, string(unicode.ToUpper(r)))
		}
	}
	return strings.Join(parts, ".")
}

// LastName returns the first word, following the "Surname Given Patronymic"
// convention.
func (n Name) LastName() string {
	words := strings.Fields(n.value)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}
