package transform

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PropertyMode selects how header text becomes a property name.
type PropertyMode string

const (
	// PropertyCamel lower-cases and joins words as camelCase (default).
	PropertyCamel PropertyMode = "camel"
	// PropertyPascal lower-cases and joins words as PascalCase.
	PropertyPascal PropertyMode = "pascal"
	// PropertyNoSpace removes spaces and hyphens, keeping case.
	PropertyNoSpace PropertyMode = "nospace"
	// PropertyNone keeps the trimmed header text.
	PropertyNone PropertyMode = "none"
)

// PropertyFunc maps raw header text to a property name.
type PropertyFunc func(raw string) string

// ParsePropertyMode validates a property mode name. The empty string selects camel.
func ParsePropertyMode(s string) (PropertyMode, error) {
	switch mode := PropertyMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return PropertyCamel, nil
	case PropertyCamel, PropertyPascal, PropertyNoSpace, PropertyNone:
		return mode, nil
	}
	return "", fmt.Errorf("invalid property mode: %s (must be camel, pascal, nospace, or none)", s)
}

// Formatter returns the PropertyFunc for mode.
func Formatter(mode PropertyMode) PropertyFunc {
	return func(raw string) string {
		return FormatProperty(raw, mode)
	}
}

// FormatProperty renders raw header text as a property name under mode.
func FormatProperty(raw string, mode PropertyMode) string {
	name := strings.TrimSpace(raw)

	switch mode {
	case PropertyCamel, "":
		words := splitWords(cases.Lower(language.Und).String(name))
		for i := 1; i < len(words); i++ {
			words[i] = capitalize(words[i])
		}
		return strings.Join(words, "")
	case PropertyPascal:
		words := splitWords(cases.Lower(language.Und).String(name))
		for i := range words {
			words[i] = capitalize(words[i])
		}
		return strings.Join(words, "")
	case PropertyNoSpace:
		return strings.Join(splitWords(name), "")
	}
	return name
}

// splitWords splits on single spaces and hyphens, keeping empty words.
func splitWords(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "-", " "), " ")
}

// capitalize upper-cases the first character only.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return cases.Upper(language.Und).String(string(r)) + word[size:]
}
