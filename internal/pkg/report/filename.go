package report

import (
	"strings"
	"unicode"
)

func underscoreSpaces(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), "_")
}
