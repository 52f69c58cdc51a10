package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MaxNames is the largest number of names a single enumeration may declare.
const MaxNames = 64

// SplitNames splits a comma and/or whitespace separated list of value
// names, as written inside an enum declaration, into individual names.
//
// Separators before the first name are skipped and a single trailing comma
// is accepted. Two commas with nothing but whitespace between them produce
// an "empty name" error, as does a list of more than MaxNames names. Names
// are returned in declaration order; whatever was split before the first
// error is returned alongside the errors.
func SplitNames(raw string) ([]string, []LexError) {
	var (
		names []string
		errs  []LexError
	)
	line, col := 1, 1
	start := -1
	leading := true
	sawComma := false // a comma was seen since the last name

	flush := func() {
		if start < 0 {
			return
		}
		names = append(names, raw[start:startEnd(raw, start)])
		start = -1
	}

	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])

		switch {
		case r == ',':
			if start >= 0 {
				names = append(names, raw[start:i])
				start = -1
			} else if sawComma && !leading {
				errs = append(errs, LexError{
					Message: "empty name between commas",
					Line:    line,
					Column:  col,
					Lexeme:  ",",
				})
			}
			sawComma = true
		case unicode.IsSpace(r):
			if start >= 0 {
				names = append(names, raw[start:i])
				start = -1
			}
		default:
			if start < 0 {
				start = i
				leading = false
				sawComma = false
				if len(names) == MaxNames {
					errs = append(errs, LexError{
						Message: fmt.Sprintf("too many names: an enumeration holds at most %d", MaxNames),
						Line:    line,
						Column:  col,
						Lexeme:  nameAt(raw, i),
					})
					return names, errs
				}
			}
		}

		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i += size
	}
	flush()

	return names, errs
}

// startEnd returns the end offset of the name beginning at start.
func startEnd(raw string, start int) int {
	for i, r := range raw[start:] {
		if r == ',' || unicode.IsSpace(r) {
			return start + i
		}
	}
	return len(raw)
}

// nameAt returns the name beginning at offset i.
func nameAt(raw string, i int) string {
	return raw[i:startEnd(raw, i)]
}
