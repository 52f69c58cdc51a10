package errors

import (
	"fmt"
	"strings"
)

// FormatError renders a diagnostic for the terminal:
//
//	❌ error[SEM203]: Value 'red' is declared more than once in enum 'Color' (first at line 3)
//	  --> colors.enum:3:19
//	   = in enum Color, value 'red'
//	    |
//	  2 | /// Color is a paint colour.
//	  3 | enum Color { red, red }
//	    |                   ^^^
//	  4 |
//	   = help: Remove the duplicate, ...
func FormatError(e *CompilerError) string {
	var b strings.Builder

	file := e.File
	if file == "" {
		file = "<source>"
	}

	fmt.Fprintf(&b, "%s %s[%s]: %s\n", severityIcon(e.Severity), e.Severity, e.Code, e.Message)
	fmt.Fprintf(&b, "  --> %s:%d:%d\n", file, e.Location.Line, e.Location.Column)
	if scope := declarationScope(e); scope != "" {
		fmt.Fprintf(&b, "   = in %s\n", scope)
	}

	if e.Context != nil && len(e.Context.SourceLines) > 0 {
		// the offending line sits in the middle of a three-line snippet
		at := 0
		if len(e.Context.SourceLines) > 1 {
			at = 1
		}
		gutter := strings.Repeat(" ", 4) + "|"
		b.WriteString(gutter + "\n")
		for i, line := range e.Context.SourceLines {
			fmt.Fprintf(&b, "%s %s\n", formatLineNumber(e.Location.Line-at+i), line)
			if i == at {
				fmt.Fprintf(&b, "%s %s%s\n", gutter, caretPad(line, e.Location.Column),
					strings.Repeat("^", markerWidth(e)))
			}
		}
	}

	switch {
	case e.Expected != "" && e.Actual != "":
		fmt.Fprintf(&b, "   = expected %s, found %s\n", e.Expected, e.Actual)
	case e.Expected != "":
		fmt.Fprintf(&b, "   = expected %s\n", e.Expected)
	case e.Actual != "":
		fmt.Fprintf(&b, "   = found %s\n", e.Actual)
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "   = help: %s\n", e.Suggestion)
	}
	for _, example := range e.Examples {
		fmt.Fprintf(&b, "   = try: %s\n", example)
	}
	if e.Documentation != "" {
		fmt.Fprintf(&b, "   = see %s\n", e.Documentation)
	}

	return b.String()
}

// FormatErrorList renders every diagnostic after a one-line tally
func FormatErrorList(errors ErrorList) string {
	if len(errors) == 0 {
		return "no errors"
	}

	var b strings.Builder

	errCount, warnCount, _ := errors.ErrorCount()
	files := make(map[string]bool)
	for _, err := range errors {
		files[err.File] = true
	}
	fmt.Fprintf(&b, "%d error(s), %d warning(s) in %d declaration file(s)\n\n",
		errCount, warnCount, len(files))

	for i, err := range errors {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.Format())
	}

	return b.String()
}

// FormatCompact returns a compact one-line error format
func FormatCompact(e *CompilerError) string {
	file := e.File
	if file == "" {
		file = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s [%s]",
		file, e.Location.Line, e.Location.Column,
		e.Severity, e.Message, e.Code)
}

// declarationScope names the enum and value a diagnostic belongs to
func declarationScope(e *CompilerError) string {
	switch {
	case e.Enum != "" && e.Value != "":
		return fmt.Sprintf("enum %s, value '%s'", e.Enum, e.Value)
	case e.Enum != "":
		return "enum " + e.Enum
	case e.Value != "":
		return fmt.Sprintf("value '%s'", e.Value)
	}
	return ""
}

// caretPad returns the indentation that puts a marker under column col,
// keeping tabs so the marker lines up with tab-indented bodies
func caretPad(line string, col int) string {
	var b strings.Builder
	for i, r := range line {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	for n := len(line); n < col-1; n++ {
		b.WriteByte(' ')
	}
	return b.String()
}

// markerWidth underlines the offending value name, or a single column
func markerWidth(e *CompilerError) int {
	if e.Value != "" && e.Context != nil && strings.Contains(e.Context.Current, e.Value) {
		return len(e.Value)
	}
	return 1
}

// severityIcon returns the emoji/icon for a severity level
func severityIcon(severity ErrorSeverity) string {
	switch severity {
	case SeverityError:
		return "❌"
	case SeverityWarning:
		return "⚠️ "
	case SeverityInfo:
		return "ℹ️ "
	default:
		return "❓"
	}
}

// formatLineNumber formats a line number for display
func formatLineNumber(lineNum int) string {
	return fmt.Sprintf("%3d |", lineNum)
}
