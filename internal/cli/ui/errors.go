package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a message
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

// Message is a user-facing problem report with optional hints
type Message struct {
	Level       Level
	Context     string
	Problem     string
	Suggestions []string
	Help        []string
	NoColor     bool
}

// Format renders the message.
//
//	✗ ENUM NOT FOUND: Cannot find enum 'Colr' in colors.enum.
//
//	   Did you mean: Color?
//
//	   → List enums: enumgen inspect colors.enum
func (m Message) Format() string {
	var b strings.Builder

	var head *color.Color
	var symbol string
	switch m.Level {
	case LevelWarning:
		head, symbol = color.New(color.FgYellow, color.Bold), "!"
	case LevelInfo:
		head, symbol = color.New(color.FgCyan, color.Bold), "i"
	default:
		head, symbol = color.New(color.FgRed, color.Bold), "✗"
	}
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	if m.NoColor {
		head.DisableColor()
		yellow.DisableColor()
		cyan.DisableColor()
	}

	if m.Context != "" {
		head.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(m.Context), m.Problem)
	} else {
		head.Fprintf(&b, "%s %s\n", symbol, m.Problem)
	}

	if len(m.Suggestions) > 0 {
		b.WriteString("\n")
		yellow.Fprintf(&b, "   Did you mean: %s?\n", strings.Join(m.Suggestions, ", "))
	}

	if len(m.Help) > 0 {
		b.WriteString("\n")
		for _, h := range m.Help {
			cyan.Fprintf(&b, "   → %s\n", h)
		}
	}

	return b.String()
}

// Write writes the formatted message to w
func (m Message) Write(w io.Writer) {
	fmt.Fprint(w, m.Format())
}

// FormatSuccess renders a success line
func FormatSuccess(message string, noColor bool) string {
	green := color.New(color.FgGreen, color.Bold)
	if noColor {
		green.DisableColor()
	}
	return green.Sprintf("✓ %s", message)
}

// WriteSuccess writes a success line to w
func WriteSuccess(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, FormatSuccess(message, noColor))
}

// EnumNotFound reports a missing enum in a declaration file
func EnumNotFound(name, file string, suggestions []string, noColor bool) string {
	return Message{
		Level:       LevelError,
		Context:     "enum not found",
		Problem:     fmt.Sprintf("Cannot find enum '%s' in %s.", name, file),
		Suggestions: suggestions,
		Help:        []string{"List enums: enumgen inspect " + file},
		NoColor:     noColor,
	}.Format()
}

// GenerateFailed reports a run that stopped on diagnostics
func GenerateFailed(failed int, noColor bool) string {
	noun := "files"
	if failed == 1 {
		noun = "file"
	}
	return Message{
		Level:   LevelError,
		Context: "generate failed",
		Problem: fmt.Sprintf("%d declaration %s had errors; nothing was written for them.", failed, noun),
		Help: []string{
			"Show diagnostics only: enumgen check",
			"Get help: enumgen generate --help",
		},
		NoColor: noColor,
	}.Format()
}

// ConfigFailed reports an invalid configuration
func ConfigFailed(err error, noColor bool) string {
	return Message{
		Level:   LevelError,
		Context: "configuration error",
		Problem: err.Error(),
		Help: []string{
			"View config: cat enumgen.yaml",
			"Override with ENUMGEN_* environment variables",
		},
		NoColor: noColor,
	}.Format()
}

// Warning renders a warning with optional suggestions
func Warning(message string, noColor bool) string {
	return Message{Level: LevelWarning, Problem: message, NoColor: noColor}.Format()
}
