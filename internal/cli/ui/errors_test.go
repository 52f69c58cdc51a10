package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMessageFormat(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		contains []string
		excludes []string
	}{
		{
			name:     "error with context",
			msg:      Message{Context: "enum not found", Problem: "Cannot find enum 'X'.", NoColor: true},
			contains: []string{"✗ ENUM NOT FOUND: Cannot find enum 'X'."},
			excludes: []string{"Did you mean"},
		},
		{
			name:     "warning without context",
			msg:      Message{Level: LevelWarning, Problem: "careful", NoColor: true},
			contains: []string{"! careful"},
		},
		{
			name:     "info",
			msg:      Message{Level: LevelInfo, Problem: "note", NoColor: true},
			contains: []string{"i note"},
		},
		{
			name: "suggestions and help",
			msg: Message{
				Problem:     "bad",
				Suggestions: []string{"Color", "Colour"},
				Help:        []string{"Run: enumgen check"},
				NoColor:     true,
			},
			contains: []string{"Did you mean: Color, Colour?", "→ Run: enumgen check"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.msg.Format()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestMessageWrite(t *testing.T) {
	var buf bytes.Buffer
	Message{Problem: "oops", NoColor: true}.Write(&buf)
	if buf.String() != "✗ oops\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	WriteSuccess(&buf, "Generated 2 files", true)
	if buf.String() != "✓ Generated 2 files\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestCannedMessages(t *testing.T) {
	out := EnumNotFound("Colr", "colors.enum", []string{"Color"}, true)
	for _, s := range []string{"ENUM NOT FOUND", "'Colr'", "colors.enum", "Did you mean: Color?", "enumgen inspect colors.enum"} {
		if !strings.Contains(out, s) {
			t.Errorf("EnumNotFound missing %q:\n%s", s, out)
		}
	}

	if out := GenerateFailed(1, true); !strings.Contains(out, "1 declaration file had errors") {
		t.Errorf("GenerateFailed(1) = %q", out)
	}
	if out := GenerateFailed(2, true); !strings.Contains(out, "2 declaration files had errors") {
		t.Errorf("GenerateFailed(2) = %q", out)
	}
	if out := ConfigFailed(errors.New("bad suffix"), true); !strings.Contains(out, "CONFIGURATION ERROR: bad suffix") {
		t.Errorf("ConfigFailed = %q", out)
	}
	if out := Warning("heads up", true); !strings.Contains(out, "! heads up") {
		t.Errorf("Warning = %q", out)
	}
}
