package lexer

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkLexer1000Enums benchmarks lexing a file of 1000 declarations
func BenchmarkLexer1000Enums(b *testing.B) {
	source := generateDeclarations(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = New(source).ScanTokens()
	}
}

// BenchmarkSplitNames benchmarks splitting a full 64-name list
func BenchmarkSplitNames(b *testing.B) {
	names := make([]string, MaxNames)
	for i := range names {
		names[i] = fmt.Sprintf("value_%d", i)
	}
	raw := strings.Join(names, ", ")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = SplitNames(raw)
	}
}

func generateDeclarations(n int) string {
	var sb strings.Builder
	sb.WriteString("package bench\n\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "/// Kind%d is generated.\nenum Kind%d flags { alpha, beta\n    gamma delta }\n\n", i, i)
	}
	return sb.String()
}
