package pipegrid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// rectLoop builds an n×n grid whose border is a single pipe loop through S.
func rectLoop(n int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 && c == 0:
				sb.WriteByte('S')
			case r == 0 && c == n-1:
				sb.WriteByte('7')
			case r == n-1 && c == 0:
				sb.WriteByte('L')
			case r == n-1 && c == n-1:
				sb.WriteByte('J')
			case r == 0 || r == n-1:
				sb.WriteByte('-')
			case c == 0 || c == n-1:
				sb.WriteByte('|')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// BenchmarkParse measures text ingestion of a 140×140 grid.
func BenchmarkParse(b *testing.B) {
	in := rectLoop(140)
	b.ReportAllocs()
	b.SetBytes(int64(len(in)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pipegrid.ParseString(in)
	}
}

// BenchmarkNetworks measures network enumeration on a 140×140 grid.
func BenchmarkNetworks(b *testing.B) {
	g, err := pipegrid.ParseString(rectLoop(140))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Networks()
	}
}
