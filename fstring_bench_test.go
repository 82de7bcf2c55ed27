package fstring

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func BenchmarkZeroAllocAppend(b *testing.B) {
	var s Str64
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Clear()
		s.AppendString("hello")
		s.AppendString(" world")
		s.Push('!')
	}
}

func BenchmarkStringsBuilderAppend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var sb strings.Builder
		sb.WriteString("hello")
		sb.WriteString(" world")
		sb.WriteByte('!')
		_ = sb.String()
	}
}

func BenchmarkInsertShift(b *testing.B) {
	base := FromString[[65]byte]("0123456789012345678901234567890123456789")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := base
		s.Insert(20, []byte("xxxx")...)
	}
}

func BenchmarkIndex(b *testing.B) {
	s := FromString[[257]byte]("the quick brown fox jumps over the lazy dog")
	needle := []byte("lazy")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if s.Index(needle) < 0 {
			b.Fatal("needle not found")
		}
	}
}

func BenchmarkHash(b *testing.B) {
	s := FromString[[65]byte]("a moderately sized hash input string")
	b.ReportAllocs()
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink ^= s.Hash()
	}
	_ = sink
}

func BenchmarkMapKey(b *testing.B) {
	m := map[Str32]int{}
	keys := []Str32{
		FromString[[33]byte]("alpha"),
		FromString[[33]byte]("beta"),
		FromString[[33]byte]("gamma"),
	}
	for i, k := range keys {
		m[k] = i
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func BenchmarkYamlScalar(b *testing.B) {
	// Baseline: what serializing the same content costs through yaml.
	type doc struct {
		Name string
	}
	d := doc{Name: "hello world!"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = yaml.Marshal(d)
	}
}
