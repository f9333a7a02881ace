package cout

import "testing"

func BenchmarkWrite(b *testing.B) {
	b.ReportAllocs()

	w := New()

	for i := 0; i < b.N; i++ {
		w.Write("some line of generated code\n")
	}
}

func BenchmarkWriteLine(b *testing.B) {
	b.ReportAllocs()

	w := NewOpts(Opts{Tab: "  "})
	w.SetLevel(2)

	for i := 0; i < b.N; i++ {
		w.WriteLine("some line of generated code")
	}
}

func BenchmarkWritef(b *testing.B) {
	b.ReportAllocs()

	w := New()

	for i := 0; i < b.N; i++ {
		w.Writef("line %d of %q\n", i, "generated code")
	}
}
