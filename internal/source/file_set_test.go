package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"declet/internal/source"
)

func TestFileSet_AddVirtual(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mem.decl", []byte("int x;\n"))

	f := fs.Get(id)
	if f.Path != "mem.decl" {
		t.Errorf("unexpected path %q", f.Path)
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Error("virtual flag must be set")
	}
	if string(f.Content) != "int x;\n" {
		t.Errorf("unexpected content %q", f.Content)
	}
}

func TestFileSet_AddSamePathTwice(t *testing.T) {
	fs := source.NewFileSet()
	first := fs.AddVirtual("a.decl", []byte("int x;"))
	second := fs.AddVirtual("a.decl", []byte("int y;"))

	if first == second {
		t.Fatal("every Add must yield a fresh FileID")
	}
	latest, ok := fs.GetLatest("a.decl")
	if !ok || latest != second {
		t.Fatalf("GetLatest must track the newest id, got %v (ok=%v)", latest, ok)
	}
}

func TestFileSet_Load_NormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.decl")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int x;\r\nint y;\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := fs.Get(id)

	if string(f.Content) != "int x;\nint y;\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 || f.Flags&source.FileNormalizedCRLF == 0 {
		t.Errorf("normalization flags not set: %v", f.Flags)
	}
}

func TestFileSet_Load_Missing(t *testing.T) {
	fs := source.NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.decl")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := source.NewFileSet()
	//                          0123456 789012
	id := fs.AddVirtual("p.decl", []byte("int x;\nint y;"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{4, 1, 5},
		{6, 1, 7},
		{7, 2, 1},
		{11, 2, 5},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: expected %d:%d, got %d:%d", tt.off, tt.line, tt.col, start.Line, start.Col)
		}
	}
}

func TestFile_Line(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("p.decl", []byte("a\nbb\nccc\n"))
	f := fs.Get(id)

	cases := map[uint32]uint32{0: 1, 1: 1, 2: 2, 4: 2, 5: 3, 8: 3, 9: 4}
	for off, want := range cases {
		if got := f.Line(off); got != want {
			t.Errorf("Line(%d): expected %d, got %d", off, want, got)
		}
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("p.decl", []byte("first\n\nthird"))
	f := fs.Get(id)

	cases := map[uint32]string{
		1: "first",
		2: "",
		3: "third",
		4: "",
		0: "",
	}
	for num, want := range cases {
		if got := f.GetLine(num); got != want {
			t.Errorf("GetLine(%d): expected %q, got %q", num, want, got)
		}
	}
}

func TestSpan_Cover(t *testing.T) {
	a := source.Span{File: 0, Start: 5, End: 8}
	b := source.Span{File: 0, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Errorf("Cover: got %v", got)
	}

	other := source.Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %v", got)
	}
}

func TestFileSet_HashStable(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.AddVirtual("a.decl", []byte("int x;"))
	b := fs.AddVirtual("b.decl", []byte("int x;"))
	c := fs.AddVirtual("c.decl", []byte("int y;"))

	if fs.Get(a).Hash != fs.Get(b).Hash {
		t.Error("identical content must hash identically")
	}
	if fs.Get(a).Hash == fs.Get(c).Hash {
		t.Error("different content must hash differently")
	}
}
