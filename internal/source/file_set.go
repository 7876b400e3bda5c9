package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// FileSet manages a collection of source files and resolves spans to
// line/column positions.
type FileSet struct {
	files []File
	index map[string]FileID // path -> latest id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]FileID)}
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and
// returns a new FileID. A path may be added more than once; every Add yields
// a fresh FileID and the index tracks the latest one.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(n)
	path = normalizePath(path)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fs.index[path] = id
	return id
}

// Load reads a file from disk, normalizes BOM/CRLF and Unicode form (NFC),
// and calls Add.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var flags FileFlags
	if stripped, had := removeBOM(content); had {
		content, flags = stripped, flags|FileHadBOM
	}
	if folded, had := normalizeCRLF(content); had {
		content, flags = folded, flags|FileNormalizedCRLF
	}
	content = norm.NFC.Bytes(content)
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (stdin, test, or generated) with the
// FileVirtual flag.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fs.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into line and column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Line returns the 1-based line number of a byte offset in the file.
func (f *File) Line(off uint32) uint32 {
	return toLineCol(f.LineIdx, off).Line
}

// GetLine returns the text of the given 1-based line, without its newline.
// A line that does not exist yields the empty string.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	ln := int(lineNum) - 1 // 0-based

	// Line ln starts after newline ln-1 and ends at newline ln.
	start := 0
	if ln > 0 {
		if ln-1 >= len(f.LineIdx) {
			return ""
		}
		start = int(f.LineIdx[ln-1]) + 1
	}
	end := len(f.Content)
	if ln < len(f.LineIdx) {
		end = int(f.LineIdx[ln])
	}
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}
