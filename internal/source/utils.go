package source

import (
	"bytes"
	"path/filepath"
	"sort"
)

var (
	crlf = []byte{'\r', '\n'}
	lf   = []byte{'\n'}
	bom  = []byte{0xEF, 0xBB, 0xBF}
)

// normalizeCRLF folds every \r\n into \n, leaving lone \r untouched.
// The second result reports whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, lf), true
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bom) {
		return content[len(bom):], true
	}
	return content, false
}

// buildLineIndex records the byte offset of every '\n' in content.
func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	base := 0
	for {
		i := bytes.IndexByte(content[base:], '\n')
		if i < 0 {
			return out
		}
		out = append(out, uint32(base+i))
		base += i + 1
	}
}

// toLineCol maps a byte offset to a 1-based line and column. The line is
// the count of newlines strictly before the offset.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
