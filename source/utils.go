package source

import (
	"bytes"
	"path/filepath"
)

func detectFlags(content []byte) FileFlags {
	var flags FileFlags
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		flags |= FileHasBOM
	}
	if bytes.Contains(content, []byte{'\r', '\n'}) {
		flags |= FileHasCRLF
	}
	return flags
}

// buildLineIndex records the offset of every \n. A lone \r is not a line
// break for position reporting (matching how VB6 editors count lines),
// though the lexer still tokenizes it as a newline.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// Binary search: greatest lineIdx[i] <= off.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	// hi is the index of the last newline at or before off, or -1.
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	startOff := lineIdx[hi] + 1
	if off < startOff {
		// off points at the newline byte itself; it still belongs to
		// the line the newline terminates.
		if hi == 0 {
			return LineCol{Line: 1, Col: off + 1}
		}
		prev := lineIdx[hi-1] + 1
		return LineCol{Line: uint32(hi + 1), Col: off - prev + 1}
	}

	return LineCol{Line: uint32(hi + 2), Col: off - startOff + 1}
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
