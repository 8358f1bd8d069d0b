package source

import (
	"fmt"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"fortio.org/safecast"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// The boolean reports whether at least one replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content))
	for i, b := range content {
		if b == '\n' {
			idx, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("newline offset overflow: %w", err))
			}
			out = append(out, idx)
		}
	}
	return out
}

// locationAt maps a byte offset to a 1-based line/column. Columns count
// runes from the start of the line, matching the lexer's cursor.
func locationAt(lineIdx []uint32, content []byte, off uint32) Location {
	// binary search: greatest lineIdx[i] < off
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // 0-based index of the newline before off

	var startOff uint32
	if line < 0 {
		startOff = 0
	} else {
		startOff = lineIdx[line] + 1
	}

	end := off
	if end > uint32(len(content)) {
		end = uint32(len(content))
	}
	col, err := safecast.Conv[uint32](utf8.RuneCount(content[startOff:end]))
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}

	lineNum, err := safecast.Conv[uint32](line + 2)
	if err != nil {
		panic(fmt.Errorf("line overflow: %w", err))
	}
	return Location{Line: lineNum, Col: col + 1}
}

func normalizePath(p string) string {
	// one canonical form for cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}
