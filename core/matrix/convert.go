// core/matrix/convert.go
package matrix

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseText parses an NCBI-style whitespace-separated matrix table: '#'
// comment lines, a header row of column symbols, then one row per symbol
// with the row symbol first. The result is the same nested mapping the
// bundled JSON files carry; shape and symmetry are not checked here, that
// is New's job.
func ParseText(raw []byte) (map[string]map[string]int, error) {
	sc := bufio.NewScanner(bytes.NewReader(raw))
	var header []string
	out := make(map[string]map[string]int)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if header == nil {
			for _, f := range fields {
				if len(f) != 1 {
					return nil, fmt.Errorf("%w: line %d: header symbol %q", ErrMalformedData, ln, f)
				}
			}
			header = fields
			continue
		}
		if len(fields) != len(header)+1 {
			return nil, fmt.Errorf("%w: line %d: %d fields, want %d", ErrMalformedData, ln, len(fields), len(header)+1)
		}
		sym := fields[0]
		if len(sym) != 1 {
			return nil, fmt.Errorf("%w: line %d: row symbol %q", ErrMalformedData, ln, sym)
		}
		row := make(map[string]int, len(header))
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: score %q", ErrMalformedData, ln, f)
			}
			row[header[i]] = v
		}
		out[sym] = row
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if header == nil {
		return nil, fmt.Errorf("%w: no header row", ErrMalformedData)
	}
	return out, nil
}

// ToJSON renders a nested score mapping in the bundled on-disk format:
// four-space indentation, keys sorted.
func ToJSON(scores map[string]map[string]int) ([]byte, error) {
	return json.MarshalIndent(scores, "", "    ")
}

// FormatText renders a matrix as a whitespace table, the inverse of
// ParseText. Columns are right-aligned to the widest score.
func FormatText(m *Matrix) string {
	syms := m.Symbols()
	width := 2
	for _, a := range syms {
		for _, b := range syms {
			s, _ := m.Score(a, b)
			if n := len(strconv.Itoa(s)); n+1 > width {
				width = n + 1
			}
		}
	}
	var sb strings.Builder
	sb.WriteString(" ")
	for _, s := range syms {
		fmt.Fprintf(&sb, "%*c", width, s)
	}
	sb.WriteByte('\n')
	for _, a := range syms {
		sb.WriteByte(a)
		for _, b := range syms {
			s, _ := m.Score(a, b)
			fmt.Fprintf(&sb, "%*d", width, s)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// sortedKeys is used by tests to compare mappings deterministically.
func sortedKeys(m map[string]map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
