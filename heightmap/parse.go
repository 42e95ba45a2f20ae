package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Marker characters recognised by Parse.
const (
	StartMarker = 'S'
	EndMarker   = 'E'
)

// noElevation marks bytes without a mapping in elevationOf.
const noElevation = -1

// elevationOf maps an input byte to its elevation, or noElevation.
// Built once at init and only read afterwards.
var elevationOf = func() (t [256]int8) {
	for i := range t {
		t[i] = noElevation
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = int8(c - 'a')
	}
	t[StartMarker] = MinElevation
	t[EndMarker] = MaxElevation
	return t
}()

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Map, error) {
	return Parse(strings.NewReader(s))
}

// Parse decodes a textual elevation map.
//
// Each non-blank line is one grid row. 'a'..'z' map to 0..25; 'S' is
// elevation 0 and marks Map.Start; 'E' is elevation 25 and marks Map.End.
// Trailing blank lines and '\r' line endings are ignored.
//
// Every error wraps ErrParse: ErrInvalidChar for an unmapped character,
// ErrNonRectangular for jagged rows, ErrEmptyGrid for empty input,
// ErrMissingMarker or ErrDuplicateMarker for bad 'S'/'E' counts.
func Parse(r io.Reader) (*Map, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read input: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var (
		values             = make([][]int, len(lines))
		start, end         Position
		seenStart, seenEnd bool
	)
	for r, line := range lines {
		row := make([]int, len(line))
		for c := 0; c < len(line); c++ {
			ch := line[c]
			e := elevationOf[ch]
			if e == noElevation {
				return nil, fmt.Errorf("%w %q at line %d column %d", ErrInvalidChar, ch, r+1, c+1)
			}
			row[c] = int(e)

			switch ch {
			case StartMarker:
				if seenStart {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, ch, r, c)
				}
				start, seenStart = Position{Row: r, Col: c}, true
			case EndMarker:
				if seenEnd {
					return nil, fmt.Errorf("%w: second %q at (%d,%d)", ErrDuplicateMarker, ch, r, c)
				}
				end, seenEnd = Position{Row: r, Col: c}, true
			}
		}
		values[r] = row
	}

	g, err := New(values)
	if err != nil {
		return nil, err
	}
	if !seenStart {
		return nil, fmt.Errorf("%w: no %q", ErrMissingMarker, StartMarker)
	}
	if !seenEnd {
		return nil, fmt.Errorf("%w: no %q", ErrMissingMarker, EndMarker)
	}

	return &Map{Grid: g, Start: start, End: end}, nil
}
