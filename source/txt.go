package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ostafen/mathsets/literal"
	"github.com/ostafen/mathsets/mathset"
)

// decodeTXT reads either alternating name and literal lines, or literal lines only.
// The layout is chosen by literalLayout, so a set may be named by a number.
func decodeTXT(data []byte) ([]rawSet, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	if literalLayout(lines) {
		return literalLines(lines)
	}
	return namedLines(lines)
}

// literalLayout reports whether lines hold one set each rather than name and set pairs.
// A first line holding a list is a set; so is any literal when the lines cannot pair up.
func literalLayout(lines []string) bool {
	v, err := literal.Parse(lines[0])
	if err != nil {
		return false
	}
	return v.Kind == literal.KindList || len(lines)%2 != 0
}

func literalLines(lines []string) ([]rawSet, error) {
	sets := make([]rawSet, 0, len(lines))
	for i, line := range lines {
		v, err := literal.Parse(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", i+1)
		}
		sets = append(sets, rawSet{name: defaultName(i), value: v})
	}
	return sets, nil
}

func namedLines(lines []string) ([]rawSet, error) {
	if len(lines)%2 != 0 {
		return nil, errors.Errorf("math set %q has no ranges", lines[len(lines)-1])
	}

	sets := make([]rawSet, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		v, err := literal.Parse(lines[i+1])
		if err != nil {
			return nil, errors.WithMessagef(err, "math set %q", lines[i])
		}
		sets = append(sets, rawSet{name: lines[i], value: v})
	}
	return sets, nil
}

// WriteTXT writes sets in the named layout read by the TXT format.
func WriteTXT(w io.Writer, sets []*mathset.MathSet) error {
	bw := bufio.NewWriter(w)
	for _, s := range sets {
		if _, err := fmt.Fprintf(bw, "%s\n%s\n", s.Name, mathset.Format(s.Atoms)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
