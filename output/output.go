// Package output writes analyser results to files and result stores.
package output

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/ostafen/mathsets/mathset"
)

var (
	ErrOutput        = errors.New("the output could not be generated")
	ErrUnknownFormat = errors.New("unknown output format")
)

type Format string

const (
	JSON    Format = "json"
	TXT     Format = "txt"
	XML     Format = "xml"
	MSGPACK Format = "msgpack"
	BBOLT   Format = "bbolt"
	BADGER  Format = "badger"
)

var Formats = []Format{JSON, TXT, XML, MSGPACK, BBOLT, BADGER}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// IsStore reports whether results of this format go to a result store instead of a file.
func (f Format) IsStore() bool {
	return f == BBOLT || f == BADGER
}

const (
	TitleIntersection = "The intersection of initial math sets"
	TitleContained    = "The predetermined point belongs to the intersection of initial math sets"
	TitleNearest      = "The nearest endpoint(s) to the predetermined point"
)

// Result is what a run produces. Affiliation is nil for intersection-only runs.
type Result struct {
	Title       string
	Mode        string
	Point       float64
	Atoms       []mathset.Atom
	Affiliation *mathset.Affiliation
}

func NewIntersection(mode string, atoms []mathset.Atom) Result {
	return Result{Title: TitleIntersection, Mode: mode, Atoms: atoms}
}

func NewAffiliation(mode string, point float64, atoms []mathset.Atom, aff mathset.Affiliation) Result {
	title := TitleNearest
	if aff.Contained {
		title = TitleContained
	}
	return Result{Title: title, Mode: mode, Point: point, Atoms: atoms, Affiliation: &aff}
}

// Data is the literal rendering of the result, e.g. [(-77, -61.07), (10.41, 22.2)] or [-12, 10].
func (r Result) Data() string {
	if r.Affiliation != nil {
		return r.Affiliation.String()
	}
	return mathset.Format(r.Atoms)
}

// Write is a shorthand for NewWriter(nil).Write.
func Write(ctx context.Context, format Format, path string, res Result) (string, error) {
	return NewWriter(nil).Write(ctx, format, path, res)
}
