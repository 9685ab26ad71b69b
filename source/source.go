// Package source reads math sets from data files.
package source

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ostafen/mathsets/literal"
	"github.com/ostafen/mathsets/mathset"
)

var (
	ErrDataSource    = errors.New("failed to get data from the source")
	ErrUnknownFormat = errors.New("unknown data format")
)

type Format string

const (
	JSON    Format = "JSON"
	TXT     Format = "TXT"
	XML     Format = "XML"
	MSGPACK Format = "MSGPACK"
)

var Formats = []Format{JSON, TXT, XML, MSGPACK}

// ParseFormat matches s against the known formats, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Ext is the file extension of the format, without the dot.
func (f Format) Ext() string {
	return strings.ToLower(string(f))
}

// rawSet is a named math set before validation.
type rawSet struct {
	name  string
	value literal.Value
}

func defaultName(i int) string {
	return "math set " + strconv.Itoa(i+1)
}

type decoder func(data []byte) ([]rawSet, error)

var decoders = map[Format]decoder{
	JSON:    decodeJSON,
	TXT:     decodeTXT,
	XML:     decodeXML,
	MSGPACK: decodeMsgpack,
}

// Read loads and validates the math sets stored at path.
func Read(ctx context.Context, format Format, path string) ([]*mathset.MathSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDataSource, "%s: %v", path, err)
	}

	sets, err := Decode(ctx, format, data)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return sets, nil
}

// Decode parses data in the given format and validates every set. When several sets are
// invalid, the error of the first one in document order is returned.
func Decode(ctx context.Context, format Format, data []byte) ([]*mathset.MathSet, error) {
	decode, ok := decoders[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	raws, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(ErrDataSource, "%s: %v", format, err)
	}
	if len(raws) == 0 {
		return nil, errors.Wrapf(ErrDataSource, "%s: no math sets found", format)
	}
	return build(ctx, raws)
}

func build(ctx context.Context, raws []rawSet) ([]*mathset.MathSet, error) {
	sets := make([]*mathset.MathSet, len(raws))
	errs := make([]error, len(raws))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range raws {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sets[i], errs[i] = mathset.FromLiteral(raws[i].name, raws[i].value)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return sets, nil
}
