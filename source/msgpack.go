package source

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ostafen/mathsets/internal"
	"github.com/ostafen/mathsets/literal"
	"github.com/ostafen/mathsets/mathset"
	"github.com/ostafen/mathsets/util"
)

// Set is the MSGPACK record of a math set. Ranges is a literal string or an array of
// numbers and [start, end] pairs.
type Set struct {
	Name   string      `msgpack:"name"`
	Ranges interface{} `msgpack:"ranges"`
}

func decodeMsgpack(data []byte) ([]rawSet, error) {
	var records []Set
	if err := internal.Decode(data, &records); err != nil {
		return nil, err
	}

	sets := make([]rawSet, 0, len(records))
	for i, rec := range records {
		name := rec.Name
		if name == "" {
			name = defaultName(i)
		}

		v, err := nativeSet(rec.Ranges)
		if err != nil {
			return nil, errors.WithMessagef(err, "math set %q", name)
		}
		sets = append(sets, rawSet{name: name, value: v})
	}
	return sets, nil
}

func nativeSet(v interface{}) (literal.Value, error) {
	switch v := v.(type) {
	case string:
		return literal.Parse(v)
	case []interface{}:
		return literal.List(nativeItems(v)...), nil
	}
	return nativeValue(v), nil
}

func nativeItems(items []interface{}) []literal.Value {
	values := make([]literal.Value, 0, len(items))
	for _, item := range items {
		values = append(values, nativeValue(item))
	}
	return values
}

func nativeValue(v interface{}) literal.Value {
	if util.IsNumber(v) {
		return literal.Number(util.ToFloat64(v))
	}

	switch v := v.(type) {
	case nil:
		return literal.None()
	case string:
		return literal.String(v)
	case []interface{}:
		return literal.Tuple(nativeItems(v)...)
	}
	return literal.String(fmt.Sprint(v))
}

// EncodeMsgpack encodes sets in the MSGPACK format, ranges as literal strings.
func EncodeMsgpack(sets []*mathset.MathSet) ([]byte, error) {
	records := make([]Set, 0, len(sets))
	for _, s := range sets {
		records = append(records, Set{Name: s.Name, Ranges: mathset.Format(s.Atoms)})
	}
	return internal.Encode(records)
}
