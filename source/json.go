package source

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/ostafen/mathsets/literal"
)

// decodeJSON accepts an object of named sets, in document order, or an array of unnamed ones.
func decodeJSON(data []byte) ([]rawSet, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("malformed JSON document")
	}

	root := gjson.ParseBytes(data)
	sets := make([]rawSet, 0)

	var err error
	switch {
	case root.IsObject():
		root.ForEach(func(key, value gjson.Result) bool {
			var v literal.Value
			if v, err = jsonSet(value); err != nil {
				err = errors.WithMessagef(err, "math set %q", key.String())
				return false
			}
			sets = append(sets, rawSet{name: key.String(), value: v})
			return true
		})
	case root.IsArray():
		for i, value := range root.Array() {
			var v literal.Value
			if v, err = jsonSet(value); err != nil {
				return nil, errors.WithMessage(err, defaultName(i))
			}
			sets = append(sets, rawSet{name: defaultName(i), value: v})
		}
	default:
		return nil, errors.New("expected an object or an array of math sets")
	}
	return sets, err
}

// jsonSet converts the value of a set: a literal string, or native JSON arrays.
func jsonSet(value gjson.Result) (literal.Value, error) {
	if value.Type == gjson.String {
		return literal.Parse(value.Str)
	}
	if value.IsArray() {
		return literal.List(jsonItems(value)...), nil
	}
	return jsonValue(value), nil
}

func jsonItems(value gjson.Result) []literal.Value {
	items := make([]literal.Value, 0)
	value.ForEach(func(_, item gjson.Result) bool {
		items = append(items, jsonValue(item))
		return true
	})
	return items
}

// jsonValue maps JSON to literals below the top level, where arrays are tuples.
func jsonValue(value gjson.Result) literal.Value {
	switch value.Type {
	case gjson.Null:
		return literal.None()
	case gjson.Number:
		return literal.Number(value.Num)
	case gjson.String:
		return literal.String(value.Str)
	case gjson.JSON:
		if value.IsArray() {
			return literal.Tuple(jsonItems(value)...)
		}
		return literal.Set(jsonItems(value)...)
	}
	return literal.String(value.Raw)
}
