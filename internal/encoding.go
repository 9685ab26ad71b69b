package internal

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/ostafen/mathsets/mathset"
)

// Atom is the encoded form of a mathset.Atom. Infinite bounds are stored as ±Inf.
type Atom struct {
	Interval bool    `msgpack:"interval"`
	Start    float64 `msgpack:"start"`
	End      float64 `msgpack:"end"`
}

func EncodeAtoms(atoms []mathset.Atom) []Atom {
	encoded := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		encoded = append(encoded, Atom{
			Interval: a.IsInterval(),
			Start:    a.Start().Float(),
			End:      a.End().Float(),
		})
	}
	return encoded
}

func DecodeAtoms(encoded []Atom) []mathset.Atom {
	atoms := make([]mathset.Atom, 0, len(encoded))
	for _, a := range encoded {
		if a.Interval {
			atoms = append(atoms, mathset.Range(a.Start, a.End))
		} else {
			atoms = append(atoms, mathset.Point(a.Start))
		}
	}
	return atoms
}

func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Decode(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
