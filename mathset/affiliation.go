package mathset

// Affiliation is the relation of a query point to an intersection. When Contained is set,
// Values holds the point itself; otherwise it holds the one or two nearest boundaries, ascending.
type Affiliation struct {
	Contained bool
	Values    []float64
}

func (a Affiliation) String() string {
	atoms := make([]Atom, 0, len(a.Values))
	for _, v := range a.Values {
		atoms = append(atoms, Point(v))
	}
	return Format(atoms)
}
