package source

import (
	"github.com/clbanning/mxj"
	"github.com/pkg/errors"

	"github.com/ostafen/mathsets/literal"
	"github.com/ostafen/mathsets/util"
)

const (
	setTag   = "mathset"
	valueTag = "value"
	nameAttr = "-math_set_name"
)

// decodeXML reads <mathset math_set_name="..."><value>literal</value></mathset> elements at any
// depth. Documents holding bare <value> elements are accepted too.
func decodeXML(data []byte) ([]rawSet, error) {
	m, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, err
	}

	nodes, err := m.ValuesForKey(setTag)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return xmlValues(m)
	}

	sets := make([]rawSet, 0, len(nodes))
	for i, node := range nodes {
		name := defaultName(i)
		var text interface{}

		switch node := node.(type) {
		case map[string]interface{}:
			if n, ok := util.StringValue(node, nameAttr); ok && n != "" {
				name = n
			}
			text = node[valueTag]
		default:
			text = node
		}

		v, err := xmlLiteral(text)
		if err != nil {
			return nil, errors.WithMessagef(err, "math set %q", name)
		}
		sets = append(sets, rawSet{name: name, value: v})
	}
	return sets, nil
}

func xmlValues(m mxj.Map) ([]rawSet, error) {
	values, err := m.ValuesForKey(valueTag)
	if err != nil {
		return nil, err
	}

	sets := make([]rawSet, 0, len(values))
	for i, text := range values {
		v, err := xmlLiteral(text)
		if err != nil {
			return nil, errors.WithMessage(err, defaultName(i))
		}
		sets = append(sets, rawSet{name: defaultName(i), value: v})
	}
	return sets, nil
}

// xmlLiteral parses the text of a value element. A missing or empty element is an empty set.
func xmlLiteral(text interface{}) (literal.Value, error) {
	switch text := text.(type) {
	case nil:
		return literal.None(), nil
	case string:
		if text == "" {
			return literal.None(), nil
		}
		return literal.Parse(text)
	case map[string]interface{}:
		if s, ok := util.StringValue(text, "#text"); ok {
			return xmlLiteral(s)
		}
		return literal.None(), nil
	case []interface{}:
		return literal.None(), errors.Errorf("more than one %s element", valueTag)
	}
	return literal.None(), errors.Errorf("unexpected %s content %v", valueTag, text)
}
