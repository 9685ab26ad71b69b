package literal

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the shape of a literal value.
type Kind uint8

const (
	KindNone Kind = iota
	KindList
	KindTuple
	KindSet
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindSet:
		return "set"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "none"
}

// Value is a node of a parsed literal: a container of other values, a number or a string.
// The zero Value has KindNone and stands for missing input.
type Value struct {
	Kind  Kind
	Items []Value
	Num   float64
	Str   string
}

func None() Value { return Value{} }

func List(items ...Value) Value { return Value{Kind: KindList, Items: nonNil(items)} }

func Tuple(items ...Value) Value { return Value{Kind: KindTuple, Items: nonNil(items)} }

func Set(items ...Value) Value { return Value{Kind: KindSet, Items: nonNil(items)} }

func Number(v float64) Value { return Value{Kind: KindNumber, Num: v} }

func String(s string) Value { return Value{Kind: KindString, Str: s} }

func nonNil(items []Value) []Value {
	if items == nil {
		return []Value{}
	}
	return items
}

// IsContainer reports whether v holds other values.
func (v Value) IsContainer() bool {
	return v.Kind == KindList || v.Kind == KindTuple || v.Kind == KindSet
}

// IsEmpty reports whether v carries no data: no value at all, an empty container or an empty string.
func (v Value) IsEmpty() bool {
	switch v.Kind {
	case KindNone:
		return true
	case KindList, KindTuple, KindSet:
		return len(v.Items) == 0
	case KindString:
		return v.Str == ""
	}
	return false
}

// String renders v back into literal syntax. Infinite numbers are written as -inf and +inf.
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.Kind {
	case KindNone:
		sb.WriteString("None")
	case KindNumber:
		sb.WriteString(FormatNumber(v.Num))
	case KindString:
		sb.WriteString(strconv.Quote(v.Str))
	case KindList:
		writeItems(sb, "[", "]", v.Items, false)
	case KindTuple:
		writeItems(sb, "(", ")", v.Items, len(v.Items) == 1)
	case KindSet:
		writeItems(sb, "{", "}", v.Items, false)
	}
}

func writeItems(sb *strings.Builder, open, close string, items []Value, trailingComma bool) {
	sb.WriteString(open)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		item.write(sb)
	}
	if trailingComma {
		sb.WriteString(",")
	}
	sb.WriteString(close)
}

// FormatNumber renders a float the way data files write it: integral values without a fractional
// part, infinities as -inf and +inf.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsNaN(f):
		return "nan"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
