package util

import (
	"math"
	"strconv"
	"strings"
)

func IsNumber(v interface{}) bool {
	switch v.(type) {
	case int, uint, uint8, uint16, uint32, uint64,
		int8, int16, int32, int64, float32, float64:
		return true
	default:
		return false
	}
}

// ToFloat64 converts any numeric value produced by a decoder to float64.
func ToFloat64(v interface{}) float64 {
	switch vType := v.(type) {
	case int:
		return float64(vType)
	case int8:
		return float64(vType)
	case int16:
		return float64(vType)
	case int32:
		return float64(vType)
	case int64:
		return float64(vType)
	case uint:
		return float64(vType)
	case uint8:
		return float64(vType)
	case uint16:
		return float64(vType)
	case uint32:
		return float64(vType)
	case uint64:
		return float64(vType)
	case float32:
		return float64(vType)
	case float64:
		return vType
	}
	panic("not a number")
}

// ParseFloat accepts numbers and their string forms, including the infinity words.
func ParseFloat(v interface{}) (float64, bool) {
	if IsNumber(v) {
		return ToFloat64(v), true
	}

	s, isString := v.(string)
	if !isString {
		return 0, false
	}

	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity", "+infinity":
		return math.Inf(1), true
	case "-inf", "-infinity":
		return math.Inf(-1), true
	}

	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
