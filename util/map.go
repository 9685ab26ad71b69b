package util

// StringValue returns the string stored under key, if any.
func StringValue(m map[string]interface{}, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}
