package utils

// SafeDeref safely dereferences a string pointer and returns empty string if nil
func SafeDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NonEmpty reports whether the pointer holds a non-empty string
func NonEmpty(s *string) bool {
	return s != nil && *s != ""
}
