package util

// PtrInt converts an int to *int.
func PtrInt(i int) *int {
	return &i
}
