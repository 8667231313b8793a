package sliceutil

// IndexOf returns the index of the first element equal to value, or -1.
func IndexOf[T comparable](array []T, value T) int {
	for i, item := range array {
		if item == value {
			return i
		}
	}
	return -1
}

func Contains[T comparable](array []T, value T) bool {
	return IndexOf(array, value) >= 0
}
