package util

func Map[I any, O any](in []I, translator func(I) O) []O {
	result := make([]O, len(in))
	for i, v := range in {
		result[i] = translator(v)
	}
	return result
}

// MapErr is Map for translators that can fail. Nothing is returned unless
// every element translated.
func MapErr[I any, O any](in []I, translator func(I) (O, error)) ([]O, error) {
	result := make([]O, len(in))
	for i, v := range in {
		o, err := translator(v)
		if err != nil {
			return nil, err
		}
		result[i] = o
	}
	return result, nil
}

func Filter[I any](in []I, predicate func(I) bool) []I {
	result := make([]I, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

func Count[I any](in []I, predicate func(I) bool) int {
	count := 0
	for _, v := range in {
		if predicate(v) {
			count++
		}
	}
	return count
}

// Indexes returns the positions of every element matching predicate, in order.
func Indexes[I any](in []I, predicate func(I) bool) []int {
	result := make([]int, 0)
	for i, v := range in {
		if predicate(v) {
			result = append(result, i)
		}
	}
	return result
}

func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
