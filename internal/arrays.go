package internal

import (
	"cmp"
	"collection-sandbox/util"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
)

// ArrayBox owns a sequence of integers and a sequence of strings. Mutations
// build a replacement slice and swap it in, so slices handed out earlier are
// never changed underneath the caller.
//
// An ArrayBox is not safe for concurrent use.
type ArrayBox struct {
	integers []int
	strings  []string
	rng      *rand.Rand
}

func NewArrayBox() *ArrayBox {
	return &ArrayBox{
		integers: []int{},
		strings:  []string{},
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeededArrayBox returns a box whose Regenerate output is reproducible.
func NewSeededArrayBox(seed uint64) *ArrayBox {
	box := NewArrayBox()
	box.Reseed(seed)
	return box
}

func (b *ArrayBox) Reseed(seed uint64) {
	b.rng = rand.New(rand.NewPCG(seed, seed))
}

func (b *ArrayBox) Integers() []int {
	return slices.Clone(b.integers)
}

func (b *ArrayBox) Strings() []string {
	return slices.Clone(b.strings)
}

func (b *ArrayBox) IntegerCount() int {
	return len(b.integers)
}

func (b *ArrayBox) StringCount() int {
	return len(b.strings)
}

func (b *ArrayBox) AppendInteger(v int) {
	next := make([]int, len(b.integers)+1)
	copy(next, b.integers)
	next[len(b.integers)] = v
	b.integers = next
}

func (b *ArrayBox) AppendString(s string) {
	next := make([]string, len(b.strings)+1)
	copy(next, b.strings)
	next[len(b.strings)] = s
	b.strings = next
}

// RemoveInteger drops every occurrence of v.
func (b *ArrayBox) RemoveInteger(v int) {
	b.integers = util.Filter(b.integers, func(i int) bool { return i != v })
}

// RemoveString drops every string equal to s ignoring case.
func (b *ArrayBox) RemoveString(s string) {
	b.strings = util.Filter(b.strings, func(c string) bool { return !strings.EqualFold(c, s) })
}

// InsertInteger places v at pos, clamped to [0, IntegerCount()].
func (b *ArrayBox) InsertInteger(v int, pos int) {
	pos = max(0, min(pos, len(b.integers)))

	next := make([]int, len(b.integers)+1)
	copy(next, b.integers[:pos])
	next[pos] = v
	copy(next[pos+1:], b.integers[pos:])
	b.integers = next
}

// RemoveIntegerAt removes the integer at pos. Positions outside the sequence
// are ignored.
func (b *ArrayBox) RemoveIntegerAt(pos int) {
	if pos < 0 || pos >= len(b.integers) {
		return
	}

	next := make([]int, len(b.integers)-1)
	copy(next, b.integers[:pos])
	copy(next[pos:], b.integers[pos+1:])
	b.integers = next
}

// ResetIntegers replaces the integers with the floor of each value.
func (b *ArrayBox) ResetIntegers(values []float64) error {
	next, err := util.MapErr(values, Floor)
	if err != nil {
		return fmt.Errorf("failed to reset integers: %w", err)
	}
	b.integers = next
	return nil
}

// ResetStrings replaces the strings with the text form of each value.
func (b *ArrayBox) ResetStrings(values []any) error {
	next, err := util.MapErr(values, Stringify)
	if err != nil {
		return fmt.Errorf("failed to reset strings: %w", err)
	}
	b.strings = next
	return nil
}

// MakePositive negates every negative integer. math.MinInt has no positive
// counterpart and is left as is.
func (b *ArrayBox) MakePositive() {
	b.integers = util.Map(b.integers, func(i int) int {
		if i < 0 && i != math.MinInt {
			return -i
		}
		return i
	})
}

func (b *ArrayBox) SortIntegers() {
	next := slices.Clone(b.integers)
	slices.Sort(next)
	b.integers = next
}

// SortStrings orders the strings ignoring case. Strings that only differ in
// case keep their relative order.
func (b *ArrayBox) SortStrings() {
	next := slices.Clone(b.strings)
	slices.SortStableFunc(next, compareFold)
	b.strings = next
}

func compareFold(a, b string) int {
	return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
}

func (b *ArrayBox) CountInteger(v int) int {
	return util.Count(b.integers, func(i int) bool { return i == v })
}

// CountString counts the strings equal to s ignoring case.
func (b *ArrayBox) CountString(s string) int {
	return util.Count(b.strings, func(c string) bool { return strings.EqualFold(c, s) })
}

// FindInteger returns every index holding v. The result is empty, not nil,
// when v is absent.
func (b *ArrayBox) FindInteger(v int) []int {
	return util.Indexes(b.integers, func(i int) bool { return i == v })
}

// IntegerRange returns [min, max], or an empty slice when there are no
// integers.
func (b *ArrayBox) IntegerRange() []int {
	if len(b.integers) == 0 {
		return []int{}
	}
	return []int{slices.Min(b.integers), slices.Max(b.integers)}
}

func (b *ArrayBox) Histogram() map[int]int {
	histogram := make(map[int]int)
	for _, i := range b.integers {
		histogram[i]++
	}
	return histogram
}

// RepeatedCount returns how many distinct integers occur more than once.
func (b *ArrayBox) RepeatedCount() int {
	count := 0
	for _, occurrences := range b.Histogram() {
		if occurrences > 1 {
			count++
		}
	}
	return count
}

// Equal reports whether other holds the same integers in the same order.
func (b *ArrayBox) Equal(other []int) bool {
	return slices.Equal(b.integers, other)
}

// SameValues reports whether other holds the same integers, with the same
// multiplicities, in any order.
func (b *ArrayBox) SameValues(other []int) bool {
	if len(b.integers) != len(other) {
		return false
	}
	mine := slices.Clone(b.integers)
	theirs := slices.Clone(other)
	slices.Sort(mine)
	slices.Sort(theirs)
	return slices.Equal(mine, theirs)
}

// Regenerate replaces the integers with count values drawn uniformly from
// [min, max].
func (b *ArrayBox) Regenerate(count int, min int, max int) error {
	if count < 0 {
		return fmt.Errorf("cannot generate %d integers: %w", count, ErrInvalidArgument)
	}
	if min > max {
		return fmt.Errorf("min %d is greater than max %d: %w", min, max, ErrInvalidRange)
	}

	span := uint64(max) - uint64(min)
	next := make([]int, count)
	for i := range next {
		var offset uint64
		if span == math.MaxUint64 {
			offset = b.rng.Uint64()
		} else {
			offset = b.rng.Uint64N(span + 1)
		}
		next[i] = int(uint64(min) + offset)
	}
	b.integers = next
	return nil
}
