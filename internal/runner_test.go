package internal

import (
	"collection-sandbox/configs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunArrayExercise(t *testing.T) {
	find := 3
	word := "B"
	conf := configs.ArrayExercise{
		Integers:      []float64{5, -2.5, 9.9, 3},
		Strings:       []interface{}{"b", int64(3), "B", "a"},
		Append:        []int{3, -4},
		AppendStrings: []string{"c"},
		Insert:        []configs.InsertProperties{{Value: 100, Position: 0}},
		RemoveAt:      []int{0, 50},
		Remove:        []int{9},
		Positive:      true,
		Sort:          true,
		Find:          &find,
		CountString:   &word,
		Compare:       []int{3, 3, 3, 4, 5},
	}

	report, err := RunArrayExercise(conf, NewArrayBox())
	require.NoError(t, err)

	want := &ArrayReport{
		Integers:      []int{3, 3, 3, 4, 5},
		Strings:       []string{"3", "a", "b", "B", "c"},
		Range:         []int{3, 5},
		Histogram:     map[int]int{3: 3, 4: 1, 5: 1},
		Repeated:      1,
		Positions:     []int{0, 1, 2},
		StringMatches: intPtr(2),
		Equal:         boolPtr(true),
		SameValues:    boolPtr(true),
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("RunArrayExercise mismatch (-want +got):\n%s", diff)
	}
}

func TestRunArrayExercise_Regenerate(t *testing.T) {
	seed := uint64(9)
	conf := configs.ArrayExercise{
		Regenerate: &configs.RegenerateProperties{Count: 6, Min: 1, Max: 6, Seed: &seed},
	}

	first, err := RunArrayExercise(conf, NewArrayBox())
	require.NoError(t, err)
	second, err := RunArrayExercise(conf, NewArrayBox())
	require.NoError(t, err)

	assert.Len(t, first.Integers, 6)
	assert.Equal(t, first.Integers, second.Integers)
}

func TestRunArrayExercise_Errors(t *testing.T) {
	_, err := RunArrayExercise(configs.ArrayExercise{
		Regenerate: &configs.RegenerateProperties{Count: 1, Min: 2, Max: 1},
	}, NewArrayBox())
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = RunArrayExercise(configs.ArrayExercise{
		Strings: []interface{}{nil},
	}, NewArrayBox())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRunMapExercise(t *testing.T) {
	conf := configs.MapExercise{
		Values:        []interface{}{"abc", int64(12), 2.5},
		Add:           []string{"xyz", "hello"},
		RemoveKeys:    []string{"zyx"},
		RemoveValues:  []string{"abc"},
		UppercaseKeys: true,
		Contains:      []string{"12", "hello"},
	}

	report, err := RunMapExercise(conf, NewMirrorMap())
	require.NoError(t, err)

	want := &MapReport{
		Entries:        map[string]string{"21": "12", "5.2": "2.5", "OLLEH": "hello"},
		SortedValues:   []string{"12", "2.5", "hello"},
		KeysDescending: []string{"OLLEH", "5.2", "21"},
		SmallestKey:    strPtr("21"),
		LargestValue:   strPtr("hello"),
		DistinctValues: 3,
		ContainsAll:    true,
	}
	if diff := cmp.Diff(want, report); diff != "" {
		t.Errorf("RunMapExercise mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMapExercise_Empty(t *testing.T) {
	report, err := RunMapExercise(configs.MapExercise{}, NewMirrorMap())
	require.NoError(t, err)
	assert.Nil(t, report.SmallestKey)
	assert.Nil(t, report.LargestValue)
	assert.True(t, report.ContainsAll)
	assert.Empty(t, report.Entries)
}

func TestRunMapExercise_ResetError(t *testing.T) {
	_, err := RunMapExercise(configs.MapExercise{Values: []interface{}{"a", nil}}, NewMirrorMap())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
