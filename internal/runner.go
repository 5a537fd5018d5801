package internal

import (
	"collection-sandbox/configs"
	"fmt"
	"log/slog"
)

type ArrayReport struct {
	Integers      []int       `json:"integers"`
	Strings       []string    `json:"strings"`
	Range         []int       `json:"range"`
	Histogram     map[int]int `json:"histogram"`
	Repeated      int         `json:"repeated"`
	Positions     []int       `json:"positions,omitempty"`
	StringMatches *int        `json:"stringMatches,omitempty"`
	Equal         *bool       `json:"equal,omitempty"`
	SameValues    *bool       `json:"sameValues,omitempty"`
}

type MapReport struct {
	Entries        map[string]string `json:"entries"`
	SortedValues   []string          `json:"sortedValues"`
	KeysDescending []string          `json:"keysDescending"`
	SmallestKey    *string           `json:"smallestKey"`
	LargestValue   *string           `json:"largestValue"`
	DistinctValues int               `json:"distinctValues"`
	ContainsAll    bool              `json:"containsAll"`
}

// RunArrayExercise applies conf to box. Resets come first, then regeneration,
// then additions, removals and finally the whole-sequence transforms, so the
// report reflects every step.
func RunArrayExercise(conf configs.ArrayExercise, box *ArrayBox) (*ArrayReport, error) {
	if conf.Integers != nil {
		if err := box.ResetIntegers(conf.Integers); err != nil {
			return nil, err
		}
	}
	if conf.Strings != nil {
		if err := box.ResetStrings(conf.Strings); err != nil {
			return nil, err
		}
	}

	if regen := conf.Regenerate; regen != nil {
		if regen.Seed != nil {
			box.Reseed(*regen.Seed)
		}
		if err := box.Regenerate(regen.Count, regen.Min, regen.Max); err != nil {
			return nil, fmt.Errorf("failed to regenerate integers: %w", err)
		}
		slog.Debug("regenerated integers", "count", regen.Count, "min", regen.Min, "max", regen.Max)
	}

	for _, v := range conf.Append {
		box.AppendInteger(v)
	}
	for _, s := range conf.AppendStrings {
		box.AppendString(s)
	}
	for _, ins := range conf.Insert {
		box.InsertInteger(ins.Value, ins.Position)
	}
	for _, pos := range conf.RemoveAt {
		box.RemoveIntegerAt(pos)
	}
	for _, v := range conf.Remove {
		box.RemoveInteger(v)
	}
	for _, s := range conf.RemoveStrings {
		box.RemoveString(s)
	}

	if conf.Positive {
		box.MakePositive()
	}
	if conf.Sort {
		box.SortIntegers()
		box.SortStrings()
	}

	report := &ArrayReport{
		Integers:  box.Integers(),
		Strings:   box.Strings(),
		Range:     box.IntegerRange(),
		Histogram: box.Histogram(),
		Repeated:  box.RepeatedCount(),
	}
	if conf.Find != nil {
		report.Positions = box.FindInteger(*conf.Find)
	}
	if conf.CountString != nil {
		matches := box.CountString(*conf.CountString)
		report.StringMatches = &matches
	}
	if conf.Compare != nil {
		equal := box.Equal(conf.Compare)
		same := box.SameValues(conf.Compare)
		report.Equal = &equal
		report.SameValues = &same
	}

	slog.Info("array exercise complete", "integers", len(report.Integers), "strings", len(report.Strings))
	return report, nil
}

// RunMapExercise applies conf to m in the order reset, add, remove by key,
// remove by value, upper-case keys.
func RunMapExercise(conf configs.MapExercise, m *MirrorMap) (*MapReport, error) {
	if conf.Values != nil {
		if err := m.Reset(conf.Values); err != nil {
			return nil, err
		}
	}

	for _, s := range conf.Add {
		m.Add(s)
	}
	for _, k := range conf.RemoveKeys {
		m.RemoveKey(k)
	}
	for _, v := range conf.RemoveValues {
		m.RemoveValue(v)
	}
	if conf.UppercaseKeys {
		before := m.Len()
		m.UppercaseKeys()
		if lost := before - m.Len(); lost > 0 {
			slog.Warn("upper-casing keys dropped colliding entries", "lost", lost)
		}
	}

	report := &MapReport{
		Entries:        m.Entries(),
		SortedValues:   m.SortedValues(),
		KeysDescending: m.KeysDescending(),
		DistinctValues: m.DistinctValues(),
		ContainsAll:    m.ContainsValues(conf.Contains),
	}
	if key, ok := m.SmallestKey(); ok {
		report.SmallestKey = &key
	}
	if value, ok := m.LargestValue(); ok {
		report.LargestValue = &value
	}

	slog.Info("map exercise complete", "entries", len(report.Entries))
	return report, nil
}
