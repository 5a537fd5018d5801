package configs

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"os"
)

type RegenerateProperties struct {
	Count int     `toml:"count" json:"count"`
	Min   int     `toml:"min" json:"min"`
	Max   int     `toml:"max" json:"max"`
	Seed  *uint64 `toml:"seed" json:"seed,omitempty"`
}

type InsertProperties struct {
	Value    int `toml:"value" json:"value"`
	Position int `toml:"position" json:"position"`
}

type ArrayExercise struct {
	Integers      []float64             `toml:"integers"`
	Strings       []interface{}         `toml:"strings"`
	Append        []int                 `toml:"append"`
	AppendStrings []string              `toml:"append_strings"`
	Insert        []InsertProperties    `toml:"insert"`
	Remove        []int                 `toml:"remove"`
	RemoveAt      []int                 `toml:"remove_at"`
	RemoveStrings []string              `toml:"remove_strings"`
	Positive      bool                  `toml:"positive"`
	Sort          bool                  `toml:"sort"`
	Find          *int                  `toml:"find"`
	CountString   *string               `toml:"count_string"`
	Compare       []int                 `toml:"compare"`
	Regenerate    *RegenerateProperties `toml:"regenerate"`
}

type MapExercise struct {
	Values        []interface{} `toml:"values"`
	Add           []string      `toml:"add"`
	RemoveKeys    []string      `toml:"remove_keys"`
	RemoveValues  []string      `toml:"remove_values"`
	UppercaseKeys bool          `toml:"uppercase_keys"`
	Contains      []string      `toml:"contains"`
}

type ExerciseConfig struct {
	Arrays ArrayExercise `toml:"arrays"`
	Maps   MapExercise   `toml:"maps"`
}

func LoadExerciseConfigFromFile(path string) (*ExerciseConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exercise config: %w", err)
	}

	return LoadExerciseConfigFromString(string(content))
}

func LoadExerciseConfigFromString(content string) (*ExerciseConfig, error) {
	var conf ExerciseConfig
	meta, err := toml.Decode(content, &conf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse toml config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in exercise config: %v", undecoded)
	}

	return &conf, nil
}
