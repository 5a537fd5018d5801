package main

import (
	"collection-sandbox/configs"
	"collection-sandbox/internal"
	"encoding/json"
	"errors"
	"github.com/alecthomas/kong"
	"io"
	"log/slog"
	"os"
)

type Arrays struct {
	Exercise string  `help:"The exercise file to run, defaults to exercise.toml" default:"exercise.toml" type:"path"`
	Seed     *uint64 `help:"Seed for regeneration, overrides the seed in the exercise file"`
}

func (a Arrays) Run(out io.Writer) error {
	config, err := loadExercise(a.Exercise)
	if err != nil {
		return err
	}

	if a.Seed != nil {
		if config.Arrays.Regenerate == nil {
			slog.Warn("seed given but the exercise does not regenerate integers", "seed", *a.Seed)
		} else {
			config.Arrays.Regenerate.Seed = a.Seed
		}
	}

	report, err := internal.RunArrayExercise(config.Arrays, internal.NewArrayBox())
	if err != nil {
		slog.Error("array exercise failed", "exercise", a.Exercise, "err", err)
		return err
	}

	return writeReport(out, report)
}

type Maps struct {
	Exercise string `help:"The exercise file to run, defaults to exercise.toml" default:"exercise.toml" type:"path"`
}

func (m Maps) Run(out io.Writer) error {
	config, err := loadExercise(m.Exercise)
	if err != nil {
		return err
	}

	report, err := internal.RunMapExercise(config.Maps, internal.NewMirrorMap())
	if err != nil {
		slog.Error("map exercise failed", "exercise", m.Exercise, "err", err)
		return err
	}

	return writeReport(out, report)
}

func loadExercise(path string) (*configs.ExerciseConfig, error) {
	config, err := configs.LoadExerciseConfigFromFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Error("failed to process exercise config - file could not be found", "path", path)
		} else {
			slog.Error("failed to process exercise config - error loading file", "path", path, "err", err)
		}
		return nil, err
	}
	return config, nil
}

func writeReport(out io.Writer, report any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

type CLI struct {
	Debug  bool   `help:"Enable debug mode - adds verbose logging"`
	Arrays Arrays `cmd:"" help:"Run the integer and string array exercise"`
	Maps   Maps   `cmd:"" help:"Run the mirror map exercise"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)))
	if cli.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
