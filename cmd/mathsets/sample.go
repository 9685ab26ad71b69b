package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ostafen/mathsets/config"
	"github.com/ostafen/mathsets/mathset"
	"github.com/ostafen/mathsets/source"
)

const (
	sampleConfigFile = "config.toml"
	sampleDataFile   = "data file.txt"
	sampleResult     = "script_result"
)

func sampleSets() []*mathset.MathSet {
	return []*mathset.MathSet{
		mathset.MustNew("math set 1", mathset.Range(math.Inf(-1), -10), mathset.Range(10, math.Inf(1))),
		mathset.MustNew("math set 2", mathset.Range(-77, 61)),
		mathset.MustNew("math set 3",
			mathset.Range(-89, -61), mathset.Range(-43, -12), mathset.Range(10, 27), mathset.Range(61, 72)),
	}
}

func (a App) sample(c *cli.Context) error {
	dir, err := filepath.Abs(c.String("dir"))
	if err != nil {
		return err
	}

	dataPath := filepath.Join(dir, sampleDataFile)
	if err := writeSampleData(dataPath); err != nil {
		return err
	}

	cfg := &config.Config{
		General: config.General{Mode: string(config.ModeAffiliation), Point: -1.0},
		Input:   config.Input{Format: string(source.TXT), Path: dataPath},
		Output:  config.Output{Format: "xml", Path: filepath.Join(dir, sampleResult)},
	}
	configPath := filepath.Join(dir, sampleConfigFile)
	if err := writeSampleConfig(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(a.outWriter, "Created configuration file %q and data file %q.\n", configPath, dataPath)
	return nil
}

func writeSampleData(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := source.WriteTXT(f, sampleSets()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSampleConfig(path string, cfg *config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cfg.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
