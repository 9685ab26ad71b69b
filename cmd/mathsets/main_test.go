package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ostafen/mathsets/config"
	"github.com/ostafen/mathsets/output"
)

func init() {
	color.NoColor = true
	osExiter = func(code int) {
		panic(errors.Errorf("exited with code: %d", code))
	}
	osErr = &bytes.Buffer{}
}

type testApp struct {
	out, err bytes.Buffer
}

func (a *testApp) run(args ...string) error {
	return run(append([]string{appName}, args...), &a.out, &a.err)
}

func TestMainExitsOnError(t *testing.T) {
	require.PanicsWithError(t, "exited with code: 1", func() {
		main()
	})
}

func TestSampleThenRun(t *testing.T) {
	dir := t.TempDir()
	app := &testApp{}

	require.NoError(t, app.run("sample", "--dir", dir))
	require.Contains(t, app.out.String(), "Created configuration file")
	require.FileExists(t, filepath.Join(dir, sampleConfigFile))
	require.FileExists(t, filepath.Join(dir, sampleDataFile))

	app.out.Reset()
	require.NoError(t, app.run("run", "--config", filepath.Join(dir, sampleConfigFile), "--print"))

	resultPath := filepath.Join(dir, sampleResult+".xml")
	require.Contains(t, app.out.String(), "The result is written to "+resultPath)
	require.Contains(t, app.out.String(), output.TitleNearest)
	require.Contains(t, app.out.String(), "[-12, 10]")

	data, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "<title>"+output.TitleNearest+"</title>")
	require.Contains(t, string(data), "<data>[-12, 10]</data>")

	// a second run keeps the first result
	require.NoError(t, app.run("run", "--config", filepath.Join(dir, sampleConfigFile)))
	require.FileExists(t, filepath.Join(dir, sampleResult+"(1).xml"))
	require.Contains(t, app.err.String(), "run completed")
}

func TestRunErrors(t *testing.T) {
	app := &testApp{}

	err := app.run("run", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.True(t, errors.Is(err, config.ErrConfigNotFound))

	err = app.run("run", "extra")
	require.EqualError(t, err, "unexpected arguments used without flags: extra")
}

func TestHistory(t *testing.T) {
	dir := t.TempDir()
	app := &testApp{}
	require.NoError(t, app.run("sample", "--dir", dir))

	storePath := filepath.Join(dir, "results.db")
	cfg, err := config.Load(filepath.Join(dir, sampleConfigFile))
	require.NoError(t, err)
	cfg.Output = config.Output{Format: "bbolt", Path: storePath}

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	configPath := filepath.Join(dir, "store.toml")
	require.NoError(t, os.WriteFile(configPath, buf.Bytes(), 0644))

	require.NoError(t, app.run("run", "--config", configPath))
	require.NoError(t, app.run("run", "--config", configPath))

	app.out.Reset()
	require.NoError(t, app.run("history", "--store", storePath, "--limit", "1"))
	require.Contains(t, app.out.String(), "[-12, 10]")
	require.Contains(t, app.out.String(), "AFFL")
	require.Equal(t, 1, strings.Count(app.out.String(), "AFFL"))

	err = app.run("history", "--store", storePath, "--kind", "json")
	require.Error(t, err)
}

func TestHistoryEmpty(t *testing.T) {
	app := &testApp{}
	require.NoError(t, app.run("history", "--store", filepath.Join(t.TempDir(), "results.db")))
	require.Equal(t, "No results stored.\n", app.out.String())
}
