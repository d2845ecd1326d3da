package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/superellipse"
)

// config is the contents of a configuration file. Fields missing from the
// file keep their defaults.
//
//	text = "OQ0"
//	workers = 4
//
//	[params]
//	tension = 13.0
//	scale = "quadratic"
//	distribution = "smooth"
//
//	[solver]
//	max_iterations = 100
type config struct {
	Font    string `toml:"font"`
	Text    string `toml:"text"`
	Output  string `toml:"output"`
	Workers int    `toml:"workers"`
	// Precision is the number of decimals in SVG output, 0 for exact.
	Precision int `toml:"precision"`

	Params superellipse.Params        `toml:"params"`
	Solver superellipse.SolverOptions `toml:"solver"`
}

func defaultConfig() config {
	return config{
		Text:      "O",
		Output:    "-",
		Precision: 2,
		Params:    superellipse.DefaultParams(),
		Solver:    superellipse.DefaultSolverOptions(),
	}
}

func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}
