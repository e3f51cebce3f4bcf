// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads project configuration from a tempera.toml file.
// Everything in it can also be given on the command line; flags win
// over file values.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	goversion "github.com/hashicorp/go-version"
)

const DefaultFileName = "tempera.toml"

type Config struct {
	// RequiredVersion pins the minimum tempera version this project
	// expects, eg ">= 0.1.0" or just "0.1.0".
	RequiredVersion string `toml:"required_version"`

	InputPaths []string `toml:"input_paths"`
	OutputPath string   `toml:"output_path"`

	Values map[string]interface{} `toml:"values"`
}

func NewConfigFromFile(path string) (*Config, error) {
	var conf Config

	meta, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, fmt.Errorf("Parsing config '%s': %s", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("Parsing config '%s': unknown keys: %s",
			path, strings.Join(keys, ", "))
	}

	return &conf, nil
}

func NewConfigFromBytes(data []byte) (*Config, error) {
	var conf Config

	meta, err := toml.Decode(string(data), &conf)
	if err != nil {
		return nil, fmt.Errorf("Parsing config: %s", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("Parsing config: unknown keys: %s", strings.Join(keys, ", "))
	}

	return &conf, nil
}

// CheckVersion verifies the running tempera version satisfies
// required_version. A bare version means "at least that version".
func (c *Config) CheckVersion(currentVersion string) error {
	if c.RequiredVersion == "" {
		return nil
	}

	constraintStr := c.RequiredVersion
	if !strings.ContainsAny(constraintStr, "<>=!~") {
		constraintStr = ">= " + constraintStr
	}

	constraint, err := goversion.NewConstraint(constraintStr)
	if err != nil {
		return fmt.Errorf("Parsing required_version '%s': %s", c.RequiredVersion, err)
	}

	current, err := goversion.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("Parsing version '%s': %s", currentVersion, err)
	}

	if !constraint.Check(current) {
		return fmt.Errorf("tempera version %s does not meet the required version %s",
			currentVersion, c.RequiredVersion)
	}

	return nil
}
