// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "gopkg.in/check.v1"
	"tempera.dev/tempera/pkg/config"
)

func Test(t *testing.T) { TestingT(t) }

type ConfigSuite struct{}

var _ = Suite(&ConfigSuite{})

const sampleConfig = `
required_version = "0.1.0"
input_paths = ["templates", "static"]
output_path = "out"

[values]
name = "World"
count = 3
admin = true
`

func (s *ConfigSuite) TestDecode(c *C) {
	conf, err := config.NewConfigFromBytes([]byte(sampleConfig))
	c.Assert(err, IsNil)

	c.Check(conf.RequiredVersion, Equals, "0.1.0")
	c.Check(conf.InputPaths, DeepEquals, []string{"templates", "static"})
	c.Check(conf.OutputPath, Equals, "out")
	c.Check(conf.Values["name"], Equals, "World")
	c.Check(conf.Values["count"], Equals, int64(3))
	c.Check(conf.Values["admin"], Equals, true)
}

func (s *ConfigSuite) TestDecodeFile(c *C) {
	path := filepath.Join(c.MkDir(), config.DefaultFileName)
	err := os.WriteFile(path, []byte(sampleConfig), 0600)
	c.Assert(err, IsNil)

	conf, err := config.NewConfigFromFile(path)
	c.Assert(err, IsNil)
	c.Check(conf.OutputPath, Equals, "out")
}

func (s *ConfigSuite) TestUnknownKeysRejected(c *C) {
	_, err := config.NewConfigFromBytes([]byte(`output_dir = "out"`))
	c.Assert(err, ErrorMatches, `.*unknown keys: output_dir`)
}

func (s *ConfigSuite) TestCheckVersionSatisfied(c *C) {
	conf := &config.Config{RequiredVersion: ">= 0.1.0"}
	c.Check(conf.CheckVersion("0.2.0"), IsNil)
}

func (s *ConfigSuite) TestCheckVersionBareMeansAtLeast(c *C) {
	conf := &config.Config{RequiredVersion: "0.2.0"}
	c.Check(conf.CheckVersion("0.2.0"), IsNil)
	c.Check(conf.CheckVersion("0.1.0"), ErrorMatches,
		`tempera version 0\.1\.0 does not meet the required version 0\.2\.0`)
}

func (s *ConfigSuite) TestCheckVersionEmptyAllowsAll(c *C) {
	conf := &config.Config{}
	c.Check(conf.CheckVersion("0.0.1"), IsNil)
}

func (s *ConfigSuite) TestCheckVersionBadConstraint(c *C) {
	conf := &config.Config{RequiredVersion: ">= not.a.version"}
	c.Check(conf.CheckVersion("0.1.0"), ErrorMatches, `Parsing required_version.*`)
}
