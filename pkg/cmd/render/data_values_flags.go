// Copyright 2026 Tempera Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type DataValuesFlags struct {
	KVs     []string
	FileKVs []string

	Inspect bool
}

func (s *DataValuesFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.KVs, "data-value", "v", nil,
		"Set specific data value to given value, as string (format: key=value) (can be specified multiple times)")
	cmd.Flags().StringArrayVar(&s.FileKVs, "data-value-file", nil,
		"Set specific data value to given file contents, as string (format: key=/file/path) (can be specified multiple times)")
	cmd.Flags().BoolVar(&s.Inspect, "data-values-inspect", false, "Inspect data values")
}

// Values merges flag-provided data values over the given base set
// (typically values from tempera.toml). Flags win.
func (s *DataValuesFlags) Values(base map[string]interface{}) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	for k, v := range base {
		result[k] = v
	}

	for _, kv := range s.KVs {
		name, val, err := splitKV(kv, "data-value")
		if err != nil {
			return nil, err
		}
		result[name] = val
	}

	for _, kv := range s.FileKVs {
		name, path, err := splitKV(kv, "data-value-file")
		if err != nil {
			return nil, err
		}
		contents, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("Reading data value file '%s': %s", path, err)
		}
		result[name] = string(contents)
	}

	return result, nil
}

func splitKV(kv, flagName string) (string, string, error) {
	pieces := strings.SplitN(kv, "=", 2)
	if len(pieces) != 2 || len(pieces[0]) == 0 {
		return "", "", fmt.Errorf("Expected '%s' to be in key=value format (%s)", kv, flagName)
	}
	return pieces[0], pieces[1], nil
}
