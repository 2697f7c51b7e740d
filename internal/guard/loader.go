// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadSuite reads a check suite from a YAML file and validates it against the
// suite schema. The built-in DefaultSuite does not pass through here.
func LoadSuite(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, fmt.Errorf("failed to read suite file: %w", err)
	}
	suite, err := ParseSuite(data)
	if err != nil {
		return Suite{}, fmt.Errorf("suite %s: %w", path, err)
	}
	return suite, nil
}

// ParseSuite unmarshals and validates a YAML check suite.
func ParseSuite(data []byte) (Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return Suite{}, fmt.Errorf("failed to unmarshal suite YAML: %w", err)
	}
	if err := validateSuite(suite); err != nil {
		return Suite{}, err
	}
	return suite, nil
}
