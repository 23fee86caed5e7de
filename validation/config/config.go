/*
Copyright 2024 The AzMig Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config holds the declarative validation configuration: which
// checks run and with what parameters. A YAML document plus profile and
// per-run overrides resolve into an immutable snapshot whose fingerprint
// stamps the run.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Document mirrors the YAML configuration file. All fields are optional;
// a nil or empty document resolves to the built-in defaults.
type Document struct {
	ActiveProfile string                   `yaml:"active_profile,omitempty"`
	Global        GlobalDocument           `yaml:"global,omitempty"`
	Tier1         map[string]CheckDocument `yaml:"tier1,omitempty"`
	Tier2         map[string]CheckDocument `yaml:"tier2,omitempty"`
	Profiles      map[string]Profile       `yaml:"profiles,omitempty"`
}

// GlobalDocument holds the run-wide settings of the document. Nil fields
// keep their default.
type GlobalDocument struct {
	FailFast          *bool `yaml:"fail_fast,omitempty"`
	ParallelExecution *bool `yaml:"parallel_execution,omitempty"`
	TimeoutSeconds    *int  `yaml:"timeout_seconds,omitempty"`
}

// Profile is a named set of overrides expressed as dotted paths, e.g.
// "server.rbac.rg.enabled: false".
type Profile struct {
	Overrides map[string]interface{} `yaml:"overrides,omitempty"`
}

// CheckDocument configures one check: its enablement plus free-form
// parameters. Parameters are validated against the recognized set during
// resolution, not during parsing.
type CheckDocument struct {
	Enabled *bool
	Params  map[string]interface{}
}

// UnmarshalYAML decodes the check mapping, splitting the "enabled" key off
// from the check parameters.
func (c *CheckDocument) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]interface{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	for key, val := range raw {
		if key == "enabled" {
			enabled, ok := val.(bool)
			if !ok {
				return errors.Errorf("enabled must be a bool, got %T", val)
			}
			c.Enabled = &enabled
			continue
		}
		if c.Params == nil {
			c.Params = map[string]interface{}{}
		}
		c.Params[key] = val
	}
	return nil
}

// Load reads and parses a configuration document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return Parse(data)
}

// Parse parses a configuration document.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, newErrorf("malformed document: %v", err)
	}
	return doc, nil
}
