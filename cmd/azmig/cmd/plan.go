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

package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mayoit/azmig-tool-assistant/validation"
)

// Plan is the YAML document declaring what a run validates: the migrate
// projects and the machines targeting them. Static validation of the
// declarations happens inside the engine, not here.
type Plan struct {
	Projects []validation.ProjectDecl `yaml:"projects"`
	Machines []validation.MachineDecl `yaml:"machines"`
}

// loadPlan reads a plan document from path, or from stdin when path is "-".
func loadPlan(path string) (Plan, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Plan{}, errors.Wrapf(err, "failed to read plan %s", path)
	}
	return parsePlan(data)
}

func parsePlan(data []byte) (Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, errors.Wrap(err, "malformed plan")
	}
	if len(plan.Projects) == 0 && len(plan.Machines) == 0 {
		return Plan{}, errors.New("plan declares no projects and no machines")
	}
	return plan, nil
}
