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

package servers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mayoit/azmig-tool-assistant/validation"
)

// checkDiscovery verifies the appliance discovered exactly the declared
// machine. The inventory is searched by source name, falling back to the
// target name, and a match that is substring-only or already replicating
// is flagged.
func (v *Validator) checkDiscovery(ctx context.Context) validation.Outcome {
	id := validation.CheckServerDiscovery
	name := v.Machine.DiscoveryName()

	matches, err := v.Discovery.SearchMachinesByName(ctx, v.Project.ResourceGroup, v.Project.ProjectName, name)
	if err != nil {
		return providerOutcome(id, "failed to search the discovery inventory", err)
	}

	switch {
	case len(matches) == 0:
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("machine %q not discovered in project %s", name, v.Project.ProjectName),
			Detail:   "check the appliance scope and rerun discovery",
		}
	case len(matches) > 1:
		candidates := make([]string, 0, len(matches))
		for _, match := range matches {
			candidates = append(candidates, match.DisplayName())
		}
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityWarning,
			Summary:  fmt.Sprintf("multiple discovered machines match %q", name),
			Detail:   "candidates: " + strings.Join(candidates, ", "),
		}
	}

	match := matches[0]
	if !match.MatchesName(name) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("discovered machine only partially matches %q", name),
			Detail:   fmt.Sprintf("closest candidate is %q", match.DisplayName()),
		}
	}
	if match.MigrationReady() {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityWarning,
			Summary:  fmt.Sprintf("machine %q is already replicating", name),
			Detail:   "replication state: " + match.ReplicationState(),
		}
	}
	return validation.Outcome{
		CheckID:  id,
		Severity: validation.SeverityOK,
		Summary:  fmt.Sprintf("machine %q discovered", name),
	}
}
