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

package landingzone

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blang/semver"

	"github.com/mayoit/azmig-tool-assistant/azure/services/migrate"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// checkAppliance verifies the declared appliance exists in the migrate
// project, is of the declared kind, and is alive: healthy provider state, a
// recent heartbeat, and optionally a minimum agent version. Listing
// strategies that cannot supply a heartbeat or kind leave those fields
// empty, in which case the corresponding rule is skipped rather than
// failed.
func (v *Validator) checkAppliance(ctx context.Context) validation.Outcome {
	id := validation.CheckApplianceHealth
	project := v.Project

	appliances, err := v.Appliances.ListAppliances(ctx, project.ResourceGroup, project.ProjectName)
	if err != nil {
		return providerOutcome(id, "failed to list appliances in the migrate project", err)
	}

	var appliance *migrate.Appliance
	for i := range appliances {
		if strings.EqualFold(appliances[i].Name, project.ApplianceName) {
			appliance = &appliances[i]
			break
		}
	}
	if appliance == nil {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("appliance %q not found in project %s", project.ApplianceName, project.ProjectName),
			Detail:   fmt.Sprintf("%d appliance(s) known to the project", len(appliances)),
		}
	}

	if appliance.Kind != "" && !strings.EqualFold(appliance.Kind, string(project.ApplianceKind)) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  "appliance kind mismatch",
			Detail:   fmt.Sprintf("declared %s, discovered %s", project.ApplianceKind, appliance.Kind),
		}
	}

	severity := validation.SeverityOK
	summary := fmt.Sprintf("appliance %q is healthy", appliance.Name)
	var details []string

	switch strings.ToLower(appliance.HealthState) {
	case "", "healthy", "connected":
	case "warning", "degraded":
		severity = validation.MaxSeverity(severity, validation.SeverityWarning)
		summary = fmt.Sprintf("appliance %q reports degraded health", appliance.Name)
		details = append(details, "health state: "+appliance.HealthState)
	case "unhealthy", "critical":
		severity = validation.MaxSeverity(severity, validation.SeverityFailure)
		summary = fmt.Sprintf("appliance %q is unhealthy", appliance.Name)
		details = append(details, "health state: "+appliance.HealthState)
	default:
		severity = validation.MaxSeverity(severity, validation.SeverityWarning)
		summary = fmt.Sprintf("appliance %q reports an unknown health state", appliance.Name)
		details = append(details, "health state: "+appliance.HealthState)
	}

	if appliance.ProvisioningState != "" && !strings.EqualFold(appliance.ProvisioningState, "Succeeded") {
		severity = validation.MaxSeverity(severity, validation.SeverityFailure)
		summary = fmt.Sprintf("appliance %q is not provisioned", appliance.Name)
		details = append(details, "provisioning state: "+appliance.ProvisioningState)
	}

	if appliance.HasHeartbeat() {
		maxAge := time.Duration(v.Config.ParamInt(id, config.ParamMaxHeartbeatAgeHours, config.DefaultMaxHeartbeatAgeHours)) * time.Hour
		heartbeat, err := appliance.Heartbeat()
		switch {
		case err != nil:
			severity = validation.MaxSeverity(severity, validation.SeverityWarning)
			details = append(details, fmt.Sprintf("unparseable heartbeat %q", appliance.LastHeartbeatUTC))
		case time.Since(heartbeat) >= maxAge:
			// The boundary is inclusive: a heartbeat exactly maxAge old is
			// already stale.
			severity = validation.MaxSeverity(severity, validation.SeverityWarning)
			if severity == validation.SeverityWarning {
				summary = fmt.Sprintf("appliance %q heartbeat is stale", appliance.Name)
			}
			details = append(details, fmt.Sprintf("last heartbeat %s, older than %s", heartbeat.UTC().Format(time.RFC3339), maxAge))
		}
	}

	if minVersion := v.Config.ParamString(id, config.ParamMinVersion, ""); minVersion != "" && appliance.AgentVersion != "" {
		if outdated, err := versionBelow(appliance.AgentVersion, minVersion); err == nil && outdated {
			severity = validation.MaxSeverity(severity, validation.SeverityWarning)
			details = append(details, fmt.Sprintf("agent version %s is older than required %s", appliance.AgentVersion, minVersion))
		}
	}

	return validation.Outcome{
		CheckID:  id,
		Severity: severity,
		Summary:  summary,
		Detail:   strings.Join(details, "; "),
	}
}

func versionBelow(have, want string) (bool, error) {
	haveVersion, err := semver.ParseTolerant(have)
	if err != nil {
		return false, err
	}
	wantVersion, err := semver.ParseTolerant(want)
	if err != nil {
		return false, err
	}
	return haveVersion.LT(wantVersion), nil
}
