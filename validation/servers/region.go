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

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/validation"
)

// checkRegion verifies the declared target region is one the subscription
// can deploy to. Region names are compared after normalization so display
// names like "East US" match.
func (v *Validator) checkRegion(ctx context.Context) validation.Outcome {
	id := validation.CheckServerRegion

	locations, err := v.Locations.ListLocations(ctx)
	if err != nil {
		return providerOutcome(id, "failed to list subscription locations", err)
	}

	want := azure.NormalizeLocation(v.Machine.TargetRegion)
	for _, location := range locations {
		if azure.NormalizeLocation(location) == want {
			return validation.Outcome{
				CheckID:  id,
				Severity: validation.SeverityOK,
				Summary:  fmt.Sprintf("target region %q is available", v.Machine.TargetRegion),
			}
		}
	}
	return validation.Outcome{
		CheckID:  id,
		Severity: validation.SeverityFailure,
		Summary:  fmt.Sprintf("target region %q is not available to the subscription", v.Machine.TargetRegion),
		Detail:   fmt.Sprintf("subscription %s lists %d usable locations, none matching %q", v.Machine.TargetSubscription, len(locations), want),
	}
}

// checkResourceGroup verifies the target resource group exists and lives in
// the machine's target region. A group in another region still works, so a
// mismatch is only advisory.
func (v *Validator) checkResourceGroup(ctx context.Context) validation.Outcome {
	id := validation.CheckServerResourceGroup
	name := v.Machine.TargetResourceGroup

	group, err := v.Groups.Get(ctx, name)
	if err != nil {
		if azure.ResourceNotFound(err) {
			return validation.Outcome{
				CheckID:    id,
				Severity:   validation.SeverityFailure,
				Summary:    fmt.Sprintf("resource group %q not found", name),
				Detail:     fmt.Sprintf("subscription %s has no resource group %q", v.Machine.TargetSubscription, name),
				CauseTrace: azure.RequestID(err),
			}
		}
		return providerOutcome(id, "failed to read the target resource group", err)
	}

	groupLocation := ""
	if group.Location != nil {
		groupLocation = *group.Location
	}
	if groupLocation != "" && azure.NormalizeLocation(groupLocation) != azure.NormalizeLocation(v.Machine.TargetRegion) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityWarning,
			Summary:  fmt.Sprintf("resource group %q is in another region", name),
			Detail:   fmt.Sprintf("group is in %s, machine targets %s", groupLocation, v.Machine.TargetRegion),
		}
	}
	return validation.Outcome{
		CheckID:  id,
		Severity: validation.SeverityOK,
		Summary:  fmt.Sprintf("resource group %q is ready", name),
	}
}
