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

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/resourceskus"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// checkSKU verifies the declared VM size exists in the target region and
// the subscription is not barred from deploying it there. A size missing
// from some zones still deploys, so partial zone restrictions and
// deprecated size families are advisory.
func (v *Validator) checkSKU(ctx context.Context) validation.Outcome {
	id := validation.CheckServerSKU
	size := v.Machine.TargetSKU
	location := azure.NormalizeLocation(v.Machine.TargetRegion)

	raw, err := v.SKUs.Get(ctx, size, resourceskus.VirtualMachines)
	if err != nil {
		if azure.ResourceNotFound(err) {
			return validation.Outcome{
				CheckID:  id,
				Severity: validation.SeverityFailure,
				Summary:  fmt.Sprintf("SKU %q is not available in %s", size, location),
			}
		}
		return providerOutcome(id, "failed to resolve the target SKU", err)
	}
	sku := resourceskus.SKU(raw)

	if sku.IsRestrictedInLocation(location) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("SKU %q is restricted in %s", size, location),
			Detail:   locationRestrictionReason(sku, location),
		}
	}

	offered := sku.ZonesInLocation(location)
	restricted := sku.RestrictedZones(location)
	if len(offered) > 0 && len(restricted) >= len(offered) && allRestricted(offered, restricted) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("SKU %q is restricted in every zone of %s", size, location),
			Detail:   fmt.Sprintf("zones %s are all restricted for the subscription", strings.Join(offered, ", ")),
		}
	}

	severity := validation.SeverityOK
	var details []string
	if len(restricted) > 0 {
		severity = validation.SeverityWarning
		details = append(details, fmt.Sprintf("restricted in zone(s) %s of %s", strings.Join(restricted, ", "), location))
	}
	deprecated := v.Config.ParamStringSlice(id, config.ParamDeprecated, config.DefaultDeprecatedSKUs())
	if containsFold(deprecated, size) {
		severity = validation.MaxSeverity(severity, validation.SeverityWarning)
		details = append(details, fmt.Sprintf("size %s belongs to a deprecated family; prefer a current generation size", size))
	}

	return validation.Outcome{
		CheckID:  id,
		Severity: severity,
		Summary:  fmt.Sprintf("SKU %q is available in %s", size, location),
		Detail:   strings.Join(details, "; "),
	}
}

// premiumDiskTypes is the set of managed disk kinds that require the VM
// size to advertise the PremiumIO capability.
var premiumDiskTypes = []string{"premium_lrs", "premium_zrs", "premiumv2_lrs", "ultrassd_lrs"}

// checkDiskType verifies the declared disk type is supported, compatible
// with the declared VM size, and offered in the target region.
func (v *Validator) checkDiskType(ctx context.Context) validation.Outcome {
	id := validation.CheckServerDiskType
	diskType := strings.ToLower(v.Machine.TargetDiskType)

	supported := v.Config.ParamStringSlice(id, config.ParamSupported, config.DefaultSupportedDiskTypes())
	if !containsFold(supported, diskType) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("disk type %q is not supported", v.Machine.TargetDiskType),
			Detail:   "supported disk types: " + strings.Join(supported, ", "),
		}
	}

	if containsFold(premiumDiskTypes, diskType) {
		raw, err := v.SKUs.Get(ctx, v.Machine.TargetSKU, resourceskus.VirtualMachines)
		if err != nil {
			return providerOutcome(id, "failed to resolve the target SKU", err)
		}
		if sku := resourceskus.SKU(raw); !sku.HasCapability(resourceskus.PremiumIO) {
			return validation.Outcome{
				CheckID:  id,
				Severity: validation.SeverityFailure,
				Summary:  fmt.Sprintf("disk type %q requires premium storage support", diskType),
				Detail:   fmt.Sprintf("size %s has no %s capability", v.Machine.TargetSKU, resourceskus.PremiumIO),
			}
		}
	}

	limited := v.Config.ParamRegionMap(id, config.ParamRegionLimited)
	if regions, ok := limited[diskType]; ok {
		location := azure.NormalizeLocation(v.Machine.TargetRegion)
		available := false
		for _, region := range regions {
			if azure.NormalizeLocation(region) == location {
				available = true
				break
			}
		}
		if !available {
			return validation.Outcome{
				CheckID:  id,
				Severity: validation.SeverityFailure,
				Summary:  fmt.Sprintf("disk type %q is not offered in %s", diskType, location),
				Detail:   fmt.Sprintf("offered in: %s", strings.Join(regions, ", ")),
			}
		}
	}

	return validation.Outcome{
		CheckID:  id,
		Severity: validation.SeverityOK,
		Summary:  fmt.Sprintf("disk type %q is supported", diskType),
	}
}

// locationRestrictionReason returns the provider reason code of the
// location restriction barring the subscription from the SKU.
func locationRestrictionReason(sku resourceskus.SKU, location string) string {
	for _, restriction := range sku.Restrictions {
		if restriction == nil || restriction.Type == nil || *restriction.Type != armcompute.ResourceSKURestrictionsTypeLocation {
			continue
		}
		for _, value := range restriction.Values {
			if value != nil && strings.EqualFold(*value, location) {
				if restriction.ReasonCode != nil {
					return string(*restriction.ReasonCode)
				}
				return "restricted without a reason code"
			}
		}
	}
	return ""
}

func allRestricted(offered, restricted []string) bool {
	for _, zone := range offered {
		if !containsFold(restricted, zone) {
			return false
		}
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
