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

package resourceskus

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"
)

// SKU is a thin layer over the Azure resource SKU API to better introspect
// capabilities.
type SKU armcompute.ResourceSKU

// ResourceType models available resource types as a string.
type ResourceType string

const (
	// VirtualMachines is a convenience constant to filter resource SKUs to only include VMs.
	VirtualMachines ResourceType = "virtualMachines"
	// Disks is a convenience constant to filter resource SKUs to only include disks.
	Disks ResourceType = "disks"
)

// Supported models an enum of possible boolean values for resource support in the Azure API.
type Supported string

const (
	// CapabilitySupported is the value returned by the API when a SKU supports a binary capability.
	CapabilitySupported Supported = "True"
	// CapabilityUnsupported is the value returned by the API when a SKU does not support a binary capability.
	CapabilityUnsupported Supported = "False"
)

const (
	// AcceleratedNetworking identifies the capability for accelerated networking.
	AcceleratedNetworking = "AcceleratedNetworkingEnabled"
	// VCPUs identifies the capability for the number of vCPUs.
	VCPUs = "vCPUs"
	// MemoryGB identifies the capability for memory capacity.
	MemoryGB = "MemoryGB"
	// PremiumIO identifies the capability for attaching premium disks.
	PremiumIO = "PremiumIO"
	// UltraSSDAvailable identifies the capability for attaching ultra disks.
	UltraSSDAvailable = "UltraSSDAvailable"
	// EphemeralOSDisk identifies the capability for ephemeral OS disk support.
	EphemeralOSDisk = "EphemeralOSDiskSupported"
)

// HasCapability returns true for a capability which can be either supported
// or not, such as "PremiumIO" or "AcceleratedNetworkingEnabled".
func (s SKU) HasCapability(name string) bool {
	for _, capability := range s.Capabilities {
		if capability != nil && capability.Name != nil && *capability.Name == name {
			return capability.Value != nil && strings.EqualFold(*capability.Value, string(CapabilitySupported))
		}
	}
	return false
}

// GetCapability returns the raw value assigned to the given capability.
func (s SKU) GetCapability(name string) (string, bool) {
	for _, capability := range s.Capabilities {
		if capability != nil && capability.Name != nil && *capability.Name == name {
			if capability.Value == nil {
				return "", false
			}
			return *capability.Value, true
		}
	}
	return "", false
}

// VCPUCount returns the number of vCPUs the SKU provisions. When the API
// does not expose the capability the count is estimated from the SKU name.
func (s SKU) VCPUCount() (int64, error) {
	if value, ok := s.GetCapability(VCPUs); ok {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to parse vCPU capability value %q", value)
		}
		return count, nil
	}
	if s.Name == nil {
		return 0, errors.New("sku has no vCPU capability and no name")
	}
	return EstimateVCPUs(*s.Name)
}

// EstimateVCPUs derives a vCPU count from a VM size name, e.g. 4 from
// "Standard_D4s_v3". The first digit run after the family letters is the
// count.
func EstimateVCPUs(sizeName string) (int64, error) {
	parts := strings.Split(sizeName, "_")
	for _, part := range parts[1:] {
		start := -1
		for i, r := range part {
			if unicode.IsDigit(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				return strconv.ParseInt(part[start:i], 10, 64)
			}
		}
		if start >= 0 {
			return strconv.ParseInt(part[start:], 10, 64)
		}
	}
	return 0, errors.Errorf("cannot estimate vCPU count from size name %q", sizeName)
}

// IsRestrictedInLocation reports whether the subscription is barred from
// deploying the SKU in the given location.
func (s SKU) IsRestrictedInLocation(location string) bool {
	for _, restriction := range s.Restrictions {
		if restriction == nil || restriction.Type == nil || *restriction.Type != armcompute.ResourceSKURestrictionsTypeLocation {
			continue
		}
		for _, value := range restriction.Values {
			if value != nil && strings.EqualFold(*value, location) {
				return true
			}
		}
	}
	return false
}

// RestrictedZones returns the zones of the given location the subscription
// cannot deploy the SKU to.
func (s SKU) RestrictedZones(location string) []string {
	var zones []string
	for _, restriction := range s.Restrictions {
		if restriction == nil || restriction.Type == nil || *restriction.Type != armcompute.ResourceSKURestrictionsTypeZone {
			continue
		}
		if restriction.RestrictionInfo == nil {
			continue
		}
		matchesLocation := len(restriction.Values) == 0
		for _, value := range restriction.Values {
			if value != nil && strings.EqualFold(*value, location) {
				matchesLocation = true
			}
		}
		if !matchesLocation {
			continue
		}
		for _, zone := range restriction.RestrictionInfo.Zones {
			if zone != nil {
				zones = append(zones, *zone)
			}
		}
	}
	return zones
}

// ZonesInLocation returns the zones the SKU is offered in for the given
// location, before restrictions are applied.
func (s SKU) ZonesInLocation(location string) []string {
	var zones []string
	for _, locationInfo := range s.LocationInfo {
		if locationInfo == nil || locationInfo.Location == nil || !strings.EqualFold(*locationInfo.Location, location) {
			continue
		}
		for _, zone := range locationInfo.Zones {
			if zone != nil {
				zones = append(zones, *zone)
			}
		}
	}
	return zones
}
