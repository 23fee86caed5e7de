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

package config

import (
	"sort"

	"github.com/mayoit/azmig-tool-assistant/validation"
)

// Parameter keys of the recognized check parameters.
const (
	ParamRequiredRoles        = "required_roles"
	ParamMaxHeartbeatAgeHours = "max_heartbeat_age_hours"
	ParamMinVersion           = "min_version"
	ParamAutoCreate           = "auto_create"
	ParamWarnThresholdPercent = "warn_threshold_percent"
	ParamSupported            = "supported"
	ParamRegionLimited        = "region_limited"
	ParamDeprecated           = "deprecated"
)

// Built-in parameter defaults.
const (
	DefaultMaxHeartbeatAgeHours = 24
	DefaultWarnThresholdPercent = 80
	DefaultTimeoutSeconds       = 300
)

// DefaultSupportedDiskTypes is the managed disk kinds a migration target
// may declare.
func DefaultSupportedDiskTypes() []string {
	return []string{
		"premium_lrs",
		"premium_zrs",
		"premiumv2_lrs",
		"standard_lrs",
		"standardssd_lrs",
		"standardssd_zrs",
		"ultrassd_lrs",
	}
}

// DefaultRegionLimitedDiskTypes maps the disk kinds that are only offered
// in a subset of regions to those regions. Disk kinds absent from the map
// are available everywhere.
func DefaultRegionLimitedDiskTypes() map[string][]string {
	return map[string][]string{
		"premiumv2_lrs": {
			"eastus", "eastus2", "westus2", "westus3", "centralus",
			"northeurope", "westeurope", "uksouth", "swedencentral",
			"southeastasia", "japaneast", "australiaeast",
		},
		"ultrassd_lrs": {
			"eastus", "eastus2", "westus2", "westus3", "centralus",
			"northeurope", "westeurope", "uksouth", "francecentral",
			"southeastasia", "eastasia", "japaneast", "australiaeast",
			"brazilsouth",
		},
	}
}

// DefaultDeprecatedSKUs lists VM sizes that still appear in the SKU catalog
// but should no longer be targeted by new deployments.
func DefaultDeprecatedSKUs() []string {
	return []string{
		"Basic_A0", "Basic_A1", "Basic_A2", "Basic_A3", "Basic_A4",
		"Standard_A0", "Standard_A1", "Standard_A2", "Standard_A3",
		"Standard_A4", "Standard_A5", "Standard_A6", "Standard_A7",
	}
}

type paramKind int

const (
	kindBool paramKind = iota
	kindInt
	kindString
	kindStringSlice
	kindRegionMap
)

type paramSpec struct {
	kind paramKind
	def  interface{}
}

// recognizedParams is the closed set of check parameters. Resolution
// rejects anything outside it.
var recognizedParams = map[validation.CheckID]map[string]paramSpec{
	validation.CheckAccessRBACMigrateProject: {
		ParamRequiredRoles: {kindStringSlice, []string{"Contributor"}},
	},
	validation.CheckApplianceHealth: {
		ParamMaxHeartbeatAgeHours: {kindInt, DefaultMaxHeartbeatAgeHours},
		ParamMinVersion:           {kindString, ""},
	},
	validation.CheckStorageCache: {
		ParamAutoCreate: {kindBool, false},
	},
	validation.CheckQuotaVCPU: {
		ParamWarnThresholdPercent: {kindInt, DefaultWarnThresholdPercent},
	},
	validation.CheckServerRegion:        {},
	validation.CheckServerResourceGroup: {},
	validation.CheckServerVNetSubnet:    {},
	validation.CheckServerSKU: {
		ParamDeprecated: {kindStringSlice, DefaultDeprecatedSKUs()},
	},
	validation.CheckServerDiskType: {
		ParamSupported:     {kindStringSlice, DefaultSupportedDiskTypes()},
		ParamRegionLimited: {kindRegionMap, DefaultRegionLimitedDiskTypes()},
	},
	validation.CheckServerDiscovery: {},
	validation.CheckServerRBACResourceGroup: {
		ParamRequiredRoles: {kindStringSlice, []string{"Contributor", "Owner"}},
	},
}

// coerce validates a raw document value against the parameter's declared
// kind and converts it to the canonical Go representation.
func coerce(spec paramSpec, raw interface{}) (interface{}, error) {
	switch spec.kind {
	case kindBool:
		v, ok := raw.(bool)
		if !ok {
			return nil, newErrorf("want bool, got %T", raw)
		}
		return v, nil
	case kindInt:
		v, ok := raw.(int)
		if !ok {
			return nil, newErrorf("want int, got %T", raw)
		}
		return v, nil
	case kindString:
		v, ok := raw.(string)
		if !ok {
			return nil, newErrorf("want string, got %T", raw)
		}
		return v, nil
	case kindStringSlice:
		return coerceStringSlice(raw)
	case kindRegionMap:
		rawMap, ok := raw.(map[string]interface{})
		if !ok {
			return nil, newErrorf("want map of string lists, got %T", raw)
		}
		coerced := make(map[string][]string, len(rawMap))
		for key, val := range rawMap {
			list, err := coerceStringSlice(val)
			if err != nil {
				return nil, newErrorf("entry %q: want string list, got %T", key, val)
			}
			coerced[key] = list
		}
		return coerced, nil
	}
	return nil, newErrorf("unhandled parameter kind %d", spec.kind)
}

func coerceStringSlice(raw interface{}) ([]string, error) {
	rawList, ok := raw.([]interface{})
	if !ok {
		return nil, newErrorf("want string list, got %T", raw)
	}
	coerced := make([]string, 0, len(rawList))
	for _, item := range rawList {
		s, ok := item.(string)
		if !ok {
			return nil, newErrorf("want string list, got %T element", item)
		}
		coerced = append(coerced, s)
	}
	return coerced, nil
}

// canonicalValue returns a copy of a resolved parameter value with set
// semantics normalized, so fingerprints do not depend on list order.
func canonicalValue(value interface{}) interface{} {
	switch v := value.(type) {
	case []string:
		sorted := append([]string(nil), v...)
		sort.Strings(sorted)
		return sorted
	case map[string][]string:
		canonical := make(map[string][]string, len(v))
		for key, list := range v {
			sorted := append([]string(nil), list...)
			sort.Strings(sorted)
			canonical[key] = sorted
		}
		return canonical
	default:
		return value
	}
}
