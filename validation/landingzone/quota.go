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

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/quotas"
	"github.com/mayoit/azmig-tool-assistant/azure/services/resourceskus"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// checkQuota sums the vCPUs the project's declared machines will consume in
// the project region and holds the sum against the regional total and
// per-family compute quotas. Projected usage at or above 100% fails, at or
// above the warn threshold warns.
func (v *Validator) checkQuota(ctx context.Context) validation.Outcome {
	id := validation.CheckQuotaVCPU
	region := azure.NormalizeLocation(v.Project.Region)

	totalDemand, familyDemand, demandNotes := v.vcpuDemand(ctx, region)

	usages, err := v.Quotas.ListVCPUUsage(ctx, region)
	if err != nil {
		return providerOutcome(id, "failed to read compute quota usage", err)
	}

	warnThreshold := float64(v.Config.ParamInt(id, config.ParamWarnThresholdPercent, config.DefaultWarnThresholdPercent))
	severity := validation.SeverityOK
	summary := fmt.Sprintf("%d additional vCPU(s) fit within quota", totalDemand)
	details := demandNotes

	evaluate := func(usage quotas.VCPUUsage, demand int64) {
		if demand == 0 {
			return
		}
		projected := usage
		projected.Current += demand
		percent := projected.UsagePercent()
		details = append(details, fmt.Sprintf("%s: %d/%d used, +%d declared (%.0f%%)",
			bucketLabel(usage), usage.Current, usage.Limit, demand, percent))
		switch {
		case percent >= 100:
			severity = validation.MaxSeverity(severity, validation.SeverityFailure)
			summary = fmt.Sprintf("insufficient vCPU quota in %s", v.Project.Region)
		case percent >= warnThreshold:
			severity = validation.MaxSeverity(severity, validation.SeverityWarning)
			if severity == validation.SeverityWarning {
				summary = fmt.Sprintf("vCPU quota in %s is close to its limit", v.Project.Region)
			}
		}
	}

	for _, usage := range usages {
		if usage.IsRegionalTotal() {
			evaluate(usage, totalDemand)
		}
	}
	for family, demand := range familyDemand {
		for _, usage := range usages {
			if usage.IsFamily(family) {
				evaluate(usage, demand)
			}
		}
	}

	if severity.AtLeast(validation.SeverityFailure) {
		if alternatives := familiesWithHeadroom(usages, familyDemand, totalDemand); len(alternatives) > 0 {
			details = append(details, "families with headroom: "+strings.Join(alternatives, ", "))
		}
	}

	return validation.Outcome{
		CheckID:  id,
		Severity: severity,
		Summary:  summary,
		Detail:   strings.Join(details, "; "),
	}
}

// vcpuDemand sums the vCPUs of the machines declared into the project
// region, total and per SKU family. Machines whose SKU cannot be resolved
// are counted by the size name's digits and noted.
func (v *Validator) vcpuDemand(ctx context.Context, region string) (int64, map[string]int64, []string) {
	var total int64
	familyDemand := map[string]int64{}
	var notes []string

	for _, machine := range v.Machines {
		if azure.NormalizeLocation(machine.TargetRegion) != region {
			continue
		}
		sku, err := v.SKUs.Get(ctx, machine.TargetSKU, resourceskus.VirtualMachines)
		if err != nil {
			estimated, estimateErr := resourceskus.EstimateVCPUs(machine.TargetSKU)
			if estimateErr != nil {
				notes = append(notes, fmt.Sprintf("%s: cannot determine vCPUs of %s, not counted", machine.TargetName, machine.TargetSKU))
				continue
			}
			notes = append(notes, fmt.Sprintf("%s: vCPUs of %s estimated from the size name", machine.TargetName, machine.TargetSKU))
			total += estimated
			continue
		}
		vcpus, err := resourceskus.SKU(sku).VCPUCount()
		if err != nil {
			if vcpus, err = resourceskus.EstimateVCPUs(machine.TargetSKU); err != nil {
				notes = append(notes, fmt.Sprintf("%s: cannot determine vCPUs of %s, not counted", machine.TargetName, machine.TargetSKU))
				continue
			}
		}
		total += vcpus
		if sku.Family != nil && *sku.Family != "" {
			familyDemand[*sku.Family] += vcpus
		}
	}
	return total, familyDemand, notes
}

// familiesWithHeadroom recommends up to three SKU families whose quota
// could absorb the declared demand, for when the requested family cannot.
func familiesWithHeadroom(usages []quotas.VCPUUsage, familyDemand map[string]int64, totalDemand int64) []string {
	needed := totalDemand
	for _, demand := range familyDemand {
		if demand < needed && demand > 0 {
			needed = demand
		}
	}
	var alternatives []string
	for _, usage := range usages {
		if usage.IsRegionalTotal() {
			continue
		}
		if _, declared := familyDemand[usage.Name]; declared {
			continue
		}
		if usage.Available() >= needed && needed > 0 {
			alternatives = append(alternatives, bucketLabel(usage))
			if len(alternatives) == 3 {
				break
			}
		}
	}
	return alternatives
}

func bucketLabel(usage quotas.VCPUUsage) string {
	if usage.Localized != "" {
		return usage.Localized
	}
	return usage.Name
}
