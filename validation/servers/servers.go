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

// Package servers validates the machine-level migration targets: the
// declared region, resource group, network placement, VM size, disk type,
// discovery record and RBAC of each machine. A machine only runs its checks
// after its project passed the landing zone tier.
package servers

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/scope"
	"github.com/mayoit/azmig-tool-assistant/azure/services/migrate"
	"github.com/mayoit/azmig-tool-assistant/azure/services/resourcegroups"
	"github.com/mayoit/azmig-tool-assistant/azure/services/resourceskus"
	"github.com/mayoit/azmig-tool-assistant/azure/services/roleassignments"
	"github.com/mayoit/azmig-tool-assistant/azure/services/subscriptions"
	"github.com/mayoit/azmig-tool-assistant/azure/services/virtualnetworks"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// LocationsClient is the subscription location surface consumed by the
// checks.
type LocationsClient interface {
	ListLocations(ctx context.Context) ([]string, error)
}

// ResourceGroupsClient is the resource group surface consumed by the
// checks.
type ResourceGroupsClient interface {
	Get(ctx context.Context, name string) (armresources.ResourceGroup, error)
}

// NetworksClient is the virtual network surface consumed by the checks.
type NetworksClient interface {
	Get(ctx context.Context, resourceGroup, vnetName string) (armnetwork.VirtualNetwork, error)
	GetSubnet(ctx context.Context, resourceGroup, vnetName, subnetName string) (armnetwork.Subnet, error)
}

// SKUCatalog resolves VM sizes to their SKU records for the target region.
type SKUCatalog interface {
	Get(ctx context.Context, name string, kind resourceskus.ResourceType) (armcompute.ResourceSKU, error)
}

// DiscoveryClient is the discovery inventory surface consumed by the
// checks.
type DiscoveryClient interface {
	SearchMachinesByName(ctx context.Context, resourceGroup, projectName, name string) ([]migrate.Machine, error)
}

// RoleAssignmentsClient is the RBAC surface consumed by the checks.
type RoleAssignmentsClient interface {
	ListRoleDefinitionIDs(ctx context.Context, scope, principalID string) ([]string, error)
}

// Validator runs the machine-level checks for one declared machine.
type Validator struct {
	Machine validation.MachineDecl
	// Project is the declared project the machine migrates through. Its
	// Tier-1 verdict must already be a pass, see Gate.
	Project     validation.ProjectDecl
	Config      *config.Resolved
	PrincipalID string

	Locations LocationsClient
	Groups    ResourceGroupsClient
	Networks  NetworksClient
	SKUs      SKUCatalog
	Discovery DiscoveryClient
	Roles     RoleAssignmentsClient
}

// New creates a validator for one declared machine. Target-side services
// are wired onto the machine's scope, the discovery inventory onto the
// project's.
func New(machineScope *scope.MachineScope, projectScope *scope.ProjectScope, cfg *config.Resolved) (*Validator, error) {
	subscriptionsSvc, err := subscriptions.New(machineScope)
	if err != nil {
		return nil, err
	}
	groupsSvc, err := resourcegroups.New(machineScope)
	if err != nil {
		return nil, err
	}
	networksSvc, err := virtualnetworks.New(machineScope)
	if err != nil {
		return nil, err
	}
	skuCache, err := resourceskus.GetCache(machineScope, azure.NormalizeLocation(machineScope.Machine.TargetRegion))
	if err != nil {
		return nil, err
	}
	migrateSvc, err := migrate.New(projectScope)
	if err != nil {
		return nil, err
	}
	rolesSvc, err := roleassignments.New(machineScope)
	if err != nil {
		return nil, err
	}
	return &Validator{
		Machine:     machineScope.Machine,
		Project:     projectScope.Project,
		Config:      cfg,
		PrincipalID: machineScope.PrincipalID(),
		Locations:   subscriptionsSvc,
		Groups:      groupsSvc,
		Networks:    networksSvc,
		SKUs:        skuCache,
		Discovery:   migrateSvc,
		Roles:       rolesSvc,
	}, nil
}

// Gate applies the Tier-1 verdict to a machine before any of its checks
// run. When the machine references an unknown project, or a project that
// rolled up to failure or worse, the returned readiness is final and the
// second return value is true.
func Gate(machine validation.MachineDecl, projects map[string]validation.ProjectReadiness) (validation.MachineReadiness, bool) {
	readiness := validation.MachineReadiness{
		TargetName: machine.TargetName,
		ProjectKey: machine.ProjectKey,
	}
	project, known := projects[machine.ProjectKey.String()]
	if machine.ProjectKey.IsZero() || !known {
		readiness.RolledUp = validation.SeverityFailure
		readiness.SkippedReason = validation.SkippedUnknownProject
		return readiness, true
	}
	if project.RolledUp.AtLeast(validation.SeverityFailure) {
		readiness.RolledUp = validation.SeverityFailure
		readiness.SkippedReason = validation.SkippedPrerequisiteFailed
		return readiness, true
	}
	return readiness, false
}

// Validate runs the enabled machine checks in canonical order. A cancelled
// context stops after the in-flight check.
func (v *Validator) Validate(ctx context.Context) validation.MachineReadiness {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "servers.Validator.Validate",
		tele.KVP("machine", v.Machine.TargetName),
		tele.KVP("project", v.Machine.ProjectKey.String()),
	)
	defer done()

	readiness := validation.MachineReadiness{
		TargetName: v.Machine.TargetName,
		ProjectKey: v.Machine.ProjectKey,
	}
	enabled := v.Config.EnabledTier2()
	for i, id := range enabled {
		if ctx.Err() != nil {
			for _, remaining := range enabled[i:] {
				readiness.Outcomes = append(readiness.Outcomes, validation.CancelledOutcome(remaining))
			}
			break
		}

		outcome := v.runCheck(ctx, id)
		readiness.Outcomes = append(readiness.Outcomes, outcome)
		log.V(4).Info("check finished", "check", string(id), "severity", string(outcome.Severity))
	}
	readiness.RolledUp = validation.RollUp(readiness.Outcomes)
	return readiness
}

func (v *Validator) runCheck(ctx context.Context, id validation.CheckID) validation.Outcome {
	switch id {
	case validation.CheckServerRegion:
		return v.checkRegion(ctx)
	case validation.CheckServerResourceGroup:
		return v.checkResourceGroup(ctx)
	case validation.CheckServerVNetSubnet:
		return v.checkVNetSubnet(ctx)
	case validation.CheckServerSKU:
		return v.checkSKU(ctx)
	case validation.CheckServerDiskType:
		return v.checkDiskType(ctx)
	case validation.CheckServerDiscovery:
		return v.checkDiscovery(ctx)
	case validation.CheckServerRBACResourceGroup:
		return v.checkRBAC(ctx)
	default:
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  "No such machine check",
		}
	}
}

// providerOutcome turns a provider error into a failed outcome, preserving
// the provider request id for diagnostics.
func providerOutcome(id validation.CheckID, summary string, err error) validation.Outcome {
	return validation.Outcome{
		CheckID:    id,
		Severity:   validation.SeverityFailure,
		Summary:    summary,
		Detail:     err.Error(),
		CauseTrace: azure.RequestID(err),
	}
}
