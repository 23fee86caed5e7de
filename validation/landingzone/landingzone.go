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

// Package landingzone validates the project-level preconditions of a
// migration: access to the migrate project, appliance health, cache
// storage, and vCPU quota. Checks run sequentially in canonical order and a
// critical outcome short-circuits the remaining ones.
package landingzone

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/scope"
	"github.com/mayoit/azmig-tool-assistant/azure/services/migrate"
	"github.com/mayoit/azmig-tool-assistant/azure/services/quotas"
	"github.com/mayoit/azmig-tool-assistant/azure/services/resourceskus"
	"github.com/mayoit/azmig-tool-assistant/azure/services/roleassignments"
	"github.com/mayoit/azmig-tool-assistant/azure/services/storageaccounts"
	"github.com/mayoit/azmig-tool-assistant/azure/services/subscriptions"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// SubscriptionsClient is the subscription surface consumed by the checks.
type SubscriptionsClient interface {
	Get(ctx context.Context) (armsubscriptions.Subscription, error)
}

// RoleAssignmentsClient is the RBAC surface consumed by the checks.
type RoleAssignmentsClient interface {
	ListRoleDefinitionIDs(ctx context.Context, scope, principalID string) ([]string, error)
}

// AppliancesClient is the appliance listing surface consumed by the checks.
type AppliancesClient interface {
	ListAppliances(ctx context.Context, resourceGroup, projectName string) ([]migrate.Appliance, error)
}

// StorageClient is the storage account surface consumed by the checks.
type StorageClient interface {
	Get(ctx context.Context, resourceGroup, accountName string) (armstorage.Account, error)
	CreateCacheAccount(ctx context.Context, resourceGroup, accountName, location string) (armstorage.Account, error)
}

// QuotasClient is the quota usage surface consumed by the checks.
type QuotasClient interface {
	ListVCPUUsage(ctx context.Context, location string) ([]quotas.VCPUUsage, error)
}

// SKUCatalog resolves VM sizes to their SKU records, used to count the
// vCPUs the declared machines will consume.
type SKUCatalog interface {
	Get(ctx context.Context, name string, kind resourceskus.ResourceType) (armcompute.ResourceSKU, error)
}

// Validator runs the project-level checks for one declared project.
type Validator struct {
	Project validation.ProjectDecl
	// Machines are the declared machines associated with the project, the
	// quota check sums their vCPU demand.
	Machines    []validation.MachineDecl
	Config      *config.Resolved
	PrincipalID string

	Subscriptions SubscriptionsClient
	Roles         RoleAssignmentsClient
	Appliances    AppliancesClient
	Storage       StorageClient
	Quotas        QuotasClient
	SKUs          SKUCatalog
}

// New creates a validator for one declared project, wiring the Azure
// services onto the project's scope.
func New(projectScope *scope.ProjectScope, cfg *config.Resolved, machines []validation.MachineDecl) (*Validator, error) {
	subscriptionsSvc, err := subscriptions.New(projectScope)
	if err != nil {
		return nil, err
	}
	rolesSvc, err := roleassignments.New(projectScope)
	if err != nil {
		return nil, err
	}
	migrateSvc, err := migrate.New(projectScope)
	if err != nil {
		return nil, err
	}
	storageSvc, err := storageaccounts.New(projectScope)
	if err != nil {
		return nil, err
	}
	quotasSvc, err := quotas.New(projectScope)
	if err != nil {
		return nil, err
	}
	skuCache, err := resourceskus.GetCache(projectScope, azure.NormalizeLocation(projectScope.Project.Region))
	if err != nil {
		return nil, err
	}
	return &Validator{
		Project:       projectScope.Project,
		Machines:      machines,
		Config:        cfg,
		PrincipalID:   projectScope.PrincipalID(),
		Subscriptions: subscriptionsSvc,
		Roles:         rolesSvc,
		Appliances:    migrateSvc,
		Storage:       storageSvc,
		Quotas:        quotasSvc,
		SKUs:          skuCache,
	}, nil
}

// Validate runs the enabled project checks in canonical order. A critical
// outcome short-circuits the remaining checks when fail-fast is on, and a
// cancelled context stops after the in-flight check.
func (v *Validator) Validate(ctx context.Context) validation.ProjectReadiness {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "landingzone.Validator.Validate",
		tele.KVP("project", v.Project.Key().String()),
	)
	defer done()

	readiness := validation.ProjectReadiness{ProjectKey: v.Project.Key()}
	enabled := v.Config.EnabledTier1()
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

		if outcome.Severity == validation.SeverityCritical && v.Config.Global().FailFast {
			readiness.ShortCircuited = true
			for range enabled[i+1:] {
				readiness.Outcomes = append(readiness.Outcomes, validation.SkippedOutcome())
			}
			break
		}
	}
	readiness.RolledUp = validation.RollUp(readiness.Outcomes)
	return readiness
}

func (v *Validator) runCheck(ctx context.Context, id validation.CheckID) validation.Outcome {
	switch id {
	case validation.CheckAccessRBACMigrateProject:
		return v.checkAccess(ctx)
	case validation.CheckApplianceHealth:
		return v.checkAppliance(ctx)
	case validation.CheckStorageCache:
		return v.checkStorage(ctx)
	case validation.CheckQuotaVCPU:
		return v.checkQuota(ctx)
	default:
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  "No such project check",
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
