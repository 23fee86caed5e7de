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
	"github.com/mayoit/azmig-tool-assistant/azure/services/roleassignments"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// checkAccess verifies the running identity can work with the migrate
// project: the subscription must be reachable and the principal must hold
// one of the required roles on the project. An unreachable subscription is
// the canonical fail-fast trigger and comes back critical. When a recovery
// vault is declared, Contributor on the vault is required as well, and a
// principal without Reader at subscription scope gets an advisory warning.
func (v *Validator) checkAccess(ctx context.Context) validation.Outcome {
	id := validation.CheckAccessRBACMigrateProject
	project := v.Project

	if _, err := v.Subscriptions.Get(ctx); err != nil {
		if azure.ResourceNotFound(err) || azure.IsForbidden(err) {
			return validation.Outcome{
				CheckID:    id,
				Severity:   validation.SeverityCritical,
				Summary:    "subscription not accessible",
				Detail:     fmt.Sprintf("subscription %s: %v", project.SubscriptionID, err),
				CauseTrace: azure.RequestID(err),
			}
		}
		return providerOutcome(id, "failed to read subscription", err)
	}

	required := requiredRoleGUIDs(v.Config.ParamStringSlice(id, config.ParamRequiredRoles, []string{"Contributor"}))
	projectScope := azure.MigrateProjectID(project.SubscriptionID, project.ResourceGroup, project.ProjectName)
	projectRoles, err := v.Roles.ListRoleDefinitionIDs(ctx, projectScope, v.PrincipalID)
	if err != nil {
		if azure.IsForbidden(err) {
			// The project is invisible to the identity, which dooms every
			// later check the same way a missing subscription does.
			return validation.Outcome{
				CheckID:    id,
				Severity:   validation.SeverityCritical,
				Summary:    "migrate project not accessible",
				Detail:     fmt.Sprintf("principal %s cannot read role assignments on %s: %v", v.PrincipalID, projectScope, err),
				CauseTrace: azure.RequestID(err),
			}
		}
		return providerOutcome(id, "failed to list role assignments on the migrate project", err)
	}
	if !roleassignments.ContainsAny(projectRoles, required...) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  "missing required role on the migrate project",
			Detail: fmt.Sprintf("principal %s holds none of the required roles (%s) on %s",
				v.PrincipalID, strings.Join(v.Config.ParamStringSlice(id, config.ParamRequiredRoles, []string{"Contributor"}), ", "), projectScope),
		}
	}

	severity := validation.SeverityOK
	summary := "required roles held on the migrate project"
	var details []string

	if project.RecoveryVaultName != "" {
		vaultScope := azure.RecoveryVaultID(project.SubscriptionID, project.ResourceGroup, project.RecoveryVaultName)
		vaultRoles, err := v.Roles.ListRoleDefinitionIDs(ctx, vaultScope, v.PrincipalID)
		switch {
		case err != nil:
			severity = validation.MaxSeverity(severity, validation.SeverityFailure)
			summary = "could not verify access to the recovery vault"
			details = append(details, fmt.Sprintf("vault %s: %v", project.RecoveryVaultName, err))
		case !roleassignments.ContainsAny(vaultRoles, azure.RoleDefinitionContributor, azure.RoleDefinitionOwner):
			severity = validation.MaxSeverity(severity, validation.SeverityFailure)
			summary = "missing Contributor on the recovery vault"
			details = append(details, fmt.Sprintf("principal %s is not Contributor on %s", v.PrincipalID, vaultScope))
		}
	}

	subscriptionRoles, err := v.Roles.ListRoleDefinitionIDs(ctx, azure.SubscriptionScope(project.SubscriptionID), v.PrincipalID)
	if err == nil && !roleassignments.ContainsAny(subscriptionRoles,
		azure.RoleDefinitionReader, azure.RoleDefinitionContributor, azure.RoleDefinitionOwner) {
		severity = validation.MaxSeverity(severity, validation.SeverityWarning)
		details = append(details, "principal has no Reader role at subscription scope; some checks may see partial results")
	}

	return validation.Outcome{
		CheckID:  id,
		Severity: severity,
		Summary:  summary,
		Detail:   strings.Join(details, "; "),
	}
}

// requiredRoleGUIDs maps configured role names to definition GUIDs. Owner
// always satisfies a role requirement.
func requiredRoleGUIDs(names []string) []string {
	guids := make([]string, 0, len(names)+1)
	for _, name := range names {
		guids = append(guids, azure.RoleDefinitionGUID(name))
	}
	if !containsFold(guids, azure.RoleDefinitionOwner) {
		guids = append(guids, azure.RoleDefinitionOwner)
	}
	return guids
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
