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

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/roleassignments"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// checkRBAC verifies the running identity can create resources in the
// target resource group.
func (v *Validator) checkRBAC(ctx context.Context) validation.Outcome {
	id := validation.CheckServerRBACResourceGroup
	groupScope := azure.ResourceGroupID(v.Machine.TargetSubscription, v.Machine.TargetResourceGroup)

	names := v.Config.ParamStringSlice(id, config.ParamRequiredRoles, []string{"Contributor", "Owner"})
	required := make([]string, 0, len(names))
	for _, name := range names {
		required = append(required, azure.RoleDefinitionGUID(name))
	}

	held, err := v.Roles.ListRoleDefinitionIDs(ctx, groupScope, v.PrincipalID)
	if err != nil {
		if azure.IsForbidden(err) {
			return validation.Outcome{
				CheckID:    id,
				Severity:   validation.SeverityFailure,
				Summary:    "insufficient permission to verify permissions",
				Detail:     fmt.Sprintf("principal %s cannot read role assignments on %s", v.PrincipalID, groupScope),
				CauseTrace: azure.RequestID(err),
			}
		}
		return providerOutcome(id, "failed to list role assignments on the target resource group", err)
	}
	if !roleassignments.ContainsAny(held, required...) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityFailure,
			Summary:  fmt.Sprintf("missing required role on resource group %q", v.Machine.TargetResourceGroup),
			Detail: fmt.Sprintf("principal %s holds none of the required roles (%s) on %s",
				v.PrincipalID, strings.Join(names, ", "), groupScope),
		}
	}
	return validation.Outcome{
		CheckID:  id,
		Severity: validation.SeverityOK,
		Summary:  "required roles held on the target resource group",
	}
}
