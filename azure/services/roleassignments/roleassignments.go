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

package roleassignments

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// RoleAssignmentScope defines the scope interface for the role assignments
// service.
type RoleAssignmentScope interface {
	azure.Authorizer
	azure.RunCacher
}

// Service reads the role assignments backing the access checks.
type Service struct {
	Scope RoleAssignmentScope
	Client
}

// New creates a new role assignments service.
func New(scope RoleAssignmentScope) (*Service, error) {
	client, err := newClient(scope)
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		Client: client,
	}, nil
}

// ListRoleDefinitionIDs returns the role definition IDs the principal holds
// at the given scope, inherited assignments included. Assignments without a
// role definition are dropped.
func (s *Service) ListRoleDefinitionIDs(ctx context.Context, scope, principalID string) ([]string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "roleassignments.Service.ListRoleDefinitionIDs")
	defer done()

	key := azure.CallKey{Op: "roleassignments.ListForScope", SubscriptionID: s.Scope.SubscriptionID(), Resource: scope + "|" + principalID}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) ([]string, error) {
		assignments, err := s.Client.ListForScope(ctx, scope, principalID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list role assignments for principal %s at scope %s", principalID, scope)
		}
		ids := make([]string, 0, len(assignments))
		for _, assignment := range assignments {
			if assignment == nil || assignment.Properties == nil || assignment.Properties.RoleDefinitionID == nil {
				continue
			}
			ids = append(ids, *assignment.Properties.RoleDefinitionID)
		}
		return ids, nil
	})
}

// HasAnyRole reports whether the principal holds at least one of the wanted
// role definitions at the given scope. Wanted roles are bare definition
// GUIDs, compared case-insensitively.
func (s *Service) HasAnyRole(ctx context.Context, scope, principalID string, wantGUIDs ...string) (bool, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "roleassignments.Service.HasAnyRole")
	defer done()

	ids, err := s.ListRoleDefinitionIDs(ctx, scope, principalID)
	if err != nil {
		return false, err
	}
	return ContainsAny(ids, wantGUIDs...), nil
}

// ContainsAny reports whether any of the listed role definition IDs ends in
// one of the wanted definition GUIDs, compared case-insensitively.
func ContainsAny(ids []string, wantGUIDs ...string) bool {
	for _, id := range ids {
		guid := DefinitionGUID(id)
		for _, want := range wantGUIDs {
			if strings.EqualFold(guid, want) {
				return true
			}
		}
	}
	return false
}

// DefinitionGUID extracts the bare definition GUID from a full role
// definition ID.
func DefinitionGUID(roleDefinitionID string) string {
	if idx := strings.LastIndex(roleDefinitionID, "/"); idx >= 0 {
		return roleDefinitionID[idx+1:]
	}
	return roleDefinitionID
}
