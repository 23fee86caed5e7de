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
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// Client wraps the role assignment API surface consumed by the access
// checks.
type Client interface {
	ListForScope(ctx context.Context, scope, principalID string) ([]*armauthorization.RoleAssignment, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	roleassignments *armauthorization.RoleAssignmentsClient
}

var _ Client = (*azureClient)(nil)

// newClient creates a new role assignments client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roleassignments client options")
	}
	factory, err := armauthorization.NewClientFactory(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armauthorization client factory")
	}
	return &azureClient{roleassignments: factory.NewRoleAssignmentsClient()}, nil
}

// ListForScope returns the role assignments held by the principal at the
// given scope, following every page. Assignments inherited from parent
// scopes are included.
func (ac *azureClient) ListForScope(ctx context.Context, scope, principalID string) ([]*armauthorization.RoleAssignment, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "roleassignments.azureClient.ListForScope")
	defer done()

	opts := &armauthorization.RoleAssignmentsClientListForScopeOptions{
		Filter: ptr.To(fmt.Sprintf("principalId eq '%s'", principalID)),
	}
	var assignments []*armauthorization.RoleAssignment
	pager := ac.roleassignments.NewListForScopePager(scope, opts)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, page.Value...)
	}
	return assignments, nil
}
