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

package resourcegroups

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// Client wraps go-sdk.
type Client interface {
	Get(context.Context, string) (armresources.ResourceGroup, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	groups *armresources.ResourceGroupsClient
}

var _ Client = (*azureClient)(nil)

// newClient creates an azureClient from an Authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ARM client options")
	}
	factory, err := armresources.NewClientFactory(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ARM resources client factory")
	}
	return &azureClient{groups: factory.NewResourceGroupsClient()}, nil
}

// Get returns the specified resource group.
func (ac *azureClient) Get(ctx context.Context, resourceGroupName string) (armresources.ResourceGroup, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "resourcegroups.azureClient.Get")
	defer done()

	resp, err := ac.groups.Get(ctx, resourceGroupName, nil)
	if err != nil {
		return armresources.ResourceGroup{}, err
	}
	return resp.ResourceGroup, nil
}
