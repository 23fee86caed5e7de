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

package quotas

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// Client wraps the compute usage API surface consumed by the quota check.
type Client interface {
	List(ctx context.Context, location string) ([]*armcompute.Usage, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	usage *armcompute.UsageClient
}

var _ Client = (*azureClient)(nil)

// newClient creates a new compute usage client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create quotas client options")
	}
	factory, err := armcompute.NewClientFactory(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armcompute client factory")
	}
	return &azureClient{usage: factory.NewUsageClient()}, nil
}

// List returns the compute resource usages of a location, following every
// page.
func (ac *azureClient) List(ctx context.Context, location string) ([]*armcompute.Usage, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "quotas.azureClient.List")
	defer done()

	var usages []*armcompute.Usage
	pager := ac.usage.NewListPager(location, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		usages = append(usages, page.Value...)
	}
	return usages, nil
}
