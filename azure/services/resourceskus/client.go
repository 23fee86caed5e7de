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

package resourceskus

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// Client wraps the resource SKU API surface behind the SKU cache.
type Client interface {
	List(ctx context.Context, filter string) ([]armcompute.ResourceSKU, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	skus *armcompute.ResourceSKUsClient
}

var _ Client = (*azureClient)(nil)

// newClient creates a new resource SKUs client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resourceskus client options")
	}
	factory, err := armcompute.NewClientFactory(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armcompute client factory")
	}
	return &azureClient{skus: factory.NewResourceSKUsClient()}, nil
}

// List returns all resource SKUs available to the subscription, following
// every page.
func (ac *azureClient) List(ctx context.Context, filter string) ([]armcompute.ResourceSKU, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "resourceskus.azureClient.List")
	defer done()

	var skus []armcompute.ResourceSKU
	pager := ac.skus.NewListPager(&armcompute.ResourceSKUsClientListOptions{Filter: ptr.To(filter)})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "could not iterate resource skus")
		}
		for _, sku := range page.Value {
			if sku != nil {
				skus = append(skus, *sku)
			}
		}
	}
	return skus, nil
}
