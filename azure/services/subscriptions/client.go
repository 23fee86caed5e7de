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

package subscriptions

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// Client wraps go-sdk.
type Client interface {
	Get(context.Context, string) (armsubscriptions.Subscription, error)
	ListLocations(context.Context, string) ([]*armsubscriptions.Location, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	subscriptions *armsubscriptions.Client
}

var _ Client = (*azureClient)(nil)

// newClient creates an azureClient from an Authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ARM client options")
	}
	factory, err := armsubscriptions.NewClientFactory(auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ARM subscriptions client factory")
	}
	return &azureClient{subscriptions: factory.NewClient()}, nil
}

// Get returns the specified subscription.
func (ac *azureClient) Get(ctx context.Context, subscriptionID string) (armsubscriptions.Subscription, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "subscriptions.azureClient.Get")
	defer done()

	resp, err := ac.subscriptions.Get(ctx, subscriptionID, nil)
	if err != nil {
		return armsubscriptions.Subscription{}, err
	}
	return resp.Subscription, nil
}

// ListLocations returns every location available to the specified subscription.
func (ac *azureClient) ListLocations(ctx context.Context, subscriptionID string) ([]*armsubscriptions.Location, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "subscriptions.azureClient.ListLocations")
	defer done()

	var locations []*armsubscriptions.Location
	pager := ac.subscriptions.NewListLocationsPager(subscriptionID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		locations = append(locations, page.Value...)
	}
	return locations, nil
}
