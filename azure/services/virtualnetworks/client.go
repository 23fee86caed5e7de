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

package virtualnetworks

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// Client wraps the virtual network API surface consumed by the network
// checks.
type Client interface {
	Get(ctx context.Context, resourceGroup, vnetName string) (armnetwork.VirtualNetwork, error)
	GetSubnet(ctx context.Context, resourceGroup, vnetName, subnetName string) (armnetwork.Subnet, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	virtualnetworks *armnetwork.VirtualNetworksClient
	subnets         *armnetwork.SubnetsClient
}

var _ Client = (*azureClient)(nil)

// newClient creates a new virtual networks client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create virtualnetworks client options")
	}
	factory, err := armnetwork.NewClientFactory(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armnetwork client factory")
	}
	return &azureClient{
		virtualnetworks: factory.NewVirtualNetworksClient(),
		subnets:         factory.NewSubnetsClient(),
	}, nil
}

// Get returns the specified virtual network.
func (ac *azureClient) Get(ctx context.Context, resourceGroup, vnetName string) (armnetwork.VirtualNetwork, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualnetworks.azureClient.Get")
	defer done()

	resp, err := ac.virtualnetworks.Get(ctx, resourceGroup, vnetName, nil)
	if err != nil {
		return armnetwork.VirtualNetwork{}, err
	}
	return resp.VirtualNetwork, nil
}

// GetSubnet returns the specified subnet of a virtual network.
func (ac *azureClient) GetSubnet(ctx context.Context, resourceGroup, vnetName, subnetName string) (armnetwork.Subnet, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualnetworks.azureClient.GetSubnet")
	defer done()

	resp, err := ac.subnets.Get(ctx, resourceGroup, vnetName, subnetName, nil)
	if err != nil {
		return armnetwork.Subnet{}, err
	}
	return resp.Subnet, nil
}
