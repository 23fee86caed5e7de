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
	"math"
	"net"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// VNetScope defines the scope interface for the virtual networks service.
type VNetScope interface {
	azure.Authorizer
	azure.RunCacher
}

// Service provides read access to the virtual networks and subnets machines
// are placed into.
type Service struct {
	Scope VNetScope
	Client
}

// New creates a new virtual networks service.
func New(scope VNetScope) (*Service, error) {
	client, err := newClient(scope)
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		Client: client,
	}, nil
}

// Get returns the named virtual network.
func (s *Service) Get(ctx context.Context, resourceGroup, vnetName string) (armnetwork.VirtualNetwork, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualnetworks.Service.Get")
	defer done()

	key := azure.CallKey{Op: "virtualnetworks.Get", SubscriptionID: s.Scope.SubscriptionID(), ResourceGroup: resourceGroup, Resource: vnetName}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) (armnetwork.VirtualNetwork, error) {
		vnet, err := s.Client.Get(ctx, resourceGroup, vnetName)
		if err != nil {
			return armnetwork.VirtualNetwork{}, errors.Wrapf(err, "failed to get virtual network %s in resource group %s", vnetName, resourceGroup)
		}
		return vnet, nil
	})
}

// GetSubnet returns the named subnet of a virtual network.
func (s *Service) GetSubnet(ctx context.Context, resourceGroup, vnetName, subnetName string) (armnetwork.Subnet, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "virtualnetworks.Service.GetSubnet")
	defer done()

	key := azure.CallKey{Op: "virtualnetworks.GetSubnet", SubscriptionID: s.Scope.SubscriptionID(), ResourceGroup: resourceGroup, Resource: vnetName + "/" + subnetName}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) (armnetwork.Subnet, error) {
		subnet, err := s.Client.GetSubnet(ctx, resourceGroup, vnetName, subnetName)
		if err != nil {
			return armnetwork.Subnet{}, errors.Wrapf(err, "failed to get subnet %s in virtual network %s", subnetName, vnetName)
		}
		return subnet, nil
	})
}

// AddressCapacity returns the total number of addresses covered by the
// subnet's address prefixes. IPv6 prefixes larger than an int64 are capped
// at math.MaxInt64.
func AddressCapacity(subnet armnetwork.Subnet) (int64, error) {
	if subnet.Properties == nil {
		return 0, errors.New("subnet has no properties")
	}
	prefixes := make([]string, 0, 1+len(subnet.Properties.AddressPrefixes))
	if subnet.Properties.AddressPrefix != nil {
		prefixes = append(prefixes, *subnet.Properties.AddressPrefix)
	}
	for _, prefix := range subnet.Properties.AddressPrefixes {
		if prefix != nil {
			prefixes = append(prefixes, *prefix)
		}
	}
	if len(prefixes) == 0 {
		return 0, errors.New("subnet has no address prefix")
	}
	var capacity int64
	for _, prefix := range prefixes {
		_, ipnet, err := net.ParseCIDR(prefix)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to parse subnet address prefix %q", prefix)
		}
		ones, bits := ipnet.Mask.Size()
		if bits-ones >= 63 {
			return math.MaxInt64, nil
		}
		capacity += int64(1) << (bits - ones)
	}
	return capacity, nil
}

// UsedIPConfigurations returns the number of IP configurations bound to the
// subnet.
func UsedIPConfigurations(subnet armnetwork.Subnet) int {
	if subnet.Properties == nil {
		return 0
	}
	return len(subnet.Properties.IPConfigurations)
}

// Delegations returns the service names the subnet is delegated to. A
// delegated subnet cannot host migrated machines.
func Delegations(subnet armnetwork.Subnet) []string {
	if subnet.Properties == nil {
		return nil
	}
	var services []string
	for _, delegation := range subnet.Properties.Delegations {
		if delegation == nil || delegation.Properties == nil || delegation.Properties.ServiceName == nil {
			continue
		}
		services = append(services, *delegation.Properties.ServiceName)
	}
	return services
}
