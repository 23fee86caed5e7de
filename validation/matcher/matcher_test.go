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

package matcher

import (
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure/services/migrate"
	"github.com/mayoit/azmig-tool-assistant/validation"
)

const testSubscription = "20000000-0000-0000-0000-000000000001"

func project(resourceGroup, name, region string) validation.ProjectDecl {
	return validation.ProjectDecl{
		SubscriptionID: testSubscription,
		ResourceGroup:  resourceGroup,
		ProjectName:    name,
		Region:         region,
	}
}

func machine(name, region string) validation.MachineDecl {
	return validation.MachineDecl{
		TargetName:          name,
		TargetRegion:        region,
		TargetSubscription:  testSubscription,
		TargetResourceGroup: "rg-target",
		TargetVNet:          "vnet-prod",
		TargetSubnet:        "snet-app",
	}
}

func inventoryMachine(name string, ips ...string) migrate.Machine {
	return migrate.Machine{
		Name: name,
		Properties: migrate.MachineProperties{
			DiscoveryData: []migrate.DiscoveryData{{MachineName: name, IPAddresses: ips}},
		},
	}
}

func staticInventory(byProject map[string][]migrate.Machine) InventoryFunc {
	return func(_ context.Context, p validation.ProjectDecl) ([]migrate.Machine, error) {
		return byProject[p.ProjectName], nil
	}
}

func staticSubnet(prefix string) SubnetFunc {
	return func(context.Context, validation.MachineDecl) (armnetwork.Subnet, error) {
		return armnetwork.Subnet{
			Properties: &armnetwork.SubnetPropertiesFormat{AddressPrefix: ptr.To(prefix)},
		}, nil
	}
}

func noSubnet(context.Context, validation.MachineDecl) (armnetwork.Subnet, error) {
	return armnetwork.Subnet{}, errors.New("subnet unavailable")
}

func TestMatch(t *testing.T) {
	projA := project("rg-a", "proj-a", "eastus")
	projB := project("rg-b", "proj-b", "westeurope")

	testcases := []struct {
		name        string
		projects    []validation.ProjectDecl
		inventories map[string][]migrate.Machine
		subnet      SubnetFunc
		machine     validation.MachineDecl
		expectedKey validation.ProjectKey
	}{
		{
			name:     "exact discovery name wins over substring",
			projects: []validation.ProjectDecl{projA, projB},
			inventories: map[string][]migrate.Machine{
				"proj-a": {inventoryMachine("web01-clone")},
				"proj-b": {inventoryMachine("web01")},
			},
			subnet:      noSubnet,
			machine:     machine("web01", "southeastasia"),
			expectedKey: projB.Key(),
		},
		{
			name:     "region evidence separates equal name scores",
			projects: []validation.ProjectDecl{projA, projB},
			inventories: map[string][]migrate.Machine{
				"proj-a": {inventoryMachine("web01")},
				"proj-b": {inventoryMachine("web01")},
			},
			subnet:      noSubnet,
			machine:     machine("web01", "westeurope"),
			expectedKey: projB.Key(),
		},
		{
			name:     "ties break to the lexicographically smallest key",
			projects: []validation.ProjectDecl{projB, projA},
			inventories: map[string][]migrate.Machine{
				"proj-a": {inventoryMachine("web01")},
				"proj-b": {inventoryMachine("web01")},
			},
			subnet:      noSubnet,
			machine:     machine("web01", "southeastasia"),
			expectedKey: projA.Key(),
		},
		{
			name:     "a discovery address inside the target subnet breaks the tie",
			projects: []validation.ProjectDecl{projA, projB},
			inventories: map[string][]migrate.Machine{
				"proj-a": {inventoryMachine("web01", "192.168.7.20")},
				"proj-b": {inventoryMachine("web01", "10.0.0.20")},
			},
			subnet:      staticSubnet("10.0.0.0/24"),
			machine:     machine("web01", "southeastasia"),
			expectedKey: projB.Key(),
		},
		{
			name:        "region alone is a positive score",
			projects:    []validation.ProjectDecl{projA, projB},
			inventories: map[string][]migrate.Machine{},
			subnet:      noSubnet,
			machine:     machine("db01", "eastus"),
			expectedKey: projA.Key(),
		},
		{
			name:        "no evidence leaves the machine unassigned",
			projects:    []validation.ProjectDecl{projA, projB},
			inventories: map[string][]migrate.Machine{},
			subnet:      noSubnet,
			machine:     machine("db01", "southeastasia"),
			expectedKey: validation.ProjectKey{},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			m := &Matcher{
				Projects:  tc.projects,
				Inventory: staticInventory(tc.inventories),
				Subnet:    tc.subnet,
			}

			matched := m.Match(context.Background(), []validation.MachineDecl{tc.machine})
			g.Expect(matched).To(HaveLen(1))
			g.Expect(matched[0].ProjectKey).To(Equal(tc.expectedKey))
		})
	}
}

func TestMatchKeepsExistingAssignments(t *testing.T) {
	g := NewWithT(t)

	assigned := machine("web01", "eastus")
	assigned.ProjectKey = validation.ProjectKey{SubscriptionID: testSubscription, ResourceGroup: "rg-x", ProjectName: "proj-x"}

	m := &Matcher{
		Projects: []validation.ProjectDecl{project("rg-a", "proj-a", "eastus")},
		Inventory: func(context.Context, validation.ProjectDecl) ([]migrate.Machine, error) {
			t.Fatal("inventory must not be consulted for assigned machines")
			return nil, nil
		},
		Subnet: noSubnet,
	}

	matched := m.Match(context.Background(), []validation.MachineDecl{assigned})
	g.Expect(matched[0].ProjectKey).To(Equal(assigned.ProjectKey))
}

func TestMatchListsEachInventoryOnce(t *testing.T) {
	g := NewWithT(t)

	calls := 0
	m := &Matcher{
		Projects: []validation.ProjectDecl{project("rg-a", "proj-a", "eastus")},
		Inventory: func(context.Context, validation.ProjectDecl) ([]migrate.Machine, error) {
			calls++
			return []migrate.Machine{inventoryMachine("web01"), inventoryMachine("web02")}, nil
		},
		Subnet: noSubnet,
	}

	matched := m.Match(context.Background(), []validation.MachineDecl{
		machine("web01", "eastus"),
		machine("web02", "eastus"),
	})
	g.Expect(calls).To(Equal(1))
	g.Expect(matched[0].ProjectKey).To(Equal(project("rg-a", "proj-a", "eastus").Key()))
	g.Expect(matched[1].ProjectKey).To(Equal(project("rg-a", "proj-a", "eastus").Key()))
}

func TestMatchSwallowsInventoryErrors(t *testing.T) {
	g := NewWithT(t)

	m := &Matcher{
		Projects: []validation.ProjectDecl{project("rg-a", "proj-a", "eastus")},
		Inventory: func(context.Context, validation.ProjectDecl) ([]migrate.Machine, error) {
			return nil, errors.New("listing blew up")
		},
		Subnet: noSubnet,
	}

	// Region evidence still applies when discovery is unavailable.
	matched := m.Match(context.Background(), []validation.MachineDecl{machine("web01", "eastus")})
	g.Expect(matched[0].ProjectKey).To(Equal(project("rg-a", "proj-a", "eastus").Key()))
}
