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

package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/migrate"
	"github.com/mayoit/azmig-tool-assistant/azure/services/quotas"
	"github.com/mayoit/azmig-tool-assistant/azure/services/resourceskus"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
	"github.com/mayoit/azmig-tool-assistant/validation/landingzone"
	"github.com/mayoit/azmig-tool-assistant/validation/servers"
)

const (
	testSubscription = "20000000-0000-0000-0000-000000000001"
	testPrincipal    = "90000000-0000-0000-0000-000000000009"
)

// cloudState is a programmable in-memory stand-in for the cloud access
// layer. One instance backs every fake client of a run, mirroring how the
// real services share credentials and the run cache.
type cloudState struct {
	subscriptionErr error
	appliances      []migrate.Appliance
	storageLocation string
	usages          []quotas.VCPUUsage
	sku             armcompute.ResourceSKU
	locations       []string
	groupLocation   string
	subnet          armnetwork.Subnet
	inventory       []migrate.Machine

	runCache       *azure.RunCache
	inventoryCalls int32
}

// newCloudState returns a state where every check passes.
func newCloudState() *cloudState {
	cache, err := azure.NewRunCache()
	if err != nil {
		panic(err)
	}
	return &cloudState{
		appliances: []migrate.Appliance{{
			Name:              "A",
			Kind:              migrate.KindVMware,
			HealthState:       "Healthy",
			ProvisioningState: "Succeeded",
			LastHeartbeatUTC:  time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
		}},
		storageLocation: "eastus",
		usages: []quotas.VCPUUsage{
			{Name: "cores", Current: 100, Limit: 400},
			{Name: "standardDSv2Family", Current: 10, Limit: 200},
		},
		sku: armcompute.ResourceSKU{
			Name:         ptr.To("Standard_D2s_v3"),
			ResourceType: ptr.To("virtualMachines"),
			Family:       ptr.To("standardDSv2Family"),
			Capabilities: []*armcompute.ResourceSKUCapabilities{
				{Name: ptr.To("vCPUs"), Value: ptr.To("2")},
				{Name: ptr.To("PremiumIO"), Value: ptr.To("True")},
			},
			LocationInfo: []*armcompute.ResourceSKULocationInfo{
				{Location: ptr.To("eastus"), Zones: []*string{ptr.To("1"), ptr.To("2"), ptr.To("3")}},
			},
		},
		locations:     []string{"eastus", "westus2", "westeurope"},
		groupLocation: "eastus",
		subnet: armnetwork.Subnet{
			Name: ptr.To("s"),
			Properties: &armnetwork.SubnetPropertiesFormat{
				AddressPrefix: ptr.To("10.0.0.0/24"),
				IPConfigurations: []*armnetwork.IPConfiguration{
					{}, {}, {}, {}, {}, {}, {}, {}, {}, {},
				},
			},
		},
		inventory: []migrate.Machine{discoveredMachine("web01")},
		runCache:  cache,
	}
}

func discoveredMachine(name string) migrate.Machine {
	return migrate.Machine{
		Name: name,
		Properties: migrate.MachineProperties{
			DiscoveryData: []migrate.DiscoveryData{{MachineName: name}},
		},
	}
}

func replicatingMachine(name, phase string) migrate.Machine {
	machine := discoveredMachine(name)
	machine.Properties.MigrationData = []migrate.MigrationData{{MachineName: name, MigrationPhase: phase}}
	return machine
}

type fakeSubscriptions struct{ s *cloudState }

func (f fakeSubscriptions) Get(context.Context) (armsubscriptions.Subscription, error) {
	if f.s.subscriptionErr != nil {
		return armsubscriptions.Subscription{}, f.s.subscriptionErr
	}
	return armsubscriptions.Subscription{SubscriptionID: ptr.To(testSubscription)}, nil
}

func (f fakeSubscriptions) ListLocations(context.Context) ([]string, error) {
	return f.s.locations, nil
}

type fakeRoles struct{ s *cloudState }

func (f fakeRoles) ListRoleDefinitionIDs(_ context.Context, scope, _ string) ([]string, error) {
	return []string{scope + "/providers/Microsoft.Authorization/roleDefinitions/" + azure.RoleDefinitionContributor}, nil
}

type fakeAppliances struct{ s *cloudState }

func (f fakeAppliances) ListAppliances(context.Context, string, string) ([]migrate.Appliance, error) {
	return f.s.appliances, nil
}

type fakeStorage struct{ s *cloudState }

func (f fakeStorage) Get(_ context.Context, _, accountName string) (armstorage.Account, error) {
	return armstorage.Account{Name: ptr.To(accountName), Location: ptr.To(f.s.storageLocation)}, nil
}

func (f fakeStorage) CreateCacheAccount(_ context.Context, _, accountName, location string) (armstorage.Account, error) {
	return armstorage.Account{Name: ptr.To(accountName), Location: ptr.To(location)}, nil
}

type fakeQuotas struct{ s *cloudState }

func (f fakeQuotas) ListVCPUUsage(context.Context, string) ([]quotas.VCPUUsage, error) {
	return f.s.usages, nil
}

type fakeSKUs struct{ s *cloudState }

func (f fakeSKUs) Get(context.Context, string, resourceskus.ResourceType) (armcompute.ResourceSKU, error) {
	return f.s.sku, nil
}

type fakeGroups struct{ s *cloudState }

func (f fakeGroups) Get(_ context.Context, name string) (armresources.ResourceGroup, error) {
	return armresources.ResourceGroup{Name: ptr.To(name), Location: ptr.To(f.s.groupLocation)}, nil
}

type fakeNetworks struct{ s *cloudState }

func (f fakeNetworks) Get(context.Context, string, string) (armnetwork.VirtualNetwork, error) {
	return armnetwork.VirtualNetwork{}, nil
}

func (f fakeNetworks) GetSubnet(context.Context, string, string, string) (armnetwork.Subnet, error) {
	return f.s.subnet, nil
}

// fakeDiscovery funnels inventory listings through the run cache the same
// way the real migrate service does, so concurrent searches against one
// project collapse into a single upstream call.
type fakeDiscovery struct{ s *cloudState }

func (f fakeDiscovery) SearchMachinesByName(ctx context.Context, resourceGroup, projectName, name string) ([]migrate.Machine, error) {
	key := azure.CallKey{
		Op:             "migrate.ListMachines",
		SubscriptionID: testSubscription,
		ResourceGroup:  resourceGroup,
		Resource:       projectName,
	}
	machines, err := azure.Fetch(ctx, f.s.runCache, key, func(context.Context) ([]migrate.Machine, error) {
		atomic.AddInt32(&f.s.inventoryCalls, 1)
		return f.s.inventory, nil
	})
	if err != nil {
		return nil, err
	}
	var matched []migrate.Machine
	for _, machine := range machines {
		if machine.ContainsName(name) {
			matched = append(matched, machine)
		}
	}
	return matched, nil
}

// fakeEngine wires an engine whose runners talk to the shared cloud state
// instead of real Azure services.
func fakeEngine(cfg *config.Resolved, state *cloudState) *Engine {
	e := &Engine{config: cfg, now: time.Now}
	e.newProjectRunner = func(project validation.ProjectDecl, machines []validation.MachineDecl) (projectRunner, error) {
		return &landingzone.Validator{
			Project:       project,
			Machines:      machines,
			Config:        cfg,
			PrincipalID:   testPrincipal,
			Subscriptions: fakeSubscriptions{state},
			Roles:         fakeRoles{state},
			Appliances:    fakeAppliances{state},
			Storage:       fakeStorage{state},
			Quotas:        fakeQuotas{state},
			SKUs:          fakeSKUs{state},
		}, nil
	}
	e.newMachineRunner = func(machine validation.MachineDecl, project validation.ProjectDecl) (machineRunner, error) {
		return &servers.Validator{
			Machine:     machine,
			Project:     project,
			Config:      cfg,
			PrincipalID: testPrincipal,
			Locations:   fakeSubscriptions{state},
			Groups:      fakeGroups{state},
			Networks:    fakeNetworks{state},
			SKUs:        fakeSKUs{state},
			Discovery:   fakeDiscovery{state},
			Roles:       fakeRoles{state},
		}, nil
	}
	return e
}

func declaredProject() validation.ProjectDecl {
	return validation.ProjectDecl{
		SubscriptionID:            testSubscription,
		ResourceGroup:             "rg-a",
		ProjectName:               "P",
		Region:                    "eastus",
		ApplianceName:             "A",
		ApplianceKind:             validation.ApplianceVMware,
		CacheStorageAccount:       "cs1",
		CacheStorageResourceGroup: "rg-a",
	}
}

func declaredMachine(name string) validation.MachineDecl {
	return validation.MachineDecl{
		SourceName:          name,
		TargetName:          name,
		TargetRegion:        "eastus",
		TargetSubscription:  testSubscription,
		TargetResourceGroup: "rg-b",
		TargetVNet:          "v",
		TargetSubnet:        "s",
		TargetSKU:           "Standard_D2s_v3",
		TargetDiskType:      "premium_lrs",
		ProjectKey:          declaredProject().Key(),
	}
}
