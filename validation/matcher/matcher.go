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

// Package matcher assigns declared machines without a project reference to
// the most plausible declared project, scoring each candidate by discovery
// name, region and network evidence. Matching is best effort: provider
// errors lower a candidate's score to zero instead of failing the run.
package matcher

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	netutils "k8s.io/utils/net"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/scope"
	"github.com/mayoit/azmig-tool-assistant/azure/services/migrate"
	"github.com/mayoit/azmig-tool-assistant/azure/services/virtualnetworks"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
	"github.com/mayoit/azmig-tool-assistant/validation"
)

// Candidate scores.
const (
	scoreExactName  = 10
	scoreNameSubstr = 5
	scoreRegion     = 3
	scoreSubnetIP   = 2
)

// InventoryFunc lists the discovered machines of a declared project.
type InventoryFunc func(ctx context.Context, project validation.ProjectDecl) ([]migrate.Machine, error)

// SubnetFunc reads the subnet a machine declares as its migration target.
type SubnetFunc func(ctx context.Context, machine validation.MachineDecl) (armnetwork.Subnet, error)

// Matcher scores declared projects against unassigned machines.
type Matcher struct {
	Projects  []validation.ProjectDecl
	Inventory InventoryFunc
	Subnet    SubnetFunc
}

// New creates a matcher backed by the cloud access layer: inventories come
// from the migrate service of each project's scope, subnets from the
// virtual networks service of each machine's scope.
func New(base *scope.ValidationScope, projects []validation.ProjectDecl) *Matcher {
	return &Matcher{
		Projects: projects,
		Inventory: func(ctx context.Context, project validation.ProjectDecl) ([]migrate.Machine, error) {
			projectScope, err := scope.NewProjectScope(base, project)
			if err != nil {
				return nil, err
			}
			svc, err := migrate.New(projectScope)
			if err != nil {
				return nil, err
			}
			return svc.ListMachines(ctx, project.ResourceGroup, project.ProjectName)
		},
		Subnet: func(ctx context.Context, machine validation.MachineDecl) (armnetwork.Subnet, error) {
			machineScope, err := scope.NewMachineScope(base, machine)
			if err != nil {
				return armnetwork.Subnet{}, err
			}
			svc, err := virtualnetworks.New(machineScope)
			if err != nil {
				return armnetwork.Subnet{}, err
			}
			return svc.GetSubnet(ctx, machine.TargetResourceGroup, machine.TargetVNet, machine.TargetSubnet)
		},
	}
}

// Match returns a copy of machines where every machine without a project
// reference carries the key of its highest scoring project. Machines with
// no positive score keep an empty key and machines that already reference a
// project are untouched.
func (m *Matcher) Match(ctx context.Context, machines []validation.MachineDecl) []validation.MachineDecl {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "matcher.Matcher.Match")
	defer done()

	inventories := make(map[string][]migrate.Machine, len(m.Projects))
	fetched := make(map[string]bool, len(m.Projects))

	matched := make([]validation.MachineDecl, len(machines))
	copy(matched, machines)
	for i := range matched {
		machine := &matched[i]
		if !machine.ProjectKey.IsZero() {
			continue
		}

		var subnet *armnetwork.Subnet
		if s, err := m.Subnet(ctx, *machine); err != nil {
			log.V(4).Info("subnet lookup failed, matching without network evidence",
				"machine", machine.TargetName, "error", err.Error())
		} else {
			subnet = &s
		}

		var bestKey validation.ProjectKey
		bestScore := 0
		for _, project := range m.Projects {
			key := project.Key().String()
			if !fetched[key] {
				fetched[key] = true
				inventory, err := m.Inventory(ctx, project)
				if err != nil {
					log.V(4).Info("inventory listing failed, project scores without discovery evidence",
						"project", key, "error", err.Error())
				}
				inventories[key] = inventory
			}

			score := scoreProject(*machine, project, inventories[key], subnet)
			if score > bestScore || (score == bestScore && score > 0 && key < bestKey.String()) {
				bestScore = score
				bestKey = project.Key()
			}
		}
		if bestScore > 0 {
			machine.ProjectKey = bestKey
			log.V(4).Info("matched machine to project",
				"machine", machine.TargetName, "project", bestKey.String(), "score", bestScore)
		}
	}
	return matched
}

func scoreProject(machine validation.MachineDecl, project validation.ProjectDecl, inventory []migrate.Machine, subnet *armnetwork.Subnet) int {
	score := 0
	name := machine.DiscoveryName()

	var candidate *migrate.Machine
	for idx := range inventory {
		if inventory[idx].MatchesName(name) {
			candidate = &inventory[idx]
			score += scoreExactName
			break
		}
	}
	if candidate == nil {
		for idx := range inventory {
			if inventory[idx].ContainsName(name) {
				candidate = &inventory[idx]
				score += scoreNameSubstr
				break
			}
		}
	}
	if azure.NormalizeLocation(machine.TargetRegion) == azure.NormalizeLocation(project.Region) {
		score += scoreRegion
	}
	if candidate != nil && subnet != nil && anyIPInSubnet(candidate.IPAddresses(), *subnet) {
		score += scoreSubnetIP
	}
	return score
}

// anyIPInSubnet reports whether any of the discovered addresses falls in
// one of the subnet's prefixes.
func anyIPInSubnet(ips []string, subnet armnetwork.Subnet) bool {
	if subnet.Properties == nil {
		return false
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
	for _, prefix := range prefixes {
		_, cidr, err := netutils.ParseCIDRSloppy(prefix)
		if err != nil {
			continue
		}
		for _, raw := range ips {
			if ip := netutils.ParseIPSloppy(raw); ip != nil && cidr.Contains(ip) {
				return true
			}
		}
	}
	return false
}
