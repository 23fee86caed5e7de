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

package migrate

import (
	"context"

	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// MigrateScope defines the scope interface for the migrate service.
type MigrateScope interface {
	azure.Authorizer
	azure.RunCacher
}

// Service provides read access to Azure Migrate projects, their
// discovered machines and their appliances.
type Service struct {
	Scope MigrateScope
	Client
}

// New creates a new migrate service.
func New(scope MigrateScope) (*Service, error) {
	client, err := newClient(scope)
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		Client: client,
	}, nil
}

// GetProject returns a migrate project.
func (s *Service) GetProject(ctx context.Context, resourceGroup, projectName string) (Project, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.Service.GetProject")
	defer done()

	key := azure.CallKey{Op: "migrate.GetProject", SubscriptionID: s.Scope.SubscriptionID(), ResourceGroup: resourceGroup, Resource: projectName}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) (Project, error) {
		project, err := s.Client.GetProject(ctx, resourceGroup, projectName)
		if err != nil {
			return Project{}, errors.Wrapf(err, "failed to get migrate project %s", projectName)
		}
		return project, nil
	})
}

// ListProjects returns the migrate projects of a resource group.
func (s *Service) ListProjects(ctx context.Context, resourceGroup string) ([]Project, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.Service.ListProjects")
	defer done()

	key := azure.CallKey{Op: "migrate.ListProjects", SubscriptionID: s.Scope.SubscriptionID(), ResourceGroup: resourceGroup}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) ([]Project, error) {
		projects, err := s.Client.ListProjects(ctx, resourceGroup)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list migrate projects in resource group %s", resourceGroup)
		}
		return projects, nil
	})
}

// ListMachines returns every machine discovered into a project. The
// result is cached for the run, so the per-machine discovery checks of
// one project share a single listing.
func (s *Service) ListMachines(ctx context.Context, resourceGroup, projectName string) ([]Machine, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.Service.ListMachines")
	defer done()

	key := azure.CallKey{Op: "migrate.ListMachines", SubscriptionID: s.Scope.SubscriptionID(), ResourceGroup: resourceGroup, Resource: projectName}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) ([]Machine, error) {
		machines, err := s.Client.ListMachines(ctx, resourceGroup, projectName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list discovered machines in project %s", projectName)
		}
		return machines, nil
	})
}

// SearchMachinesByName returns the discovered machines whose known names
// contain name as a case-insensitive substring. The comparison covers the
// machine resource name and every machine name and FQDN carried by the
// discovery, assessment and migration records.
func (s *Service) SearchMachinesByName(ctx context.Context, resourceGroup, projectName, name string) ([]Machine, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.Service.SearchMachinesByName")
	defer done()

	machines, err := s.ListMachines(ctx, resourceGroup, projectName)
	if err != nil {
		return nil, err
	}
	var matched []Machine
	for _, machine := range machines {
		if machine.ContainsName(name) {
			matched = append(matched, machine)
		}
	}
	return matched, nil
}

// ListAppliances returns the appliances serving a migrate project. Three
// listing strategies are tried in order until one yields appliances:
// resource graph, generic site listing, and the solution fallback. A
// strategy that fails or comes back empty falls through to the next.
func (s *Service) ListAppliances(ctx context.Context, resourceGroup, projectName string) ([]Appliance, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "migrate.Service.ListAppliances")
	defer done()

	key := azure.CallKey{Op: "migrate.ListAppliances", SubscriptionID: s.Scope.SubscriptionID(), ResourceGroup: resourceGroup, Resource: projectName}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) ([]Appliance, error) {
		strategies := []struct {
			source string
			list   func(context.Context) ([]Appliance, error)
		}{
			{SourceResourceGraph, func(ctx context.Context) ([]Appliance, error) {
				return s.appliancesFromGraph(ctx, resourceGroup, projectName)
			}},
			{SourceSiteListing, func(ctx context.Context) ([]Appliance, error) {
				return s.appliancesFromSites(ctx, resourceGroup, projectName)
			}},
			{SourceSolutions, func(ctx context.Context) ([]Appliance, error) {
				return s.appliancesFromSolutions(ctx, resourceGroup, projectName)
			}},
		}
		var (
			succeeded bool
			lastErr   error
		)
		for _, strategy := range strategies {
			appliances, err := strategy.list(ctx)
			if err != nil {
				log.V(4).Info("appliance listing strategy failed", "strategy", strategy.source, "error", err.Error())
				lastErr = err
				continue
			}
			succeeded = true
			if len(appliances) > 0 {
				return appliances, nil
			}
		}
		if !succeeded {
			return nil, errors.Wrapf(lastErr, "failed to list appliances for project %s", projectName)
		}
		return nil, nil
	})
}

func (s *Service) appliancesFromGraph(ctx context.Context, resourceGroup, projectName string) ([]Appliance, error) {
	sites, err := s.Client.QuerySites(ctx, resourceGroup, projectName)
	if err != nil {
		return nil, err
	}
	return appliancesFromSiteList(sites, SourceResourceGraph), nil
}

func (s *Service) appliancesFromSites(ctx context.Context, resourceGroup, projectName string) ([]Appliance, error) {
	sites, err := s.Client.ListSites(ctx, resourceGroup)
	if err != nil {
		return nil, err
	}
	matched := make([]Site, 0, len(sites))
	for _, site := range sites {
		if containsFold(site.Properties.DiscoverySolutionID, projectName) {
			matched = append(matched, site)
		}
	}
	return appliancesFromSiteList(matched, SourceSiteListing), nil
}

// appliancesFromSolutions derives appliances from the discovery solutions
// of the project. This is the weakest strategy: solutions carry no agent
// heartbeat and no site kind, only the appliance name when the solution
// recorded one.
func (s *Service) appliancesFromSolutions(ctx context.Context, resourceGroup, projectName string) ([]Appliance, error) {
	solutions, err := s.Client.ListSolutions(ctx, resourceGroup, projectName)
	if err != nil {
		return nil, err
	}
	var appliances []Appliance
	for _, solution := range solutions {
		if appliance, ok := solutionAppliance(solution, projectName); ok {
			appliances = append(appliances, appliance)
		}
	}
	return appliances, nil
}

func appliancesFromSiteList(sites []Site, source string) []Appliance {
	appliances := make([]Appliance, 0, len(sites))
	for _, site := range sites {
		appliance := site.Appliance()
		appliance.Source = source
		appliances = append(appliances, appliance)
	}
	return appliances
}

// solutionAppliance converts a discovery solution into an appliance view.
// Solutions without an explicit appliance name fall back to the
// conventional <project>-appliance name. A solution that is not Active
// reports an unknown health state.
func solutionAppliance(solution Solution, projectName string) (Appliance, bool) {
	if !solution.IsDiscoverySolution() {
		return Appliance{}, false
	}
	name := solution.Properties.Details.ExtendedDetails["applianceName"]
	if name == "" {
		name = projectName + "-appliance"
	}
	health := ""
	if solution.Properties.Status != "" && solution.Properties.Status != "Active" {
		health = "unknown"
	}
	return Appliance{
		Name:              name,
		HealthState:       health,
		ProvisioningState: solution.Properties.Status,
		Source:            SourceSolutions,
	}, true
}
