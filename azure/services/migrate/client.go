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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

const (
	moduleName    = "migrate"
	moduleVersion = "v1.0.0"
)

// The migrate hub resource provider has no released Go SDK module for the
// project, machine and solution collections, so those are accessed through
// a hand-built arm.Client against the documented api-versions.
const (
	// apiVersionProjects is the stable migrate hub api-version.
	apiVersionProjects = "2020-05-01"
	// apiVersionMachines is the only api-version the project machines
	// collection is exposed under.
	apiVersionMachines = "2018-09-01-preview"
	// apiVersionSolutions matches the machines collection vintage.
	apiVersionSolutions = "2018-09-01-preview"
	// apiVersionSites hydrates OffAzure site properties for resources
	// found through generic resource listing.
	apiVersionSites = "2023-06-06"
)

const (
	projectsPath  = "/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Migrate/migrateProjects"
	projectPath   = projectsPath + "/%s"
	machinesPath  = projectPath + "/machines"
	solutionsPath = projectPath + "/solutions"
)

// siteResourceTypes enumerates the OffAzure site flavors an appliance can
// register, one per discovery scenario.
var siteResourceTypes = []string{
	"Microsoft.OffAzure/VMwareSites",
	"Microsoft.OffAzure/HyperVSites",
	"Microsoft.OffAzure/ServerSites",
}

// graphSiteQuery finds the OffAzure sites wired to a migrate project
// through their discovery solution id.
const graphSiteQuery = `resources
| where type in~ ('microsoft.offazure/vmwaresites', 'microsoft.offazure/hypervsites', 'microsoft.offazure/serversites')
| where resourceGroup =~ '%s'
| where properties.discoverySolutionId contains '%s'
| project id, name, type, location, properties`

// Client wraps the Azure Migrate API surface consumed by the validation
// checks.
type Client interface {
	GetProject(ctx context.Context, resourceGroup, projectName string) (Project, error)
	ListProjects(ctx context.Context, resourceGroup string) ([]Project, error)
	ListMachines(ctx context.Context, resourceGroup, projectName string) ([]Machine, error)
	ListSolutions(ctx context.Context, resourceGroup, projectName string) ([]Solution, error)
	ListSites(ctx context.Context, resourceGroup string) ([]Site, error)
	QuerySites(ctx context.Context, resourceGroup, projectName string) ([]Site, error)
}

// azureClient contains the clients backing the three access paths: a
// hand-built arm.Client for the migrate hub collections, a resource graph
// client and a generic resources client for the appliance sites.
type azureClient struct {
	subscriptionID string
	migrate        *arm.Client
	graph          *armresourcegraph.Client
	resources      *armresources.Client
}

var _ Client = (*azureClient)(nil)

// newClient creates a new migrate client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate client options")
	}
	armClient, err := arm.NewClient(moduleName+".azureClient", moduleVersion, auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate arm client")
	}
	graph, err := armresourcegraph.NewClient(auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resource graph client")
	}
	factory, err := armresources.NewClientFactory(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armresources client factory")
	}
	return &azureClient{
		subscriptionID: auth.SubscriptionID(),
		migrate:        armClient,
		graph:          graph,
		resources:      factory.NewClient(),
	}, nil
}

// GetProject returns the migrate project.
func (ac *azureClient) GetProject(ctx context.Context, resourceGroup, projectName string) (Project, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.azureClient.GetProject")
	defer done()

	urlPath := fmt.Sprintf(projectPath, url.PathEscape(ac.subscriptionID), url.PathEscape(resourceGroup), url.PathEscape(projectName))
	var project Project
	if err := ac.get(ctx, urlPath, apiVersionProjects, &project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// ListProjects returns the migrate projects of a resource group.
func (ac *azureClient) ListProjects(ctx context.Context, resourceGroup string) ([]Project, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.azureClient.ListProjects")
	defer done()

	urlPath := fmt.Sprintf(projectsPath, url.PathEscape(ac.subscriptionID), url.PathEscape(resourceGroup))
	return listAll[Project](ctx, ac, urlPath, apiVersionProjects)
}

// ListMachines returns every machine discovered into a migrate project,
// following all pages.
func (ac *azureClient) ListMachines(ctx context.Context, resourceGroup, projectName string) ([]Machine, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.azureClient.ListMachines")
	defer done()

	urlPath := fmt.Sprintf(machinesPath, url.PathEscape(ac.subscriptionID), url.PathEscape(resourceGroup), url.PathEscape(projectName))
	return listAll[Machine](ctx, ac, urlPath, apiVersionMachines)
}

// ListSolutions returns the solutions registered in a migrate project.
func (ac *azureClient) ListSolutions(ctx context.Context, resourceGroup, projectName string) ([]Solution, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.azureClient.ListSolutions")
	defer done()

	urlPath := fmt.Sprintf(solutionsPath, url.PathEscape(ac.subscriptionID), url.PathEscape(resourceGroup), url.PathEscape(projectName))
	return listAll[Solution](ctx, ac, urlPath, apiVersionSolutions)
}

// ListSites returns the OffAzure sites of a resource group. Generic
// resource listing does not include resource properties, so each found
// site is hydrated with a direct read.
func (ac *azureClient) ListSites(ctx context.Context, resourceGroup string) ([]Site, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.azureClient.ListSites")
	defer done()

	var sites []Site
	for _, resourceType := range siteResourceTypes {
		opts := &armresources.ClientListByResourceGroupOptions{
			Filter: ptr.To(fmt.Sprintf("resourceType eq '%s'", resourceType)),
		}
		pager := ac.resources.NewListByResourceGroupPager(resourceGroup, opts)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, resource := range page.Value {
				if resource == nil || resource.ID == nil {
					continue
				}
				var site Site
				if err := ac.get(ctx, *resource.ID, apiVersionSites, &site); err != nil {
					return nil, err
				}
				sites = append(sites, site)
			}
		}
	}
	return sites, nil
}

// QuerySites finds the OffAzure sites of a migrate project through Azure
// Resource Graph. One query returns the sites of all three kinds with
// their properties included.
func (ac *azureClient) QuerySites(ctx context.Context, resourceGroup, projectName string) ([]Site, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "migrate.azureClient.QuerySites")
	defer done()

	request := armresourcegraph.QueryRequest{
		Query:         ptr.To(fmt.Sprintf(graphSiteQuery, resourceGroup, projectName)),
		Subscriptions: []*string{ptr.To(ac.subscriptionID)},
		Options: &armresourcegraph.QueryRequestOptions{
			ResultFormat: ptr.To(armresourcegraph.ResultFormatObjectArray),
		},
	}
	resp, err := ac.graph.Resources(ctx, request, nil)
	if err != nil {
		return nil, err
	}
	rows, ok := resp.Data.([]any)
	if !ok {
		return nil, errors.Errorf("unexpected resource graph payload of type %T", resp.Data)
	}
	sites := make([]Site, 0, len(rows))
	for _, row := range rows {
		site, ok := siteFromGraphRow(row)
		if !ok {
			continue
		}
		sites = append(sites, site)
	}
	return sites, nil
}

// siteFromGraphRow decodes one resource graph result row into a Site.
func siteFromGraphRow(row any) (Site, bool) {
	m, ok := row.(map[string]any)
	if !ok {
		return Site{}, false
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return Site{}, false
	}
	var site Site
	if err := json.Unmarshal(raw, &site); err != nil {
		return Site{}, false
	}
	return site, site.ID != ""
}

// listResult is the paginated collection envelope of the migrate hub
// endpoints. Older api-versions page through @odata.nextLink instead of
// nextLink.
type listResult[T any] struct {
	Value         []T    `json:"value"`
	NextLink      string `json:"nextLink"`
	ODataNextLink string `json:"@odata.nextLink"`
}

func (r listResult[T]) next() string {
	if r.NextLink != "" {
		return r.NextLink
	}
	return r.ODataNextLink
}

// listAll fetches a collection page by page until no next link remains.
func listAll[T any](ctx context.Context, ac *azureClient, urlPath, apiVersion string) ([]T, error) {
	var out []T
	next := ""
	for {
		var page listResult[T]
		if next == "" {
			if err := ac.get(ctx, urlPath, apiVersion, &page); err != nil {
				return nil, err
			}
		} else {
			if err := ac.getURL(ctx, next, &page); err != nil {
				return nil, err
			}
		}
		out = append(out, page.Value...)
		next = page.next()
		if next == "" {
			return out, nil
		}
	}
}

// get performs a GET of an ARM path relative to the configured endpoint.
func (ac *azureClient) get(ctx context.Context, urlPath, apiVersion string, out any) error {
	req, err := runtime.NewRequest(ctx, http.MethodGet, runtime.JoinPaths(ac.migrate.Endpoint(), urlPath))
	if err != nil {
		return err
	}
	reqQP := req.Raw().URL.Query()
	reqQP.Set("api-version", apiVersion)
	req.Raw().URL.RawQuery = reqQP.Encode()
	return ac.do(req, out)
}

// getURL performs a GET of an absolute URL, used to follow next links
// which already carry their api-version.
func (ac *azureClient) getURL(ctx context.Context, rawURL string, out any) error {
	req, err := runtime.NewRequest(ctx, http.MethodGet, rawURL)
	if err != nil {
		return err
	}
	return ac.do(req, out)
}

func (ac *azureClient) do(req *policy.Request, out any) error {
	req.Raw().Header["Accept"] = []string{"application/json"}
	resp, err := ac.migrate.Pipeline().Do(req)
	if err != nil {
		return err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return runtime.NewResponseError(resp)
	}
	return runtime.UnmarshalAsJSON(resp, out)
}
