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

package landingzone

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/migrate"
	"github.com/mayoit/azmig-tool-assistant/azure/services/quotas"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
	"github.com/mayoit/azmig-tool-assistant/validation/landingzone/mock_landingzone"
)

const (
	testSubscription = "20000000-0000-0000-0000-000000000001"
	testPrincipal    = "90000000-0000-0000-0000-000000000009"
)

func testProject() validation.ProjectDecl {
	return validation.ProjectDecl{
		SubscriptionID:            testSubscription,
		ResourceGroup:             "rg-migrate",
		ProjectName:               "proj",
		Region:                    "eastus",
		ApplianceName:             "appl-a",
		ApplianceKind:             validation.ApplianceVMware,
		CacheStorageAccount:       "cachesa01",
		CacheStorageResourceGroup: "rg-migrate",
	}
}

type testMocks struct {
	subscriptions *mock_landingzone.MockSubscriptionsClient
	roles         *mock_landingzone.MockRoleAssignmentsClient
	appliances    *mock_landingzone.MockAppliancesClient
	storage       *mock_landingzone.MockStorageClient
	quotas        *mock_landingzone.MockQuotasClient
	skus          *mock_landingzone.MockSKUCatalog
}

func newTestValidator(t *testing.T, cfg *config.Resolved, machines []validation.MachineDecl) (*Validator, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mocks := testMocks{
		subscriptions: mock_landingzone.NewMockSubscriptionsClient(ctrl),
		roles:         mock_landingzone.NewMockRoleAssignmentsClient(ctrl),
		appliances:    mock_landingzone.NewMockAppliancesClient(ctrl),
		storage:       mock_landingzone.NewMockStorageClient(ctrl),
		quotas:        mock_landingzone.NewMockQuotasClient(ctrl),
		skus:          mock_landingzone.NewMockSKUCatalog(ctrl),
	}
	return &Validator{
		Project:       testProject(),
		Machines:      machines,
		Config:        cfg,
		PrincipalID:   testPrincipal,
		Subscriptions: mocks.subscriptions,
		Roles:         mocks.roles,
		Appliances:    mocks.appliances,
		Storage:       mocks.storage,
		Quotas:        mocks.quotas,
		SKUs:          mocks.skus,
	}, mocks
}

func responseError(statusCode int) *azcore.ResponseError {
	return &azcore.ResponseError{
		StatusCode: statusCode,
		RawResponse: &http.Response{
			StatusCode: statusCode,
			Header:     http.Header{"X-Ms-Request-Id": []string{"req-0042"}},
			Body:       io.NopCloser(strings.NewReader("provider error")),
		},
	}
}

func contributorOn(scope string) []string {
	return []string{scope + "/providers/Microsoft.Authorization/roleDefinitions/" + azure.RoleDefinitionContributor}
}

func healthyAppliance() migrate.Appliance {
	return migrate.Appliance{
		Name:              "appl-a",
		Kind:              migrate.KindVMware,
		HealthState:       "Healthy",
		ProvisioningState: "Succeeded",
	}
}

// expectHappyTier1 sets up every Tier-1 check to pass.
func expectHappyTier1(project validation.ProjectDecl, m testMocks) {
	projectScope := azure.MigrateProjectID(project.SubscriptionID, project.ResourceGroup, project.ProjectName)
	m.subscriptions.EXPECT().Get(gomock.Any()).Return(armsubscriptions.Subscription{}, nil)
	m.roles.EXPECT().ListRoleDefinitionIDs(gomock.Any(), projectScope, testPrincipal).
		Return(contributorOn(projectScope), nil)
	m.roles.EXPECT().ListRoleDefinitionIDs(gomock.Any(), azure.SubscriptionScope(project.SubscriptionID), testPrincipal).
		Return(contributorOn(azure.SubscriptionScope(project.SubscriptionID)), nil)
	m.appliances.EXPECT().ListAppliances(gomock.Any(), project.ResourceGroup, project.ProjectName).
		Return([]migrate.Appliance{healthyAppliance()}, nil)
	m.storage.EXPECT().Get(gomock.Any(), project.CacheStorageResourceGroup, project.CacheStorageAccount).
		Return(storageAccount("eastus"), nil)
	m.quotas.EXPECT().ListVCPUUsage(gomock.Any(), "eastus").
		Return([]quotas.VCPUUsage{{Name: "cores", Current: 10, Limit: 100}}, nil)
}

func TestValidateHappyPath(t *testing.T) {
	g := NewWithT(t)

	v, mocks := newTestValidator(t, config.Default(), nil)
	expectHappyTier1(v.Project, mocks)

	readiness := v.Validate(context.Background())
	g.Expect(readiness.ProjectKey).To(Equal(v.Project.Key()))
	g.Expect(readiness.ShortCircuited).To(BeFalse())
	g.Expect(readiness.RolledUp).To(Equal(validation.SeverityOK))
	g.Expect(checkIDs(readiness.Outcomes)).To(Equal(validation.Tier1Checks()))
}

func TestValidateShortCircuitsOnCritical(t *testing.T) {
	g := NewWithT(t)

	v, mocks := newTestValidator(t, config.Default(), nil)
	mocks.subscriptions.EXPECT().Get(gomock.Any()).Return(armsubscriptions.Subscription{}, responseError(http.StatusNotFound))

	readiness := v.Validate(context.Background())
	g.Expect(readiness.ShortCircuited).To(BeTrue())
	g.Expect(readiness.RolledUp).To(Equal(validation.SeverityCritical))
	g.Expect(readiness.Outcomes).To(HaveLen(len(validation.Tier1Checks())))
	g.Expect(readiness.Outcomes[0].CheckID).To(Equal(validation.CheckAccessRBACMigrateProject))
	g.Expect(readiness.Outcomes[0].Severity).To(Equal(validation.SeverityCritical))
	g.Expect(readiness.Outcomes[0].Summary).To(Equal("subscription not accessible"))
	for _, outcome := range readiness.Outcomes[1:] {
		g.Expect(outcome.CheckID).To(Equal(validation.CheckSkipped))
		g.Expect(outcome.Severity).To(Equal(validation.SeverityOK))
	}
}

func TestValidateWithoutFailFastRunsEverything(t *testing.T) {
	g := NewWithT(t)

	cfg, err := config.Resolve(nil, "", []string{"global.fail_fast=false"})
	g.Expect(err).NotTo(HaveOccurred())

	v, mocks := newTestValidator(t, cfg, nil)
	project := v.Project
	mocks.subscriptions.EXPECT().Get(gomock.Any()).Return(armsubscriptions.Subscription{}, responseError(http.StatusNotFound))
	mocks.appliances.EXPECT().ListAppliances(gomock.Any(), project.ResourceGroup, project.ProjectName).
		Return([]migrate.Appliance{healthyAppliance()}, nil)
	mocks.storage.EXPECT().Get(gomock.Any(), project.CacheStorageResourceGroup, project.CacheStorageAccount).
		Return(storageAccount("eastus"), nil)
	mocks.quotas.EXPECT().ListVCPUUsage(gomock.Any(), "eastus").
		Return([]quotas.VCPUUsage{{Name: "cores", Current: 10, Limit: 100}}, nil)

	readiness := v.Validate(context.Background())
	g.Expect(readiness.ShortCircuited).To(BeFalse())
	g.Expect(readiness.RolledUp).To(Equal(validation.SeverityCritical))
	g.Expect(checkIDs(readiness.Outcomes)).To(Equal(validation.Tier1Checks()))
}

func TestValidateDisabledChecksAreSkipped(t *testing.T) {
	g := NewWithT(t)

	cfg, err := config.Resolve(nil, "", []string{
		"appliance.health.enabled=false",
		"storage.cache.enabled=false",
		"quota.vcpu.enabled=false",
	})
	g.Expect(err).NotTo(HaveOccurred())

	v, mocks := newTestValidator(t, cfg, nil)
	project := v.Project
	projectScope := azure.MigrateProjectID(project.SubscriptionID, project.ResourceGroup, project.ProjectName)
	mocks.subscriptions.EXPECT().Get(gomock.Any()).Return(armsubscriptions.Subscription{}, nil)
	mocks.roles.EXPECT().ListRoleDefinitionIDs(gomock.Any(), projectScope, testPrincipal).
		Return(contributorOn(projectScope), nil)
	mocks.roles.EXPECT().ListRoleDefinitionIDs(gomock.Any(), azure.SubscriptionScope(project.SubscriptionID), testPrincipal).
		Return(contributorOn(azure.SubscriptionScope(project.SubscriptionID)), nil)

	readiness := v.Validate(context.Background())
	g.Expect(checkIDs(readiness.Outcomes)).To(Equal([]validation.CheckID{validation.CheckAccessRBACMigrateProject}))
	g.Expect(readiness.RolledUp).To(Equal(validation.SeverityOK))
}

func TestValidateCancelledContext(t *testing.T) {
	g := NewWithT(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, _ := newTestValidator(t, config.Default(), nil)
	readiness := v.Validate(ctx)
	g.Expect(readiness.Outcomes).To(HaveLen(len(validation.Tier1Checks())))
	for _, outcome := range readiness.Outcomes {
		g.Expect(outcome.Severity).To(Equal(validation.SeverityWarning))
		g.Expect(outcome.Summary).To(Equal("run cancelled"))
	}
	g.Expect(readiness.RolledUp).To(Equal(validation.SeverityWarning))
}

func checkIDs(outcomes []validation.Outcome) []validation.CheckID {
	ids := make([]validation.CheckID, 0, len(outcomes))
	for _, outcome := range outcomes {
		ids = append(ids, outcome.CheckID)
	}
	return ids
}

func vmSKU(name, family string, vcpus string) armcompute.ResourceSKU {
	return armcompute.ResourceSKU{
		Name:         ptr.To(name),
		ResourceType: ptr.To("virtualMachines"),
		Family:       ptr.To(family),
		Capabilities: []*armcompute.ResourceSKUCapabilities{
			{Name: ptr.To("vCPUs"), Value: ptr.To(vcpus)},
		},
	}
}
