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

package servers

import (
	"context"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

func TestCheckRegion(t *testing.T) {
	testcases := []struct {
		name             string
		targetRegion     string
		locations        []string
		listError        error
		expectedSeverity validation.Severity
		expectedSummary  string
	}{
		{
			name:             "declared region is available",
			targetRegion:     "eastus",
			locations:        []string{"eastus", "westus2", "westeurope"},
			expectedSeverity: validation.SeverityOK,
			expectedSummary:  `target region "eastus" is available`,
		},
		{
			name:             "display name matches after normalization",
			targetRegion:     "East US",
			locations:        []string{"eastus", "westus2"},
			expectedSeverity: validation.SeverityOK,
			expectedSummary:  `target region "East US" is available`,
		},
		{
			name:             "unknown region fails",
			targetRegion:     "eastus9",
			locations:        []string{"eastus", "westus2"},
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `target region "eastus9" is not available to the subscription`,
		},
		{
			name:             "location listing failure",
			targetRegion:     "eastus",
			listError:        responseError(http.StatusInternalServerError),
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  "failed to list subscription locations",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			v, mocks := newTestValidator(t, config.Default())
			v.Machine.TargetRegion = tc.targetRegion
			mocks.locations.EXPECT().ListLocations(gomock.Any()).Return(tc.locations, tc.listError)

			outcome := v.checkRegion(context.Background())
			g.Expect(outcome.CheckID).To(Equal(validation.CheckServerRegion))
			g.Expect(outcome.Severity).To(Equal(tc.expectedSeverity))
			g.Expect(outcome.Summary).To(Equal(tc.expectedSummary))
		})
	}
}

func TestCheckResourceGroup(t *testing.T) {
	testcases := []struct {
		name             string
		group            armresources.ResourceGroup
		getError         error
		expectedSeverity validation.Severity
		expectedSummary  string
	}{
		{
			name:             "group in the target region",
			group:            resourceGroup("eastus"),
			expectedSeverity: validation.SeverityOK,
			expectedSummary:  `resource group "rg-target" is ready`,
		},
		{
			name:             "group in another region warns",
			group:            resourceGroup("westeurope"),
			expectedSeverity: validation.SeverityWarning,
			expectedSummary:  `resource group "rg-target" is in another region`,
		},
		{
			name:             "missing group fails",
			getError:         responseError(http.StatusNotFound),
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `resource group "rg-target" not found`,
		},
		{
			name:             "read failure is reported",
			getError:         responseError(http.StatusInternalServerError),
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  "failed to read the target resource group",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			v, mocks := newTestValidator(t, config.Default())
			mocks.groups.EXPECT().Get(gomock.Any(), "rg-target").Return(tc.group, tc.getError)

			outcome := v.checkResourceGroup(context.Background())
			g.Expect(outcome.CheckID).To(Equal(validation.CheckServerResourceGroup))
			g.Expect(outcome.Severity).To(Equal(tc.expectedSeverity))
			g.Expect(outcome.Summary).To(Equal(tc.expectedSummary))
		})
	}
}
