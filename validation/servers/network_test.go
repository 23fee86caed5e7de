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

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

func TestCheckVNetSubnet(t *testing.T) {
	testcases := []struct {
		name             string
		expectedSeverity validation.Severity
		expectedSummary  string
		expectedDetail   string
		expect           func(m testMocks)
	}{
		{
			name:             "subnet with plenty of addresses",
			expectedSeverity: validation.SeverityOK,
			expectedSummary:  `subnet "snet-app" has 241 free IP addresses`,
			expect: func(m testMocks) {
				m.networks.EXPECT().Get(gomock.Any(), "rg-target", "vnet-prod").Return(armnetwork.VirtualNetwork{}, nil)
				m.networks.EXPECT().GetSubnet(gomock.Any(), "rg-target", "vnet-prod", "snet-app").
					Return(testSubnet("10.0.0.0/24", 10), nil)
			},
		},
		{
			name:             "missing virtual network",
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `virtual network "vnet-prod" not found in resource group "rg-target"`,
			expect: func(m testMocks) {
				m.networks.EXPECT().Get(gomock.Any(), "rg-target", "vnet-prod").
					Return(armnetwork.VirtualNetwork{}, responseError(http.StatusNotFound))
			},
		},
		{
			name:             "missing subnet",
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `subnet "snet-app" not found in virtual network "vnet-prod"`,
			expect: func(m testMocks) {
				m.networks.EXPECT().Get(gomock.Any(), "rg-target", "vnet-prod").Return(armnetwork.VirtualNetwork{}, nil)
				m.networks.EXPECT().GetSubnet(gomock.Any(), "rg-target", "vnet-prod", "snet-app").
					Return(armnetwork.Subnet{}, responseError(http.StatusNotFound))
			},
		},
		{
			name:             "delegated subnet",
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `subnet "snet-app" is delegated`,
			expectedDetail:   "Microsoft.Web/serverFarms",
			expect: func(m testMocks) {
				m.networks.EXPECT().Get(gomock.Any(), "rg-target", "vnet-prod").Return(armnetwork.VirtualNetwork{}, nil)
				m.networks.EXPECT().GetSubnet(gomock.Any(), "rg-target", "vnet-prod", "snet-app").
					Return(testSubnet("10.0.0.0/24", 0, "Microsoft.Web/serverFarms"), nil)
			},
		},
		{
			name:             "no free addresses",
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `subnet "snet-app" has no free IP addresses`,
			expectedDetail:   "capacity 16, 5 reserved by Azure, 11 in use",
			expect: func(m testMocks) {
				m.networks.EXPECT().Get(gomock.Any(), "rg-target", "vnet-prod").Return(armnetwork.VirtualNetwork{}, nil)
				m.networks.EXPECT().GetSubnet(gomock.Any(), "rg-target", "vnet-prod", "snet-app").
					Return(testSubnet("10.0.0.0/28", 11), nil)
			},
		},
		{
			name:             "free addresses at the five percent boundary",
			expectedSeverity: validation.SeverityWarning,
			expectedSummary:  `subnet "snet-app" is close to IP exhaustion`,
			expectedDetail:   "12 free of 256 addresses",
			expect: func(m testMocks) {
				// 256 - 5 - 239 = 12 free, and 12/256 is under 5%.
				m.networks.EXPECT().Get(gomock.Any(), "rg-target", "vnet-prod").Return(armnetwork.VirtualNetwork{}, nil)
				m.networks.EXPECT().GetSubnet(gomock.Any(), "rg-target", "vnet-prod", "snet-app").
					Return(testSubnet("10.0.0.0/24", 239), nil)
			},
		},
		{
			name:             "free addresses just above the boundary",
			expectedSeverity: validation.SeverityOK,
			expectedSummary:  `subnet "snet-app" has 13 free IP addresses`,
			expect: func(m testMocks) {
				m.networks.EXPECT().Get(gomock.Any(), "rg-target", "vnet-prod").Return(armnetwork.VirtualNetwork{}, nil)
				m.networks.EXPECT().GetSubnet(gomock.Any(), "rg-target", "vnet-prod", "snet-app").
					Return(testSubnet("10.0.0.0/24", 238), nil)
			},
		},
		{
			name:             "network read failure is reported",
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  "failed to read the target virtual network",
			expect: func(m testMocks) {
				m.networks.EXPECT().Get(gomock.Any(), "rg-target", "vnet-prod").
					Return(armnetwork.VirtualNetwork{}, responseError(http.StatusInternalServerError))
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			v, mocks := newTestValidator(t, config.Default())
			tc.expect(mocks)

			outcome := v.checkVNetSubnet(context.Background())
			g.Expect(outcome.CheckID).To(Equal(validation.CheckServerVNetSubnet))
			g.Expect(outcome.Severity).To(Equal(tc.expectedSeverity))
			g.Expect(outcome.Summary).To(Equal(tc.expectedSummary))
			if tc.expectedDetail != "" {
				g.Expect(outcome.Detail).To(ContainSubstring(tc.expectedDetail))
			}
		})
	}
}
