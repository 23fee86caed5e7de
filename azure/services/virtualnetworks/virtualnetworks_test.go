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
	"io"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/virtualnetworks/mock_virtualnetworks"
	gomockinternal "github.com/mayoit/azmig-tool-assistant/internal/test/matchers/gomock"
)

func internalError() *azcore.ResponseError {
	return &azcore.ResponseError{
		RawResponse: &http.Response{
			Body:       io.NopCloser(strings.NewReader("#: Internal Server Error: StatusCode=500")),
			StatusCode: http.StatusInternalServerError,
		},
		StatusCode: http.StatusInternalServerError,
	}
}

func TestGetVNet(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, c *mock_virtualnetworks.MockClientMockRecorder)
	}{
		{
			name:          "virtual network exists",
			expectedError: "",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, c *mock_virtualnetworks.MockClientMockRecorder) {
				c.Get(gomockinternal.AContext(), "my-rg", "my-vnet").Return(armnetwork.VirtualNetwork{
					Name:     ptr.To("my-vnet"),
					Location: ptr.To("eastus"),
				}, nil)
			},
		},
		{
			name:          "virtual network get fails",
			expectedError: "failed to get virtual network my-vnet in resource group my-rg",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, c *mock_virtualnetworks.MockClientMockRecorder) {
				c.Get(gomockinternal.AContext(), "my-rg", "my-vnet").Return(armnetwork.VirtualNetwork{}, internalError())
			},
		},
	}
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_virtualnetworks.NewMockVNetScope(mockCtrl)
			clientMock := mock_virtualnetworks.NewMockClient(mockCtrl)

			runCache, err := azure.NewRunCache()
			g.Expect(err).NotTo(HaveOccurred())
			scopeMock.EXPECT().SubscriptionID().Return("123").AnyTimes()
			scopeMock.EXPECT().RunCache().Return(runCache).AnyTimes()
			tc.expect(scopeMock.EXPECT(), clientMock.EXPECT())

			s := &Service{
				Scope:  scopeMock,
				Client: clientMock,
			}

			vnet, err := s.Get(context.Background(), "my-rg", "my-vnet")
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
			} else {
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(vnet.Name).To(Equal(ptr.To("my-vnet")))
			}
		})
	}
}

func TestGetSubnet(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, c *mock_virtualnetworks.MockClientMockRecorder)
	}{
		{
			name:          "subnet exists",
			expectedError: "",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, c *mock_virtualnetworks.MockClientMockRecorder) {
				c.GetSubnet(gomockinternal.AContext(), "my-rg", "my-vnet", "my-subnet").Return(armnetwork.Subnet{
					Name: ptr.To("my-subnet"),
					Properties: &armnetwork.SubnetPropertiesFormat{
						AddressPrefix: ptr.To("10.0.0.0/24"),
					},
				}, nil)
			},
		},
		{
			name:          "subnet get fails",
			expectedError: "failed to get subnet my-subnet in virtual network my-vnet",
			expect: func(s *mock_virtualnetworks.MockVNetScopeMockRecorder, c *mock_virtualnetworks.MockClientMockRecorder) {
				c.GetSubnet(gomockinternal.AContext(), "my-rg", "my-vnet", "my-subnet").Return(armnetwork.Subnet{}, internalError())
			},
		},
	}
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			scopeMock := mock_virtualnetworks.NewMockVNetScope(mockCtrl)
			clientMock := mock_virtualnetworks.NewMockClient(mockCtrl)

			runCache, err := azure.NewRunCache()
			g.Expect(err).NotTo(HaveOccurred())
			scopeMock.EXPECT().SubscriptionID().Return("123").AnyTimes()
			scopeMock.EXPECT().RunCache().Return(runCache).AnyTimes()
			tc.expect(scopeMock.EXPECT(), clientMock.EXPECT())

			s := &Service{
				Scope:  scopeMock,
				Client: clientMock,
			}

			subnet, err := s.GetSubnet(context.Background(), "my-rg", "my-vnet", "my-subnet")
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
			} else {
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(subnet.Name).To(Equal(ptr.To("my-subnet")))
			}
		})
	}
}

func TestAddressCapacity(t *testing.T) {
	testcases := []struct {
		name          string
		subnet        armnetwork.Subnet
		expected      int64
		expectedError string
	}{
		{
			name: "single ipv4 prefix",
			subnet: armnetwork.Subnet{
				Properties: &armnetwork.SubnetPropertiesFormat{AddressPrefix: ptr.To("10.0.0.0/24")},
			},
			expected: 256,
		},
		{
			name: "wide ipv4 prefix",
			subnet: armnetwork.Subnet{
				Properties: &armnetwork.SubnetPropertiesFormat{AddressPrefix: ptr.To("10.0.0.0/16")},
			},
			expected: 65536,
		},
		{
			name: "multiple prefixes are summed",
			subnet: armnetwork.Subnet{
				Properties: &armnetwork.SubnetPropertiesFormat{
					AddressPrefixes: []*string{ptr.To("10.0.0.0/24"), ptr.To("10.0.1.0/25")},
				},
			},
			expected: 384,
		},
		{
			name: "huge ipv6 prefix is capped",
			subnet: armnetwork.Subnet{
				Properties: &armnetwork.SubnetPropertiesFormat{AddressPrefix: ptr.To("2001:db8::/64")},
			},
			expected: math.MaxInt64,
		},
		{
			name:          "no properties",
			subnet:        armnetwork.Subnet{},
			expectedError: "subnet has no properties",
		},
		{
			name: "no prefix",
			subnet: armnetwork.Subnet{
				Properties: &armnetwork.SubnetPropertiesFormat{},
			},
			expectedError: "subnet has no address prefix",
		},
		{
			name: "malformed prefix",
			subnet: armnetwork.Subnet{
				Properties: &armnetwork.SubnetPropertiesFormat{AddressPrefix: ptr.To("not-a-cidr")},
			},
			expectedError: "failed to parse subnet address prefix",
		},
	}
	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()

			capacity, err := AddressCapacity(tc.subnet)
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
			} else {
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(capacity).To(Equal(tc.expected))
			}
		})
	}
}

func TestDelegations(t *testing.T) {
	g := NewWithT(t)

	g.Expect(Delegations(armnetwork.Subnet{})).To(BeEmpty())
	g.Expect(Delegations(armnetwork.Subnet{
		Properties: &armnetwork.SubnetPropertiesFormat{
			Delegations: []*armnetwork.Delegation{
				{
					Name: ptr.To("aci"),
					Properties: &armnetwork.ServiceDelegationPropertiesFormat{
						ServiceName: ptr.To("Microsoft.ContainerInstance/containerGroups"),
					},
				},
				nil,
				{Name: ptr.To("empty")},
			},
		},
	})).To(Equal([]string{"Microsoft.ContainerInstance/containerGroups"}))
}

func TestUsedIPConfigurations(t *testing.T) {
	g := NewWithT(t)

	g.Expect(UsedIPConfigurations(armnetwork.Subnet{})).To(Equal(0))
	g.Expect(UsedIPConfigurations(armnetwork.Subnet{
		Properties: &armnetwork.SubnetPropertiesFormat{
			IPConfigurations: []*armnetwork.IPConfiguration{
				{ID: ptr.To("ipconfig-1")},
				{ID: ptr.To("ipconfig-2")},
			},
		},
	})).To(Equal(2))
}
