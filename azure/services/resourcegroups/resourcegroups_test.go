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

package resourcegroups

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/resourcegroups/mock_resourcegroups"
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

func notFoundError() *azcore.ResponseError {
	return &azcore.ResponseError{
		ErrorCode: "ResourceGroupNotFound",
		RawResponse: &http.Response{
			Body:       io.NopCloser(strings.NewReader("#: Not Found: StatusCode=404")),
			StatusCode: http.StatusNotFound,
		},
		StatusCode: http.StatusNotFound,
	}
}

func TestGetResourceGroup(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expect        func(s *mock_resourcegroups.MockResourceGroupScopeMockRecorder, c *mock_resourcegroups.MockClientMockRecorder)
	}{
		{
			name:          "resource group exists",
			expectedError: "",
			expect: func(s *mock_resourcegroups.MockResourceGroupScopeMockRecorder, c *mock_resourcegroups.MockClientMockRecorder) {
				c.Get(gomockinternal.AContext(), "my-rg").Return(armresources.ResourceGroup{
					Name:     ptr.To("my-rg"),
					Location: ptr.To("eastus"),
				}, nil)
			},
		},
		{
			name:          "resource group get fails",
			expectedError: "failed to get resource group my-rg",
			expect: func(s *mock_resourcegroups.MockResourceGroupScopeMockRecorder, c *mock_resourcegroups.MockClientMockRecorder) {
				c.Get(gomockinternal.AContext(), "my-rg").Return(armresources.ResourceGroup{}, internalError())
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
			scopeMock := mock_resourcegroups.NewMockResourceGroupScope(mockCtrl)
			clientMock := mock_resourcegroups.NewMockClient(mockCtrl)

			runCache, err := azure.NewRunCache()
			g.Expect(err).NotTo(HaveOccurred())
			scopeMock.EXPECT().SubscriptionID().Return("123").AnyTimes()
			scopeMock.EXPECT().RunCache().Return(runCache).AnyTimes()
			tc.expect(scopeMock.EXPECT(), clientMock.EXPECT())

			s := &Service{
				Scope:  scopeMock,
				Client: clientMock,
			}

			group, err := s.Get(context.Background(), "my-rg")
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
			} else {
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(group.Name).To(Equal(ptr.To("my-rg")))
			}
		})
	}
}

// Wrapping must not hide the response error from the classification helpers.
func TestGetResourceGroupNotFound(t *testing.T) {
	g := NewWithT(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	scopeMock := mock_resourcegroups.NewMockResourceGroupScope(mockCtrl)
	clientMock := mock_resourcegroups.NewMockClient(mockCtrl)

	runCache, err := azure.NewRunCache()
	g.Expect(err).NotTo(HaveOccurred())
	scopeMock.EXPECT().SubscriptionID().Return("123").AnyTimes()
	scopeMock.EXPECT().RunCache().Return(runCache).AnyTimes()
	clientMock.EXPECT().Get(gomockinternal.AContext(), "ghost-rg").Return(armresources.ResourceGroup{}, notFoundError())

	s := &Service{
		Scope:  scopeMock,
		Client: clientMock,
	}

	_, err = s.Get(context.Background(), "ghost-rg")
	g.Expect(err).To(HaveOccurred())
	g.Expect(azure.ResourceNotFound(err)).To(BeTrue())
}

func TestResourceGroupLocation(t *testing.T) {
	testcases := []struct {
		name          string
		expectedError string
		expected      string
		expect        func(s *mock_resourcegroups.MockResourceGroupScopeMockRecorder, c *mock_resourcegroups.MockClientMockRecorder)
	}{
		{
			name:     "normalizes the location",
			expected: "eastus",
			expect: func(s *mock_resourcegroups.MockResourceGroupScopeMockRecorder, c *mock_resourcegroups.MockClientMockRecorder) {
				c.Get(gomockinternal.AContext(), "my-rg").Return(armresources.ResourceGroup{
					Name:     ptr.To("my-rg"),
					Location: ptr.To("East US"),
				}, nil)
			},
		},
		{
			name:          "resource group has no location",
			expectedError: "resource group my-rg has no location",
			expect: func(s *mock_resourcegroups.MockResourceGroupScopeMockRecorder, c *mock_resourcegroups.MockClientMockRecorder) {
				c.Get(gomockinternal.AContext(), "my-rg").Return(armresources.ResourceGroup{
					Name: ptr.To("my-rg"),
				}, nil)
			},
		},
		{
			name:          "resource group get fails",
			expectedError: "failed to get resource group my-rg",
			expect: func(s *mock_resourcegroups.MockResourceGroupScopeMockRecorder, c *mock_resourcegroups.MockClientMockRecorder) {
				c.Get(gomockinternal.AContext(), "my-rg").Return(armresources.ResourceGroup{}, internalError())
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
			scopeMock := mock_resourcegroups.NewMockResourceGroupScope(mockCtrl)
			clientMock := mock_resourcegroups.NewMockClient(mockCtrl)

			runCache, err := azure.NewRunCache()
			g.Expect(err).NotTo(HaveOccurred())
			scopeMock.EXPECT().SubscriptionID().Return("123").AnyTimes()
			scopeMock.EXPECT().RunCache().Return(runCache).AnyTimes()
			tc.expect(scopeMock.EXPECT(), clientMock.EXPECT())

			s := &Service{
				Scope:  scopeMock,
				Client: clientMock,
			}

			location, err := s.Location(context.Background(), "my-rg")
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(ContainSubstring(tc.expectedError))
			} else {
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(location).To(Equal(tc.expected))
			}
		})
	}
}
