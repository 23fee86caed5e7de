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
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/mock_azure"
)

type fakeTokenCredential struct{}

func (fakeTokenCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "fake"}, nil
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cloud   string
		wantErr string
	}{
		{
			name:  "public cloud",
			cloud: azure.PublicCloudName,
		},
		{
			name:  "government cloud",
			cloud: azure.USGovernmentCloudName,
		},
		{
			name:    "unknown cloud",
			cloud:   "AzureMoonCloud",
			wantErr: "failed to create migrate client options",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			auth := mock_azure.NewMockAuthorizer(mockCtrl)
			auth.EXPECT().CloudEnvironment().Return(tc.cloud)
			if tc.wantErr == "" {
				auth.EXPECT().Token().Return(fakeTokenCredential{}).AnyTimes()
				auth.EXPECT().SubscriptionID().Return("123").AnyTimes()
			}

			client, err := newClient(auth)
			if tc.wantErr != "" {
				g.Expect(err).To(MatchError(ContainSubstring(tc.wantErr)))
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(client.subscriptionID).To(Equal("123"))
		})
	}
}
