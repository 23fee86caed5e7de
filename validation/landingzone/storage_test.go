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
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

func storageAccount(location string) armstorage.Account {
	return armstorage.Account{
		Name:     ptr.To("cachesa01"),
		Location: ptr.To(location),
	}
}

func TestCheckStorage(t *testing.T) {
	testcases := []struct {
		name             string
		overrides        []string
		accountName      string
		expectedSeverity validation.Severity
		expectedSummary  string
		expect           func(m testMocks, rg, name string)
	}{
		{
			name:             "account present in the project region",
			expectedSeverity: validation.SeverityOK,
			expectedSummary:  `cache storage account "cachesa01" is ready`,
			expect: func(m testMocks, rg, name string) {
				m.storage.EXPECT().Get(gomock.Any(), rg, name).Return(storageAccount("eastus"), nil)
			},
		},
		{
			name:             "region mismatch warns",
			expectedSeverity: validation.SeverityWarning,
			expectedSummary:  `cache storage account "cachesa01" is in another region`,
			expect: func(m testMocks, rg, name string) {
				m.storage.EXPECT().Get(gomock.Any(), rg, name).Return(storageAccount("westus2"), nil)
			},
		},
		{
			name:             "missing account fails without auto-create",
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `cache storage account "cachesa01" not found`,
			expect: func(m testMocks, rg, name string) {
				m.storage.EXPECT().Get(gomock.Any(), rg, name).
					Return(armstorage.Account{}, responseError(http.StatusNotFound))
			},
		},
		{
			name:             "auto-create creates the missing account",
			overrides:        []string{"storage.cache.auto_create=true"},
			expectedSeverity: validation.SeverityOK,
			expectedSummary:  `cache storage account "cachesa01" created`,
			expect: func(m testMocks, rg, name string) {
				m.storage.EXPECT().Get(gomock.Any(), rg, name).
					Return(armstorage.Account{}, responseError(http.StatusNotFound))
				m.storage.EXPECT().CreateCacheAccount(gomock.Any(), rg, name, "eastus").
					Return(storageAccount("eastus"), nil)
			},
		},
		{
			name:             "auto-create failure is reported",
			overrides:        []string{"storage.cache.auto_create=true"},
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `failed to create cache storage account "cachesa01"`,
			expect: func(m testMocks, rg, name string) {
				m.storage.EXPECT().Get(gomock.Any(), rg, name).
					Return(armstorage.Account{}, responseError(http.StatusNotFound))
				m.storage.EXPECT().CreateCacheAccount(gomock.Any(), rg, name, "eastus").
					Return(armstorage.Account{}, responseError(http.StatusConflict))
			},
		},
		{
			name:             "auto-create refuses an invalid account name",
			overrides:        []string{"storage.cache.auto_create=true"},
			accountName:      "Cache-SA-01",
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  `cannot create cache storage account "Cache-SA-01"`,
			expect: func(m testMocks, rg, name string) {
				m.storage.EXPECT().Get(gomock.Any(), rg, name).
					Return(armstorage.Account{}, responseError(http.StatusNotFound))
			},
		},
		{
			name:             "read failure is reported with its cause",
			expectedSeverity: validation.SeverityFailure,
			expectedSummary:  "failed to read the cache storage account",
			expect: func(m testMocks, rg, name string) {
				m.storage.EXPECT().Get(gomock.Any(), rg, name).
					Return(armstorage.Account{}, responseError(http.StatusInternalServerError))
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			cfg, err := config.Resolve(nil, "", tc.overrides)
			g.Expect(err).NotTo(HaveOccurred())

			v, mocks := newTestValidator(t, cfg, nil)
			if tc.accountName != "" {
				v.Project.CacheStorageAccount = tc.accountName
			}
			tc.expect(mocks, v.Project.CacheStorageResourceGroup, v.Project.CacheStorageAccount)

			outcome := v.checkStorage(context.Background())
			g.Expect(outcome.CheckID).To(Equal(validation.CheckStorageCache))
			g.Expect(outcome.Severity).To(Equal(tc.expectedSeverity))
			g.Expect(outcome.Summary).To(Equal(tc.expectedSummary))
		})
	}
}

func TestCheckStorageSecondRunAfterAutoCreate(t *testing.T) {
	g := NewWithT(t)
	cfg, err := config.Resolve(nil, "", []string{"storage.cache.auto_create=true"})
	g.Expect(err).NotTo(HaveOccurred())

	// The account exists now, so no create is issued.
	v, mocks := newTestValidator(t, cfg, nil)
	mocks.storage.EXPECT().Get(gomock.Any(), v.Project.CacheStorageResourceGroup, v.Project.CacheStorageAccount).
		Return(storageAccount("eastus"), nil)

	outcome := v.checkStorage(context.Background())
	g.Expect(outcome.Severity).To(Equal(validation.SeverityOK))
	g.Expect(outcome.Summary).To(Equal(`cache storage account "cachesa01" is ready`))
}
