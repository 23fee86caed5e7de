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

package storageaccounts

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"k8s.io/utils/ptr"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// Tags stamped on auto-created replication cache accounts, so they can be
// told apart from customer-managed storage later.
const (
	TagPurpose        = "Purpose"
	TagPurposeValue   = "MigrationCache"
	TagCreatedBy      = "CreatedBy"
	TagCreatedByValue = "azmig-tool-assistant"
)

// StorageScope defines the scope interface for the storage accounts
// service.
type StorageScope interface {
	azure.Authorizer
	azure.RunCacher
}

// Service manages the replication cache storage accounts of migrate
// projects.
type Service struct {
	Scope StorageScope
	Client
}

// New creates a new storage accounts service.
func New(scope StorageScope) (*Service, error) {
	client, err := newClient(scope)
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		Client: client,
	}, nil
}

// Get returns the named storage account. A missing account surfaces as an
// error matched by azure.ResourceNotFound. Lookup failures are not cached,
// so a Get after CreateCacheAccount observes the new account.
func (s *Service) Get(ctx context.Context, resourceGroup, accountName string) (armstorage.Account, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "storageaccounts.Service.Get")
	defer done()

	key := azure.CallKey{Op: "storageaccounts.GetProperties", SubscriptionID: s.Scope.SubscriptionID(), ResourceGroup: resourceGroup, Resource: accountName}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) (armstorage.Account, error) {
		account, err := s.Client.GetProperties(ctx, resourceGroup, accountName)
		if err != nil {
			return armstorage.Account{}, errors.Wrapf(err, "failed to get storage account %s", accountName)
		}
		return account, nil
	})
}

// CreateCacheAccount creates a replication cache account in the given
// location: Standard_LRS, StorageV2, tagged as migration cache.
func (s *Service) CreateCacheAccount(ctx context.Context, resourceGroup, accountName, location string) (armstorage.Account, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "storageaccounts.Service.CreateCacheAccount")
	defer done()

	if !IsValidAccountName(accountName) {
		return armstorage.Account{}, errors.Errorf("storage account name %q is invalid: must be 3 to 24 lowercase alphanumeric characters", accountName)
	}

	params := armstorage.AccountCreateParameters{
		Kind:     ptr.To(armstorage.KindStorageV2),
		Location: ptr.To(location),
		SKU: &armstorage.SKU{
			Name: ptr.To(armstorage.SKUNameStandardLRS),
		},
		Tags: map[string]*string{
			TagPurpose:   ptr.To(TagPurposeValue),
			TagCreatedBy: ptr.To(TagCreatedByValue),
		},
	}
	account, err := s.Client.Create(ctx, resourceGroup, accountName, params)
	if err != nil {
		return armstorage.Account{}, errors.Wrapf(err, "failed to create storage account %s", accountName)
	}
	return account, nil
}

// IsValidAccountName reports whether the name satisfies Azure storage
// account naming, 3 to 24 lowercase alphanumeric characters.
func IsValidAccountName(name string) bool {
	return govalidator.StringLength(name, "3", "24") &&
		govalidator.IsLowerCase(name) &&
		govalidator.IsAlphanumeric(name)
}
