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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
	"github.com/mayoit/azmig-tool-assistant/util/timeouts"
)

// Client wraps the storage account API surface consumed by the cache
// storage check.
type Client interface {
	GetProperties(ctx context.Context, resourceGroup, accountName string) (armstorage.Account, error)
	Create(ctx context.Context, resourceGroup, accountName string, params armstorage.AccountCreateParameters) (armstorage.Account, error)
}

// azureClient contains the Azure go-sdk Client.
type azureClient struct {
	accounts *armstorage.AccountsClient
}

var _ Client = (*azureClient)(nil)

// newClient creates a new storage accounts client from an authorizer.
func newClient(auth azure.Authorizer) (*azureClient, error) {
	opts, err := azure.ARMClientOptions(auth.CloudEnvironment())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create storageaccounts client options")
	}
	factory, err := armstorage.NewClientFactory(auth.SubscriptionID(), auth.Token(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create armstorage client factory")
	}
	return &azureClient{accounts: factory.NewAccountsClient()}, nil
}

// GetProperties returns the specified storage account.
func (ac *azureClient) GetProperties(ctx context.Context, resourceGroup, accountName string) (armstorage.Account, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "storageaccounts.azureClient.GetProperties")
	defer done()

	resp, err := ac.accounts.GetProperties(ctx, resourceGroup, accountName, nil)
	if err != nil {
		return armstorage.Account{}, err
	}
	return resp.Account, nil
}

// Create creates a storage account. Creation is a long-running operation,
// so the request is sent and then polled to completion under the storage
// creation budget.
func (ac *azureClient) Create(ctx context.Context, resourceGroup, accountName string, params armstorage.AccountCreateParameters) (armstorage.Account, error) {
	ctx, log, done := tele.StartSpanWithLogger(ctx, "storageaccounts.azureClient.Create")
	defer done()

	log.V(4).Info("sending request", "resourceGroup", resourceGroup, "account", accountName)
	poller, err := ac.accounts.BeginCreate(ctx, resourceGroup, accountName, params, nil)
	if err != nil {
		return armstorage.Account{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.DefaultStorageCreateTimeout)
	defer cancel()

	resp, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{})
	if err != nil {
		return armstorage.Account{}, err
	}
	return resp.Account, nil
}
