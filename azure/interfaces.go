/*
Copyright 2023 The AzMig Authors.

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

package azure

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// Authorizer is an interface which can get details of the Azure identity
// that validation calls run as.
type Authorizer interface {
	SubscriptionID() string
	TenantID() string
	ClientID() string
	// PrincipalID is the object ID of the running identity, used for
	// role-assignment lookups.
	PrincipalID() string
	CloudEnvironment() string
	BaseURI() string
	Token() azcore.TokenCredential
	// HashKey returns a base64 url encoded sha256 hash for the Auth Scope.
	HashKey() string
}

// CredentialCache fetches Azure credentials, minting and caching a new one
// when no credential exists yet for the requested identity.
type CredentialCache interface {
	GetOrStoreClientSecret(tenantID, clientID, clientSecret string, opts *azidentity.ClientSecretCredentialOptions) (azcore.TokenCredential, error)
	GetOrStoreManagedIdentity(clientID string, opts *azidentity.ManagedIdentityCredentialOptions) (azcore.TokenCredential, error)
	GetOrStoreDefault(opts *azidentity.DefaultAzureCredentialOptions) (azcore.TokenCredential, error)
}

// RunCacher provides the cache that deduplicates Azure calls within a
// validation run.
type RunCacher interface {
	RunCache() *RunCache
}
