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

package azure

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// credentialCache caches azcore.TokenCredentials so the underlying MSAL token
// cache is shared among all callers authenticating with the same parameters,
// keeping the number of token requests to Microsoft Entra ID to a minimum.
type credentialCache struct {
	mut   *sync.Mutex
	cache map[credentialCacheKey]azcore.TokenCredential
}

type authType string

const (
	authTypeClientSecret    authType = "ClientSecret"
	authTypeManagedIdentity authType = "ManagedIdentity"
	authTypeDefault         authType = "Default"
)

// credentialCacheKey identifies a credential by the parameters used to create
// it. Secrets are hashed so the key never holds plaintext credentials.
type credentialCacheKey struct {
	tenantID   string
	clientID   string
	authType   authType
	secretHash string
}

// NewCredentialCache creates a new, empty CredentialCache.
func NewCredentialCache() CredentialCache {
	return &credentialCache{
		mut:   new(sync.Mutex),
		cache: make(map[credentialCacheKey]azcore.TokenCredential),
	}
}

// GetOrStoreClientSecret returns the cached client secret credential for the
// given parameters, creating and caching one if none exists.
func (c *credentialCache) GetOrStoreClientSecret(tenantID, clientID, clientSecret string, opts *azidentity.ClientSecretCredentialOptions) (azcore.TokenCredential, error) {
	return c.getOrStore(
		credentialCacheKey{
			tenantID:   tenantID,
			clientID:   clientID,
			authType:   authTypeClientSecret,
			secretHash: hashSum(clientSecret),
		},
		func() (azcore.TokenCredential, error) {
			return azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, opts)
		},
	)
}

// GetOrStoreManagedIdentity returns the cached managed identity credential for
// the given client ID, creating and caching one if none exists. An empty
// client ID selects the system-assigned identity.
func (c *credentialCache) GetOrStoreManagedIdentity(clientID string, opts *azidentity.ManagedIdentityCredentialOptions) (azcore.TokenCredential, error) {
	return c.getOrStore(
		credentialCacheKey{
			clientID: clientID,
			authType: authTypeManagedIdentity,
		},
		func() (azcore.TokenCredential, error) {
			o := azidentity.ManagedIdentityCredentialOptions{}
			if opts != nil {
				o = *opts
			}
			if clientID != "" {
				o.ID = azidentity.ClientID(clientID)
			}
			return azidentity.NewManagedIdentityCredential(&o)
		},
	)
}

// GetOrStoreDefault returns the cached default Azure credential, creating and
// caching one if none exists.
func (c *credentialCache) GetOrStoreDefault(opts *azidentity.DefaultAzureCredentialOptions) (azcore.TokenCredential, error) {
	return c.getOrStore(
		credentialCacheKey{
			authType: authTypeDefault,
		},
		func() (azcore.TokenCredential, error) {
			return azidentity.NewDefaultAzureCredential(opts)
		},
	)
}

// getOrStore looks up the credential identified by key, invoking newCredFunc
// to create and store one if it's not already cached. Errors from newCredFunc
// are returned as-is and nothing is cached for that key.
func (c *credentialCache) getOrStore(key credentialCacheKey, newCredFunc func() (azcore.TokenCredential, error)) (azcore.TokenCredential, error) {
	c.mut.Lock()
	defer c.mut.Unlock()

	cred, ok := c.cache[key]
	if ok {
		return cred, nil
	}

	cred, err := newCredFunc()
	if err != nil {
		return nil, err
	}
	c.cache[key] = cred
	return cred, nil
}

func hashSum(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}
