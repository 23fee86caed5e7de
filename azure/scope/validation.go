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

// Package scope holds the per-run Azure scopes validation services run
// against: one identity, one subscription, one shared run cache.
package scope

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/validation"
)

// ValidationScopeParams defines the input parameters of NewValidationScope.
type ValidationScopeParams struct {
	// SubscriptionID is the default subscription calls run against. Project
	// and machine scopes override it with their declared subscription.
	SubscriptionID string
	TenantID       string
	ClientID       string
	// PrincipalID is the object ID of the running identity, consumed by the
	// role-assignment checks. It may be empty when RBAC checks are disabled.
	PrincipalID      string
	CloudEnvironment string
	Credential       azcore.TokenCredential
	// Cache is the shared run cache. A fresh one is created when nil.
	Cache *azure.RunCache
}

// ValidationScope is the identity and cache every validation call shares.
// It implements azure.Authorizer and azure.RunCacher.
type ValidationScope struct {
	subscriptionID   string
	tenantID         string
	clientID         string
	principalID      string
	cloudEnvironment string
	baseURI          string
	credential       azcore.TokenCredential
	cache            *azure.RunCache
}

// NewValidationScope creates the root scope of a validation run.
func NewValidationScope(params ValidationScopeParams) (*ValidationScope, error) {
	if params.Credential == nil {
		return nil, errors.New("credential is required when creating a ValidationScope")
	}
	baseURI, err := resourceManagerEndpoint(params.CloudEnvironment)
	if err != nil {
		return nil, err
	}
	cache := params.Cache
	if cache == nil {
		cache, err = azure.NewRunCache()
		if err != nil {
			return nil, errors.Wrap(err, "failed to create run cache")
		}
	}
	return &ValidationScope{
		subscriptionID:   params.SubscriptionID,
		tenantID:         params.TenantID,
		clientID:         params.ClientID,
		principalID:      params.PrincipalID,
		cloudEnvironment: params.CloudEnvironment,
		baseURI:          baseURI,
		credential:       params.Credential,
		cache:            cache,
	}, nil
}

// WithSubscription derives a scope targeting another subscription. The
// credential and the run cache are shared with the parent, so calls stay
// deduplicated across scopes.
func (s *ValidationScope) WithSubscription(subscriptionID string) *ValidationScope {
	if subscriptionID == "" || subscriptionID == s.subscriptionID {
		return s
	}
	derived := *s
	derived.subscriptionID = subscriptionID
	return &derived
}

// SubscriptionID returns the subscription calls run against.
func (s *ValidationScope) SubscriptionID() string {
	return s.subscriptionID
}

// TenantID returns the tenant of the running identity.
func (s *ValidationScope) TenantID() string {
	return s.tenantID
}

// ClientID returns the client ID of the running identity.
func (s *ValidationScope) ClientID() string {
	return s.clientID
}

// PrincipalID returns the object ID of the running identity.
func (s *ValidationScope) PrincipalID() string {
	return s.principalID
}

// CloudEnvironment returns the Azure environment calls run against.
func (s *ValidationScope) CloudEnvironment() string {
	return s.cloudEnvironment
}

// BaseURI returns the resource manager endpoint of the environment.
func (s *ValidationScope) BaseURI() string {
	return s.baseURI
}

// Token returns the credential of the running identity.
func (s *ValidationScope) Token() azcore.TokenCredential {
	return s.credential
}

// HashKey returns a base64 url encoded sha256 hash identifying the scope's
// identity and subscription.
func (s *ValidationScope) HashKey() string {
	hash := sha256.Sum256([]byte(strings.Join([]string{
		s.cloudEnvironment, s.tenantID, s.clientID, s.subscriptionID,
	}, "#")))
	return base64.URLEncoding.EncodeToString(hash[:])
}

// RunCache returns the shared run cache.
func (s *ValidationScope) RunCache() *azure.RunCache {
	return s.cache
}

func resourceManagerEndpoint(cloudEnvironment string) (string, error) {
	var config cloud.Configuration
	switch cloudEnvironment {
	case azure.PublicCloudName, "":
		config = cloud.AzurePublic
	case azure.ChinaCloudName:
		config = cloud.AzureChina
	case azure.USGovernmentCloudName:
		config = cloud.AzureGovernment
	default:
		return "", errors.Errorf("invalid cloud name: %q", cloudEnvironment)
	}
	return config.Services[cloud.ResourceManager].Endpoint, nil
}

// ProjectScope is the Azure scope of one declared migrate project. Its
// authorizer targets the project's subscription.
type ProjectScope struct {
	*ValidationScope
	Project validation.ProjectDecl
}

// NewProjectScope derives the scope of a declared project from the run's
// root scope.
func NewProjectScope(base *ValidationScope, project validation.ProjectDecl) (*ProjectScope, error) {
	if base == nil {
		return nil, errors.New("a ValidationScope is required when creating a ProjectScope")
	}
	return &ProjectScope{
		ValidationScope: base.WithSubscription(project.SubscriptionID),
		Project:         project,
	}, nil
}

// ProjectID returns the ARM ID of the migrate project.
func (s *ProjectScope) ProjectID() string {
	return azure.MigrateProjectID(s.Project.SubscriptionID, s.Project.ResourceGroup, s.Project.ProjectName)
}

// VaultID returns the ARM ID of the declared recovery vault, empty when
// none was declared.
func (s *ProjectScope) VaultID() string {
	if s.Project.RecoveryVaultName == "" {
		return ""
	}
	return azure.RecoveryVaultID(s.Project.SubscriptionID, s.Project.ResourceGroup, s.Project.RecoveryVaultName)
}

// MachineScope is the Azure scope of one declared machine target. Its
// authorizer targets the machine's target subscription.
type MachineScope struct {
	*ValidationScope
	Machine validation.MachineDecl
}

// NewMachineScope derives the scope of a declared machine from the run's
// root scope.
func NewMachineScope(base *ValidationScope, machine validation.MachineDecl) (*MachineScope, error) {
	if base == nil {
		return nil, errors.New("a ValidationScope is required when creating a MachineScope")
	}
	return &MachineScope{
		ValidationScope: base.WithSubscription(machine.TargetSubscription),
		Machine:         machine,
	}, nil
}

// ResourceGroupID returns the ARM ID of the machine's target resource
// group.
func (s *MachineScope) ResourceGroupID() string {
	return azure.ResourceGroupID(s.Machine.TargetSubscription, s.Machine.TargetResourceGroup)
}
