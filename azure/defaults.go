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
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/mayoit/azmig-tool-assistant/util/tele"
	"github.com/mayoit/azmig-tool-assistant/version"
)

const (
	// PublicCloudName is the name of the Azure public cloud.
	PublicCloudName = "AzurePublicCloud"

	// ChinaCloudName is the name of the Azure China cloud.
	ChinaCloudName = "AzureChinaCloud"

	// USGovernmentCloudName is the name of the Azure US Government cloud.
	USGovernmentCloudName = "AzureUSGovernmentCloud"
)

const (
	// DefaultCallRetries is the per-call retry budget for transient provider failures.
	DefaultCallRetries = 3

	// DefaultRetryDelay is the base delay of the exponential backoff between retries.
	DefaultRetryDelay = time.Second
)

// Built-in Azure role definition IDs checked by the RBAC validations.
const (
	// RoleDefinitionOwner grants full access to manage all resources.
	RoleDefinitionOwner = "8e3af657-a8ff-443c-a75c-2fe8c4bcb635"

	// RoleDefinitionContributor grants full access to manage all resources, but not to assign roles.
	RoleDefinitionContributor = "b24988ac-6180-42a0-ab88-20f7382dd24c"

	// RoleDefinitionReader grants view access to all resources.
	RoleDefinitionReader = "acdd72a7-3385-48ef-bd42-f606fba81ae7"

	// RoleDefinitionUserAccessAdministrator grants access to manage user access to resources.
	RoleDefinitionUserAccessAdministrator = "18d7d88d-d35e-4fb5-a5c3-7773c20a72d9"
)

// RoleDefinitionGUID maps a well-known role name to its built-in definition
// GUID. Anything else, in particular a custom role GUID, passes through
// unchanged.
func RoleDefinitionGUID(nameOrGUID string) string {
	switch strings.ToLower(strings.TrimSpace(nameOrGUID)) {
	case "owner":
		return RoleDefinitionOwner
	case "contributor":
		return RoleDefinitionContributor
	case "reader":
		return RoleDefinitionReader
	case "user access administrator":
		return RoleDefinitionUserAccessAdministrator
	default:
		return nameOrGUID
	}
}

// SubscriptionScope returns the ARM scope of a subscription.
func SubscriptionScope(subscriptionID string) string {
	return fmt.Sprintf("/subscriptions/%s", subscriptionID)
}

// ResourceGroupID returns the azure resource ID for a resource group.
func ResourceGroupID(subscriptionID, resourceGroup string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", subscriptionID, resourceGroup)
}

// VNetID returns the azure resource ID for a virtual network.
func VNetID(subscriptionID, resourceGroup, vnetName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/virtualNetworks/%s", subscriptionID, resourceGroup, vnetName)
}

// SubnetID returns the azure resource ID for a subnet.
func SubnetID(subscriptionID, resourceGroup, vnetName, subnetName string) string {
	return fmt.Sprintf("%s/subnets/%s", VNetID(subscriptionID, resourceGroup, vnetName), subnetName)
}

// StorageAccountID returns the azure resource ID for a storage account.
func StorageAccountID(subscriptionID, resourceGroup, accountName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Storage/storageAccounts/%s", subscriptionID, resourceGroup, accountName)
}

// MigrateProjectID returns the azure resource ID for a migrate project.
func MigrateProjectID(subscriptionID, resourceGroup, projectName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Migrate/migrateProjects/%s", subscriptionID, resourceGroup, projectName)
}

// RecoveryVaultID returns the azure resource ID for a recovery services vault.
func RecoveryVaultID(subscriptionID, resourceGroup, vaultName string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.RecoveryServices/vaults/%s", subscriptionID, resourceGroup, vaultName)
}

// RoleDefinitionID returns the full azure resource ID for a built-in role definition.
func RoleDefinitionID(subscriptionID, roleDefinitionID string) string {
	return fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Authorization/roleDefinitions/%s", subscriptionID, roleDefinitionID)
}

// UserAgent returns the tool's user agent to identify requests against the provider.
func UserAgent() string {
	return fmt.Sprintf("azmig-tool-assistant/%s", version.Get().String())
}

// NormalizeLocation reduces an Azure location to its canonical short form, so
// "East US 2", "east-us-2" and "eastus2" all compare equal.
func NormalizeLocation(location string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").
		Replace(strings.ToLower(strings.TrimSpace(location)))
}

// ARMClientOptions returns default ARM client options for SDK v2 requests.
func ARMClientOptions(azureEnvironment string, extraPolicies ...policy.Policy) (*arm.ClientOptions, error) {
	opts := &arm.ClientOptions{}

	switch azureEnvironment {
	case PublicCloudName:
		opts.Cloud = cloud.AzurePublic
	case ChinaCloudName:
		opts.Cloud = cloud.AzureChina
	case USGovernmentCloudName:
		opts.Cloud = cloud.AzureGovernment
	case "":
		// SDK defaults to the public cloud configuration when unset.
	default:
		return nil, fmt.Errorf("invalid cloud name %q", azureEnvironment)
	}
	opts.PerCallPolicies = []policy.Policy{
		correlationIDPolicy{},
		userAgentPolicy{},
	}
	opts.PerCallPolicies = append(opts.PerCallPolicies, extraPolicies...)
	// azcore's default retryable status codes are 408, 429, 500, 502, 503 and
	// 504, with Retry-After honored and auth failures never retried.
	opts.Retry.MaxRetries = DefaultCallRetries
	opts.Retry.RetryDelay = DefaultRetryDelay

	return opts, nil
}

// correlationIDPolicy adds the "x-ms-correlation-request-id" header to requests.
type correlationIDPolicy struct{}

// Do adds the correlation ID header if a correlation ID is set on the context.
func (p correlationIDPolicy) Do(req *policy.Request) (*http.Response, error) {
	if corrID, ok := tele.CorrIDFromCtx(req.Raw().Context()); ok {
		req.Raw().Header.Set(string(tele.CorrIDKeyVal), string(corrID))
	}
	return req.Next()
}

// userAgentPolicy extends the "User-Agent" header of requests.
type userAgentPolicy struct{}

// Do appends the tool's user agent to the request's "User-Agent" header.
func (p userAgentPolicy) Do(req *policy.Request) (*http.Response, error) {
	req.Raw().Header.Set("User-Agent", req.Raw().UserAgent()+" "+UserAgent())
	return req.Next()
}
