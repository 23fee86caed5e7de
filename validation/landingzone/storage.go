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
	"fmt"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/azure/services/storageaccounts"
	"github.com/mayoit/azmig-tool-assistant/validation"
	"github.com/mayoit/azmig-tool-assistant/validation/config"
)

// checkStorage verifies the replication cache storage account exists. A
// missing account fails the check unless auto-create is enabled, in which
// case the account is created in the project's region. An account in
// another region only warns: replication works, but the transfer buffer
// sits away from the target.
func (v *Validator) checkStorage(ctx context.Context) validation.Outcome {
	id := validation.CheckStorageCache
	project := v.Project

	account, err := v.Storage.Get(ctx, project.CacheStorageResourceGroup, project.CacheStorageAccount)
	if err != nil {
		if !azure.ResourceNotFound(err) {
			return providerOutcome(id, "failed to read the cache storage account", err)
		}
		if !v.Config.ParamBool(id, config.ParamAutoCreate, false) {
			return validation.Outcome{
				CheckID:    id,
				Severity:   validation.SeverityFailure,
				Summary:    fmt.Sprintf("cache storage account %q not found", project.CacheStorageAccount),
				Detail:     fmt.Sprintf("resource group %s; enable storage.cache.auto_create to create it", project.CacheStorageResourceGroup),
				CauseTrace: azure.RequestID(err),
			}
		}
		if !storageaccounts.IsValidAccountName(project.CacheStorageAccount) {
			return validation.Outcome{
				CheckID:  id,
				Severity: validation.SeverityFailure,
				Summary:  fmt.Sprintf("cannot create cache storage account %q", project.CacheStorageAccount),
				Detail:   "account names must be 3-24 lowercase letters and digits",
			}
		}
		if _, err := v.Storage.CreateCacheAccount(ctx, project.CacheStorageResourceGroup, project.CacheStorageAccount, azure.NormalizeLocation(project.Region)); err != nil {
			return providerOutcome(id, fmt.Sprintf("failed to create cache storage account %q", project.CacheStorageAccount), err)
		}
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityOK,
			Summary:  fmt.Sprintf("cache storage account %q created", project.CacheStorageAccount),
			Detail:   fmt.Sprintf("region %s, resource group %s", project.Region, project.CacheStorageResourceGroup),
		}
	}

	if account.Location != nil &&
		azure.NormalizeLocation(*account.Location) != azure.NormalizeLocation(project.Region) {
		return validation.Outcome{
			CheckID:  id,
			Severity: validation.SeverityWarning,
			Summary:  fmt.Sprintf("cache storage account %q is in another region", project.CacheStorageAccount),
			Detail:   fmt.Sprintf("account region %s, project region %s", *account.Location, project.Region),
		}
	}

	return validation.Outcome{
		CheckID:  id,
		Severity: validation.SeverityOK,
		Summary:  fmt.Sprintf("cache storage account %q is ready", project.CacheStorageAccount),
	}
}
