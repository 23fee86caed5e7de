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

// Package timeouts holds the time budgets of a validation run.
package timeouts

import "time"

const (
	// DefaultRunTimeout is the default timeout for an entire validation run.
	DefaultRunTimeout = 90 * time.Minute
	// DefaultScopeTimeout is the default timeout for validating a single
	// project or machine.
	DefaultScopeTimeout = 5 * time.Minute
	// DefaultAzureCallTimeout is the default timeout for a single Azure API
	// call, including its retries.
	DefaultAzureCallTimeout = 30 * time.Second
	// DefaultStorageCreateTimeout is the polling budget for storage account
	// creation, the one long-running operation a run may perform.
	DefaultStorageCreateTimeout = 3 * time.Minute
)

// Timeouts defines the time budgets of a validation run. Zero or negative
// fields fall back to the package defaults.
type Timeouts struct {
	Run       time.Duration
	Scope     time.Duration
	AzureCall time.Duration
}

// DefaultedRunTimeout will default the run timeout if it is zero-valued.
func (t Timeouts) DefaultedRunTimeout() time.Duration {
	if t.Run <= 0 {
		return DefaultRunTimeout
	}
	return t.Run
}

// DefaultedScopeTimeout will default the per-scope timeout if it is zero-valued.
func (t Timeouts) DefaultedScopeTimeout() time.Duration {
	if t.Scope <= 0 {
		return DefaultScopeTimeout
	}
	return t.Scope
}

// DefaultedAzureCallTimeout will default the Azure call timeout if it is zero-valued.
func (t Timeouts) DefaultedAzureCallTimeout() time.Duration {
	if t.AzureCall <= 0 {
		return DefaultAzureCallTimeout
	}
	return t.AzureCall
}
