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

package quotas

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// vcpuBucket matches the usage buckets that count vCPUs: the regional
// "cores" total and the per-family "... vCPUs" buckets.
var vcpuBucket = regexp.MustCompile(`(?i)(cores|vcpus)`)

// QuotaScope defines the scope interface for the quotas service.
type QuotaScope interface {
	azure.Authorizer
	azure.RunCacher
}

// VCPUUsage is the vCPU quota consumption of one usage bucket in a
// location.
type VCPUUsage struct {
	// Name is the bucket name the API reports, e.g. "cores" or
	// "standardDSv3Family".
	Name string
	// Localized is the display name, e.g. "Standard DSv3 Family vCPUs".
	Localized string
	Current   int64
	Limit     int64
}

// Available returns the remaining headroom of the bucket.
func (u VCPUUsage) Available() int64 {
	return u.Limit - u.Current
}

// UsagePercent returns how much of the bucket is consumed, in percent.
// A bucket without a limit counts as fully consumed.
func (u VCPUUsage) UsagePercent() float64 {
	if u.Limit <= 0 {
		return 100
	}
	return float64(u.Current) / float64(u.Limit) * 100
}

// IsFamily reports whether the bucket tracks the given SKU family.
func (u VCPUUsage) IsFamily(family string) bool {
	return strings.EqualFold(u.Name, family)
}

// IsRegionalTotal reports whether the bucket is the regional total vCPU
// quota rather than a per-family one.
func (u VCPUUsage) IsRegionalTotal() bool {
	return strings.EqualFold(u.Name, "cores")
}

// Service provides read access to the compute quota consumption of a
// subscription.
type Service struct {
	Scope QuotaScope
	Client
}

// New creates a new quotas service.
func New(scope QuotaScope) (*Service, error) {
	client, err := newClient(scope)
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		Client: client,
	}, nil
}

// ListVCPUUsage returns the vCPU usage buckets of a location. Buckets that
// do not count vCPUs, such as availability sets, are filtered out.
func (s *Service) ListVCPUUsage(ctx context.Context, location string) ([]VCPUUsage, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "quotas.Service.ListVCPUUsage")
	defer done()

	key := azure.CallKey{Op: "quotas.List", SubscriptionID: s.Scope.SubscriptionID(), Resource: location}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) ([]VCPUUsage, error) {
		usages, err := s.Client.List(ctx, location)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list compute usage for location %s", location)
		}
		vcpu := make([]VCPUUsage, 0, len(usages))
		for _, usage := range usages {
			if usage == nil || usage.Name == nil {
				continue
			}
			name := ""
			if usage.Name.Value != nil {
				name = *usage.Name.Value
			}
			localized := ""
			if usage.Name.LocalizedValue != nil {
				localized = *usage.Name.LocalizedValue
			}
			if !vcpuBucket.MatchString(name) && !vcpuBucket.MatchString(localized) {
				continue
			}
			u := VCPUUsage{Name: name, Localized: localized}
			if usage.CurrentValue != nil {
				u.Current = int64(*usage.CurrentValue)
			}
			if usage.Limit != nil {
				u.Limit = *usage.Limit
			}
			vcpu = append(vcpu, u)
		}
		return vcpu, nil
	})
}
