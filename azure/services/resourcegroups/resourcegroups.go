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

package resourcegroups

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// ResourceGroupScope defines the scope interface for the resource groups service.
type ResourceGroupScope interface {
	azure.Authorizer
	azure.RunCacher
}

// Service provides read access to the resource groups named by machine
// declarations.
type Service struct {
	Scope ResourceGroupScope
	Client
}

// New creates a new resource groups service.
func New(scope ResourceGroupScope) (*Service, error) {
	client, err := newClient(scope)
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		Client: client,
	}, nil
}

// Get returns the named resource group. Callers distinguish a missing group
// from a denied one with azure.ResourceNotFound and azure.IsForbidden.
func (s *Service) Get(ctx context.Context, name string) (armresources.ResourceGroup, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "resourcegroups.Service.Get")
	defer done()

	key := azure.CallKey{Op: "resourcegroups.Get", SubscriptionID: s.Scope.SubscriptionID(), ResourceGroup: name}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) (armresources.ResourceGroup, error) {
		group, err := s.Client.Get(ctx, name)
		if err != nil {
			return armresources.ResourceGroup{}, errors.Wrapf(err, "failed to get resource group %s", name)
		}
		return group, nil
	})
}

// Location returns the normalized location of the named resource group.
func (s *Service) Location(ctx context.Context, name string) (string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "resourcegroups.Service.Location")
	defer done()

	group, err := s.Get(ctx, name)
	if err != nil {
		return "", err
	}
	if group.Location == nil {
		return "", errors.Errorf("resource group %s has no location", name)
	}
	return azure.NormalizeLocation(*group.Location), nil
}
