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

package subscriptions

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// SubscriptionScope defines the scope interface for the subscriptions service.
type SubscriptionScope interface {
	azure.Authorizer
	azure.RunCacher
}

// Service provides read access to the subscription a validation run targets.
type Service struct {
	Scope SubscriptionScope
	Client
}

// New creates a new subscriptions service.
func New(scope SubscriptionScope) (*Service, error) {
	client, err := newClient(scope)
	if err != nil {
		return nil, err
	}
	return &Service{
		Scope:  scope,
		Client: client,
	}, nil
}

// Get returns the subscription the validation run targets. A not found error
// means the identity has no access to the subscription at all, since ARM
// hides subscriptions the caller cannot read.
func (s *Service) Get(ctx context.Context) (armsubscriptions.Subscription, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "subscriptions.Service.Get")
	defer done()

	key := azure.CallKey{Op: "subscriptions.Get", SubscriptionID: s.Scope.SubscriptionID()}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) (armsubscriptions.Subscription, error) {
		subscription, err := s.Client.Get(ctx, s.Scope.SubscriptionID())
		if err != nil {
			return armsubscriptions.Subscription{}, errors.Wrapf(err, "failed to get subscription %s", s.Scope.SubscriptionID())
		}
		return subscription, nil
	})
}

// ListLocations returns the normalized names of every location available to
// the subscription.
func (s *Service) ListLocations(ctx context.Context) ([]string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "subscriptions.Service.ListLocations")
	defer done()

	key := azure.CallKey{Op: "subscriptions.ListLocations", SubscriptionID: s.Scope.SubscriptionID()}
	return azure.Fetch(ctx, s.Scope.RunCache(), key, func(ctx context.Context) ([]string, error) {
		locations, err := s.Client.ListLocations(ctx, s.Scope.SubscriptionID())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list locations for subscription %s", s.Scope.SubscriptionID())
		}
		names := make([]string, 0, len(locations))
		for _, location := range locations {
			if location == nil || location.Name == nil {
				continue
			}
			names = append(names, azure.NormalizeLocation(*location.Name))
		}
		return names, nil
	})
}
