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

package resourceskus

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/pkg/errors"

	"github.com/mayoit/azmig-tool-assistant/azure"
	"github.com/mayoit/azmig-tool-assistant/util/tele"
)

// Cache loads the resource SKUs of one location and answers lookups against
// them. Machines in the same region share a cache, so the listing happens
// once per run and location.
type Cache struct {
	client Client

	// location is the Azure location whose SKUs this cache holds.
	location string

	// data is loaded lazily on first use. Machine checks run in parallel,
	// so loading and lookups are serialized by mu.
	mu   sync.Mutex
	data []armcompute.ResourceSKU
}

// clientCache holds one SKU cache per location and credential, keyed by
// location and authorizer hash.
var clientCache sync.Map

// NewCache creates a new SKU cache for the given location.
func NewCache(auth azure.Authorizer, location string) (*Cache, error) {
	client, err := newClient(auth)
	if err != nil {
		return nil, err
	}
	return &Cache{
		client:   client,
		location: location,
	}, nil
}

// GetCache returns the shared SKU cache for the given location and
// authorizer, creating it on first use.
func GetCache(auth azure.Authorizer, location string) (*Cache, error) {
	key := location + "_" + auth.HashKey()
	if c, ok := clientCache.Load(key); ok {
		return c.(*Cache), nil
	}
	c, err := NewCache(auth, location)
	if err != nil {
		return nil, err
	}
	actual, _ := clientCache.LoadOrStore(key, c)
	return actual.(*Cache), nil
}

// NewStaticCache initializes a cache with data and no ability to refresh.
// Used for testing.
func NewStaticCache(data []armcompute.ResourceSKU, location string) *Cache {
	return &Cache{
		data:     data,
		location: location,
	}
}

func (c *Cache) refresh(ctx context.Context, location string) error {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "resourceskus.Cache.refresh")
	defer done()

	data, err := c.client.List(ctx, fmt.Sprintf("location eq '%s'", location))
	if err != nil {
		return errors.Wrap(err, "could not refresh resource sku cache")
	}
	c.data = data
	return nil
}

func (c *Cache) fetch(ctx context.Context) ([]armcompute.ResourceSKU, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		if err := c.refresh(ctx, c.location); err != nil {
			return nil, err
		}
	}
	return c.data, nil
}

// Get returns the resource SKU with the provided name and category, or an
// error if the location offers no match.
func (c *Cache) Get(ctx context.Context, name string, kind ResourceType) (armcompute.ResourceSKU, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "resourceskus.Cache.Get")
	defer done()

	data, err := c.fetch(ctx)
	if err != nil {
		return armcompute.ResourceSKU{}, err
	}

	for _, sku := range data {
		if sku.ResourceType != nil && *sku.ResourceType == string(kind) && sku.Name != nil && *sku.Name == name {
			return sku, nil
		}
	}
	return armcompute.ResourceSKU{}, fmt.Errorf("resource sku with name '%s' and category '%s' not found in location '%s'", name, string(kind), c.location)
}

// GetZones looks at all virtual machine SKUs and returns every availability
// zone the subscription can currently deploy to in the location.
func (c *Cache) GetZones(ctx context.Context, location string) ([]string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "resourceskus.Cache.GetZones")
	defer done()

	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	allZones := make(map[string]bool)
	for _, sku := range data {
		if sku.ResourceType == nil || *sku.ResourceType != string(VirtualMachines) {
			continue
		}
		for zone := range availableZones(sku, location) {
			allZones[zone] = true
		}
	}
	return sortedKeys(allZones), nil
}

// GetZonesWithVMSize returns every availability zone the subscription can
// currently deploy the given virtual machine size to in the location.
func (c *Cache) GetZonesWithVMSize(ctx context.Context, size, location string) ([]string, error) {
	ctx, _, done := tele.StartSpanWithLogger(ctx, "resourceskus.Cache.GetZonesWithVMSize")
	defer done()

	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	allZones := make(map[string]bool)
	for _, sku := range data {
		if sku.Name == nil || !strings.EqualFold(*sku.Name, size) {
			continue
		}
		if sku.ResourceType == nil || *sku.ResourceType != string(VirtualMachines) {
			continue
		}
		for zone := range availableZones(sku, location) {
			allZones[zone] = true
		}
	}
	return sortedKeys(allZones), nil
}

// availableZones returns the zones the SKU offers in the location after
// removing restricted ones. A location restriction empties the result, the
// subscription cannot deploy the SKU there at all.
func availableZones(sku armcompute.ResourceSKU, location string) map[string]bool {
	var available map[string]bool
	for _, locationInfo := range sku.LocationInfo {
		if locationInfo == nil || locationInfo.Location == nil || !strings.EqualFold(*locationInfo.Location, location) {
			continue
		}
		available = make(map[string]bool)
		for _, zone := range locationInfo.Zones {
			if zone != nil {
				available[*zone] = true
			}
		}
		for _, restriction := range sku.Restrictions {
			if restriction == nil {
				continue
			}
			if restriction.Type != nil && *restriction.Type == armcompute.ResourceSKURestrictionsTypeLocation {
				return nil
			}
			if restriction.RestrictionInfo == nil {
				continue
			}
			for _, restricted := range restriction.RestrictionInfo.Zones {
				if restricted != nil {
					delete(available, *restricted)
				}
			}
		}
	}
	return available
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
