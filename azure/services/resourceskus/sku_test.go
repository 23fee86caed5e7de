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
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"k8s.io/utils/ptr"
)

func TestSKUHasCapability(t *testing.T) {
	cases := map[string]struct {
		sku        SKU
		capability string
		want       bool
	}{
		"supported capability": {
			sku: SKU{
				Capabilities: []*armcompute.ResourceSKUCapabilities{
					{Name: ptr.To(PremiumIO), Value: ptr.To("True")},
				},
			},
			capability: PremiumIO,
			want:       true,
		},
		"unsupported capability": {
			sku: SKU{
				Capabilities: []*armcompute.ResourceSKUCapabilities{
					{Name: ptr.To(PremiumIO), Value: ptr.To("False")},
				},
			},
			capability: PremiumIO,
			want:       false,
		},
		"absent capability": {
			sku:        SKU{},
			capability: UltraSSDAvailable,
			want:       false,
		},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := tc.sku.HasCapability(tc.capability); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSKUVCPUCount(t *testing.T) {
	cases := map[string]struct {
		sku     SKU
		want    int64
		wantErr string
	}{
		"from capability": {
			sku: SKU{
				Name: ptr.To("Standard_D4s_v3"),
				Capabilities: []*armcompute.ResourceSKUCapabilities{
					{Name: ptr.To(VCPUs), Value: ptr.To("4")},
				},
			},
			want: 4,
		},
		"estimated from name": {
			sku:  SKU{Name: ptr.To("Standard_D8s_v3")},
			want: 8,
		},
		"estimated from name without version suffix": {
			sku:  SKU{Name: ptr.To("Standard_E16s")},
			want: 16,
		},
		"malformed capability": {
			sku: SKU{
				Name: ptr.To("Standard_D4s_v3"),
				Capabilities: []*armcompute.ResourceSKUCapabilities{
					{Name: ptr.To(VCPUs), Value: ptr.To("four")},
				},
			},
			wantErr: "failed to parse vCPU capability value \"four\"",
		},
		"no name and no capability": {
			sku:     SKU{},
			wantErr: "sku has no vCPU capability and no name",
		},
		"name without digits": {
			sku:     SKU{Name: ptr.To("Standard_NoDigits")},
			wantErr: "cannot estimate vCPU count from size name",
		},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.sku.VCPUCount()
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("expected %d vCPUs, got %d", tc.want, got)
			}
		})
	}
}

func TestSKURestrictions(t *testing.T) {
	sku := SKU{
		Name: ptr.To("Standard_D4s_v3"),
		Locations: []*string{
			ptr.To("eastus"),
		},
		LocationInfo: []*armcompute.ResourceSKULocationInfo{
			{
				Location: ptr.To("eastus"),
				Zones:    []*string{ptr.To("1"), ptr.To("2"), ptr.To("3")},
			},
		},
		Restrictions: []*armcompute.ResourceSKURestrictions{
			{
				Type:   ptr.To(armcompute.ResourceSKURestrictionsTypeLocation),
				Values: []*string{ptr.To("westus2")},
			},
			{
				Type:   ptr.To(armcompute.ResourceSKURestrictionsTypeZone),
				Values: []*string{ptr.To("eastus")},
				RestrictionInfo: &armcompute.ResourceSKURestrictionInfo{
					Zones: []*string{ptr.To("3")},
				},
			},
		},
	}

	if sku.IsRestrictedInLocation("eastus") {
		t.Fatal("expected no location restriction in eastus")
	}
	if !sku.IsRestrictedInLocation("westus2") {
		t.Fatal("expected a location restriction in westus2")
	}
	if diff := cmp.Diff(sku.RestrictedZones("eastus"), []string{"3"}); diff != "" {
		t.Errorf("%s", diff)
	}
	if diff := cmp.Diff(sku.RestrictedZones("westeurope"), []string(nil), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s", diff)
	}
	if diff := cmp.Diff(sku.ZonesInLocation("eastus"), []string{"1", "2", "3"}); diff != "" {
		t.Errorf("%s", diff)
	}
}
