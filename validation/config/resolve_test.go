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

package config_test

import (
	"testing"

	. "github.com/onsi/gomega"

	config "github.com/mayoit/azmig-tool-assistant/validation/config"

	"github.com/mayoit/azmig-tool-assistant/validation"
)

const sampleDocument = `
active_profile: ""
global:
  fail_fast: true
  timeout_seconds: 120
tier1:
  access.rbac.migrate_project:
    enabled: true
    required_roles: [Owner, Contributor]
  quota.vcpu:
    warn_threshold_percent: 70
tier2:
  server.rbac.rg:
    enabled: false
profiles:
  quick:
    overrides:
      appliance.health.enabled: false
      storage.cache.enabled: false
      quota.vcpu.enabled: false
      global.parallel_execution: false
`

func TestResolveDefaults(t *testing.T) {
	g := NewWithT(t)

	resolved := config.Default()
	g.Expect(resolved.Global().FailFast).To(BeTrue())
	g.Expect(resolved.Global().ParallelExecution).To(BeTrue())
	g.Expect(resolved.Global().TimeoutSeconds).To(Equal(300))
	g.Expect(resolved.EnabledTier1()).To(Equal(validation.Tier1Checks()))
	g.Expect(resolved.EnabledTier2()).To(Equal(validation.Tier2Checks()))
	g.Expect(resolved.ParamBool(validation.CheckStorageCache, config.ParamAutoCreate, true)).To(BeFalse())
	g.Expect(resolved.ParamInt(validation.CheckApplianceHealth, config.ParamMaxHeartbeatAgeHours, 0)).To(Equal(24))
	g.Expect(resolved.ParamStringSlice(validation.CheckAccessRBACMigrateProject, config.ParamRequiredRoles, nil)).
		To(Equal([]string{"Contributor"}))
	g.Expect(resolved.ParamRegionMap(validation.CheckServerDiskType, config.ParamRegionLimited)).
		To(HaveKey("ultrassd_lrs"))
	g.Expect(resolved.Fingerprint()).To(HaveLen(64))
}

func TestResolveDocument(t *testing.T) {
	g := NewWithT(t)

	doc, err := config.Parse([]byte(sampleDocument))
	g.Expect(err).NotTo(HaveOccurred())

	resolved, err := config.Resolve(doc, "", nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(resolved.Global().TimeoutSeconds).To(Equal(120))
	g.Expect(resolved.ParamInt(validation.CheckQuotaVCPU, config.ParamWarnThresholdPercent, 0)).To(Equal(70))
	g.Expect(resolved.ParamStringSlice(validation.CheckAccessRBACMigrateProject, config.ParamRequiredRoles, nil)).
		To(Equal([]string{"Owner", "Contributor"}))
	g.Expect(resolved.IsEnabled(validation.CheckServerRBACResourceGroup)).To(BeFalse())
	g.Expect(resolved.EnabledTier2()).NotTo(ContainElement(validation.CheckServerRBACResourceGroup))
}

func TestResolveProfileAndOverrides(t *testing.T) {
	g := NewWithT(t)

	doc, err := config.Parse([]byte(sampleDocument))
	g.Expect(err).NotTo(HaveOccurred())

	resolved, err := config.Resolve(doc, "quick", nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(resolved.EnabledTier1()).To(Equal([]validation.CheckID{validation.CheckAccessRBACMigrateProject}))
	g.Expect(resolved.Global().ParallelExecution).To(BeFalse())

	// Explicit overrides win over the profile.
	resolved, err = config.Resolve(doc, "quick", []string{
		"quota.vcpu.enabled=true",
		"quota.vcpu.warn_threshold_percent=90",
		"global.fail_fast=false",
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(resolved.IsEnabled(validation.CheckQuotaVCPU)).To(BeTrue())
	g.Expect(resolved.ParamInt(validation.CheckQuotaVCPU, config.ParamWarnThresholdPercent, 0)).To(Equal(90))
	g.Expect(resolved.Global().FailFast).To(BeFalse())
}

func TestResolveErrors(t *testing.T) {
	testcases := []struct {
		name          string
		document      string
		profile       string
		overrides     []string
		expectedError string
	}{
		{
			name:          "unknown profile",
			profile:       "nope",
			expectedError: `unknown profile "nope"`,
		},
		{
			name:          "unknown check id",
			document:      "tier1:\n  access.rbac.everything:\n    enabled: true\n",
			expectedError: `tier1: unknown check "access.rbac.everything"`,
		},
		{
			name:          "tier mismatch",
			document:      "tier2:\n  quota.vcpu:\n    enabled: false\n",
			expectedError: `tier2: unknown check "quota.vcpu"`,
		},
		{
			name:          "unknown parameter",
			document:      "tier1:\n  quota.vcpu:\n    warn_percent: 70\n",
			expectedError: `unknown parameter "warn_percent"`,
		},
		{
			name:          "wrong parameter type",
			document:      "tier1:\n  storage.cache:\n    auto_create: maybe\n",
			expectedError: "want bool, got string",
		},
		{
			name:          "negative timeout",
			document:      "global:\n  timeout_seconds: -1\n",
			expectedError: "timeout_seconds must be positive",
		},
		{
			name:          "override without value",
			overrides:     []string{"quota.vcpu.enabled"},
			expectedError: "want dotted.path=value",
		},
		{
			name:          "override of unknown check",
			overrides:     []string{"server.gpu.enabled=true"},
			expectedError: `unknown check "server.gpu"`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			doc, err := config.Parse([]byte(tc.document))
			g.Expect(err).NotTo(HaveOccurred())
			_, err = config.Resolve(doc, tc.profile, tc.overrides)
			g.Expect(err).To(MatchError(ContainSubstring(tc.expectedError)))
			g.Expect(config.IsConfigError(err)).To(BeTrue())
		})
	}
}

func TestFingerprintStability(t *testing.T) {
	g := NewWithT(t)

	// The same settings in a different document order.
	reordered := `
tier2:
  server.rbac.rg:
    enabled: false
tier1:
  quota.vcpu:
    warn_threshold_percent: 70
  access.rbac.migrate_project:
    required_roles: [Contributor, Owner]
    enabled: true
global:
  timeout_seconds: 120
  fail_fast: true
profiles:
  quick:
    overrides:
      quota.vcpu.enabled: false
      global.parallel_execution: false
      storage.cache.enabled: false
      appliance.health.enabled: false
`
	docA, err := config.Parse([]byte(sampleDocument))
	g.Expect(err).NotTo(HaveOccurred())
	docB, err := config.Parse([]byte(reordered))
	g.Expect(err).NotTo(HaveOccurred())

	resolvedA, err := config.Resolve(docA, "", nil)
	g.Expect(err).NotTo(HaveOccurred())
	resolvedB, err := config.Resolve(docB, "", nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(resolvedA.Fingerprint()).To(Equal(resolvedB.Fingerprint()))

	// A semantic change moves the fingerprint.
	changed, err := config.Resolve(docA, "", []string{"quota.vcpu.warn_threshold_percent=71"})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(changed.Fingerprint()).NotTo(Equal(resolvedA.Fingerprint()))

	// Different profile selection moves it too.
	quick, err := config.Resolve(docA, "quick", nil)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(quick.Fingerprint()).NotTo(Equal(resolvedA.Fingerprint()))
}

func TestParamAccessorsFallBack(t *testing.T) {
	g := NewWithT(t)

	resolved := config.Default()
	g.Expect(resolved.ParamBool(validation.CheckServerRegion, "missing", true)).To(BeTrue())
	g.Expect(resolved.ParamInt(validation.CheckServerRegion, "missing", 7)).To(Equal(7))
	g.Expect(resolved.ParamString(validation.CheckApplianceHealth, config.ParamMinVersion, "fallback")).To(Equal(""))
	g.Expect(resolved.ParamStringSlice(validation.CheckServerRegion, "missing", []string{"x"})).To(Equal([]string{"x"}))
	g.Expect(resolved.ParamRegionMap(validation.CheckServerRegion, "missing")).To(BeNil())
}
