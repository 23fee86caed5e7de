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

// Package validation holds the data model of a validation run: the declared
// projects and machines going in, and the per-check outcomes coming out.
package validation

import (
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CheckID names a single validation check. The set is closed; config
// resolution rejects identifiers outside it.
type CheckID string

const (
	CheckAccessRBACMigrateProject CheckID = "access.rbac.migrate_project"
	CheckApplianceHealth          CheckID = "appliance.health"
	CheckStorageCache             CheckID = "storage.cache"
	CheckQuotaVCPU                CheckID = "quota.vcpu"
	CheckServerRegion             CheckID = "server.region"
	CheckServerResourceGroup      CheckID = "server.resource_group"
	CheckServerVNetSubnet         CheckID = "server.vnet_subnet"
	CheckServerSKU                CheckID = "server.sku"
	CheckServerDiskType           CheckID = "server.disk_type"
	CheckServerDiscovery          CheckID = "server.discovery"
	CheckServerRBACResourceGroup  CheckID = "server.rbac.rg"

	// CheckSkipped marks the synthetic outcome recorded for checks that were
	// not run because a critical failure short-circuited their scope.
	CheckSkipped CheckID = "__skipped__"

	// CheckInput marks the synthetic outcome recorded for declarations that
	// fail static validation before any check runs.
	CheckInput CheckID = "__input__"
)

// Tier1Checks returns the project-level checks in canonical execution order.
func Tier1Checks() []CheckID {
	return []CheckID{
		CheckAccessRBACMigrateProject,
		CheckApplianceHealth,
		CheckStorageCache,
		CheckQuotaVCPU,
	}
}

// Tier2Checks returns the machine-level checks in canonical execution order.
func Tier2Checks() []CheckID {
	return []CheckID{
		CheckServerRegion,
		CheckServerResourceGroup,
		CheckServerVNetSubnet,
		CheckServerSKU,
		CheckServerDiskType,
		CheckServerDiscovery,
		CheckServerRBACResourceGroup,
	}
}

// KnownCheck reports whether id names a real check. The synthetic skip
// marker is not one.
func KnownCheck(id CheckID) bool {
	for _, known := range Tier1Checks() {
		if id == known {
			return true
		}
	}
	for _, known := range Tier2Checks() {
		if id == known {
			return true
		}
	}
	return false
}

// Severity grades a check outcome. Severities are ordered: ok < warning <
// failure < critical. A critical outcome short-circuits its scope.
type Severity string

const (
	SeverityOK       Severity = "ok"
	SeverityWarning  Severity = "warning"
	SeverityFailure  Severity = "failure"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityOK:       0,
	SeverityWarning:  1,
	SeverityFailure:  2,
	SeverityCritical: 3,
}

// AtLeast reports whether s is as severe as min or more.
func (s Severity) AtLeast(min Severity) bool {
	return severityRank[s] >= severityRank[min]
}

// MaxSeverity returns the more severe of a and b.
func MaxSeverity(a, b Severity) Severity {
	if severityRank[b] > severityRank[a] {
		return b
	}
	return a
}

// RollUp returns the maximum severity across outcomes, ok for an empty set.
func RollUp(outcomes []Outcome) Severity {
	rolled := SeverityOK
	for _, outcome := range outcomes {
		rolled = MaxSeverity(rolled, outcome.Severity)
	}
	return rolled
}

// ApplianceKind is the virtualization fleet an Azure Migrate appliance
// discovers.
type ApplianceKind string

const (
	ApplianceVMware   ApplianceKind = "vmware"
	ApplianceHyperV   ApplianceKind = "hyperv"
	AppliancePhysical ApplianceKind = "physical"
)

// Valid reports whether the kind is one of the declared set.
func (k ApplianceKind) Valid() bool {
	switch k {
	case ApplianceVMware, ApplianceHyperV, AppliancePhysical:
		return true
	default:
		return false
	}
}

// ProjectKey identifies a declared migrate project. It is the dedup key of
// the project tier and serializes as "subscription/resourceGroup/project".
type ProjectKey struct {
	SubscriptionID string
	ResourceGroup  string
	ProjectName    string
}

// ParseProjectKey parses the "subscription/resourceGroup/project" form. The
// empty string parses to the zero key.
func ParseProjectKey(s string) (ProjectKey, error) {
	if s == "" {
		return ProjectKey{}, nil
	}
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ProjectKey{}, errors.Errorf("malformed project key %q: want subscription/resourceGroup/projectName", s)
	}
	return ProjectKey{SubscriptionID: parts[0], ResourceGroup: parts[1], ProjectName: parts[2]}, nil
}

// IsZero reports whether no project reference was declared.
func (k ProjectKey) IsZero() bool {
	return k == ProjectKey{}
}

func (k ProjectKey) String() string {
	if k.IsZero() {
		return ""
	}
	return k.SubscriptionID + "/" + k.ResourceGroup + "/" + k.ProjectName
}

// MarshalText implements encoding.TextMarshaler so the key appears in JSON
// as its string form.
func (k ProjectKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ProjectKey) UnmarshalText(text []byte) error {
	parsed, err := ParseProjectKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// UnmarshalYAML accepts the string form used by plan documents.
func (k *ProjectKey) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return k.UnmarshalText([]byte(raw))
}

// MarshalYAML implements yaml.Marshaler.
func (k ProjectKey) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// ProjectDecl is a user-declared migrate project context. Declarations are
// immutable for the run.
type ProjectDecl struct {
	SubscriptionID            string        `json:"subscription_id" yaml:"subscription_id"`
	ResourceGroup             string        `json:"resource_group" yaml:"resource_group"`
	ProjectName               string        `json:"project_name" yaml:"project_name"`
	Region                    string        `json:"region" yaml:"region"`
	ApplianceName             string        `json:"appliance_name" yaml:"appliance_name"`
	ApplianceKind             ApplianceKind `json:"appliance_kind" yaml:"appliance_kind"`
	CacheStorageAccount       string        `json:"cache_storage_account" yaml:"cache_storage_account"`
	CacheStorageResourceGroup string        `json:"cache_storage_resource_group" yaml:"cache_storage_resource_group"`
	// RecoveryVaultName optionally names the Recovery Services vault the
	// replication tooling will use. When set, the RBAC check also requires
	// Contributor on the vault.
	RecoveryVaultName string `json:"recovery_vault_name,omitempty" yaml:"recovery_vault_name,omitempty"`
}

// Key returns the dedup key of the declaration.
func (p ProjectDecl) Key() ProjectKey {
	return ProjectKey{
		SubscriptionID: p.SubscriptionID,
		ResourceGroup:  p.ResourceGroup,
		ProjectName:    p.ProjectName,
	}
}

// Validate reports every static problem of the declaration as one error.
// Provider-dependent properties, like the region being real, are check
// territory and not validated here.
func (p ProjectDecl) Validate() error {
	var problems []string
	switch {
	case p.SubscriptionID == "":
		problems = append(problems, "subscription_id is required")
	case !govalidator.IsUUID(p.SubscriptionID):
		problems = append(problems, "subscription_id "+quote(p.SubscriptionID)+" is not a UUID")
	}
	if p.ResourceGroup == "" {
		problems = append(problems, "resource_group is required")
	}
	if p.ProjectName == "" {
		problems = append(problems, "project_name is required")
	}
	if p.Region == "" {
		problems = append(problems, "region is required")
	}
	if p.ApplianceName == "" {
		problems = append(problems, "appliance_name is required")
	}
	if !p.ApplianceKind.Valid() {
		problems = append(problems, "appliance_kind "+quote(string(p.ApplianceKind))+" must be one of vmware, hyperv, physical")
	}
	if p.CacheStorageAccount == "" {
		problems = append(problems, "cache_storage_account is required")
	}
	if p.CacheStorageResourceGroup == "" {
		problems = append(problems, "cache_storage_resource_group is required")
	}
	return problemsError(problems)
}

// MachineDecl is a user-declared migration target for one machine.
type MachineDecl struct {
	// SourceName is the machine name as the discovery source knows it. When
	// empty, discovery falls back to TargetName.
	SourceName          string `json:"source_name,omitempty" yaml:"source_name,omitempty"`
	TargetName          string `json:"target_name" yaml:"target_name"`
	TargetRegion        string `json:"target_region" yaml:"target_region"`
	TargetSubscription  string `json:"target_subscription" yaml:"target_subscription"`
	TargetResourceGroup string `json:"target_resource_group" yaml:"target_resource_group"`
	TargetVNet          string `json:"target_vnet" yaml:"target_vnet"`
	TargetSubnet        string `json:"target_subnet" yaml:"target_subnet"`
	TargetSKU           string `json:"target_sku" yaml:"target_sku"`
	TargetDiskType      string `json:"target_disk_type" yaml:"target_disk_type"`
	// ProjectKey references the declared project the machine migrates
	// through. When empty the matcher may populate it.
	ProjectKey ProjectKey `json:"project_key,omitempty" yaml:"project,omitempty"`
}

// DiscoveryName returns the name the machine is searched by in the
// discovery inventory.
func (m MachineDecl) DiscoveryName() string {
	if m.SourceName != "" {
		return m.SourceName
	}
	return m.TargetName
}

// Validate reports every static problem of the declaration as one error.
func (m MachineDecl) Validate() error {
	var problems []string
	if m.TargetName == "" {
		problems = append(problems, "target_name is required")
	}
	if m.TargetRegion == "" {
		problems = append(problems, "target_region is required")
	}
	switch {
	case m.TargetSubscription == "":
		problems = append(problems, "target_subscription is required")
	case !govalidator.IsUUID(m.TargetSubscription):
		problems = append(problems, "target_subscription "+quote(m.TargetSubscription)+" is not a UUID")
	}
	if m.TargetResourceGroup == "" {
		problems = append(problems, "target_resource_group is required")
	}
	if m.TargetVNet == "" {
		problems = append(problems, "target_vnet is required")
	}
	if m.TargetSubnet == "" {
		problems = append(problems, "target_subnet is required")
	}
	if m.TargetSKU == "" {
		problems = append(problems, "target_sku is required")
	}
	if m.TargetDiskType == "" {
		problems = append(problems, "target_disk_type is required")
	}
	return problemsError(problems)
}

func problemsError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

func quote(s string) string {
	return `"` + s + `"`
}

// Outcome is the verdict of one check.
type Outcome struct {
	CheckID  CheckID  `json:"check_id"`
	Severity Severity `json:"severity"`
	Summary  string   `json:"summary"`
	Detail   string   `json:"detail,omitempty"`
	// CauseTrace carries the provider request id when a provider error
	// caused the outcome.
	CauseTrace string `json:"cause_trace,omitempty"`
}

// SkippedOutcome is the synthetic outcome recorded for a check that was not
// run because a critical failure short-circuited its scope.
func SkippedOutcome() Outcome {
	return Outcome{
		CheckID:  CheckSkipped,
		Severity: SeverityOK,
		Summary:  "Remaining checks skipped due to critical failure",
	}
}

// InputOutcome is the synthetic critical outcome recorded for a
// declaration that failed static validation.
func InputOutcome(err error) Outcome {
	return Outcome{
		CheckID:  CheckInput,
		Severity: SeverityCritical,
		Summary:  "invalid declaration",
		Detail:   err.Error(),
	}
}

// CancelledOutcome is the synthetic outcome recorded for a check that was
// not run because the run was cancelled.
func CancelledOutcome(id CheckID) Outcome {
	return Outcome{
		CheckID:  id,
		Severity: SeverityWarning,
		Summary:  "run cancelled",
	}
}

// Machine skip reasons.
const (
	SkippedUnknownProject     = "unknown_project"
	SkippedPrerequisiteFailed = "prerequisite_failed"
)

// ProjectReadiness is the Tier-1 verdict for one declared project.
type ProjectReadiness struct {
	ProjectKey     ProjectKey `json:"project_key"`
	Outcomes       []Outcome  `json:"outcomes"`
	RolledUp       Severity   `json:"rolled_up"`
	ShortCircuited bool       `json:"short_circuited"`
}

// MachineReadiness is the Tier-2 verdict for one declared machine.
type MachineReadiness struct {
	TargetName    string     `json:"target_name"`
	ProjectKey    ProjectKey `json:"project_key"`
	Outcomes      []Outcome  `json:"outcomes"`
	RolledUp      Severity   `json:"rolled_up"`
	SkippedReason string     `json:"skipped_reason,omitempty"`
}

// Run is the complete result of one validation run.
type Run struct {
	Projects          map[string]ProjectReadiness `json:"projects"`
	Machines          []MachineReadiness          `json:"machines"`
	StartedAt         time.Time                   `json:"started_at"`
	FinishedAt        time.Time                   `json:"finished_at"`
	ConfigFingerprint string                      `json:"config_fingerprint"`
}

// HasFailures reports whether any project or machine rolled up to failure
// or worse.
func (r Run) HasFailures() bool {
	for _, project := range r.Projects {
		if project.RolledUp.AtLeast(SeverityFailure) {
			return true
		}
	}
	for _, machine := range r.Machines {
		if machine.RolledUp.AtLeast(SeverityFailure) {
			return true
		}
	}
	return false
}
