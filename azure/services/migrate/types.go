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

package migrate

import (
	"strings"
	"time"
)

// Appliance kinds as declared in migration plans, derived from the
// Microsoft.OffAzure site type backing the appliance.
const (
	KindVMware   = "vmware"
	KindHyperV   = "hyperv"
	KindPhysical = "physical"
)

// Appliance listing strategy provenance, recorded on each returned
// appliance.
const (
	SourceResourceGraph = "resource_graph"
	SourceSiteListing   = "site_listing"
	SourceSolutions     = "solutions"
)

// Project is a Microsoft.Migrate/migrateProjects resource.
type Project struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Location   string            `json:"location"`
	Properties ProjectProperties `json:"properties"`
}

// ProjectProperties carries the subset of migrate project properties the
// validation checks consume.
type ProjectProperties struct {
	RegisteredTools   []string `json:"registeredTools"`
	ProvisioningState string   `json:"provisioningState"`
	ServiceEndpoint   string   `json:"serviceEndpoint"`
}

// Machine is a machine discovered into a migrate project. The interesting
// payload lives in the per-solution data records: discovery records come
// from the appliance, migration records appear once replication tooling
// knows the machine, and assessment records once it has been assessed.
type Machine struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Properties MachineProperties `json:"properties"`
}

// MachineProperties holds the per-solution data records of a discovered
// machine.
type MachineProperties struct {
	DiscoveryData  []DiscoveryData  `json:"discoveryData"`
	AssessmentData []AssessmentData `json:"assessmentData"`
	MigrationData  []MigrationData  `json:"migrationData"`
}

// DiscoveryData is one discovery record reported by an appliance.
type DiscoveryData struct {
	SolutionName string            `json:"solutionName"`
	MachineID    string            `json:"machineId"`
	MachineName  string            `json:"machineName"`
	OSName       string            `json:"osName"`
	OSType       string            `json:"osType"`
	FQDN         string            `json:"fqdn"`
	IPAddresses  []string          `json:"ipAddresses"`
	ExtendedInfo map[string]string `json:"extendedInfo"`
}

// AssessmentData is one assessment record of a discovered machine.
type AssessmentData struct {
	SolutionName string `json:"solutionName"`
	MachineID    string `json:"machineId"`
	MachineName  string `json:"machineName"`
	AssessmentID string `json:"assessmentId"`
}

// MigrationData is one migration record of a discovered machine. A
// non-empty MigrationPhase means replication tooling already acts on the
// machine.
type MigrationData struct {
	SolutionName   string            `json:"solutionName"`
	MachineID      string            `json:"machineId"`
	MachineName    string            `json:"machineName"`
	OSName         string            `json:"osName"`
	OSType         string            `json:"osType"`
	FQDN           string            `json:"fqdn"`
	IPAddresses    []string          `json:"ipAddresses"`
	MigrationPhase string            `json:"migrationPhase"`
	ExtendedInfo   map[string]string `json:"extendedInfo"`
}

// Names returns every name the discovery pipeline knows the machine by:
// the machine resource name plus the machine names and FQDNs of its
// migration, discovery and assessment records.
func (m Machine) Names() []string {
	var names []string
	if m.Name != "" {
		names = append(names, m.Name)
	}
	for _, data := range m.Properties.MigrationData {
		if data.MachineName != "" {
			names = append(names, data.MachineName)
		}
		if data.FQDN != "" {
			names = append(names, data.FQDN)
		}
	}
	for _, data := range m.Properties.DiscoveryData {
		if data.MachineName != "" {
			names = append(names, data.MachineName)
		}
		if data.FQDN != "" {
			names = append(names, data.FQDN)
		}
	}
	for _, data := range m.Properties.AssessmentData {
		if data.MachineName != "" {
			names = append(names, data.MachineName)
		}
	}
	return names
}

// MatchesName reports whether any known name of the machine equals name,
// ignoring case.
func (m Machine) MatchesName(name string) bool {
	for _, known := range m.Names() {
		if strings.EqualFold(known, name) {
			return true
		}
	}
	return false
}

// ContainsName reports whether any known name of the machine contains name
// as a case-insensitive substring.
func (m Machine) ContainsName(name string) bool {
	for _, known := range m.Names() {
		if containsFold(known, name) {
			return true
		}
	}
	return false
}

// DisplayName returns the friendly machine name, preferring the migration
// record over discovery and falling back to the resource name.
func (m Machine) DisplayName() string {
	if len(m.Properties.MigrationData) > 0 && m.Properties.MigrationData[0].MachineName != "" {
		return m.Properties.MigrationData[0].MachineName
	}
	if len(m.Properties.DiscoveryData) > 0 && m.Properties.DiscoveryData[0].MachineName != "" {
		return m.Properties.DiscoveryData[0].MachineName
	}
	return m.Name
}

// IPAddresses returns the IP addresses reported for the machine. Discovery
// records are the more reliable source, so migration record addresses are
// only used when no discovery record carries any.
func (m Machine) IPAddresses() []string {
	var ips []string
	for _, data := range m.Properties.DiscoveryData {
		ips = append(ips, data.IPAddresses...)
	}
	if len(ips) > 0 {
		return ips
	}
	for _, data := range m.Properties.MigrationData {
		ips = append(ips, data.IPAddresses...)
	}
	return ips
}

// OperatingSystem returns the reported OS of the machine, preferring the
// richer osName over the bare osType and migration records over discovery.
func (m Machine) OperatingSystem() string {
	for _, data := range m.Properties.MigrationData {
		if data.OSName != "" {
			return data.OSName
		}
		if data.OSType != "" {
			return data.OSType
		}
	}
	for _, data := range m.Properties.DiscoveryData {
		if data.OSName != "" {
			return data.OSName
		}
		if data.OSType != "" {
			return data.OSType
		}
	}
	return ""
}

// BootType returns the reported boot type (BIOS or EFI) of the machine,
// when a data record carries one.
func (m Machine) BootType() string {
	for _, data := range m.Properties.MigrationData {
		if v := data.ExtendedInfo["bootType"]; v != "" {
			return v
		}
	}
	for _, data := range m.Properties.DiscoveryData {
		if v := data.ExtendedInfo["bootType"]; v != "" {
			return v
		}
	}
	return ""
}

// Discovered reports whether any appliance or migration solution knows the
// machine.
func (m Machine) Discovered() bool {
	return len(m.Properties.DiscoveryData) > 0 || len(m.Properties.MigrationData) > 0
}

// MigrationReady reports whether migration tooling already knows the
// machine.
func (m Machine) MigrationReady() bool {
	return len(m.Properties.MigrationData) > 0
}

// ReplicationState returns the migration phase of the machine, or the
// empty string when replication has not been enabled for it.
func (m Machine) ReplicationState() string {
	for _, data := range m.Properties.MigrationData {
		if data.MigrationPhase != "" {
			return data.MigrationPhase
		}
	}
	return ""
}

// Site is a Microsoft.OffAzure discovery site resource. Each appliance
// registers one site per discovery scenario, so sites are the
// authoritative source of appliance identity and agent health.
type Site struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Location   string         `json:"location"`
	Properties SiteProperties `json:"properties"`
}

// SiteProperties carries the appliance-relevant properties of an OffAzure
// site.
type SiteProperties struct {
	ApplianceName       string       `json:"applianceName"`
	DiscoverySolutionID string       `json:"discoverySolutionId"`
	ServiceEndpoint     string       `json:"serviceEndpoint"`
	ProvisioningState   string       `json:"provisioningState"`
	HealthState         string       `json:"healthState"`
	AgentDetails        AgentDetails `json:"agentDetails"`
}

// AgentDetails describes the appliance agent that backs a site.
type AgentDetails struct {
	ID               string `json:"id"`
	Version          string `json:"version"`
	LastHeartBeatUTC string `json:"lastHeartBeatUtc"`
}

// Appliance converts the site into the appliance view consumed by the
// health checks.
func (s Site) Appliance() Appliance {
	name := s.Properties.ApplianceName
	if name == "" {
		name = s.Name
	}
	return Appliance{
		Name:              name,
		SiteID:            s.ID,
		Kind:              applianceKind(s.Type),
		HealthState:       s.Properties.HealthState,
		AgentVersion:      s.Properties.AgentDetails.Version,
		LastHeartbeatUTC:  s.Properties.AgentDetails.LastHeartBeatUTC,
		ServiceEndpoint:   s.Properties.ServiceEndpoint,
		ProvisioningState: s.Properties.ProvisioningState,
	}
}

// Appliance is an Azure Migrate appliance as assembled from one of the
// listing strategies. Fields a strategy cannot supply stay empty; the
// solution fallback for example reports neither heartbeat nor kind.
type Appliance struct {
	Name              string
	SiteID            string
	Kind              string
	HealthState       string
	AgentVersion      string
	LastHeartbeatUTC  string
	ServiceEndpoint   string
	ProvisioningState string
	// Source names the listing strategy that produced the appliance.
	Source string
}

// HasHeartbeat reports whether the appliance ever reported a heartbeat.
func (a Appliance) HasHeartbeat() bool {
	return a.LastHeartbeatUTC != ""
}

// Heartbeat parses the last reported heartbeat timestamp.
func (a Appliance) Heartbeat() (time.Time, error) {
	return time.Parse(time.RFC3339, a.LastHeartbeatUTC)
}

// Solution is a Microsoft.Migrate/migrateProjects solution. Solutions are
// only consulted as the last resort appliance listing strategy, when the
// OffAzure site resources cannot be read directly.
type Solution struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Type       string             `json:"type"`
	Properties SolutionProperties `json:"properties"`
}

// SolutionProperties describes a registered solution of a migrate project.
type SolutionProperties struct {
	Tool    string          `json:"tool"`
	Purpose string          `json:"purpose"`
	Goal    string          `json:"goal"`
	Status  string          `json:"status"`
	Details SolutionDetails `json:"details"`
}

// SolutionDetails carries the solution detail bag, including the extended
// details that name the appliance for discovery solutions.
type SolutionDetails struct {
	GroupCount      int               `json:"groupCount"`
	AssessmentCount int               `json:"assessmentCount"`
	ExtendedDetails map[string]string `json:"extendedDetails"`
}

// IsDiscoverySolution reports whether the solution belongs to the
// discovery/appliance tooling of the project rather than to assessment or
// migration execution.
func (s Solution) IsDiscoverySolution() bool {
	tool := strings.ToLower(s.Properties.Tool)
	return strings.Contains(tool, "appliance") || strings.Contains(tool, "discovery") || strings.Contains(tool, "server")
}

// applianceKind maps an OffAzure site resource type to the appliance kind
// declared in migration plans.
func applianceKind(siteType string) string {
	t := strings.ToLower(siteType)
	switch {
	case strings.HasSuffix(t, "vmwaresites"):
		return KindVMware
	case strings.HasSuffix(t, "hypervsites"):
		return KindHyperV
	case strings.HasSuffix(t, "serversites"):
		return KindPhysical
	default:
		return ""
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
