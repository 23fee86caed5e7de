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

package config

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mayoit/azmig-tool-assistant/validation"
)

// Global holds the resolved run-wide settings.
type Global struct {
	FailFast          bool
	ParallelExecution bool
	TimeoutSeconds    int
}

type resolvedCheck struct {
	enabled bool
	params  map[string]interface{}
}

// Resolved is the immutable, profile-merged configuration of one run.
// Resolution order, highest wins: explicit per-run overrides, the active
// profile's overrides, the document, built-in defaults.
type Resolved struct {
	global      Global
	checks      map[validation.CheckID]resolvedCheck
	fingerprint string
}

// Default returns the built-in configuration: every check enabled,
// fail-fast and parallel execution on.
func Default() *Resolved {
	resolved, err := Resolve(nil, "", nil)
	if err != nil {
		// The empty document cannot fail resolution.
		panic(err)
	}
	return resolved
}

// Resolve merges a document, a profile and explicit "dotted.path=value"
// overrides into an immutable snapshot. The profile argument overrides the
// document's active_profile; empty keeps the document's choice. Unknown
// profiles, check ids, parameters or value types are configuration errors.
func Resolve(doc *Document, profile string, overrides []string) (*Resolved, error) {
	r := &Resolved{
		global: Global{
			FailFast:          true,
			ParallelExecution: true,
			TimeoutSeconds:    DefaultTimeoutSeconds,
		},
		checks: map[validation.CheckID]resolvedCheck{},
	}
	for id, specs := range recognizedParams {
		params := make(map[string]interface{}, len(specs))
		for key, spec := range specs {
			params[key] = spec.def
		}
		r.checks[id] = resolvedCheck{enabled: true, params: params}
	}

	if doc == nil {
		doc = &Document{}
	}
	if err := r.applyDocument(doc); err != nil {
		return nil, err
	}
	if err := r.applyProfile(doc, profile); err != nil {
		return nil, err
	}
	for _, override := range overrides {
		key, rawValue, found := strings.Cut(override, "=")
		if !found {
			return nil, newErrorf("override %q: want dotted.path=value", override)
		}
		var value interface{}
		if err := yaml.Unmarshal([]byte(rawValue), &value); err != nil {
			return nil, newErrorf("override %q: unparseable value: %v", override, err)
		}
		if err := r.applyDotted(key, value); err != nil {
			return nil, err
		}
	}

	fingerprint, err := fingerprint(r)
	if err != nil {
		return nil, err
	}
	r.fingerprint = fingerprint
	return r, nil
}

func (r *Resolved) applyDocument(doc *Document) error {
	if doc.Global.FailFast != nil {
		r.global.FailFast = *doc.Global.FailFast
	}
	if doc.Global.ParallelExecution != nil {
		r.global.ParallelExecution = *doc.Global.ParallelExecution
	}
	if doc.Global.TimeoutSeconds != nil {
		if *doc.Global.TimeoutSeconds <= 0 {
			return newErrorf("global.timeout_seconds must be positive, got %d", *doc.Global.TimeoutSeconds)
		}
		r.global.TimeoutSeconds = *doc.Global.TimeoutSeconds
	}
	if err := r.applyTier(doc.Tier1, validation.Tier1Checks(), "tier1"); err != nil {
		return err
	}
	return r.applyTier(doc.Tier2, validation.Tier2Checks(), "tier2")
}

func (r *Resolved) applyTier(docs map[string]CheckDocument, tier []validation.CheckID, tierName string) error {
	for rawID, checkDoc := range docs {
		id := validation.CheckID(rawID)
		if !contains(tier, id) {
			return newErrorf("%s: unknown check %q", tierName, rawID)
		}
		check := r.checks[id]
		if checkDoc.Enabled != nil {
			check.enabled = *checkDoc.Enabled
		}
		for key, raw := range checkDoc.Params {
			spec, ok := recognizedParams[id][key]
			if !ok {
				return newErrorf("check %s: unknown parameter %q", id, key)
			}
			value, err := coerce(spec, raw)
			if err != nil {
				return newErrorf("check %s, parameter %s: %v", id, key, unwrapReason(err))
			}
			check.params[key] = value
		}
		r.checks[id] = check
	}
	return nil
}

func (r *Resolved) applyProfile(doc *Document, profile string) error {
	if profile == "" {
		profile = doc.ActiveProfile
	}
	if profile == "" {
		return nil
	}
	p, ok := doc.Profiles[profile]
	if !ok {
		return newErrorf("unknown profile %q", profile)
	}
	for path, value := range p.Overrides {
		if err := r.applyDotted(path, value); err != nil {
			return newErrorf("profile %q: %v", profile, unwrapReason(err))
		}
	}
	return nil
}

// applyDotted applies one "dotted.path: value" override. "global.<field>"
// targets a run-wide setting; otherwise the leading segments name a check
// and the last segment a parameter or "enabled".
func (r *Resolved) applyDotted(path string, value interface{}) error {
	if field, ok := strings.CutPrefix(path, "global."); ok {
		return r.applyGlobal(field, value)
	}

	dot := strings.LastIndex(path, ".")
	if dot < 0 {
		return newErrorf("override path %q: want dotted path", path)
	}
	id, key := validation.CheckID(path[:dot]), path[dot+1:]
	if !validation.KnownCheck(id) {
		return newErrorf("override path %q: unknown check %q", path, string(id))
	}
	check := r.checks[id]
	if key == "enabled" {
		enabled, ok := value.(bool)
		if !ok {
			return newErrorf("override %s: want bool, got %T", path, value)
		}
		check.enabled = enabled
		r.checks[id] = check
		return nil
	}
	spec, ok := recognizedParams[id][key]
	if !ok {
		return newErrorf("override path %q: unknown parameter %q", path, key)
	}
	coerced, err := coerce(spec, value)
	if err != nil {
		return newErrorf("override %s: %v", path, unwrapReason(err))
	}
	check.params[key] = coerced
	r.checks[id] = check
	return nil
}

func (r *Resolved) applyGlobal(field string, value interface{}) error {
	switch field {
	case "fail_fast", "parallel_execution":
		v, ok := value.(bool)
		if !ok {
			return newErrorf("global.%s: want bool, got %T", field, value)
		}
		if field == "fail_fast" {
			r.global.FailFast = v
		} else {
			r.global.ParallelExecution = v
		}
	case "timeout_seconds":
		v, ok := value.(int)
		if !ok {
			return newErrorf("global.timeout_seconds: want int, got %T", value)
		}
		if v <= 0 {
			return newErrorf("global.timeout_seconds must be positive, got %d", v)
		}
		r.global.TimeoutSeconds = v
	default:
		return newErrorf("unknown global setting %q", field)
	}
	return nil
}

// Global returns the resolved run-wide settings.
func (r *Resolved) Global() Global {
	return r.global
}

// Fingerprint is the hex SHA-256 of the canonicalized resolved state. Runs
// with equal fingerprints executed the same checks with the same
// parameters.
func (r *Resolved) Fingerprint() string {
	return r.fingerprint
}

// IsEnabled reports whether a check is enabled.
func (r *Resolved) IsEnabled(id validation.CheckID) bool {
	return r.checks[id].enabled
}

// EnabledTier1 returns the enabled project checks in canonical order.
func (r *Resolved) EnabledTier1() []validation.CheckID {
	return r.enabled(validation.Tier1Checks())
}

// EnabledTier2 returns the enabled machine checks in canonical order.
func (r *Resolved) EnabledTier2() []validation.CheckID {
	return r.enabled(validation.Tier2Checks())
}

func (r *Resolved) enabled(tier []validation.CheckID) []validation.CheckID {
	var ids []validation.CheckID
	for _, id := range tier {
		if r.checks[id].enabled {
			ids = append(ids, id)
		}
	}
	return ids
}

// ParamBool returns a bool parameter, or def when the parameter is not set.
func (r *Resolved) ParamBool(id validation.CheckID, key string, def bool) bool {
	if v, ok := r.checks[id].params[key].(bool); ok {
		return v
	}
	return def
}

// ParamInt returns an int parameter, or def when the parameter is not set.
func (r *Resolved) ParamInt(id validation.CheckID, key string, def int) int {
	if v, ok := r.checks[id].params[key].(int); ok {
		return v
	}
	return def
}

// ParamString returns a string parameter, or def when the parameter is not
// set.
func (r *Resolved) ParamString(id validation.CheckID, key, def string) string {
	if v, ok := r.checks[id].params[key].(string); ok {
		return v
	}
	return def
}

// ParamStringSlice returns a string list parameter, or def when the
// parameter is not set.
func (r *Resolved) ParamStringSlice(id validation.CheckID, key string, def []string) []string {
	if v, ok := r.checks[id].params[key].([]string); ok {
		return append([]string(nil), v...)
	}
	return def
}

// ParamRegionMap returns a region-list map parameter, or nil when the
// parameter is not set.
func (r *Resolved) ParamRegionMap(id validation.CheckID, key string) map[string][]string {
	v, ok := r.checks[id].params[key].(map[string][]string)
	if !ok {
		return nil
	}
	copied := make(map[string][]string, len(v))
	for mapKey, list := range v {
		copied[mapKey] = append([]string(nil), list...)
	}
	return copied
}

func contains(ids []validation.CheckID, id validation.CheckID) bool {
	for _, known := range ids {
		if known == id {
			return true
		}
	}
	return false
}

// unwrapReason strips the "invalid validation config:" prefix when nesting
// one config error inside another.
func unwrapReason(err error) string {
	if cfgErr, ok := err.(*Error); ok {
		return cfgErr.Reason
	}
	return err.Error()
}
