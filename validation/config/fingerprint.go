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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// fingerprint hashes the canonical encoding of the resolved state. The
// encoding goes through maps so JSON key ordering, not document ordering,
// determines the byte stream; two documents resolving to the same state
// share a fingerprint.
func fingerprint(r *Resolved) (string, error) {
	checks := make(map[string]interface{}, len(r.checks))
	for id, check := range r.checks {
		params := make(map[string]interface{}, len(check.params))
		for key, value := range check.params {
			params[key] = canonicalValue(value)
		}
		checks[string(id)] = map[string]interface{}{
			"enabled": check.enabled,
			"params":  params,
		}
	}
	canonical := map[string]interface{}{
		"global": map[string]interface{}{
			"fail_fast":          r.global.FailFast,
			"parallel_execution": r.global.ParallelExecution,
			"timeout_seconds":    r.global.TimeoutSeconds,
		},
		"checks": checks,
	}
	encoded, err := json.Marshal(canonical)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode resolved config")
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
