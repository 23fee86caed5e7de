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
	"fmt"

	"github.com/pkg/errors"
)

// Error is a fatal configuration problem: an unknown profile or check id, or
// a parameter of the wrong type. It is the only error class that aborts a
// run before any check executes.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "invalid validation config: " + e.Reason
}

func newErrorf(format string, args ...interface{}) *Error {
	return &Error{Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	target := &Error{}
	return errors.As(err, &target)
}
