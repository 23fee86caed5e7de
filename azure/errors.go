/*
Copyright 2023 The AzMig Authors.

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

package azure

import (
	"context"
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// FailureKind buckets an Azure call error by how callers should react to it.
type FailureKind string

const (
	// FailureNotFound means the target resource does not exist.
	FailureNotFound FailureKind = "not_found"
	// FailureForbidden means the identity lacks permission on the target scope.
	FailureForbidden FailureKind = "forbidden"
	// FailureThrottled means ARM rejected the call with Too Many Requests.
	FailureThrottled FailureKind = "throttled"
	// FailureTransient means the call failed with a retryable server error.
	FailureTransient FailureKind = "transient"
	// FailureMalformed means ARM rejected the request as invalid.
	FailureMalformed FailureKind = "malformed"
	// FailureNetwork means the call never produced an HTTP response.
	FailureNetwork FailureKind = "network"
)

// ResourceNotFound parses an error to check if its status code is Not Found (404).
func ResourceNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

// IsForbidden parses an error to check if its status code is Unauthorized (401)
// or Forbidden (403).
func IsForbidden(err error) bool {
	return hasStatusCode(err, http.StatusUnauthorized) || hasStatusCode(err, http.StatusForbidden)
}

// IsThrottled parses an error to check if its status code is Too Many Requests (429).
func IsThrottled(err error) bool {
	return hasStatusCode(err, http.StatusTooManyRequests)
}

// IsTransient parses an error to check if it is a Request Timeout (408) or a
// server-side error, either of which may succeed on a later attempt.
func IsTransient(err error) bool {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return false
	}
	return respErr.StatusCode == http.StatusRequestTimeout || respErr.StatusCode >= http.StatusInternalServerError
}

// ClassifyError maps an Azure call error onto a FailureKind. Errors that carry
// no HTTP response are treated as network failures.
func ClassifyError(err error) FailureKind {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return FailureNetwork
	}
	switch {
	case respErr.StatusCode == http.StatusNotFound:
		return FailureNotFound
	case respErr.StatusCode == http.StatusUnauthorized, respErr.StatusCode == http.StatusForbidden:
		return FailureForbidden
	case respErr.StatusCode == http.StatusTooManyRequests:
		return FailureThrottled
	case respErr.StatusCode == http.StatusRequestTimeout, respErr.StatusCode >= http.StatusInternalServerError:
		return FailureTransient
	default:
		return FailureMalformed
	}
}

// RequestID extracts the x-ms-request-id header from the failed response so it
// can be surfaced alongside check results. Returns an empty string when the
// error carries no response.
func RequestID(err error) string {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) && respErr.RawResponse != nil {
		return respErr.RawResponse.Header.Get("x-ms-request-id")
	}
	return ""
}

func hasStatusCode(err error, statusCode int) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == statusCode
}

// IsContextDeadlineExceededOrCanceledError checks if it's a context deadline
// exceeded or canceled error.
func IsContextDeadlineExceededOrCanceledError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
