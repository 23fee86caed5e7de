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

package azure

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/pkg/errors"
)

func TestIsContextDeadlineExceededOrCanceled(t *testing.T) {
	tests := []struct {
		name string
		want bool
		err  error
	}{
		{
			name: "Context deadline exceeded error",
			err: func() error {
				ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-7*time.Hour))
				defer cancel()
				return ctx.Err()
			}(),
			want: true,
		},
		{
			name: "Context canceled exceeded error",
			err: func() error {
				ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(1*time.Hour))
				cancel()
				return ctx.Err()
			}(),
			want: true,
		},
		{
			name: "Nil error",
			err:  nil,
			want: false,
		},
		{
			name: "Error other than context deadline exceeded or canceled error",
			err:  errors.New("dummy error"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContextDeadlineExceededOrCanceledError(tt.err); got != tt.want {
				t.Errorf("IsContextDeadlineExceededOrCanceled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResourceNotFound(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		success bool
	}{
		{
			name:    "Not Found response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusNotFound},
			success: true,
		},
		{
			name:    "Conflict response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusConflict},
			success: false,
		},
		{
			name:    "Wrapped Not Found response error",
			err:     errors.Wrap(&azcore.ResponseError{StatusCode: http.StatusNotFound}, "failed to get resource"),
			success: true,
		},
		{
			name:    "Not Found generic error",
			err:     errors.New("404: Not Found"),
			success: false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ResourceNotFound(tc.err); got != tc.success {
				t.Errorf("ResourceNotFound() = %v, want %v", got, tc.success)
			}
		})
	}
}

func TestIsForbidden(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		success bool
	}{
		{
			name:    "Unauthorized response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusUnauthorized},
			success: true,
		},
		{
			name:    "Forbidden response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusForbidden},
			success: true,
		},
		{
			name:    "Not Found response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusNotFound},
			success: false,
		},
		{
			name:    "Generic error",
			err:     errors.New("403: Forbidden"),
			success: false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsForbidden(tc.err); got != tc.success {
				t.Errorf("IsForbidden() = %v, want %v", got, tc.success)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		success bool
	}{
		{
			name:    "Request Timeout response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusRequestTimeout},
			success: true,
		},
		{
			name:    "Internal Server Error response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusInternalServerError},
			success: true,
		},
		{
			name:    "Service Unavailable response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusServiceUnavailable},
			success: true,
		},
		{
			name:    "Bad Request response error",
			err:     &azcore.ResponseError{StatusCode: http.StatusBadRequest},
			success: false,
		},
		{
			name:    "Generic error",
			err:     errors.New("connection reset by peer"),
			success: false,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsTransient(tc.err); got != tc.success {
				t.Errorf("IsTransient() = %v, want %v", got, tc.success)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "Not Found",
			err:  &azcore.ResponseError{StatusCode: http.StatusNotFound},
			want: FailureNotFound,
		},
		{
			name: "Unauthorized",
			err:  &azcore.ResponseError{StatusCode: http.StatusUnauthorized},
			want: FailureForbidden,
		},
		{
			name: "Forbidden",
			err:  &azcore.ResponseError{StatusCode: http.StatusForbidden},
			want: FailureForbidden,
		},
		{
			name: "Too Many Requests",
			err:  &azcore.ResponseError{StatusCode: http.StatusTooManyRequests},
			want: FailureThrottled,
		},
		{
			name: "Bad Gateway",
			err:  &azcore.ResponseError{StatusCode: http.StatusBadGateway},
			want: FailureTransient,
		},
		{
			name: "Request Timeout",
			err:  &azcore.ResponseError{StatusCode: http.StatusRequestTimeout},
			want: FailureTransient,
		},
		{
			name: "Bad Request",
			err:  &azcore.ResponseError{StatusCode: http.StatusBadRequest},
			want: FailureMalformed,
		},
		{
			name: "Wrapped response error",
			err:  errors.Wrap(&azcore.ResponseError{StatusCode: http.StatusNotFound}, "failed to get resource"),
			want: FailureNotFound,
		},
		{
			name: "Plain error without a response",
			err:  errors.New("dial tcp: i/o timeout"),
			want: FailureNetwork,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyError(tc.err); got != tc.want {
				t.Errorf("ClassifyError() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("x-ms-request-id", "11111111-2222-3333-4444-555555555555")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "Response error with request ID",
			err:  &azcore.ResponseError{StatusCode: http.StatusForbidden, RawResponse: resp},
			want: "11111111-2222-3333-4444-555555555555",
		},
		{
			name: "Response error without a raw response",
			err:  &azcore.ResponseError{StatusCode: http.StatusForbidden},
			want: "",
		},
		{
			name: "Plain error",
			err:  errors.New("dummy error"),
			want: "",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := RequestID(tc.err); got != tc.want {
				t.Errorf("RequestID() = %v, want %v", got, tc.want)
			}
		})
	}
}
