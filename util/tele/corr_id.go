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

package tele

import (
	"context"

	"github.com/google/uuid"
)

type corrIDKey string

// CorrIDKeyVal is the context key under which the correlation ID is stored.
// Its string value doubles as the HTTP header name that carries the
// correlation ID on every ARM request.
const CorrIDKeyVal corrIDKey = "x-ms-correlation-request-id"

// CorrID is a correlation ID sent with every API request to Azure, so that
// a validation run's calls can be correlated with Azure-side request logs.
// Do not create one of these manually; ctxWithCorrID stores one in a
// context.Context and CorrIDFromCtx fetches it back out.
type CorrID string

// ctxWithCorrID returns a context carrying a correlation ID together with
// that ID. If the given context already carries one, it is returned
// unchanged. If a new correlation ID cannot be generated, the original
// context is returned with an empty CorrID.
func ctxWithCorrID(ctx context.Context) (context.Context, CorrID) {
	if corrID, ok := CorrIDFromCtx(ctx); ok {
		return ctx, corrID
	}
	uid, err := uuid.NewRandom()
	if err != nil {
		return ctx, CorrID("")
	}
	newCorrID := CorrID(uid.String())
	return context.WithValue(ctx, CorrIDKeyVal, newCorrID), newCorrID
}

// CorrIDFromCtx attempts to fetch a correlation ID from the given
// context.Context. If none exists, returns an empty CorrID and false.
// Otherwise returns the CorrID value and true.
func CorrIDFromCtx(ctx context.Context) (CorrID, bool) {
	if corrID, ok := ctx.Value(CorrIDKeyVal).(CorrID); ok {
		return corrID, true
	}
	return CorrID(""), false
}
