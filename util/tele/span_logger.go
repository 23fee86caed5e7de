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
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// spanLogSink is a logr.LogSink that records log output as events on the
// span it was created for, and forwards it to the logger it wraps.
type spanLogSink struct {
	trace.Span
	log  logr.Logger
	name string
	vals []interface{}
}

func (*spanLogSink) Init(logr.RuntimeInfo) {}

func (s *spanLogSink) Enabled(_ int) bool {
	return true
}

func (s *spanLogSink) evtStr(evtType, msg string) string {
	return fmt.Sprintf("[%s | %s] %s", evtType, s.name, msg)
}

func (s *spanLogSink) kvsToAttrs(keysAndValues ...interface{}) []attribute.KeyValue {
	ret := make([]attribute.KeyValue, 0, (len(keysAndValues)+len(s.vals))/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		ret = append(ret, attribute.String(
			fmt.Sprintf("%v", keysAndValues[i]),
			fmt.Sprintf("%v", keysAndValues[i+1]),
		))
	}
	for i := 0; i+1 < len(s.vals); i += 2 {
		ret = append(ret, attribute.String(
			fmt.Sprintf("%v", s.vals[i]),
			fmt.Sprintf("%v", s.vals[i+1]),
		))
	}
	return ret
}

func (s *spanLogSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.AddEvent(
		s.evtStr("INFO", fmt.Sprintf("(level %d) %s", level, msg)),
		trace.WithTimestamp(time.Now()),
		trace.WithAttributes(s.kvsToAttrs(keysAndValues...)...),
	)
	s.log.V(level).Info(msg, keysAndValues...)
}

func (s *spanLogSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.AddEvent(
		s.evtStr("ERROR", fmt.Sprintf("%s (error %s)", msg, err)),
		trace.WithTimestamp(time.Now()),
		trace.WithAttributes(s.kvsToAttrs(keysAndValues...)...),
	)
	s.log.Error(err, msg, keysAndValues...)
}

func (s *spanLogSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	// vals must not be shared with the new sink, an append on one would be
	// visible through the other when cap() exceeds len().
	vals := make([]interface{}, len(s.vals), len(s.vals)+len(keysAndValues))
	copy(vals, s.vals)
	vals = append(vals, keysAndValues...)
	return &spanLogSink{
		Span: s.Span,
		log:  s.log.WithValues(keysAndValues...),
		name: s.name,
		vals: vals,
	}
}

func (s *spanLogSink) WithName(name string) logr.LogSink {
	return &spanLogSink{
		Span: s.Span,
		log:  s.log.WithName(name),
		name: name,
		vals: s.vals,
	}
}

// Config holds the attributes to stamp onto a span when it's created.
type Config struct {
	// KVPs are key-value pairs to add to the span as attributes.
	KVPs map[string]string
}

func (c Config) teleKeyValues() []attribute.KeyValue {
	keyValues := make([]attribute.KeyValue, 0, len(c.KVPs))
	for k, v := range c.KVPs {
		keyValues = append(keyValues, attribute.String(k, v))
	}
	return keyValues
}

// Option modifies a Config.
type Option func(*Config)

// KVP returns an Option that adds the given key-value pair as a span attribute.
func KVP(key, value string) Option {
	return func(cfg *Config) {
		cfg.KVPs[key] = value
	}
}

// StartSpanWithLogger starts a span named spanName with the tracer returned
// by Tracer, and returns the span's context, a logger that writes both to
// the span and to the logger carried by ctx, and a function that ends the
// span. The span and every ARM request made under the returned context carry
// the same correlation ID.
func StartSpanWithLogger(ctx context.Context, spanName string, opts ...Option) (context.Context, logr.Logger, func()) {
	cfg := Config{KVPs: make(map[string]string)}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, corrID := ctxWithCorrID(ctx)
	attrs := append(cfg.teleKeyValues(), attribute.String(string(CorrIDKeyVal), string(corrID)))
	ctx, span := Tracer().Start(ctx, spanName, trace.WithAttributes(attrs...))

	sink := &spanLogSink{
		Span: span,
		log:  logr.FromContextOrDiscard(ctx).WithName(spanName),
		name: spanName,
		vals: []interface{}{},
	}
	return ctx, logr.New(sink), func() {
		span.End()
	}
}
