/*
Copyright 2025-2026 the Bookstore Conformance Authors.

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

package bookstore

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

// TraceRecord describes one request/response exchange. Exactly one record is
// emitted per request attempt, on every exit path including failures.
type TraceRecord struct {
	Method       string
	Path         string
	TraceParent  string
	Status       int
	Elapsed      time.Duration
	Err          error
	RequestBody  []byte
	ResponseBody []byte
}

// A Tracer consumes trace records. Implementations observe; they must never
// influence the exchange.
type Tracer interface {
	Trace(record TraceRecord)
}

type nopTracer struct{}

func (nopTracer) Trace(TraceRecord) {}

// WriterTracer writes the standard request log line to an io.Writer, which in
// suites is the ginkgo writer. Body dumps are opt-in per direction; the log
// line itself is emitted for every record.
type WriterTracer struct {
	W            io.Writer
	LogRequests  bool
	LogResponses bool
}

func (t *WriterTracer) Trace(record TraceRecord) {
	if t.LogRequests && len(record.RequestBody) > 0 {
		fmt.Fprintf(t.W, "[%s %s] request body: %s\n", record.Method, record.Path, string(record.RequestBody))
	}

	if record.Err != nil {
		fmt.Fprintf(t.W, "[%s %s] ERROR duration=%s traceparent=%s error=%v\n", record.Method, record.Path, record.Elapsed, record.TraceParent, record.Err)
		fmt.Fprintf(t.W, "TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(record.TraceParent))

		return
	}

	fmt.Fprintf(t.W, "[%s %s] status=%d duration=%s traceparent=%s\n", record.Method, record.Path, record.Status, record.Elapsed, record.TraceParent)

	if t.LogResponses && len(record.ResponseBody) > 0 {
		fmt.Fprintf(t.W, "[%s %s] response body: %s\n", record.Method, record.Path, string(record.ResponseBody))
	}
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}
