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

// Package bookstore contains the HTTP client used to probe the bookstore API.
//
// This package deliberately maintains a hand-written client rather than one
// generated from the published OpenAPI document:
//
// 1. Triangulation: the suite verifies API behavior, so the client must not
// inherit assumptions from the API's own description of itself.
//
// 2. Full response access: every probe needs the raw status code, headers,
// body and timing, including for responses a generated client would reject.
//
// 3. Invalid payloads: validation probes send bodies a generated client could
// never produce (missing fields, malformed JSON, mismatched identifiers).
//
// 4. Trace context: each request carries W3C trace headers so a failed probe
// can be correlated with server-side logs.
//
// HTTP error statuses are data here, not errors. The returned error is
// reserved for request construction, transport, context and body-read
// failures; every completed exchange produces a Response regardless of status
// and classification is the caller's concern.
package bookstore
