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

// Package api provides shared fixtures and assertion helpers for the
// conformance suites under suites/.
//
// The HTTP client itself lives in pkg/bookstore; this package only layers
// Ginkgo-aware conveniences on top of it:
//
//   - fixtures that create a resource and schedule its cleanup with
//     DeferCleanup, so suites never leak test data even on failure
//   - assertion helpers that annotate failures with the request's trace ID,
//     keeping server-side log correlation one copy-paste away
//   - decode helpers that fail the spec, rather than panic, on malformed
//     response bodies
//
// # Future Improvements
//
// * The assertion helpers could grow response-schema validation against the
// published OpenAPI document once the discovery suites settle on a vocabulary
// for partial-document matches.
package api
