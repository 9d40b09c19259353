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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
)

// maxBodyExcerpt bounds how much of a response body gets copied into a
// failure message.
const maxBodyExcerpt = 200

// ExpectStatus asserts an exact response status. Failures carry the trace ID
// and a body excerpt so the offending exchange can be found in server logs.
func ExpectStatus(resp *bookstore.Response, want int) {
	GinkgoHelper()

	Expect(resp.StatusCode).To(Equal(want),
		"unexpected status (trace ID: %s): %s", resp.TraceID(), bodyExcerpt(resp))
}

// ExpectStatusIn asserts the status is one of an allowed set, for probes
// where the service legitimately picks between statuses, 400 versus 409 on a
// conflicting create for example.
func ExpectStatusIn(resp *bookstore.Response, allowed set.Set[int]) {
	GinkgoHelper()

	Expect(allowed.Contains(resp.StatusCode)).To(BeTrue(),
		"status %d not in %v (trace ID: %s): %s",
		resp.StatusCode, slices.Sorted(allowed.All()), resp.TraceID(), bodyExcerpt(resp))
}

// ExpectSuccessContentType asserts the exact success content type, version
// parameter included.
func ExpectSuccessContentType(resp *bookstore.Response) {
	GinkgoHelper()

	Expect(resp.ContentType()).To(Equal(bookstore.SuccessContentType),
		"unexpected content type (trace ID: %s)", resp.TraceID())
}

// ExpectLatencyWithin asserts the round trip completed under the given
// ceiling.
func ExpectLatencyWithin(resp *bookstore.Response, ceiling time.Duration) {
	GinkgoHelper()

	Expect(resp.Elapsed).To(BeNumerically("<", ceiling),
		"request took %s, ceiling is %s (trace ID: %s)", resp.Elapsed, ceiling, resp.TraceID())
}

// DecodeBook decodes a single book, failing the spec on malformed bodies.
func DecodeBook(resp *bookstore.Response) bookstore.Book {
	GinkgoHelper()

	var book bookstore.Book

	Expect(resp.Decode(&book)).To(Succeed(), "body was not a book (trace ID: %s): %s", resp.TraceID(), bodyExcerpt(resp))

	return book
}

// DecodeBooks decodes a book collection.
func DecodeBooks(resp *bookstore.Response) []bookstore.Book {
	GinkgoHelper()

	var books []bookstore.Book

	Expect(resp.Decode(&books)).To(Succeed(), "body was not a book list (trace ID: %s): %s", resp.TraceID(), bodyExcerpt(resp))

	return books
}

// DecodeAuthor decodes a single author.
func DecodeAuthor(resp *bookstore.Response) bookstore.Author {
	GinkgoHelper()

	var author bookstore.Author

	Expect(resp.Decode(&author)).To(Succeed(), "body was not an author (trace ID: %s): %s", resp.TraceID(), bodyExcerpt(resp))

	return author
}

// DecodeAuthors decodes an author collection.
func DecodeAuthors(resp *bookstore.Response) []bookstore.Author {
	GinkgoHelper()

	var authors []bookstore.Author

	Expect(resp.Decode(&authors)).To(Succeed(), "body was not an author list (trace ID: %s): %s", resp.TraceID(), bodyExcerpt(resp))

	return authors
}

func bodyExcerpt(resp *bookstore.Response) string {
	if len(resp.Body) == 0 {
		return "<empty body>"
	}

	if len(resp.Body) > maxBodyExcerpt {
		return string(resp.Body[:maxBodyExcerpt]) + "..."
	}

	return string(resp.Body)
}
