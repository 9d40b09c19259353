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
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
)

// CreateBookWithCleanup posts a book, verifies the create succeeded, and
// schedules a delete for it. The delete runs whether the spec passes or
// fails, so suites never leave data behind on services that do persist
// writes. It is best effort: the service accepts deletes for any id.
func CreateBookWithCleanup(client *bookstore.BooksClient, ctx context.Context, book bookstore.Book) bookstore.Book {
	GinkgoHelper()

	resp, err := client.Create(ctx, book)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "create book failed (trace ID: %s)", resp.TraceID())

	created := DecodeBook(resp)
	id := ptr.Deref(created.ID, 0)

	GinkgoWriter.Printf("Created book with ID: %d\n", id)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up book: %d\n", id)

		if _, deleteErr := client.Delete(context.Background(), id); deleteErr != nil {
			GinkgoWriter.Printf("Warning: failed to delete book %d: %v\n", id, deleteErr)
		}
	})

	return created
}

// CreateAuthorWithCleanup posts an author, verifies the create succeeded, and
// schedules a delete for it.
func CreateAuthorWithCleanup(client *bookstore.AuthorsClient, ctx context.Context, author bookstore.Author) bookstore.Author {
	GinkgoHelper()

	resp, err := client.Create(ctx, author)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK), "create author failed (trace ID: %s)", resp.TraceID())

	created := DecodeAuthor(resp)
	id := ptr.Deref(created.ID, 0)

	GinkgoWriter.Printf("Created author with ID: %d\n", id)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up author: %d\n", id)

		if _, deleteErr := client.Delete(context.Background(), id); deleteErr != nil {
			GinkgoWriter.Printf("Warning: failed to delete author %d: %v\n", id, deleteErr)
		}
	})

	return created
}

// VerifyBookEcho asserts that every field set on the submitted book came back
// unchanged in the response. Unset fields are not compared, since the service
// is free to default them.
func VerifyBookEcho(echoed, submitted bookstore.Book) {
	GinkgoHelper()

	if submitted.ID != nil {
		Expect(echoed.ID).To(HaveValue(Equal(*submitted.ID)), "book id was not echoed")
	}

	if submitted.Title != nil {
		Expect(echoed.Title).To(HaveValue(Equal(*submitted.Title)), "book title was not echoed")
	}

	if submitted.Description != nil {
		Expect(echoed.Description).To(HaveValue(Equal(*submitted.Description)), "book description was not echoed")
	}

	if submitted.PageCount != nil {
		Expect(echoed.PageCount).To(HaveValue(Equal(*submitted.PageCount)), "book page count was not echoed")
	}

	if submitted.Excerpt != nil {
		Expect(echoed.Excerpt).To(HaveValue(Equal(*submitted.Excerpt)), "book excerpt was not echoed")
	}
}

// VerifyAuthorEcho asserts that every field set on the submitted author came
// back unchanged in the response.
func VerifyAuthorEcho(echoed, submitted bookstore.Author) {
	GinkgoHelper()

	if submitted.ID != nil {
		Expect(echoed.ID).To(HaveValue(Equal(*submitted.ID)), "author id was not echoed")
	}

	if submitted.IDBook != nil {
		Expect(echoed.IDBook).To(HaveValue(Equal(*submitted.IDBook)), "author idBook was not echoed")
	}

	if submitted.FirstName != nil {
		Expect(echoed.FirstName).To(HaveValue(Equal(*submitted.FirstName)), "author first name was not echoed")
	}

	if submitted.LastName != nil {
		Expect(echoed.LastName).To(HaveValue(Equal(*submitted.LastName)), "author last name was not echoed")
	}
}
