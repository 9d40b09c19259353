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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"fmt"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
	"k8s.io/utils/ptr"

	"github.com/bookstore-qa/conformance/pkg/testdata"
	"github.com/bookstore-qa/conformance/test/api"
)

var _ = Describe("Books API Validation", func() {
	Context("When creating books with invalid payloads", func() {
		Describe("Given title violations", func() {
			// Explicit JSON null, not an omitted field: the two bind
			// differently server side.
			It("should reject a null title", Label("known-defect"), func() {
				payload := fmt.Sprintf(`{"id":%d,"title":null,"pageCount":150,"publishDate":%q}`,
					testdata.RandomBookID(), time.Now().UTC().Format(time.RFC3339))

				resp, err := books.CreateRaw(ctx, []byte(payload))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})

			It("should reject an empty title", Label("known-defect"), func() {
				payload := testdata.RandomBook()
				payload.Title = ptr.To("")

				resp, err := books.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})
		})

		Describe("Given optional field omissions", func() {
			It("should accept a missing description", func() {
				payload := testdata.RandomBook()
				payload.Description = nil

				resp, err := books.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
			})

			It("should accept an empty description", func() {
				payload := testdata.RandomBook()
				payload.Description = ptr.To("")

				resp, err := books.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
			})

			It("should accept an empty excerpt", func() {
				payload := testdata.RandomBook()
				payload.Excerpt = ptr.To("")

				resp, err := books.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
			})
		})

		Describe("Given publish date violations", func() {
			It("should reject an empty publish date", func() {
				payload := testdata.RandomBook()
				payload.PublishDate = ptr.To("")

				resp, err := books.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})

			It("should reject a null publish date", func() {
				payload := fmt.Sprintf(`{"id":%d,"title":"Null date probe","pageCount":150,"publishDate":null}`,
					testdata.RandomBookID())

				resp, err := books.CreateRaw(ctx, []byte(payload))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})
		})

		Describe("Given page count edge values", func() {
			It("should reject a negative page count", Label("known-defect"), func() {
				resp, err := books.Create(ctx, testdata.BookWithPageCount(-100))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})

			It("should accept a zero page count", func() {
				resp, err := books.Create(ctx, testdata.BookWithPageCount(0))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				Expect(api.DecodeBook(resp).PageCount).To(HaveValue(Equal(0)))
			})
		})

		Describe("Given conflicting ids", func() {
			It("should reject a duplicate of an existing id", Label("known-defect"), func() {
				resp, err := books.Create(ctx, testdata.BookWithID(testdata.SeededBookID()))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatusIn(resp, set.New[int](http.StatusBadRequest, http.StatusConflict))
			})
		})
	})

	Context("When updating books with invalid payloads", func() {
		Describe("Given id mismatches", func() {
			It("should reject a body id that disagrees with the path id", Label("known-defect"), func() {
				resp, err := books.Update(ctx, 1, testdata.BookWithID(999))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})
		})
	})
})
