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
	"math"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/bookstore-qa/conformance/pkg/testdata"
	"github.com/bookstore-qa/conformance/test/api"
)

var _ = Describe("Boundary Value Testing", func() {
	Context("When submitting books at numeric and length limits", func() {
		Describe("Given extreme but representable values", func() {
			It("should accept the maximum page count", func() {
				payload := testdata.BookWithPageCount(math.MaxInt32)

				resp, err := books.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				Expect(api.DecodeBook(resp).PageCount).To(HaveValue(Equal(math.MaxInt32)))
			})

			It("should accept a very long title", func() {
				payload := testdata.RandomBook()
				payload.Title = ptr.To(testdata.LongString(1000))

				resp, err := books.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				Expect(api.DecodeBook(resp).Title).To(HaveValue(Equal(*payload.Title)))
			})
		})
	})

	Context("When submitting authors at numeric and length limits", func() {
		Describe("Given extreme but representable values", func() {
			It("should accept a very long first name", func() {
				payload := testdata.RandomAuthor()
				payload.FirstName = ptr.To(testdata.LongString(500))

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
			})

			It("should accept a very long last name", func() {
				payload := testdata.RandomAuthor()
				payload.LastName = ptr.To(testdata.LongString(500))

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
			})

			It("should accept the maximum author id", func() {
				resp, err := authors.Create(ctx, testdata.AuthorWithID(math.MaxInt32))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				Expect(api.DecodeAuthor(resp).ID).To(HaveValue(Equal(math.MaxInt32)))
			})

			It("should accept the maximum book reference", func() {
				payload := testdata.RandomAuthor()
				payload.IDBook = ptr.To(math.MaxInt32)

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
			})
		})
	})

	Context("When retrieving books outside the id range", func() {
		Describe("Given ids below the valid range", func() {
			It("should report id zero as not found", func() {
				resp, err := books.GetByID(ctx, 0)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusNotFound)
			})

			It("should report a negative id as not found", func() {
				resp, err := books.GetByID(ctx, -1)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusNotFound)
			})
		})
	})
})
