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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
	"k8s.io/utils/ptr"

	"github.com/bookstore-qa/conformance/pkg/testdata"
	"github.com/bookstore-qa/conformance/test/api"
)

var _ = Describe("Authors API Validation", func() {
	Context("When creating authors with invalid payloads", func() {
		Describe("Given first name violations", func() {
			It("should reject an empty first name", Label("known-defect"), func() {
				payload := testdata.RandomAuthor()
				payload.FirstName = ptr.To("")

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})

			It("should reject a null first name", Label("known-defect"), func() {
				payload := fmt.Sprintf(`{"id":%d,"idBook":%d,"firstName":null,"lastName":"Probe"}`,
					testdata.RandomAuthorID(), testdata.SeededBookID())

				resp, err := authors.CreateRaw(ctx, []byte(payload))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})
		})

		Describe("Given last name violations", func() {
			It("should reject an empty last name", Label("known-defect"), func() {
				payload := testdata.RandomAuthor()
				payload.LastName = ptr.To("")

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})

			It("should reject a null last name", Label("known-defect"), func() {
				payload := fmt.Sprintf(`{"id":%d,"idBook":%d,"firstName":"Probe","lastName":null}`,
					testdata.RandomAuthorID(), testdata.SeededBookID())

				resp, err := authors.CreateRaw(ctx, []byte(payload))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})
		})

		Describe("Given book reference violations", func() {
			It("should reject a negative book reference", Label("known-defect"), func() {
				payload := testdata.RandomAuthor()
				payload.IDBook = ptr.To(-100)

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})

			It("should reject a zero book reference", Label("known-defect"), func() {
				payload := testdata.RandomAuthor()
				payload.IDBook = ptr.To(0)

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})
		})

		Describe("Given unusual but valid names", func() {
			It("should accept special characters in names", func() {
				payload := testdata.RandomAuthor()
				payload.FirstName = ptr.To("Test@#$%")
				payload.LastName = ptr.To("Name!&*()")

				resp, err := authors.Create(ctx, payload)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				api.VerifyAuthorEcho(api.DecodeAuthor(resp), payload)
			})
		})

		Describe("Given conflicting ids", func() {
			It("should reject a duplicate of an existing id", Label("known-defect"), func() {
				resp, err := authors.Create(ctx, testdata.AuthorWithID(testdata.SeededAuthorID()))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatusIn(resp, set.New[int](http.StatusBadRequest, http.StatusConflict))
			})
		})
	})

	Context("When updating authors with invalid payloads", func() {
		Describe("Given id mismatches", func() {
			It("should reject a body id that disagrees with the path id", Label("known-defect"), func() {
				resp, err := authors.Update(ctx, 1, testdata.AuthorWithID(999))
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusBadRequest)
			})
		})
	})
})
