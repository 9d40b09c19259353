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
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bookstore-qa/conformance/test/api"
)

var _ = Describe("API Discovery and Metadata", func() {
	Context("When downloading the published document", func() {
		Describe("Given the service advertises its contract", func() {
			It("should parse and declare the resource paths", func() {
				resp, err := client.GetOpenAPIDocument(ctx)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)

				doc, err := openapi3.NewLoader().LoadFromData(resp.Body)
				Expect(err).NotTo(HaveOccurred())

				Expect(doc.Paths.Find(cfg.BooksPath())).NotTo(BeNil(), "document does not declare %s", cfg.BooksPath())
				Expect(doc.Paths.Find(cfg.AuthorsPath())).NotTo(BeNil(), "document does not declare %s", cfg.AuthorsPath())

				GinkgoWriter.Printf("Document declares %d paths\n", doc.Paths.Len())
			})
		})
	})

	Context("When inspecting response metadata", func() {
		Describe("Given the versioned success content type", func() {
			It("should be served on both collection endpoints", func() {
				resp, err := books.List(ctx)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				api.ExpectSuccessContentType(resp)

				resp, err = authors.List(ctx)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				api.ExpectSuccessContentType(resp)
			})
		})
	})
})
