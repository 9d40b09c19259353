/*
Copyright 2026 the Bookstore Conformance Authors.

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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bookstore-qa/conformance/test/api"
)

var _ = Describe("Response Time", func() {
	Context("When timing collection reads", func() {
		Describe("Given the configured latency ceiling", func() {
			It("should list books under the ceiling", func() {
				resp, err := books.List(ctx)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				api.ExpectLatencyWithin(resp, cfg.LatencyCeiling)
			})

			It("should list authors under the ceiling", func() {
				resp, err := authors.List(ctx)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				api.ExpectLatencyWithin(resp, cfg.LatencyCeiling)
			})
		})
	})

	Context("When timing single resource reads", func() {
		Describe("Given the configured latency ceiling", func() {
			It("should retrieve a book and an author under the ceiling", func() {
				resp, err := books.GetByID(ctx, 1)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				api.ExpectLatencyWithin(resp, cfg.LatencyCeiling)

				resp, err = authors.GetByID(ctx, 1)
				Expect(err).NotTo(HaveOccurred())

				api.ExpectStatus(resp, http.StatusOK)
				api.ExpectLatencyWithin(resp, cfg.LatencyCeiling)
			})
		})
	})
})
