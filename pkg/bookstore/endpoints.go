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
	"github.com/bookstore-qa/conformance/pkg/config"
)

// Endpoints builds request paths from the configured API version and resource
// endpoints, so a suite can be pointed at a relocated deployment through
// configuration alone.
type Endpoints struct {
	books   string
	authors string
}

func NewEndpoints(cfg *config.Config) *Endpoints {
	return &Endpoints{
		books:   cfg.BooksPath(),
		authors: cfg.AuthorsPath(),
	}
}

// Books returns the Books collection path.
func (e *Endpoints) Books() string {
	return e.books
}

// Authors returns the Authors collection path.
func (e *Endpoints) Authors() string {
	return e.authors
}

// OpenAPIDocument returns the path of the API's published swagger document.
func (e *Endpoints) OpenAPIDocument() string {
	return "/swagger/v1/swagger.json"
}
