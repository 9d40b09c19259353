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

// SuccessContentType is the content type the API serves on successful JSON
// responses, version suffix included.
const SuccessContentType = "application/json; charset=utf-8; v=1.0"

// Book mirrors the API's book resource. Fields are pointers so a nil field is
// omitted from the serialized payload entirely, which validation probes rely
// on to distinguish a missing field from an empty one.
type Book struct {
	ID          *int    `json:"id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	PageCount   *int    `json:"pageCount,omitempty"`
	Excerpt     *string `json:"excerpt,omitempty"`
	PublishDate *string `json:"publishDate,omitempty"`
}

// Author mirrors the API's author resource, idBook being the owning book's id.
type Author struct {
	ID        *int    `json:"id,omitempty"`
	IDBook    *int    `json:"idBook,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}
