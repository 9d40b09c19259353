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
	"context"
)

// BooksClient binds the verb primitives to the configured Books endpoint.
type BooksClient struct {
	api  *Client
	path string
}

func NewBooksClient(api *Client) *BooksClient {
	return &BooksClient{
		api:  api,
		path: api.Endpoints().Books(),
	}
}

// List retrieves the full Books collection.
func (c *BooksClient) List(ctx context.Context) (*Response, error) {
	return c.api.Get(ctx, c.path)
}

// GetByID retrieves one book.
func (c *BooksClient) GetByID(ctx context.Context, id int) (*Response, error) {
	return c.api.GetByID(ctx, c.path, id)
}

// Create submits a new book.
func (c *BooksClient) Create(ctx context.Context, book Book) (*Response, error) {
	return c.api.Create(ctx, c.path, book)
}

// CreateRaw submits arbitrary bytes as the request body, for malformed
// payload probes.
func (c *BooksClient) CreateRaw(ctx context.Context, body []byte) (*Response, error) {
	return c.api.Create(ctx, c.path, body)
}

// Update replaces the book with the given id.
func (c *BooksClient) Update(ctx context.Context, id int, book Book) (*Response, error) {
	return c.api.Update(ctx, c.path, id, book)
}

// Delete removes the book with the given id.
func (c *BooksClient) Delete(ctx context.Context, id int) (*Response, error) {
	return c.api.DeleteByID(ctx, c.path, id)
}
