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

// AuthorsClient binds the verb primitives to the configured Authors endpoint.
type AuthorsClient struct {
	api  *Client
	path string
}

func NewAuthorsClient(api *Client) *AuthorsClient {
	return &AuthorsClient{
		api:  api,
		path: api.Endpoints().Authors(),
	}
}

// List retrieves the full Authors collection.
func (c *AuthorsClient) List(ctx context.Context) (*Response, error) {
	return c.api.Get(ctx, c.path)
}

// GetByID retrieves one author.
func (c *AuthorsClient) GetByID(ctx context.Context, id int) (*Response, error) {
	return c.api.GetByID(ctx, c.path, id)
}

// Create submits a new author.
func (c *AuthorsClient) Create(ctx context.Context, author Author) (*Response, error) {
	return c.api.Create(ctx, c.path, author)
}

// CreateRaw submits arbitrary bytes as the request body, for malformed
// payload probes.
func (c *AuthorsClient) CreateRaw(ctx context.Context, body []byte) (*Response, error) {
	return c.api.Create(ctx, c.path, body)
}

// Update replaces the author with the given id.
func (c *AuthorsClient) Update(ctx context.Context, id int, author Author) (*Response, error) {
	return c.api.Update(ctx, c.path, id, author)
}

// Delete removes the author with the given id.
func (c *AuthorsClient) Delete(ctx context.Context, id int) (*Response, error) {
	return c.api.DeleteByID(ctx, c.path, id)
}
