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

package conformance

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

import (
	"context"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
)

// BooksAPI is the Books client surface checks depend on, satisfied by
// *bookstore.BooksClient.
type BooksAPI interface {
	List(ctx context.Context) (*bookstore.Response, error)
	GetByID(ctx context.Context, id int) (*bookstore.Response, error)
	Create(ctx context.Context, book bookstore.Book) (*bookstore.Response, error)
	Update(ctx context.Context, id int, book bookstore.Book) (*bookstore.Response, error)
	Delete(ctx context.Context, id int) (*bookstore.Response, error)
}

// AuthorsAPI is the Authors client surface checks depend on, satisfied by
// *bookstore.AuthorsClient.
type AuthorsAPI interface {
	List(ctx context.Context) (*bookstore.Response, error)
	GetByID(ctx context.Context, id int) (*bookstore.Response, error)
	Create(ctx context.Context, author bookstore.Author) (*bookstore.Response, error)
	Update(ctx context.Context, id int, author bookstore.Author) (*bookstore.Response, error)
	Delete(ctx context.Context, id int) (*bookstore.Response, error)
}

// DocumentAPI retrieves the API's published description, satisfied by
// *bookstore.Client.
type DocumentAPI interface {
	GetOpenAPIDocument(ctx context.Context) (*bookstore.Response, error)
}
