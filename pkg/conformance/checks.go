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

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"k8s.io/utils/ptr"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
	"github.com/bookstore-qa/conformance/pkg/testdata"
)

// DefaultChecks returns the full smoke sequence in execution order.
func DefaultChecks() []Check {
	return []Check{
		{
			Name:        "availability",
			Description: "the Books collection responds with data",
			Run:         checkAvailability,
		},
		{
			Name:        "books-crud",
			Description: "a book can be created, updated and deleted",
			Run:         checkBooksCRUD,
		},
		{
			Name:        "authors-crud",
			Description: "an author can be created, updated and deleted",
			Run:         checkAuthorsCRUD,
		},
		{
			Name:        "content-type",
			Description: "collection responses carry the versioned JSON content type",
			Run:         checkContentType,
		},
		{
			Name:        "latency",
			Description: "collection responses arrive under the latency ceiling",
			Run:         checkLatency,
		},
		{
			Name:        "discovery",
			Description: "the published API document parses and declares both resources",
			Run:         checkDiscovery,
		},
	}
}

func expectStatus(resp *bookstore.Response, expected int, operation string) error {
	if resp.StatusCode != expected {
		return fmt.Errorf("%s: expected status %d, got %d (trace ID: %s)", operation, expected, resp.StatusCode, resp.TraceID())
	}

	return nil
}

func checkAvailability(ctx context.Context, env *Env) error {
	resp, err := env.Books.List(ctx)
	if err != nil {
		return fmt.Errorf("listing books: %w", err)
	}

	if err := expectStatus(resp, http.StatusOK, "listing books"); err != nil {
		return err
	}

	var books []bookstore.Book

	if err := resp.Decode(&books); err != nil {
		return fmt.Errorf("books listing: %w", err)
	}

	if len(books) == 0 {
		return errors.New("books collection is empty")
	}

	return nil
}

func checkBooksCRUD(ctx context.Context, env *Env) error {
	book := testdata.RandomBook()
	id := ptr.Deref(book.ID, 0)

	resp, err := env.Books.Create(ctx, book)
	if err != nil {
		return fmt.Errorf("creating book: %w", err)
	}

	if err := expectStatus(resp, http.StatusOK, "creating book"); err != nil {
		return err
	}

	var created bookstore.Book

	if err := resp.Decode(&created); err != nil {
		return fmt.Errorf("created book: %w", err)
	}

	if ptr.Deref(created.ID, 0) != id {
		return fmt.Errorf("created book echoes id %d, want %d", ptr.Deref(created.ID, 0), id)
	}

	book.Title = ptr.To(testdata.UpdatedBookTitle())

	resp, err = env.Books.Update(ctx, id, book)
	if err != nil {
		return fmt.Errorf("updating book: %w", err)
	}

	if err := expectStatus(resp, http.StatusOK, "updating book"); err != nil {
		return err
	}

	var updated bookstore.Book

	if err := resp.Decode(&updated); err != nil {
		return fmt.Errorf("updated book: %w", err)
	}

	if ptr.Deref(updated.Title, "") != ptr.Deref(book.Title, "") {
		return fmt.Errorf("updated book echoes title %q, want %q", ptr.Deref(updated.Title, ""), ptr.Deref(book.Title, ""))
	}

	resp, err = env.Books.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	return expectStatus(resp, http.StatusOK, "deleting book")
}

func checkAuthorsCRUD(ctx context.Context, env *Env) error {
	author := testdata.RandomAuthor()
	id := ptr.Deref(author.ID, 0)

	resp, err := env.Authors.Create(ctx, author)
	if err != nil {
		return fmt.Errorf("creating author: %w", err)
	}

	if err := expectStatus(resp, http.StatusOK, "creating author"); err != nil {
		return err
	}

	var created bookstore.Author

	if err := resp.Decode(&created); err != nil {
		return fmt.Errorf("created author: %w", err)
	}

	if ptr.Deref(created.FirstName, "") != ptr.Deref(author.FirstName, "") {
		return fmt.Errorf("created author echoes firstName %q, want %q", ptr.Deref(created.FirstName, ""), ptr.Deref(author.FirstName, ""))
	}

	author.FirstName = ptr.To(testdata.UpdatedFirstName())

	resp, err = env.Authors.Update(ctx, id, author)
	if err != nil {
		return fmt.Errorf("updating author: %w", err)
	}

	if err := expectStatus(resp, http.StatusOK, "updating author"); err != nil {
		return err
	}

	resp, err = env.Authors.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting author: %w", err)
	}

	return expectStatus(resp, http.StatusOK, "deleting author")
}

func checkContentType(ctx context.Context, env *Env) error {
	resp, err := env.Books.List(ctx)
	if err != nil {
		return fmt.Errorf("listing books: %w", err)
	}

	if resp.ContentType() != bookstore.SuccessContentType {
		return fmt.Errorf("books listing content type %q, want %q", resp.ContentType(), bookstore.SuccessContentType)
	}

	resp, err = env.Authors.List(ctx)
	if err != nil {
		return fmt.Errorf("listing authors: %w", err)
	}

	if resp.ContentType() != bookstore.SuccessContentType {
		return fmt.Errorf("authors listing content type %q, want %q", resp.ContentType(), bookstore.SuccessContentType)
	}

	return nil
}

func checkLatency(ctx context.Context, env *Env) error {
	ceiling := env.Config.LatencyCeiling

	resp, err := env.Books.List(ctx)
	if err != nil {
		return fmt.Errorf("listing books: %w", err)
	}

	if resp.Elapsed >= ceiling {
		return fmt.Errorf("books listing took %s, ceiling is %s", resp.Elapsed, ceiling)
	}

	resp, err = env.Authors.List(ctx)
	if err != nil {
		return fmt.Errorf("listing authors: %w", err)
	}

	if resp.Elapsed >= ceiling {
		return fmt.Errorf("authors listing took %s, ceiling is %s", resp.Elapsed, ceiling)
	}

	return nil
}

func checkDiscovery(ctx context.Context, env *Env) error {
	resp, err := env.Document.GetOpenAPIDocument(ctx)
	if err != nil {
		return fmt.Errorf("fetching API document: %w", err)
	}

	if err := expectStatus(resp, http.StatusOK, "fetching API document"); err != nil {
		return err
	}

	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(resp.Body)
	if err != nil {
		return fmt.Errorf("parsing API document: %w", err)
	}

	for _, path := range []string{env.Config.BooksPath(), env.Config.AuthorsPath()} {
		if doc.Paths == nil || doc.Paths.Find(path) == nil {
			return fmt.Errorf("API document does not declare %s", path)
		}
	}

	return nil
}
