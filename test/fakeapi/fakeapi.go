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

// Package fakeapi is a local stand-in for the live bookstore service, used to
// run the conformance suites hermetically.  It reproduces observed behaviour
// rather than desirable behaviour: the documented defects (writes that are
// echoed but never persisted, missing validation, 200 on unknown ids) are
// emulated deliberately so the suites report the same results against the
// twin as against the real thing.
package fakeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
)

const (
	// problemContentType is emitted on 4xx responses, matching the live
	// service's RFC 7807 flavour.
	problemContentType = "application/problem+json; charset=utf-8; v=1.0"

	// documentContentType is what the live service serves the OpenAPI
	// document with.  Note the missing v=1.0 parameter.
	documentContentType = "application/json; charset=utf-8"

	// seedSize is the number of books and authors in the seeded dataset,
	// matching the live service.
	seedSize = 200
)

// Server emulates the bookstore API over an in-memory seed.  It implements
// http.Handler so it can be mounted directly on an httptest server.
type Server struct {
	store  *store
	router chi.Router
}

// New returns a server seeded with the same collection sizes the live
// service holds.
func New() *Server {
	s := &Server{
		store: newStore(seedSize),
	}

	router := chi.NewRouter()

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/Books", s.listBooks)
		r.Post("/Books", s.createBook)
		r.Get("/Books/{id}", s.getBook)
		r.Put("/Books/{id}", s.updateBook)
		r.Delete("/Books/{id}", s.deleteBook)

		r.Get("/Authors", s.listAuthors)
		r.Post("/Authors", s.createAuthor)
		r.Get("/Authors/{id}", s.getAuthor)
		r.Put("/Authors/{id}", s.updateAuthor)
		r.Delete("/Authors/{id}", s.deleteAuthor)
	})

	router.Get("/swagger/v1/swagger.json", s.serveOpenAPIDocument)

	s.router = router

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", bookstore.SuccessContentType)
	w.WriteHeader(status)

	//nolint:errcheck
	json.NewEncoder(w).Encode(body)
}

// problem emits an RFC 7807 error document the way ASP.NET does.
func problem(w http.ResponseWriter, status int, title string) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(status)

	body := map[string]any{
		"title":  title,
		"status": status,
	}

	//nolint:errcheck
	json.NewEncoder(w).Encode(body)
}

// pathID parses the {id} route parameter.  Non-numeric values get a 400, the
// same as the live service's model binding.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		problem(w, http.StatusBadRequest, "One or more validation errors occurred.")

		return 0, false
	}

	return id, true
}

// parseDate accepts the timestamp formats the live service tolerates.  An
// empty or garbled value fails model binding there, so it fails here too.
func parseDate(value string) bool {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		if _, err := time.Parse(format, value); err == nil {
			return true
		}
	}

	return false
}

func (s *Server) listBooks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listBooks())
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	book, ok := s.store.getBook(id)
	if !ok {
		problem(w, http.StatusNotFound, "Not Found")

		return
	}

	writeJSON(w, http.StatusOK, book)
}

// decodeBook validates a book payload the way the live service does, which
// is to say barely: malformed JSON and publish dates that cannot bind to a
// timestamp are rejected, everything else is accepted verbatim. An explicit
// JSON null publishDate fails binding (a missing one binds to a default), so
// the raw field is inspected before the typed decode.
func decodeBook(w http.ResponseWriter, r *http.Request) (bookstore.Book, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		problem(w, http.StatusBadRequest, "One or more validation errors occurred.")

		return bookstore.Book{}, false
	}

	var fields map[string]json.RawMessage

	if err := json.Unmarshal(body, &fields); err != nil {
		problem(w, http.StatusBadRequest, "One or more validation errors occurred.")

		return bookstore.Book{}, false
	}

	if raw, ok := fields["publishDate"]; ok && string(raw) == "null" {
		problem(w, http.StatusBadRequest, "One or more validation errors occurred.")

		return bookstore.Book{}, false
	}

	var book bookstore.Book

	if err := json.Unmarshal(body, &book); err != nil {
		problem(w, http.StatusBadRequest, "One or more validation errors occurred.")

		return bookstore.Book{}, false
	}

	if book.PublishDate != nil && !parseDate(*book.PublishDate) {
		problem(w, http.StatusBadRequest, "One or more validation errors occurred.")

		return bookstore.Book{}, false
	}

	return book, true
}

// createBook echoes the payload without persisting it.  Defect emulation:
// empty titles, negative page counts and colliding ids all pass.
func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	book, ok := decodeBook(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// updateBook echoes the payload for any id, including unknown ones, and
// keeps the body's own id even when it disagrees with the path.
func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r); !ok {
		return
	}

	book, ok := decodeBook(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// deleteBook reports success for any id without deleting anything.
func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r); !ok {
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) listAuthors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listAuthors())
}

func (s *Server) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	author, ok := s.store.getAuthor(id)
	if !ok {
		problem(w, http.StatusNotFound, "Not Found")

		return
	}

	writeJSON(w, http.StatusOK, author)
}

func decodeAuthor(w http.ResponseWriter, r *http.Request) (bookstore.Author, bool) {
	var author bookstore.Author

	if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
		problem(w, http.StatusBadRequest, "One or more validation errors occurred.")

		return bookstore.Author{}, false
	}

	return author, true
}

// createAuthor echoes the payload without persisting it.  Empty names and
// dangling book references are accepted, as observed live.
func (s *Server) createAuthor(w http.ResponseWriter, r *http.Request) {
	author, ok := decodeAuthor(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, author)
}

func (s *Server) updateAuthor(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r); !ok {
		return
	}

	author, ok := decodeAuthor(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, author)
}

func (s *Server) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathID(w, r); !ok {
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) serveOpenAPIDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", documentContentType)
	w.WriteHeader(http.StatusOK)

	//nolint:errcheck
	w.Write([]byte(openAPIDocumentJSON))
}
