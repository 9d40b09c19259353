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

// Package testdata generates randomized request payloads. Generated ids stay
// clear of write/write collisions by drawing from a large range, while reads
// of pre-existing data use the seeded id range the live dataset ships with.
package testdata

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"k8s.io/utils/ptr"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
)

const (
	// maxGeneratedID bounds ids for created resources.
	maxGeneratedID = 10000

	// maxSeededID is the highest id present in the live seeded dataset, used
	// for book references and read probes.
	maxSeededID = 200
)

// RandomBookID returns an id in [1, 10000].
func RandomBookID() int {
	return rand.IntN(maxGeneratedID) + 1
}

// RandomAuthorID returns an id in [1, 10000].
func RandomAuthorID() int {
	return rand.IntN(maxGeneratedID) + 1
}

// SeededBookID returns an id in [1, 200], guaranteed present in the live
// dataset.
func SeededBookID() int {
	return rand.IntN(maxSeededID) + 1
}

// SeededAuthorID returns an id in [1, 200], guaranteed present in the live
// dataset.
func SeededAuthorID() int {
	return rand.IntN(maxSeededID) + 1
}

// UnseededBookID returns an id in [201, 10000], guaranteed absent from the
// live dataset. Deletion scenarios need this so the read-back observes the
// deletion rather than a seeded row.
func UnseededBookID() int {
	return rand.IntN(maxGeneratedID-maxSeededID) + maxSeededID + 1
}

// UnseededAuthorID returns an id in [201, 10000], guaranteed absent from the
// live dataset.
func UnseededAuthorID() int {
	return rand.IntN(maxGeneratedID-maxSeededID) + maxSeededID + 1
}

// RandomBook returns a fully populated book with a random id.
func RandomBook() bookstore.Book {
	return BookWithID(RandomBookID())
}

// BookWithID returns a fully populated book with the given id.
func BookWithID(id int) bookstore.Book {
	return bookstore.Book{
		ID:          ptr.To(id),
		Title:       ptr.To(fmt.Sprintf("Test Book %d", id)),
		Description: ptr.To(fmt.Sprintf("This is a test book description for book %d", id)),
		PageCount:   ptr.To(rand.IntN(900) + 100),
		Excerpt:     ptr.To(fmt.Sprintf("This is an excerpt from test book %d", id)),
		PublishDate: ptr.To(time.Now().UTC().Format(time.RFC3339)),
	}
}

// RandomAuthor returns a fully populated author with a random id, referencing
// a seeded book.
func RandomAuthor() bookstore.Author {
	return AuthorWithID(RandomAuthorID())
}

// AuthorWithID returns a fully populated author with the given id.
func AuthorWithID(id int) bookstore.Author {
	return bookstore.Author{
		ID:        ptr.To(id),
		IDBook:    ptr.To(SeededBookID()),
		FirstName: ptr.To(fmt.Sprintf("FirstName%d", id)),
		LastName:  ptr.To(fmt.Sprintf("LastName%d", id)),
	}
}

// BookMissingTitle returns a book whose title field is absent from the
// payload.
func BookMissingTitle() bookstore.Book {
	book := RandomBook()
	book.Title = nil

	return book
}

// BookWithPageCount returns a book with the page count overridden, for zero,
// negative and boundary probes.
func BookWithPageCount(pageCount int) bookstore.Book {
	book := RandomBook()
	book.PageCount = ptr.To(pageCount)

	return book
}

// AuthorMissingFirstName returns an author whose firstName field is absent
// from the payload.
func AuthorMissingFirstName() bookstore.Author {
	author := RandomAuthor()
	author.FirstName = nil

	return author
}

// UpdatedBookTitle returns a timestamped title so update echoes are
// distinguishable from the created value.
func UpdatedBookTitle() string {
	return fmt.Sprintf("Updated Book Title - %d", time.Now().UnixMilli())
}

// UpdatedFirstName returns a timestamped first name for author updates.
func UpdatedFirstName() string {
	return fmt.Sprintf("UpdatedFirstName-%d", time.Now().UnixMilli())
}

// LongString returns n repetitions of "a", for oversized field probes.
func LongString(n int) string {
	return strings.Repeat("a", n)
}
