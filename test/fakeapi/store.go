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

package fakeapi

import (
	"fmt"
	"time"

	"k8s.io/utils/ptr"

	"github.com/bookstore-qa/conformance/pkg/bookstore"
)

// store is the seeded dataset. Like the live service, it is immutable: write
// endpoints echo their payload without touching it, so reads only ever see
// the seed.
type store struct {
	books   map[int]bookstore.Book
	authors map[int]bookstore.Author
	ordered []int
}

func newStore(size int) *store {
	s := &store{
		books:   make(map[int]bookstore.Book, size),
		authors: make(map[int]bookstore.Author, size),
		ordered: make([]int, 0, size),
	}

	now := time.Now().UTC()

	for id := 1; id <= size; id++ {
		s.books[id] = bookstore.Book{
			ID:          ptr.To(id),
			Title:       ptr.To(fmt.Sprintf("Book %d", id)),
			Description: ptr.To(fmt.Sprintf("Description for book %d", id)),
			PageCount:   ptr.To(id * 100),
			Excerpt:     ptr.To(fmt.Sprintf("Excerpt from book %d", id)),
			PublishDate: ptr.To(now.AddDate(0, 0, -id).Format(time.RFC3339)),
		}

		s.authors[id] = bookstore.Author{
			ID:        ptr.To(id),
			IDBook:    ptr.To(id),
			FirstName: ptr.To(fmt.Sprintf("First Name %d", id)),
			LastName:  ptr.To(fmt.Sprintf("Last Name %d", id)),
		}

		s.ordered = append(s.ordered, id)
	}

	return s
}

func (s *store) listBooks() []bookstore.Book {
	books := make([]bookstore.Book, 0, len(s.ordered))

	for _, id := range s.ordered {
		books = append(books, s.books[id])
	}

	return books
}

func (s *store) getBook(id int) (bookstore.Book, bool) {
	book, ok := s.books[id]

	return book, ok
}

func (s *store) listAuthors() []bookstore.Author {
	authors := make([]bookstore.Author, 0, len(s.ordered))

	for _, id := range s.ordered {
		authors = append(authors, s.authors[id])
	}

	return authors
}

func (s *store) getAuthor(id int) (bookstore.Author, bool) {
	author, ok := s.authors[id]

	return author, ok
}
