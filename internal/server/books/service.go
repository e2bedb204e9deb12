// Package books implements the catalog aggregate: book records, their
// Postgres repository, and the CRUD service the HTTP layer calls. The
// service carries no authorization logic; the access gate runs before it.
package books

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookkeeper/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %w", err)
	}
	return books, nil
}

func (s *Service) Create(ctx context.Context, book *Book) error {
	if book.ISBN == "" {
		return common.ErrorValidation
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return fmt.Errorf("error creating book: %w", err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, isbn string, book *Book) error {
	if isbn == "" {
		return common.ErrorValidation
	}
	if err := s.repo.Update(ctx, isbn, book); err != nil {
		return fmt.Errorf("error updating book: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, isbn string) error {
	if isbn == "" {
		return common.ErrorValidation
	}
	if err := s.repo.Delete(ctx, isbn); err != nil {
		return fmt.Errorf("error deleting book: %w", err)
	}
	return nil
}
