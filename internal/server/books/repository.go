package books

import (
	"context"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Book, error)
	Create(ctx context.Context, book *Book) error
	Update(ctx context.Context, isbn string, book *Book) error
	Delete(ctx context.Context, isbn string) error
}
