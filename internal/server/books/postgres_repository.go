package books

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]Book, error) {
	query :=
		`SELECT isbn, title, author, year_of_publication, publisher, image_url_s, image_url_m, image_url_l
		 FROM books
		 ORDER BY title
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Author, &b.YearOfPublication, &b.Publisher,
			&b.ImageURLS, &b.ImageURLM, &b.ImageURLL); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return books, nil
}

func (r *PostgresRepository) Create(ctx context.Context, book *Book) error {

	query :=
		`INSERT INTO books (isbn, title, author, year_of_publication, publisher, image_url_s, image_url_m, image_url_l)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		book.ISBN, book.Title, book.Author, book.YearOfPublication, book.Publisher,
		book.ImageURLS, book.ImageURLM, book.ImageURLL)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, isbn string, book *Book) error {

	query :=
		`UPDATE books SET title = $1, author = $2, year_of_publication = $3, publisher = $4,
		 image_url_s = $5, image_url_m = $6, image_url_l = $7
		 WHERE isbn = $8
		 `

	_, err := r.db.ExecContext(ctx, query,
		book.Title, book.Author, book.YearOfPublication, book.Publisher,
		book.ImageURLS, book.ImageURLM, book.ImageURLL, isbn)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, isbn string) error {

	query := `DELETE FROM books WHERE isbn = $1`

	_, err := r.db.ExecContext(ctx, query, isbn)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
