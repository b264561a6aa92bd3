package documents

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ CategoryStore = (*PGCategoryStore)(nil)
	_ Store         = (*PGStore)(nil)
)

type PGCategoryStore struct {
	DB *pgxpool.Pool
}

func NewPGCategoryStore(db *pgxpool.Pool) *PGCategoryStore {
	return &PGCategoryStore{DB: db}
}

func (s *PGCategoryStore) List(ctx context.Context) ([]Category, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(description, '')
    FROM document_categories
    ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			return nil, err
		}
		out = append(out, category)
	}
	return out, rows.Err()
}

func (s *PGCategoryStore) GetByID(ctx context.Context, id int) (*Category, error) {
	var category Category
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(description, '')
    FROM document_categories
    WHERE id = $1`, id).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *PGCategoryStore) Create(ctx context.Context, category Category) (*Category, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO document_categories (name, description)
    VALUES ($1, $2)
    RETURNING id`, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

type PGStore struct {
	DB *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{DB: db}
}

const documentColumns = `
    id, name, filename, filesize, mime_type, category_id, uploaded_by,
    uploaded_at, is_public, is_verified, metadata`

func scanDocument(row pgx.Row) (*Document, error) {
	var doc Document
	var metadata []byte
	err := row.Scan(
		&doc.ID, &doc.Name, &doc.Filename, &doc.Filesize, &doc.MimeType,
		&doc.CategoryID, &doc.UploadedBy, &doc.UploadedAt,
		&doc.IsPublic, &doc.IsVerified, &metadata,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &doc.Metadata); err != nil {
			return nil, err
		}
	}
	return &doc, nil
}

func (s *PGStore) queryDocuments(ctx context.Context, query string, args ...any) ([]Document, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, rows.Err()
}

func (s *PGStore) List(ctx context.Context) ([]Document, error) {
	return s.queryDocuments(ctx, `
    SELECT `+documentColumns+`
    FROM documents
    ORDER BY uploaded_at DESC, id DESC`)
}

func (s *PGStore) ListVisibleTo(ctx context.Context, employeeID int) ([]Document, error) {
	return s.queryDocuments(ctx, `
    SELECT `+documentColumns+`
    FROM documents
    WHERE uploaded_by = $1 OR is_public
    ORDER BY uploaded_at DESC, id DESC`, employeeID)
}

func (s *PGStore) ListByCategory(ctx context.Context, categoryID int) ([]Document, error) {
	return s.queryDocuments(ctx, `
    SELECT `+documentColumns+`
    FROM documents
    WHERE category_id = $1
    ORDER BY uploaded_at DESC, id DESC`, categoryID)
}

func (s *PGStore) GetByID(ctx context.Context, id int) (*Document, error) {
	return scanDocument(s.DB.QueryRow(ctx, `
    SELECT `+documentColumns+`
    FROM documents
    WHERE id = $1`, id))
}

func (s *PGStore) Create(ctx context.Context, doc Document) (*Document, error) {
	var metadata []byte
	if len(doc.Metadata) > 0 {
		encoded, err := json.Marshal(doc.Metadata)
		if err != nil {
			return nil, err
		}
		metadata = encoded
	}
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (name, filename, filesize, mime_type, category_id,
      uploaded_by, is_public, is_verified, metadata)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    RETURNING id, uploaded_at`,
		doc.Name, doc.Filename, doc.Filesize, doc.MimeType, doc.CategoryID,
		doc.UploadedBy, doc.IsPublic, doc.IsVerified, metadata,
	).Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *PGStore) Delete(ctx context.Context, id int) error {
	cmd, err := s.DB.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
