package repositories

import (
	"database/sql"
	"fmt"

	"podium/internal/models"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(doc *models.Document) (int64, error) {
	query := `
        INSERT INTO documents (project_id, kind, number, file_path, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRow(query, doc.ProjectID, doc.Kind, doc.Number, doc.FilePath, doc.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create document: %w", err)
	}
	return id, nil
}

func (r *DocumentRepository) GetByID(id int) (*models.Document, error) {
	query := `SELECT id, project_id, kind, number, file_path, created_at FROM documents WHERE id = $1`
	doc := &models.Document{}
	err := r.db.QueryRow(query, id).Scan(&doc.ID, &doc.ProjectID, &doc.Kind, &doc.Number, &doc.FilePath, &doc.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document by id: %w", err)
	}
	return doc, nil
}

func (r *DocumentRepository) ListByProject(projectID int) ([]*models.Document, error) {
	query := `SELECT id, project_id, kind, number, file_path, created_at
        FROM documents WHERE project_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		doc := &models.Document{}
		if err := rows.Scan(&doc.ID, &doc.ProjectID, &doc.Kind, &doc.Number, &doc.FilePath, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
