package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paperpilot/invoicer/gen/ent"
	"github.com/paperpilot/invoicer/gen/ent/invoicedocument"
	"github.com/paperpilot/invoicer/internal/common"
	"github.com/paperpilot/invoicer/internal/entity"
	"github.com/paperpilot/invoicer/internal/utils"
)

type CreateDocumentRequest struct {
	UserID   uuid.UUID
	Filename string
	MIMEType string
	Content  []byte
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// Content returns the stored bytes; kept separate so listings stay cheap.
	Content(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.client.InvoiceDocument.Create().
		SetUserID(req.UserID).
		SetFilename(req.Filename).
		SetMimeType(req.MIMEType).
		SetByteSize(len(req.Content)).
		SetContent(req.Content).
		Save(ctx)
	if err != nil {
		r.logger.Error("document.create.failed", "user_id", req.UserID, "filename", req.Filename, "error", err)
		return nil, err
	}
	r.logger.Info("document.create.ok", "document_id", row.ID, "filename", req.Filename, "bytes", len(req.Content))
	return utils.ToDocument(row), nil
}

func (r *documentRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.client.InvoiceDocument.Query().
		Where(invoicedocument.IDEQ(id)).
		Select(
			invoicedocument.FieldID,
			invoicedocument.FieldUserID,
			invoicedocument.FieldFilename,
			invoicedocument.FieldMimeType,
			invoicedocument.FieldByteSize,
			invoicedocument.FieldUploadedAt,
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepository) Content(ctx context.Context, id uuid.UUID) ([]byte, error) {
	row, err := r.client.InvoiceDocument.Query().
		Where(invoicedocument.IDEQ(id)).
		Select(invoicedocument.FieldContent).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
		}
		return nil, err
	}
	return row.Content, nil
}
