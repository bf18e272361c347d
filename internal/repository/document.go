package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxfolio/docpipe/constants"
	"github.com/taxfolio/docpipe/gen/ent"
	entdoc "github.com/taxfolio/docpipe/gen/ent/document"
	"github.com/taxfolio/docpipe/internal/common"
	"github.com/taxfolio/docpipe/internal/entity"
)

// CreateDocumentRequest carries the upload-confirmation payload.
type CreateDocumentRequest struct {
	TaxYearID uuid.UUID
	DocType   string
	OwnerName string
	FilePath  string
	FileName  string
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByTaxYear(ctx context.Context, taxYearID uuid.UUID) ([]*entity.Document, error)

	// extraction lifecycle; every write is a full overwrite of the fields it
	// owns, which is what makes queue redelivery safe
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	SaveExtractedData(ctx context.Context, id uuid.UUID, data json.RawMessage) error
	FinishSuccess(ctx context.Context, id uuid.UUID, data json.RawMessage, confidence float32) error
	FinishFailure(ctx context.Context, id uuid.UUID, data json.RawMessage) error
	ResetForRescan(ctx context.Context, id uuid.UUID) error

	// review lifecycle, driven by the accountant
	SetReviewStatus(ctx context.Context, id uuid.UUID, status constants.ReviewStatus, reason *string) error
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.ent.Document.
		Create().
		SetTaxYearID(req.TaxYearID).
		SetDocType(req.DocType).
		SetOwnerName(req.OwnerName).
		SetFilePath(req.FilePath).
		SetFileName(req.FileName).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "tax_year_id", req.TaxYearID, "err", err)
		return nil, common.WrapError(err, "create document")
	}
	r.log.Info("document created", "document_id", row.ID, "doc_type", req.DocType)
	return toDocumentEntity(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return nil, common.WrapError(err, "get document")
	}
	return toDocumentEntity(row), nil
}

func (r *documentRepo) ListByTaxYear(ctx context.Context, taxYearID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.
		Query().
		Where(entdoc.TaxYearID(taxYearID)).
		Order(ent.Asc(entdoc.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list documents")
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDocumentEntity(row))
	}
	return out, nil
}

func (r *documentRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetExtractionStatus(string(constants.ExtractionProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("document mark processing failed", "document_id", id, "err", err)
		return common.WrapError(err, "mark processing")
	}
	return nil
}

func (r *documentRepo) SaveExtractedData(ctx context.Context, id uuid.UUID, data json.RawMessage) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetExtractedData(data).
		Save(ctx)
	if err != nil {
		r.log.Error("document save extracted data failed", "document_id", id, "err", err)
		return common.WrapError(err, "save extracted data")
	}
	return nil
}

func (r *documentRepo) FinishSuccess(ctx context.Context, id uuid.UUID, data json.RawMessage, confidence float32) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetExtractedData(data).
		SetExtractionConfidence(confidence).
		SetExtractionStatus(string(constants.ExtractionSuccess)).
		Save(ctx)
	if err != nil {
		r.log.Error("document finish(SUCCESS) failed", "document_id", id, "err", err)
		return common.WrapError(err, "finish success")
	}
	r.log.Info("document extraction finished (SUCCESS)", "document_id", id, "confidence", confidence)
	return nil
}

func (r *documentRepo) FinishFailure(ctx context.Context, id uuid.UUID, data json.RawMessage) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetExtractedData(data).
		SetExtractionStatus(string(constants.ExtractionFailed)).
		Save(ctx)
	if err != nil {
		r.log.Error("document finish(FAILED) failed", "document_id", id, "err", err)
		return common.WrapError(err, "finish failure")
	}
	r.log.Warn("document extraction finished (FAILED)", "document_id", id)
	return nil
}

func (r *documentRepo) ResetForRescan(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Document.
		UpdateOneID(id).
		SetExtractionStatus(string(constants.ExtractionPending)).
		ClearExtractionConfidence().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.log.Error("document reset for rescan failed", "document_id", id, "err", err)
		return common.WrapError(err, "reset for rescan")
	}
	r.log.Info("document reset for rescan", "document_id", id)
	return nil
}

func (r *documentRepo) SetReviewStatus(ctx context.Context, id uuid.UUID, status constants.ReviewStatus, reason *string) error {
	upd := r.ent.Document.
		UpdateOneID(id).
		SetReviewStatus(string(status))
	if reason != nil {
		upd.SetRejectionReason(*reason)
	} else {
		upd.ClearRejectionReason()
	}
	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("DOCUMENT_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.log.Error("document set review status failed", "document_id", id, "err", err)
		return common.WrapError(err, "set review status")
	}
	r.log.Info("document review status set", "document_id", id, "status", status)
	return nil
}

func toDocumentEntity(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                   row.ID,
		TaxYearID:            row.TaxYearID,
		DocType:              row.DocType,
		OwnerName:            row.OwnerName,
		FilePath:             row.FilePath,
		FileName:             row.FileName,
		ExtractionStatus:     row.ExtractionStatus,
		ExtractionConfidence: row.ExtractionConfidence,
		ExtractedData:        row.ExtractedData,
		ReviewStatus:         row.ReviewStatus,
		RejectionReason:      row.RejectionReason,
		UploadedAt:           row.UploadedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}
