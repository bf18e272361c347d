package server

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/taxfolio/docpipe/constants"
	docpipev1 "github.com/taxfolio/docpipe/gen/proto/docpipe/v1"
	"github.com/taxfolio/docpipe/internal/common"
	"github.com/taxfolio/docpipe/internal/dispatch"
	"github.com/taxfolio/docpipe/internal/export"
	"github.com/taxfolio/docpipe/internal/repository"
	"github.com/taxfolio/docpipe/internal/rules"
)

type DocumentService struct {
	docpipev1.UnimplementedDocumentServiceServer
	docRepo    repository.DocumentRepository
	dispatcher dispatch.Dispatcher
	exporter   *export.Service
	rules      rules.Engine
	logger     *slog.Logger
}

func NewDocumentService(
	docRepo repository.DocumentRepository,
	dispatcher dispatch.Dispatcher,
	exporter *export.Service,
	rulesEngine rules.Engine,
	logger *slog.Logger,
) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{
		docRepo:    docRepo,
		dispatcher: dispatcher,
		exporter:   exporter,
		rules:      rulesEngine,
		logger:     logger,
	}
}

// ConfirmUpload registers an already-uploaded file as a pending document and
// queues it for extraction. The file itself never travels over this API; the
// client uploads straight to object storage and confirms the path here.
func (s *DocumentService) ConfirmUpload(ctx context.Context, req *docpipev1.ConfirmUploadRequest) (*docpipev1.ConfirmUploadResponse, error) {
	taxYearID, err := parseID(req.GetTaxYearId(), "tax_year_id")
	if err != nil {
		return nil, err
	}
	docType := strings.ToUpper(strings.TrimSpace(req.GetDocType()))
	if !constants.IsKnownDocType(docType) {
		return nil, status.Errorf(codes.InvalidArgument, "doc_type %q is not a supported slip type", req.GetDocType())
	}
	filePath := strings.TrimSpace(req.GetFilePath())
	if filePath == "" {
		return nil, status.Error(codes.InvalidArgument, "file_path is required")
	}
	fileName := strings.TrimSpace(req.GetFileName())
	if fileName == "" {
		fileName = filepath.Base(filePath)
	}
	ext := constants.NormalizeExt(filepath.Ext(fileName))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension %q", ext)
	}

	doc, err := s.docRepo.Create(ctx, &repository.CreateDocumentRequest{
		TaxYearID: taxYearID,
		DocType:   docType,
		OwnerName: strings.TrimSpace(req.GetOwnerName()),
		FilePath:  filePath,
		FileName:  fileName,
	})
	if err != nil {
		s.logger.Error("confirm upload failed", "tax_year_id", taxYearID, "error", err)
		return nil, status.Errorf(codes.Internal, "create document: %v", err)
	}

	if err := s.dispatcher.Enqueue(ctx, dispatch.Job{DocumentID: doc.ID, SubmittedAt: time.Now().UTC()}); err != nil {
		// the row exists and a manual rescan can recover it; report anyway so
		// the client knows extraction is not coming
		s.logger.Error("enqueue after upload failed", "document_id", doc.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue document: %v", err)
	}

	rules.TriggerDetached(s.rules, s.logger, taxYearID, 0)

	s.logger.Info("upload confirmed", "document_id", doc.ID, "doc_type", docType, "file", fileName)
	return &docpipev1.ConfirmUploadResponse{Document: toPBDocument(doc)}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req *docpipev1.GetDocumentRequest) (*docpipev1.GetDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "get document")
	}
	return &docpipev1.GetDocumentResponse{Document: toPBDocument(doc)}, nil
}

// RescanDocument resets extraction state and re-enters the dispatch boundary.
// Concurrent rescans of the same document are allowed; the last completed run
// wins.
func (s *DocumentService) RescanDocument(ctx context.Context, req *docpipev1.RescanDocumentRequest) (*docpipev1.RescanDocumentResponse, error) {
	id, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "get document")
	}
	if doc.ExtractionStatus == string(constants.ExtractionSuccess) && !req.GetForce() {
		return nil, status.Error(codes.FailedPrecondition, "document already extracted; set force to rescan")
	}

	if err := s.docRepo.ResetForRescan(ctx, id); err != nil {
		s.logger.Error("rescan reset failed", "document_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "reset document: %v", err)
	}
	if err := s.dispatcher.Enqueue(ctx, dispatch.Job{DocumentID: id, Force: req.GetForce(), SubmittedAt: time.Now().UTC()}); err != nil {
		s.logger.Error("rescan enqueue failed", "document_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue document: %v", err)
	}

	rules.TriggerDetached(s.rules, s.logger, doc.TaxYearID, 0)

	s.logger.Info("rescan queued", "document_id", id, "force", req.GetForce())
	return &docpipev1.RescanDocumentResponse{
		DocumentId:       id.String(),
		ExtractionStatus: string(constants.ExtractionPending),
	}, nil
}

func (s *DocumentService) ApproveDocument(ctx context.Context, req *docpipev1.ApproveDocumentRequest) (*docpipev1.ApproveDocumentResponse, error) {
	doc, err := s.setReview(ctx, req.GetDocumentId(), constants.ReviewApproved, nil)
	if err != nil {
		return nil, err
	}
	return &docpipev1.ApproveDocumentResponse{Document: doc}, nil
}

func (s *DocumentService) RejectDocument(ctx context.Context, req *docpipev1.RejectDocumentRequest) (*docpipev1.RejectDocumentResponse, error) {
	reason := strings.TrimSpace(req.GetReason())
	if reason == "" {
		return nil, status.Error(codes.InvalidArgument, "reason is required")
	}
	doc, err := s.setReview(ctx, req.GetDocumentId(), constants.ReviewRejected, &reason)
	if err != nil {
		return nil, err
	}
	return &docpipev1.RejectDocumentResponse{Document: doc}, nil
}

func (s *DocumentService) setReview(ctx context.Context, rawID string, review constants.ReviewStatus, reason *string) (*docpipev1.Document, error) {
	id, err := parseID(rawID, "document_id")
	if err != nil {
		return nil, err
	}
	if err := s.docRepo.SetReviewStatus(ctx, id, review, reason); err != nil {
		return nil, notFoundOrInternal(err, "set review status")
	}
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOrInternal(err, "get document")
	}

	// a review decision changes the year's document set; re-score it without
	// holding up the response
	rules.TriggerDetached(s.rules, s.logger, doc.TaxYearID, 0)

	s.logger.Info("review recorded", "document_id", id, "review_status", review)
	return toPBDocument(doc), nil
}

func (s *DocumentService) ExportReview(ctx context.Context, req *docpipev1.ExportReviewRequest) (*docpipev1.ExportReviewResponse, error) {
	taxYearID, err := parseID(req.GetTaxYearId(), "tax_year_id")
	if err != nil {
		return nil, err
	}
	xlsx, err := s.exporter.ExportReviewXLSX(ctx, taxYearID)
	if err != nil {
		s.logger.Error("export review failed", "tax_year_id", taxYearID, "error", err)
		return nil, status.Errorf(codes.Internal, "export review: %v", err)
	}
	return &docpipev1.ExportReviewResponse{Xlsx: xlsx}, nil
}

func notFoundOrInternal(err error, op string) error {
	if errors.Is(err, common.ErrNotFound) {
		return status.Error(codes.NotFound, "document not found")
	}
	return status.Errorf(codes.Internal, "%s: %v", op, err)
}

func parseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
