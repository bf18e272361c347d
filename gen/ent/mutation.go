// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/taxfolio/docpipe/gen/ent/document"
	"github.com/taxfolio/docpipe/gen/ent/predicate"
	"github.com/taxfolio/docpipe/gen/ent/taxclient"
	"github.com/taxfolio/docpipe/gen/ent/taxyear"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument  = "Document"
	TypeTaxClient = "TaxClient"
	TypeTaxYear   = "TaxYear"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	doc_type                 *string
	owner_name               *string
	file_path                *string
	file_name                *string
	extraction_status        *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	extracted_data           *json.RawMessage
	appendextracted_data     json.RawMessage
	review_status            *string
	rejection_reason         *string
	uploaded_at              *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	tax_year                 *uuid.UUID
	clearedtax_year          bool
	done                     bool
	oldValue                 func(context.Context) (*Document, error)
	predicates               []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaxYearID sets the "tax_year_id" field.
func (m *DocumentMutation) SetTaxYearID(u uuid.UUID) {
	m.tax_year = &u
}

// TaxYearID returns the value of the "tax_year_id" field in the mutation.
func (m *DocumentMutation) TaxYearID() (r uuid.UUID, exists bool) {
	v := m.tax_year
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxYearID returns the old "tax_year_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTaxYearID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxYearID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxYearID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxYearID: %w", err)
	}
	return oldValue.TaxYearID, nil
}

// ResetTaxYearID resets all changes to the "tax_year_id" field.
func (m *DocumentMutation) ResetTaxYearID() {
	m.tax_year = nil
}

// SetDocType sets the "doc_type" field.
func (m *DocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *DocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *DocumentMutation) ResetDocType() {
	m.doc_type = nil
}

// SetOwnerName sets the "owner_name" field.
func (m *DocumentMutation) SetOwnerName(s string) {
	m.owner_name = &s
}

// OwnerName returns the value of the "owner_name" field in the mutation.
func (m *DocumentMutation) OwnerName() (r string, exists bool) {
	v := m.owner_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerName returns the old "owner_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOwnerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerName: %w", err)
	}
	return oldValue.OwnerName, nil
}

// ClearOwnerName clears the value of the "owner_name" field.
func (m *DocumentMutation) ClearOwnerName() {
	m.owner_name = nil
	m.clearedFields[document.FieldOwnerName] = struct{}{}
}

// OwnerNameCleared returns if the "owner_name" field was cleared in this mutation.
func (m *DocumentMutation) OwnerNameCleared() bool {
	_, ok := m.clearedFields[document.FieldOwnerName]
	return ok
}

// ResetOwnerName resets all changes to the "owner_name" field.
func (m *DocumentMutation) ResetOwnerName() {
	m.owner_name = nil
	delete(m.clearedFields, document.FieldOwnerName)
}

// SetFilePath sets the "file_path" field.
func (m *DocumentMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DocumentMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DocumentMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileName sets the "file_name" field.
func (m *DocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *DocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *DocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *DocumentMutation) SetExtractionStatus(s string) {
	m.extraction_status = &s
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *DocumentMutation) ExtractionStatus() (r string, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *DocumentMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *DocumentMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *DocumentMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *DocumentMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *DocumentMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *DocumentMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[document.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *DocumentMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *DocumentMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, document.FieldExtractionConfidence)
}

// SetExtractedData sets the "extracted_data" field.
func (m *DocumentMutation) SetExtractedData(jm json.RawMessage) {
	m.extracted_data = &jm
	m.appendextracted_data = nil
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *DocumentMutation) ExtractedData() (r json.RawMessage, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// AppendExtractedData adds jm to the "extracted_data" field.
func (m *DocumentMutation) AppendExtractedData(jm json.RawMessage) {
	m.appendextracted_data = append(m.appendextracted_data, jm...)
}

// AppendedExtractedData returns the list of values that were appended to the "extracted_data" field in this mutation.
func (m *DocumentMutation) AppendedExtractedData() (json.RawMessage, bool) {
	if len(m.appendextracted_data) == 0 {
		return nil, false
	}
	return m.appendextracted_data, true
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *DocumentMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	m.clearedFields[document.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *DocumentMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *DocumentMutation) ResetExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	delete(m.clearedFields, document.FieldExtractedData)
}

// SetReviewStatus sets the "review_status" field.
func (m *DocumentMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *DocumentMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *DocumentMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *DocumentMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *DocumentMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *DocumentMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[document.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *DocumentMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[document.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *DocumentMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, document.FieldRejectionReason)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTaxYear clears the "tax_year" edge to the TaxYear entity.
func (m *DocumentMutation) ClearTaxYear() {
	m.clearedtax_year = true
	m.clearedFields[document.FieldTaxYearID] = struct{}{}
}

// TaxYearCleared reports if the "tax_year" edge to the TaxYear entity was cleared.
func (m *DocumentMutation) TaxYearCleared() bool {
	return m.clearedtax_year
}

// TaxYearIDs returns the "tax_year" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaxYearID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) TaxYearIDs() (ids []uuid.UUID) {
	if id := m.tax_year; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTaxYear resets all changes to the "tax_year" edge.
func (m *DocumentMutation) ResetTaxYear() {
	m.tax_year = nil
	m.clearedtax_year = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tax_year != nil {
		fields = append(fields, document.FieldTaxYearID)
	}
	if m.doc_type != nil {
		fields = append(fields, document.FieldDocType)
	}
	if m.owner_name != nil {
		fields = append(fields, document.FieldOwnerName)
	}
	if m.file_path != nil {
		fields = append(fields, document.FieldFilePath)
	}
	if m.file_name != nil {
		fields = append(fields, document.FieldFileName)
	}
	if m.extraction_status != nil {
		fields = append(fields, document.FieldExtractionStatus)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, document.FieldExtractionConfidence)
	}
	if m.extracted_data != nil {
		fields = append(fields, document.FieldExtractedData)
	}
	if m.review_status != nil {
		fields = append(fields, document.FieldReviewStatus)
	}
	if m.rejection_reason != nil {
		fields = append(fields, document.FieldRejectionReason)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTaxYearID:
		return m.TaxYearID()
	case document.FieldDocType:
		return m.DocType()
	case document.FieldOwnerName:
		return m.OwnerName()
	case document.FieldFilePath:
		return m.FilePath()
	case document.FieldFileName:
		return m.FileName()
	case document.FieldExtractionStatus:
		return m.ExtractionStatus()
	case document.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case document.FieldExtractedData:
		return m.ExtractedData()
	case document.FieldReviewStatus:
		return m.ReviewStatus()
	case document.FieldRejectionReason:
		return m.RejectionReason()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldTaxYearID:
		return m.OldTaxYearID(ctx)
	case document.FieldDocType:
		return m.OldDocType(ctx)
	case document.FieldOwnerName:
		return m.OldOwnerName(ctx)
	case document.FieldFilePath:
		return m.OldFilePath(ctx)
	case document.FieldFileName:
		return m.OldFileName(ctx)
	case document.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case document.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case document.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case document.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case document.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldTaxYearID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxYearID(v)
		return nil
	case document.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case document.FieldOwnerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerName(v)
		return nil
	case document.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case document.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case document.FieldExtractionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case document.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case document.FieldExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case document.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case document.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, document.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldOwnerName) {
		fields = append(fields, document.FieldOwnerName)
	}
	if m.FieldCleared(document.FieldExtractionConfidence) {
		fields = append(fields, document.FieldExtractionConfidence)
	}
	if m.FieldCleared(document.FieldExtractedData) {
		fields = append(fields, document.FieldExtractedData)
	}
	if m.FieldCleared(document.FieldRejectionReason) {
		fields = append(fields, document.FieldRejectionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldOwnerName:
		m.ClearOwnerName()
		return nil
	case document.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case document.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case document.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldTaxYearID:
		m.ResetTaxYearID()
		return nil
	case document.FieldDocType:
		m.ResetDocType()
		return nil
	case document.FieldOwnerName:
		m.ResetOwnerName()
		return nil
	case document.FieldFilePath:
		m.ResetFilePath()
		return nil
	case document.FieldFileName:
		m.ResetFileName()
		return nil
	case document.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case document.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case document.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case document.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case document.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tax_year != nil {
		edges = append(edges, document.EdgeTaxYear)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeTaxYear:
		if id := m.tax_year; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtax_year {
		edges = append(edges, document.EdgeTaxYear)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeTaxYear:
		return m.clearedtax_year
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeTaxYear:
		m.ClearTaxYear()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeTaxYear:
		m.ResetTaxYear()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// TaxClientMutation represents an operation that mutates the TaxClient nodes in the graph.
type TaxClientMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	email            *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	tax_years        map[uuid.UUID]struct{}
	removedtax_years map[uuid.UUID]struct{}
	clearedtax_years bool
	done             bool
	oldValue         func(context.Context) (*TaxClient, error)
	predicates       []predicate.TaxClient
}

var _ ent.Mutation = (*TaxClientMutation)(nil)

// taxclientOption allows management of the mutation configuration using functional options.
type taxclientOption func(*TaxClientMutation)

// newTaxClientMutation creates new mutation for the TaxClient entity.
func newTaxClientMutation(c config, op Op, opts ...taxclientOption) *TaxClientMutation {
	m := &TaxClientMutation{
		config:        c,
		op:            op,
		typ:           TypeTaxClient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaxClientID sets the ID field of the mutation.
func withTaxClientID(id uuid.UUID) taxclientOption {
	return func(m *TaxClientMutation) {
		var (
			err   error
			once  sync.Once
			value *TaxClient
		)
		m.oldValue = func(ctx context.Context) (*TaxClient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaxClient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaxClient sets the old TaxClient of the mutation.
func withTaxClient(node *TaxClient) taxclientOption {
	return func(m *TaxClientMutation) {
		m.oldValue = func(context.Context) (*TaxClient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaxClientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaxClientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaxClient entities.
func (m *TaxClientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaxClientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaxClientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaxClient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TaxClientMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaxClientMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TaxClient entity.
// If the TaxClient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxClientMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaxClientMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *TaxClientMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *TaxClientMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the TaxClient entity.
// If the TaxClient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxClientMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *TaxClientMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[taxclient.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *TaxClientMutation) EmailCleared() bool {
	_, ok := m.clearedFields[taxclient.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *TaxClientMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, taxclient.FieldEmail)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaxClientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaxClientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaxClient entity.
// If the TaxClient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxClientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaxClientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaxClientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaxClientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TaxClient entity.
// If the TaxClient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxClientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaxClientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaxYearIDs adds the "tax_years" edge to the TaxYear entity by ids.
func (m *TaxClientMutation) AddTaxYearIDs(ids ...uuid.UUID) {
	if m.tax_years == nil {
		m.tax_years = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tax_years[ids[i]] = struct{}{}
	}
}

// ClearTaxYears clears the "tax_years" edge to the TaxYear entity.
func (m *TaxClientMutation) ClearTaxYears() {
	m.clearedtax_years = true
}

// TaxYearsCleared reports if the "tax_years" edge to the TaxYear entity was cleared.
func (m *TaxClientMutation) TaxYearsCleared() bool {
	return m.clearedtax_years
}

// RemoveTaxYearIDs removes the "tax_years" edge to the TaxYear entity by IDs.
func (m *TaxClientMutation) RemoveTaxYearIDs(ids ...uuid.UUID) {
	if m.removedtax_years == nil {
		m.removedtax_years = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tax_years, ids[i])
		m.removedtax_years[ids[i]] = struct{}{}
	}
}

// RemovedTaxYears returns the removed IDs of the "tax_years" edge to the TaxYear entity.
func (m *TaxClientMutation) RemovedTaxYearsIDs() (ids []uuid.UUID) {
	for id := range m.removedtax_years {
		ids = append(ids, id)
	}
	return
}

// TaxYearsIDs returns the "tax_years" edge IDs in the mutation.
func (m *TaxClientMutation) TaxYearsIDs() (ids []uuid.UUID) {
	for id := range m.tax_years {
		ids = append(ids, id)
	}
	return
}

// ResetTaxYears resets all changes to the "tax_years" edge.
func (m *TaxClientMutation) ResetTaxYears() {
	m.tax_years = nil
	m.clearedtax_years = false
	m.removedtax_years = nil
}

// Where appends a list predicates to the TaxClientMutation builder.
func (m *TaxClientMutation) Where(ps ...predicate.TaxClient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaxClientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaxClientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaxClient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaxClientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaxClientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaxClient).
func (m *TaxClientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaxClientMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, taxclient.FieldName)
	}
	if m.email != nil {
		fields = append(fields, taxclient.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, taxclient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, taxclient.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaxClientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taxclient.FieldName:
		return m.Name()
	case taxclient.FieldEmail:
		return m.Email()
	case taxclient.FieldCreatedAt:
		return m.CreatedAt()
	case taxclient.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaxClientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taxclient.FieldName:
		return m.OldName(ctx)
	case taxclient.FieldEmail:
		return m.OldEmail(ctx)
	case taxclient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case taxclient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaxClient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaxClientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taxclient.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case taxclient.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case taxclient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case taxclient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaxClient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaxClientMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaxClientMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaxClientMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TaxClient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaxClientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taxclient.FieldEmail) {
		fields = append(fields, taxclient.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaxClientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaxClientMutation) ClearField(name string) error {
	switch name {
	case taxclient.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown TaxClient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaxClientMutation) ResetField(name string) error {
	switch name {
	case taxclient.FieldName:
		m.ResetName()
		return nil
	case taxclient.FieldEmail:
		m.ResetEmail()
		return nil
	case taxclient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case taxclient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaxClient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaxClientMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tax_years != nil {
		edges = append(edges, taxclient.EdgeTaxYears)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaxClientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taxclient.EdgeTaxYears:
		ids := make([]ent.Value, 0, len(m.tax_years))
		for id := range m.tax_years {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaxClientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtax_years != nil {
		edges = append(edges, taxclient.EdgeTaxYears)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaxClientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case taxclient.EdgeTaxYears:
		ids := make([]ent.Value, 0, len(m.removedtax_years))
		for id := range m.removedtax_years {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaxClientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtax_years {
		edges = append(edges, taxclient.EdgeTaxYears)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaxClientMutation) EdgeCleared(name string) bool {
	switch name {
	case taxclient.EdgeTaxYears:
		return m.clearedtax_years
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaxClientMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TaxClient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaxClientMutation) ResetEdge(name string) error {
	switch name {
	case taxclient.EdgeTaxYears:
		m.ResetTaxYears()
		return nil
	}
	return fmt.Errorf("unknown TaxClient edge %s", name)
}

// TaxYearMutation represents an operation that mutates the TaxYear nodes in the graph.
type TaxYearMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	year             *int
	addyear          *int
	status           *string
	completeness     *float32
	addcompleteness  *float32
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	client           *uuid.UUID
	clearedclient    bool
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	done             bool
	oldValue         func(context.Context) (*TaxYear, error)
	predicates       []predicate.TaxYear
}

var _ ent.Mutation = (*TaxYearMutation)(nil)

// taxyearOption allows management of the mutation configuration using functional options.
type taxyearOption func(*TaxYearMutation)

// newTaxYearMutation creates new mutation for the TaxYear entity.
func newTaxYearMutation(c config, op Op, opts ...taxyearOption) *TaxYearMutation {
	m := &TaxYearMutation{
		config:        c,
		op:            op,
		typ:           TypeTaxYear,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaxYearID sets the ID field of the mutation.
func withTaxYearID(id uuid.UUID) taxyearOption {
	return func(m *TaxYearMutation) {
		var (
			err   error
			once  sync.Once
			value *TaxYear
		)
		m.oldValue = func(ctx context.Context) (*TaxYear, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaxYear.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaxYear sets the old TaxYear of the mutation.
func withTaxYear(node *TaxYear) taxyearOption {
	return func(m *TaxYearMutation) {
		m.oldValue = func(context.Context) (*TaxYear, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaxYearMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaxYearMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TaxYear entities.
func (m *TaxYearMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaxYearMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaxYearMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaxYear.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *TaxYearMutation) SetClientID(u uuid.UUID) {
	m.client = &u
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *TaxYearMutation) ClientID() (r uuid.UUID, exists bool) {
	v := m.client
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the TaxYear entity.
// If the TaxYear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxYearMutation) OldClientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *TaxYearMutation) ResetClientID() {
	m.client = nil
}

// SetYear sets the "year" field.
func (m *TaxYearMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *TaxYearMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the TaxYear entity.
// If the TaxYear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxYearMutation) OldYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *TaxYearMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *TaxYearMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ClearYear clears the value of the "year" field.
func (m *TaxYearMutation) ClearYear() {
	m.year = nil
	m.addyear = nil
	m.clearedFields[taxyear.FieldYear] = struct{}{}
}

// YearCleared returns if the "year" field was cleared in this mutation.
func (m *TaxYearMutation) YearCleared() bool {
	_, ok := m.clearedFields[taxyear.FieldYear]
	return ok
}

// ResetYear resets all changes to the "year" field.
func (m *TaxYearMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
	delete(m.clearedFields, taxyear.FieldYear)
}

// SetStatus sets the "status" field.
func (m *TaxYearMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TaxYearMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TaxYear entity.
// If the TaxYear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxYearMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *TaxYearMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[taxyear.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *TaxYearMutation) StatusCleared() bool {
	_, ok := m.clearedFields[taxyear.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *TaxYearMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, taxyear.FieldStatus)
}

// SetCompleteness sets the "completeness" field.
func (m *TaxYearMutation) SetCompleteness(f float32) {
	m.completeness = &f
	m.addcompleteness = nil
}

// Completeness returns the value of the "completeness" field in the mutation.
func (m *TaxYearMutation) Completeness() (r float32, exists bool) {
	v := m.completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleteness returns the old "completeness" field's value of the TaxYear entity.
// If the TaxYear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxYearMutation) OldCompleteness(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleteness: %w", err)
	}
	return oldValue.Completeness, nil
}

// AddCompleteness adds f to the "completeness" field.
func (m *TaxYearMutation) AddCompleteness(f float32) {
	if m.addcompleteness != nil {
		*m.addcompleteness += f
	} else {
		m.addcompleteness = &f
	}
}

// AddedCompleteness returns the value that was added to the "completeness" field in this mutation.
func (m *TaxYearMutation) AddedCompleteness() (r float32, exists bool) {
	v := m.addcompleteness
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompleteness clears the value of the "completeness" field.
func (m *TaxYearMutation) ClearCompleteness() {
	m.completeness = nil
	m.addcompleteness = nil
	m.clearedFields[taxyear.FieldCompleteness] = struct{}{}
}

// CompletenessCleared returns if the "completeness" field was cleared in this mutation.
func (m *TaxYearMutation) CompletenessCleared() bool {
	_, ok := m.clearedFields[taxyear.FieldCompleteness]
	return ok
}

// ResetCompleteness resets all changes to the "completeness" field.
func (m *TaxYearMutation) ResetCompleteness() {
	m.completeness = nil
	m.addcompleteness = nil
	delete(m.clearedFields, taxyear.FieldCompleteness)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaxYearMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaxYearMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaxYear entity.
// If the TaxYear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxYearMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaxYearMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaxYearMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaxYearMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TaxYear entity.
// If the TaxYear object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaxYearMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaxYearMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearClient clears the "client" edge to the TaxClient entity.
func (m *TaxYearMutation) ClearClient() {
	m.clearedclient = true
	m.clearedFields[taxyear.FieldClientID] = struct{}{}
}

// ClientCleared reports if the "client" edge to the TaxClient entity was cleared.
func (m *TaxYearMutation) ClientCleared() bool {
	return m.clearedclient
}

// ClientIDs returns the "client" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClientID instead. It exists only for internal usage by the builders.
func (m *TaxYearMutation) ClientIDs() (ids []uuid.UUID) {
	if id := m.client; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetClient resets all changes to the "client" edge.
func (m *TaxYearMutation) ResetClient() {
	m.client = nil
	m.clearedclient = false
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *TaxYearMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *TaxYearMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *TaxYearMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *TaxYearMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *TaxYearMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *TaxYearMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *TaxYearMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// Where appends a list predicates to the TaxYearMutation builder.
func (m *TaxYearMutation) Where(ps ...predicate.TaxYear) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaxYearMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaxYearMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaxYear, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaxYearMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaxYearMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaxYear).
func (m *TaxYearMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaxYearMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.client != nil {
		fields = append(fields, taxyear.FieldClientID)
	}
	if m.year != nil {
		fields = append(fields, taxyear.FieldYear)
	}
	if m.status != nil {
		fields = append(fields, taxyear.FieldStatus)
	}
	if m.completeness != nil {
		fields = append(fields, taxyear.FieldCompleteness)
	}
	if m.created_at != nil {
		fields = append(fields, taxyear.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, taxyear.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaxYearMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taxyear.FieldClientID:
		return m.ClientID()
	case taxyear.FieldYear:
		return m.Year()
	case taxyear.FieldStatus:
		return m.Status()
	case taxyear.FieldCompleteness:
		return m.Completeness()
	case taxyear.FieldCreatedAt:
		return m.CreatedAt()
	case taxyear.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaxYearMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taxyear.FieldClientID:
		return m.OldClientID(ctx)
	case taxyear.FieldYear:
		return m.OldYear(ctx)
	case taxyear.FieldStatus:
		return m.OldStatus(ctx)
	case taxyear.FieldCompleteness:
		return m.OldCompleteness(ctx)
	case taxyear.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case taxyear.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaxYear field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaxYearMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taxyear.FieldClientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case taxyear.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case taxyear.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case taxyear.FieldCompleteness:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleteness(v)
		return nil
	case taxyear.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case taxyear.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaxYear field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaxYearMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, taxyear.FieldYear)
	}
	if m.addcompleteness != nil {
		fields = append(fields, taxyear.FieldCompleteness)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaxYearMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taxyear.FieldYear:
		return m.AddedYear()
	case taxyear.FieldCompleteness:
		return m.AddedCompleteness()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaxYearMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taxyear.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case taxyear.FieldCompleteness:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleteness(v)
		return nil
	}
	return fmt.Errorf("unknown TaxYear numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaxYearMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taxyear.FieldYear) {
		fields = append(fields, taxyear.FieldYear)
	}
	if m.FieldCleared(taxyear.FieldStatus) {
		fields = append(fields, taxyear.FieldStatus)
	}
	if m.FieldCleared(taxyear.FieldCompleteness) {
		fields = append(fields, taxyear.FieldCompleteness)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaxYearMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaxYearMutation) ClearField(name string) error {
	switch name {
	case taxyear.FieldYear:
		m.ClearYear()
		return nil
	case taxyear.FieldStatus:
		m.ClearStatus()
		return nil
	case taxyear.FieldCompleteness:
		m.ClearCompleteness()
		return nil
	}
	return fmt.Errorf("unknown TaxYear nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaxYearMutation) ResetField(name string) error {
	switch name {
	case taxyear.FieldClientID:
		m.ResetClientID()
		return nil
	case taxyear.FieldYear:
		m.ResetYear()
		return nil
	case taxyear.FieldStatus:
		m.ResetStatus()
		return nil
	case taxyear.FieldCompleteness:
		m.ResetCompleteness()
		return nil
	case taxyear.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case taxyear.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaxYear field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaxYearMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.client != nil {
		edges = append(edges, taxyear.EdgeClient)
	}
	if m.documents != nil {
		edges = append(edges, taxyear.EdgeDocuments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaxYearMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taxyear.EdgeClient:
		if id := m.client; id != nil {
			return []ent.Value{*id}
		}
	case taxyear.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaxYearMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddocuments != nil {
		edges = append(edges, taxyear.EdgeDocuments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaxYearMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case taxyear.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaxYearMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclient {
		edges = append(edges, taxyear.EdgeClient)
	}
	if m.cleareddocuments {
		edges = append(edges, taxyear.EdgeDocuments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaxYearMutation) EdgeCleared(name string) bool {
	switch name {
	case taxyear.EdgeClient:
		return m.clearedclient
	case taxyear.EdgeDocuments:
		return m.cleareddocuments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaxYearMutation) ClearEdge(name string) error {
	switch name {
	case taxyear.EdgeClient:
		m.ClearClient()
		return nil
	}
	return fmt.Errorf("unknown TaxYear unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaxYearMutation) ResetEdge(name string) error {
	switch name {
	case taxyear.EdgeClient:
		m.ResetClient()
		return nil
	case taxyear.EdgeDocuments:
		m.ResetDocuments()
		return nil
	}
	return fmt.Errorf("unknown TaxYear edge %s", name)
}
