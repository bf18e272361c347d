// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/taxfolio/docpipe/db/ent/schema"
	"github.com/taxfolio/docpipe/gen/ent/document"
	"github.com/taxfolio/docpipe/gen/ent/taxclient"
	"github.com/taxfolio/docpipe/gen/ent/taxyear"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescDocType is the schema descriptor for doc_type field.
	documentDescDocType := documentFields[2].Descriptor()
	// document.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	document.DocTypeValidator = func() func(string) error {
		validators := documentDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[4].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[5].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescExtractionStatus is the schema descriptor for extraction_status field.
	documentDescExtractionStatus := documentFields[6].Descriptor()
	// document.DefaultExtractionStatus holds the default value on creation for the extraction_status field.
	document.DefaultExtractionStatus = documentDescExtractionStatus.Default.(string)
	// document.ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	document.ExtractionStatusValidator = documentDescExtractionStatus.Validators[0].(func(string) error)
	// documentDescReviewStatus is the schema descriptor for review_status field.
	documentDescReviewStatus := documentFields[9].Descriptor()
	// document.DefaultReviewStatus holds the default value on creation for the review_status field.
	document.DefaultReviewStatus = documentDescReviewStatus.Default.(string)
	// document.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	document.ReviewStatusValidator = documentDescReviewStatus.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[11].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[12].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	taxclientFields := schema.TaxClient{}.Fields()
	_ = taxclientFields
	// taxclientDescName is the schema descriptor for name field.
	taxclientDescName := taxclientFields[1].Descriptor()
	// taxclient.NameValidator is a validator for the "name" field. It is called by the builders before save.
	taxclient.NameValidator = taxclientDescName.Validators[0].(func(string) error)
	// taxclientDescCreatedAt is the schema descriptor for created_at field.
	taxclientDescCreatedAt := taxclientFields[3].Descriptor()
	// taxclient.DefaultCreatedAt holds the default value on creation for the created_at field.
	taxclient.DefaultCreatedAt = taxclientDescCreatedAt.Default.(func() time.Time)
	// taxclientDescUpdatedAt is the schema descriptor for updated_at field.
	taxclientDescUpdatedAt := taxclientFields[4].Descriptor()
	// taxclient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	taxclient.DefaultUpdatedAt = taxclientDescUpdatedAt.Default.(func() time.Time)
	// taxclient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	taxclient.UpdateDefaultUpdatedAt = taxclientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taxclientDescID is the schema descriptor for id field.
	taxclientDescID := taxclientFields[0].Descriptor()
	// taxclient.DefaultID holds the default value on creation for the id field.
	taxclient.DefaultID = taxclientDescID.Default.(func() uuid.UUID)
	taxyearFields := schema.TaxYear{}.Fields()
	_ = taxyearFields
	// taxyearDescCreatedAt is the schema descriptor for created_at field.
	taxyearDescCreatedAt := taxyearFields[5].Descriptor()
	// taxyear.DefaultCreatedAt holds the default value on creation for the created_at field.
	taxyear.DefaultCreatedAt = taxyearDescCreatedAt.Default.(func() time.Time)
	// taxyearDescUpdatedAt is the schema descriptor for updated_at field.
	taxyearDescUpdatedAt := taxyearFields[6].Descriptor()
	// taxyear.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	taxyear.DefaultUpdatedAt = taxyearDescUpdatedAt.Default.(func() time.Time)
	// taxyear.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	taxyear.UpdateDefaultUpdatedAt = taxyearDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taxyearDescID is the schema descriptor for id field.
	taxyearDescID := taxyearFields[0].Descriptor()
	// taxyear.DefaultID holds the default value on creation for the id field.
	taxyear.DefaultID = taxyearDescID.Default.(func() uuid.UUID)
}
