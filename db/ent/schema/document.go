package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/taxfolio/docpipe/constants"
	"github.com/taxfolio/docpipe/db/ent/schema/utils"
)

// Document is one uploaded tax slip under review.
type Document struct {
	ent.Schema
}

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK for the composite indexes below
		field.UUID("tax_year_id", uuid.UUID{}),
		field.String("doc_type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocTypeCodes()...)),
		// caller-declared owner, free text
		field.String("owner_name").Optional(),
		// object key inside the storage bucket
		field.String("file_path").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("extraction_status").Default(string(constants.ExtractionPending)).
			Validate(utils.EnumValidator(constants.ExtractionStatuses...)),
		field.Float32("extraction_confidence").Optional().Nillable(),
		// tax_year, taxpayer_name, _metadata, _ownerName
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		field.String("review_status").Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(constants.ReviewStatuses...)),
		field.String("rejection_reason").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE tax year
		edge.From("tax_year", TaxYear.Type).
			Ref("documents").
			Field("tax_year_id").
			Required().
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tax_year_id", "extraction_status"),
		index.Fields("tax_year_id", "review_status"),
		index.Fields("tax_year_id", "uploaded_at"),
	}
}
