package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TaxYear groups one client's documents for a single filing year.
type TaxYear struct {
	ent.Schema
}

func (TaxYear) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tax_years"},
	}
}

func (TaxYear) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can index on it
		field.UUID("client_id", uuid.UUID{}),
		// nullable: a year record can exist before the filing year is confirmed
		field.Int("year").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		// completeness score written by the rules engine, 0..100
		field.Float32("completeness").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TaxYear) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY tax years -> ONE client
		edge.From("client", TaxClient.Type).
			Ref("tax_years").
			Field("client_id").
			Required().
			Unique(),
		// ONE tax year -> MANY documents
		edge.To("documents", Document.Type),
	}
}

func (TaxYear) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("client_id", "year").Unique(),
	}
}
