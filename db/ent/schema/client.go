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

// TaxClient is the taxpayer an accountant collects documents for.
type TaxClient struct {
	ent.Schema
}

func (TaxClient) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tax_clients"},
	}
}

func (TaxClient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("email").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (TaxClient) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE client -> MANY tax years
		edge.To("tax_years", TaxYear.Type),
	}
}

func (TaxClient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
