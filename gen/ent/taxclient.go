// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/taxfolio/docpipe/gen/ent/taxclient"
)

// TaxClient is the model entity for the TaxClient schema.
type TaxClient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email *string `json:"email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaxClientQuery when eager-loading is set.
	Edges        TaxClientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaxClientEdges holds the relations/edges for other nodes in the graph.
type TaxClientEdges struct {
	// TaxYears holds the value of the tax_years edge.
	TaxYears []*TaxYear `json:"tax_years,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaxYearsOrErr returns the TaxYears value or an error if the edge
// was not loaded in eager-loading.
func (e TaxClientEdges) TaxYearsOrErr() ([]*TaxYear, error) {
	if e.loadedTypes[0] {
		return e.TaxYears, nil
	}
	return nil, &NotLoadedError{edge: "tax_years"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaxClient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taxclient.FieldName, taxclient.FieldEmail:
			values[i] = new(sql.NullString)
		case taxclient.FieldCreatedAt, taxclient.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case taxclient.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaxClient fields.
func (_m *TaxClient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taxclient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case taxclient.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case taxclient.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case taxclient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case taxclient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaxClient.
// This includes values selected through modifiers, order, etc.
func (_m *TaxClient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTaxYears queries the "tax_years" edge of the TaxClient entity.
func (_m *TaxClient) QueryTaxYears() *TaxYearQuery {
	return NewTaxClientClient(_m.config).QueryTaxYears(_m)
}

// Update returns a builder for updating this TaxClient.
// Note that you need to call TaxClient.Unwrap() before calling this method if this TaxClient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaxClient) Update() *TaxClientUpdateOne {
	return NewTaxClientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaxClient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaxClient) Unwrap() *TaxClient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaxClient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaxClient) String() string {
	var builder strings.Builder
	builder.WriteString("TaxClient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaxClients is a parsable slice of TaxClient.
type TaxClients []*TaxClient
