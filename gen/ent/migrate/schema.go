// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString},
		{Name: "owner_name", Type: field.TypeString, Nullable: true},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "extraction_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "review_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "rejection_reason", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tax_year_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_tax_years_documents",
				Columns:    []*schema.Column{DocumentsColumns[12]},
				RefColumns: []*schema.Column{TaxYearsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_tax_year_id_extraction_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[5]},
			},
			{
				Name:    "document_tax_year_id_review_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[8]},
			},
			{
				Name:    "document_tax_year_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[10]},
			},
		},
	}
	// TaxClientsColumns holds the columns for the "tax_clients" table.
	TaxClientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TaxClientsTable holds the schema information for the "tax_clients" table.
	TaxClientsTable = &schema.Table{
		Name:       "tax_clients",
		Columns:    TaxClientsColumns,
		PrimaryKey: []*schema.Column{TaxClientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "taxclient_name",
				Unique:  false,
				Columns: []*schema.Column{TaxClientsColumns[1]},
			},
		},
	}
	// TaxYearsColumns holds the columns for the "tax_years" table.
	TaxYearsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "completeness", Type: field.TypeFloat32, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// TaxYearsTable holds the schema information for the "tax_years" table.
	TaxYearsTable = &schema.Table{
		Name:       "tax_years",
		Columns:    TaxYearsColumns,
		PrimaryKey: []*schema.Column{TaxYearsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tax_years_tax_clients_tax_years",
				Columns:    []*schema.Column{TaxYearsColumns[6]},
				RefColumns: []*schema.Column{TaxClientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taxyear_client_id_year",
				Unique:  true,
				Columns: []*schema.Column{TaxYearsColumns[6], TaxYearsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		TaxClientsTable,
		TaxYearsTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = TaxYearsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	TaxClientsTable.Annotation = &entsql.Annotation{
		Table: "tax_clients",
	}
	TaxYearsTable.ForeignKeys[0].RefTable = TaxClientsTable
	TaxYearsTable.Annotation = &entsql.Annotation{
		Table: "tax_years",
	}
}
