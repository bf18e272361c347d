// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// TaxClient is the predicate function for taxclient builders.
type TaxClient func(*sql.Selector)

// TaxYear is the predicate function for taxyear builders.
type TaxYear func(*sql.Selector)
