// Package psqlbuilder wraps squirrel with the PostgreSQL placeholder format,
// so repositories do not repeat PlaceholderFormat(squirrel.Dollar) everywhere.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select starts a SELECT query with $n placeholders.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert starts an INSERT query with $n placeholders.
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update starts an UPDATE query with $n placeholders.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete starts a DELETE query with $n placeholders.
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
