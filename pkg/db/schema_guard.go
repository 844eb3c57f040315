package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// ColumnType is one expected column
type ColumnType struct {
	Name     string
	DataType string
	Nullable bool
}

// TableSchema is the expected shape of one table
type TableSchema struct {
	Name    string
	Columns []ColumnType
}

// SchemaGuard checks at startup that the live database matches the
// schema the queries are written against, so a missed migration fails
// loudly instead of at first query.
type SchemaGuard struct {
	db *sql.DB
}

// NewSchemaGuard creates a schema guard over an open connection
func NewSchemaGuard(db *sql.DB) *SchemaGuard {
	return &SchemaGuard{db: db}
}

// ValidateTable verifies the table exists and carries the expected columns
func (sg *SchemaGuard) ValidateTable(schema TableSchema) error {
	query := `
		SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = DATABASE()
		AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION
	`

	rows, err := sg.db.Query(query, schema.Name)
	if err != nil {
		return fmt.Errorf("failed to query table schema for %s: %w", schema.Name, err)
	}
	defer rows.Close()

	actual := make(map[string]ColumnType)
	for rows.Next() {
		var name, dataType, nullable string
		if err := rows.Scan(&name, &dataType, &nullable); err != nil {
			return fmt.Errorf("failed to scan column info: %w", err)
		}
		actual[name] = ColumnType{Name: name, DataType: dataType, Nullable: nullable == "YES"}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read table schema for %s: %w", schema.Name, err)
	}

	if len(actual) == 0 {
		return fmt.Errorf("table %s does not exist", schema.Name)
	}

	for _, want := range schema.Columns {
		got, ok := actual[want.Name]
		if !ok {
			return fmt.Errorf("table %s missing expected column %s", schema.Name, want.Name)
		}
		if !strings.HasPrefix(got.DataType, want.DataType) {
			return fmt.Errorf("table %s column %s has type %s, expected %s",
				schema.Name, want.Name, got.DataType, want.DataType)
		}
	}
	return nil
}

// ValidateTables validates every table, stopping at the first mismatch
func (sg *SchemaGuard) ValidateTables(schemas []TableSchema) error {
	for _, schema := range schemas {
		if err := sg.ValidateTable(schema); err != nil {
			return err
		}
	}
	return nil
}
