package pkg

import (
	"database/sql"
	"fmt"
	"genperm"

	_ "github.com/go-sql-driver/mysql"
)

// QueryResult holds an eagerly materialized result set: column names plus
// every row, in select order. Empty Rows is a valid outcome, not an error.
type QueryResult struct {
	Columns []string
	Rows    [][]any
}

// QueryRunner executes a single statement against the products database.
type QueryRunner interface {
	RunQuery(query string, args ...any) (*QueryResult, error)
}

type MysqlRunner struct {
	dsn string
}

func NewMysqlRunner() *MysqlRunner {
	return &MysqlRunner{dsn: ProductsDSN()}
}

// ProductsDSN builds the MySQL DSN for the catalog database from the
// process configuration.
func ProductsDSN() string {
	db := genperm.GetConfig().ProductsDatabase
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		db.User, db.Password, db.Host, db.Port, db.DatabaseName)
}

// RunQuery opens a fresh connection, executes the statement, materializes
// all rows and column names, and closes the connection before returning.
func (slf *MysqlRunner) RunQuery(query string, args ...any) (*QueryResult, error) {
	db, err := sql.Open("mysql", slf.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read column names: %w", err)
	}

	result := &QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		// Le driver renvoie les colonnes texte en []byte
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
