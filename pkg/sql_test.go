package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSQL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sql fence", "```sql\nSELECT * FROM products\n```", "SELECT * FROM products"},
		{"bare fence", "```\nSELECT name FROM products\n```", "SELECT name FROM products"},
		{"no fence", "SELECT price FROM products", "SELECT price FROM products"},
		{"surrounding whitespace", "  \nSELECT 1\n  ", "SELECT 1"},
		{"fence without newlines", "```sql SELECT 1```", "SELECT 1"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSQL(tt.input))
		})
	}
}

func TestCleanSQL_Idempotent(t *testing.T) {
	cleaned := CleanSQL("```sql\nSELECT * FROM products\n```")
	assert.Equal(t, cleaned, CleanSQL(cleaned))
}

func TestIsSafeSelect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain select", "select name, price from products", true},
		{"upper case select", "SELECT * FROM products LIMIT 5", true},
		{"mixed case select", "SeLeCt 1", true},
		{"insert", "insert into products values (1)", false},
		{"update", "UPDATE products SET price = 0", false},
		{"delete", "DELETE FROM products", false},
		{"drop", "DROP TABLE products", false},
		{"alter", "alter table products add column x int", false},
		{"truncate", "TRUNCATE products", false},
		{"empty", "", false},
		{"leading whitespace", " select 1", false},
		{"non sql text", "I cannot answer that", false},
		// A forbidden word anywhere rejects the statement, even inside a
		// string literal of an otherwise valid select.
		{"forbidden word in literal", "select * from products where name = 'Update Ring'", false},
		{"forbidden word in identifier", "select last_updated from products", false},
		{"multi statement smuggle", "select 1; drop table products", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeSelect(tt.input))
		})
	}
}
