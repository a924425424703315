package pkg

import "strings"

var forbiddenKeywords = []string{"insert", "update", "delete", "drop", "alter", "truncate"}

// CleanSQL removes markdown code fences from model output and trims the
// surrounding whitespace. Already-clean text passes through unchanged.
func CleanSQL(sql string) string {
	sql = strings.ReplaceAll(sql, "```sql", "")
	sql = strings.ReplaceAll(sql, "```", "")
	return strings.TrimSpace(sql)
}

// IsSafeSelect reports whether the statement is restricted to a read-only
// SELECT shape. The check is deliberately coarse: a forbidden keyword
// anywhere in the text rejects the statement, even inside a string literal.
func IsSafeSelect(sql string) bool {
	lowered := strings.ToLower(sql)
	if !strings.HasPrefix(lowered, "select") {
		return false
	}
	for _, word := range forbiddenKeywords {
		if strings.Contains(lowered, word) {
			return false
		}
	}
	return true
}
