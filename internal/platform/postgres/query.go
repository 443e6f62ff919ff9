package postgres

import (
	"fmt"
	"strings"
)

// escapeLike escapes the LIKE/ILIKE metacharacters in a free-text query so
// user input is always matched literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// searchPredicate builds the WHERE predicate for a free-text exploration
// query: a case-insensitive substring match OR'd across the given column
// expressions. An empty query matches everything. The single pattern
// argument is bound as $1.
func searchPredicate(exprs []string, query string) (string, []any) {
	if query == "" {
		return "TRUE", nil
	}
	clauses := make([]string, len(exprs))
	for i, expr := range exprs {
		clauses[i] = fmt.Sprintf("%s ILIKE $1", expr)
	}
	pattern := "%" + escapeLike(query) + "%"
	return "(" + strings.Join(clauses, " OR ") + ")", []any{pattern}
}

// sortDirection renders the exploration sort order as SQL.
// Callers validate the order before reaching here.
func sortDirection(order int) string {
	if order < 0 {
		return "DESC"
	}
	return "ASC"
}
