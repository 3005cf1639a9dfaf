package postgres

import (
	"fmt"
	"strings"

	"github.com/coursedesk/course-api/internal/store"
)

// predicates accumulates SQL predicates together with their positional
// arguments. Placeholders are numbered in the order predicates are added, so
// the same args slice can be reused by every query sharing the WHERE clause.
type predicates struct {
	clauses []string
	args    []any
}

// add appends a predicate. format must contain exactly one %s, which is
// replaced by the next $n placeholder bound to arg.
func (p *predicates) add(format string, arg any) {
	p.args = append(p.args, arg)
	p.clauses = append(p.clauses, fmt.Sprintf(format, p.placeholder(len(p.args))))
}

// where renders the predicates joined with AND. An empty set renders nothing,
// which matches every row.
func (p *predicates) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// next returns the placeholder following the last bound argument.
func (p *predicates) next(offset int) string {
	return p.placeholder(len(p.args) + offset)
}

func (p *predicates) placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// coursePredicates builds the WHERE predicates for a course listing filter.
func coursePredicates(filter store.CourseFilter) *predicates {
	p := &predicates{}
	if filter.Search != "" {
		p.add("c.title ILIKE %s", "%"+escapeLike(filter.Search)+"%")
	}
	return p
}

// courseOrderClause maps an order field onto its ORDER BY list. Unknown
// values fall back to the default so user input never reaches the SQL text.
// Non-unique columns are followed by c.id to keep pages disjoint.
func courseOrderClause(field store.CourseOrderField) string {
	switch field {
	case store.CourseOrderByID:
		return "c.id ASC"
	default:
		return "c.title ASC, c.id ASC"
	}
}
