package postgres

import (
	"fmt"
	"strings"

	"github.com/polkiloo/freightorders/internal/domain/model"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends a condition whose single %d verb receives the next placeholder index.
func (b *whereBuilder) add(cond string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(cond, len(b.args)))
}

func (b *whereBuilder) String() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// buildWhere renders filter as a WHERE clause with positional arguments.
func buildWhere(filter model.OrderFilter) (string, []any) {
	var b whereBuilder
	if !filter.IncludeDeleted {
		b.clauses = append(b.clauses, "is_deleted = FALSE")
	}
	if filter.OrderNo != "" {
		b.add("order_no = $%d", filter.OrderNo)
	}
	if filter.ClientID != "" {
		b.add("client_id = $%d", filter.ClientID)
	}
	if filter.Status != "" {
		b.add("order_status = $%d", filter.Status)
	}
	if filter.POL != "" {
		b.add("pol ILIKE $%d", "%"+escapeLike(filter.POL)+"%")
	}
	if filter.POD != "" {
		b.add("pod ILIKE $%d", "%"+escapeLike(filter.POD)+"%")
	}
	if filter.CreatedFrom != nil {
		b.add("created_at >= $%d", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		b.add("created_at <= $%d", *filter.CreatedTo)
	}
	return b.String(), b.args
}
