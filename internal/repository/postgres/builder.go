package postgres

import (
	"fmt"
	"strings"
)

// updateBuilder translates a typed patch into a parameterized UPDATE
// statement. Columns are appended only for fields the caller actually set,
// so a patch with no fields produces no statement at all.
type updateBuilder struct {
	sets []string
	args []any
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{}
}

func (b *updateBuilder) Set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) Empty() bool {
	return len(b.sets) == 0
}

// Build finalizes the statement, appending the id as the last parameter.
func (b *updateBuilder) Build(table string, id int64) (string, []any) {
	b.args = append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(b.sets, ", "), len(b.args),
	)
	return query, b.args
}
