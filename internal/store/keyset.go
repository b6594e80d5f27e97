package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/velikanov/groupsync/internal/feed"
)

// psql builds queries with $N placeholders for the pgx driver.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// keysetQuery describes one collection table for keyset pagination: the
// columns to select, the timestamp column of the composite ordering key
// and the column holding the parent collection identifier. The id column
// is always the tie-breaker.
type keysetQuery struct {
	table       string
	columns     []string
	timeColumn  string
	parentCol   string
	newestFirst bool
}

// build turns a page query into one bounded SELECT. Rows come back in
// traversal order; the extra limit+1 row lets the caller detect that more
// pages exist.
//
// With a cursor, the composite (timeColumn, id) key is range-compared
// against the cursor's decoded key, strictly, so the boundary row itself
// is never repeated. Without a cursor, time-windowed collections anchor
// on the query's now snapshot (forward starts after now, backward at or
// before it); newest-first collections start from their newest row.
func (k keysetQuery) build(q feed.PageQuery) (string, []any, error) {
	descending := (q.Direction == feed.Backward) != k.newestFirst

	b := psql.Select(k.columns...).
		From(k.table).
		Where(sq.Eq{k.parentCol: q.Collection.Parent})

	pair := fmt.Sprintf("(%s, id)", k.timeColumn)
	switch {
	case q.After != nil && descending:
		b = b.Where(sq.Expr(pair+" < (?, ?)", q.After.At, q.After.ID))
	case q.After != nil:
		b = b.Where(sq.Expr(pair+" > (?, ?)", q.After.At, q.After.ID))
	case !k.newestFirst && q.Direction == feed.Forward:
		b = b.Where(sq.Gt{k.timeColumn: q.Now})
	case !k.newestFirst:
		b = b.Where(sq.LtOrEq{k.timeColumn: q.Now})
	}

	order := "ASC"
	if descending {
		order = "DESC"
	}
	b = b.
		OrderBy(fmt.Sprintf("%s %s, id %s", k.timeColumn, order, order)).
		Limit(uint64(q.Limit) + 1)

	sqlText, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlText, args, nil
}
