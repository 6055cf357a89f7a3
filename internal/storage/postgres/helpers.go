package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every repo can
// run against the pool or inside a caller-owned transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// buildListQuery constructs a paginated SQL query from base + conditions.
func buildListQuery(baseQuery string, conditions []string, args *[]interface{}, reqOffset, reqLimit int) string {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(baseQuery)

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC") // Default ordering

	*args = append(*args, reqLimit)
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", len(*args)))
	*args = append(*args, reqOffset)
	queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", len(*args)))

	return queryBuilder.String()
}
