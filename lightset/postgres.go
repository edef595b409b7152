package lightset

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lumascript/lumavm/errz"
)

// Querier is the subset of *pgx.Conn and *pgxpool.Pool used to read lights.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres builds a registry from a table with the columns
// (name text, grp text null, location text null, multizone bool). The table
// may be schema qualified, as in "public.lights".
func LoadPostgres(ctx context.Context, q Querier, table string) (*Registry, error) {
	sql := fmt.Sprintf("SELECT name, grp, location, multizone FROM %s ORDER BY name",
		pgx.Identifier(strings.Split(table, ".")).Sanitize())
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, errz.Wrap(errz.Registry, err, "querying %s", table)
	}
	defer rows.Close()

	reg := NewRegistry()
	for rows.Next() {
		var (
			name      string
			group     *string
			location  *string
			multizone bool
		)
		if err := rows.Scan(&name, &group, &location, &multizone); err != nil {
			return nil, errz.Wrap(errz.Registry, err, "scanning %s", table)
		}
		light := Light{Name: name, Multizone: multizone}
		if group != nil {
			light.Group = *group
		}
		if location != nil {
			light.Location = *location
		}
		reg.AddLight(light)
	}
	if err := rows.Err(); err != nil {
		return nil, errz.Wrap(errz.Registry, err, "reading %s", table)
	}
	return reg, nil
}
