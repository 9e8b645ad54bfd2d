package persistence

import (
	"context"
	"strconv"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/pkg/errors"

	"github.com/input-output-hk/gauntlet/src/config"
	"github.com/input-output-hk/gauntlet/src/domain/repository"
)

// get scans a single row into dst.
// It returns nil without error when there is no row.
func get[T any](db config.PgxIface, dst *T, sql string, args ...any) (*T, error) {
	if err := pgxscan.Get(context.Background(), db, dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return dst, nil
}

func fetchPage(
	db config.PgxIface,
	page *repository.Page,
	items any,
	selects, from, orderBy string,
	queryArgs ...any,
) error {
	if err := pgxscan.Get(
		context.Background(), db, &page.Total,
		`SELECT count(*) FROM `+from,
		queryArgs...,
	); err != nil {
		return errors.WithMessage(err, "Could not count rows")
	}

	return pgxscan.Select(
		context.Background(), db, items,
		`SELECT `+selects+
			` FROM `+from+
			` ORDER BY `+orderBy+
			` LIMIT $`+strconv.Itoa(len(queryArgs)+1)+
			` OFFSET $`+strconv.Itoa(len(queryArgs)+2),
		append(queryArgs, page.Limit, page.Offset)...,
	)
}
