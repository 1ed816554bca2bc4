package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "busfinder/internal/db"
	"busfinder/internal/domain"
)

// RouteRepository reads bus_route_information. Every call opens and closes
// its own connection.
type RouteRepository struct {
	Conn intdb.Opener
}

// ListRoutes returns the distinct route names in database order.
// On query failure it returns an empty slice and a domain.QueryError.
func (r RouteRepository) ListRoutes(ctx context.Context) ([]string, error) {
	conn, err := r.Conn.Open(ctx)
	if err != nil {
		return []string{}, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `SELECT DISTINCT bus_route FROM bus_route_information`)
	if err != nil {
		return []string{}, domain.QueryError{Op: "fetch routes", Err: err}
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return []string{}, domain.QueryError{Op: "fetch routes", Err: err}
		}
		if !name.Valid {
			continue
		}
		out = append(out, name.String)
	}
	if err := rows.Err(); err != nil {
		return []string{}, domain.QueryError{Op: "fetch routes", Err: err}
	}
	return out, nil
}

// ResolveLink returns the first route_link stored for routeName.
// found is false both when no row matches (err == nil) and when the lookup
// fails (err is a domain.QueryError or domain.ConnectionError).
func (r RouteRepository) ResolveLink(ctx context.Context, routeName string) (link string, found bool, err error) {
	conn, err := r.Conn.Open(ctx)
	if err != nil {
		return "", false, err
	}
	defer conn.Close()

	var v sql.NullString
	err = conn.QueryRowContext(ctx,
		`SELECT route_link FROM bus_route_information WHERE bus_route = ? LIMIT 1`,
		routeName,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domain.QueryError{Op: "fetch route link", Err: err}
	}
	if !v.Valid || v.String == "" {
		return "", false, nil
	}
	return v.String, true, nil
}
