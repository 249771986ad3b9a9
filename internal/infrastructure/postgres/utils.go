package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation 23503: la fila referenciada no existe o aún tiene dependientes.
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

// hasCode solo mira el SQLSTATE de *pgconn.PgError; el texto del error puede contener UUIDs.
func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// collect recorre rows con scan y cierra el cursor. Nunca devuelve una lista nil.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// isInvalidText 22P02: el texto no es un valor válido del tipo (p. ej. un id que no es UUID).
func isInvalidText(err error) bool {
	return hasCode(err, "22P02")
}

// one aplica scan a una fila; pgx.ErrNoRows y un id mal formado se traducen a (nil, nil).
func one[T any](row pgx.Row, scan func(pgx.Row) (*T, error), what string) (*T, error) {
	item, err := scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return item, nil
}
