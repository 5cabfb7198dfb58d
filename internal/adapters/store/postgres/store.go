package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"shelter-admin/internal/ports/store"
)

// Store implementa store.Client directo contra Postgres (pgx vía
// database/sql), para despliegues que hablan con la base sin el gateway
// REST adelante. Tablas y columnas vienen de los schemas del dominio
// (strings fijos), así que el SQL se arma por concatenación sin riesgo
// de identificadores externos.
type Store struct {
	db *sql.DB
}

// Open abre un pool contra Postgres con defaults razonables y ping.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	cols := "*"
	if len(q.Columns) > 0 {
		cols = strings.Join(q.Columns, ", ")
	}

	var b strings.Builder
	b.WriteString("SELECT " + cols + " FROM " + table)

	var args []any
	if q.Filter != nil {
		b.WriteString(" WHERE " + q.Filter.Column + " = $1")
		args = append(args, q.Filter.Value)
	}
	if q.Order != nil {
		b.WriteString(" ORDER BY " + q.Order.Column)
		if q.Order.Descending {
			b.WriteString(" DESC")
		}
	}
	if q.Limit > 0 {
		b.WriteString(" LIMIT " + strconv.Itoa(q.Limit))
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func (s *Store) Insert(ctx context.Context, table string, record store.Row) ([]store.Row, error) {
	cols := sortedColumns(record)

	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = record[c]
	}

	query := "INSERT INTO " + table +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")" +
		" RETURNING *"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func (s *Store) Update(ctx context.Context, table string, patch store.Row, f store.Filter) error {
	cols := sortedColumns(patch)
	if len(cols) == 0 {
		return nil
	}

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		sets[i] = c + " = $" + strconv.Itoa(i+1)
		args = append(args, patch[c])
	}
	args = append(args, f.Value)

	query := "UPDATE " + table + " SET " + strings.Join(sets, ", ") +
		" WHERE " + f.Column + " = $" + strconv.Itoa(len(cols)+1)

	// Cero filas afectadas no es error: mismo contrato que el gateway REST.
	_, err := s.db.ExecContext(ctx, query, args...)
	return wrapErr(err)
}

func (s *Store) Delete(ctx context.Context, table string, f store.Filter) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE "+f.Column+" = $1", f.Value)
	return wrapErr(err)
}

// scanRows vuelca un resultado genérico a filas columna -> valor, sin
// structs por tabla (el pipeline trabaja sobre store.Row).
func scanRows(rows *sql.Rows) ([]store.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]store.Row, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(store.Row, len(cols))
		for i, c := range cols {
			v := vals[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[c] = v
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// Orden estable de columnas para SQL reproducible (y tests legibles).
func sortedColumns(r store.Row) []string {
	cols := make([]string, 0, len(r))
	for c := range r {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// wrapErr clasifica errores de Postgres como rechazo del store, para que
// el pipeline los trate como clase validación con el mensaje del backend.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &store.Error{Message: pgErr.Message, Code: pgErr.Code}
	}
	return err
}
