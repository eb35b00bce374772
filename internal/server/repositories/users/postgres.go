package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/usersvc/internal/common"
	"github.com/dmitrijs2005/usersvc/internal/dbx"
	"github.com/dmitrijs2005/usersvc/internal/server/models"
)

// updatableColumns is the fixed allow-list for dynamic UPDATE construction.
// Input keys outside this list are silently ignored; iteration order is the
// order of this slice, so the generated SET clause is deterministic.
var updatableColumns = []string{
	"nombre", "apellido", "email", "edad", "telefono",
	"ciudad", "genero", "profesion", "salario", "notas", "activo",
}

// createColumns is the column list for INSERT. The storage layer owns id,
// activo's default and both timestamps, so none of them appear here.
var createColumns = []string{
	"nombre", "apellido", "email", "edad", "telefono",
	"ciudad", "genero", "profesion", "salario", "notas",
}

// selectColumns is every column returned to clients. Timestamps come back as
// raw timestamps and are rendered to RFC 3339 during scanning; salario is
// cast to text so the wire type stays a string regardless of NUMERIC scale.
// notas is write-only and deliberately absent.
const selectColumns = `id, nombre, apellido, email, edad, telefono, ciudad,
		activo, fecha_registro, fecha_actualizacion, genero, profesion, salario::text`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// wrapDB classifies a database error into the shared sentinel taxonomy.
// Unique violations on the email index become ErrDuplicateEmail; everything
// unexpected is wrapped in ErrStorage with the cause preserved for logs.
func wrapDB(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return common.ErrDuplicateEmail
	}
	return fmt.Errorf("%w: %v", common.ErrStorage, err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u           models.User
		registro    sql.NullTime
		actualizado sql.NullTime
	)

	err := s.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Edad, &u.Telefono,
		&u.Ciudad, &u.Activo, &registro, &actualizado, &u.Genero, &u.Profesion, &u.Salario)
	if err != nil {
		return nil, err
	}

	if registro.Valid {
		u.FechaRegistro = registro.Time.Format(time.RFC3339)
	}
	if actualizado.Valid {
		u.FechaActualizacion = actualizado.Time.Format(time.RFC3339)
	}

	return &u, nil
}

// buildSetClause walks the allow-list (never the input map) and produces the
// SET fragment plus the bound arguments for the columns present in fields.
// Placeholders start at $1; the caller appends the id argument after these.
func buildSetClause(fields models.UserFields) (setParts []string, columns []string, args []any) {
	for _, col := range updatableColumns {
		value, ok := fields[col]
		if !ok {
			continue
		}
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)+1))
		columns = append(columns, col)
		args = append(args, value)
	}
	return setParts, columns, args
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + selectColumns + ` FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapDB(err)
	}
	defer rows.Close()

	usuarios := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapDB(err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB(err)
	}

	return usuarios, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + selectColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapDB(err)
	}

	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, fields models.UserFields) (*models.User, error) {
	placeholders := make([]string, len(createColumns))
	args := make([]any, len(createColumns))
	for i, col := range createColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[col] // nil for absent keys, which inserts NULL
	}

	query := fmt.Sprintf(`INSERT INTO users (%s) VALUES (%s) RETURNING %s`,
		strings.Join(createColumns, ", "), strings.Join(placeholders, ", "), selectColumns)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapDB(err)
	}

	return u, nil
}

func (r *PostgresRepository) Replace(ctx context.Context, id int64, fields models.UserFields) (*models.User, error) {
	setParts, _, args := buildSetClause(fields)
	if len(setParts) == 0 {
		return nil, fmt.Errorf("%w: no hay campos válidos para actualizar", common.ErrValidation)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), len(args), selectColumns)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, wrapDB(err)
	}

	return u, nil
}

func (r *PostgresRepository) MergeUpdate(ctx context.Context, id int64, fields models.UserFields) (*models.UpdateResult, error) {
	setParts, columns, args := buildSetClause(fields)
	if len(setParts) == 0 {
		return nil, fmt.Errorf("%w: no hay campos válidos para actualizar", common.ErrValidation)
	}

	var result *models.UpdateResult

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		// Existence is checked up front so a merge against a missing record
		// reports NotFound instead of a silent zero-row update. FOR UPDATE
		// holds the row until commit so a concurrent delete cannot slip in
		// between the check and the update.
		var existing int64
		if err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&existing); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrNotFound
			}
			return wrapDB(err)
		}

		args := append(args, id)
		query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
			strings.Join(setParts, ", "), len(args), selectColumns)

		u, err := scanUser(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			return wrapDB(err)
		}

		result = &models.UpdateResult{
			Usuario:            u,
			CamposActualizados: columns,
			Mensaje:            fmt.Sprintf("Actualización parcial exitosa de %d campo(s)", len(columns)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (string, error) {
	var mensaje string

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var (
			nombre   string
			apellido sql.NullString
		)
		err := tx.QueryRowContext(ctx, `SELECT nombre, apellido FROM users WHERE id = $1 FOR UPDATE`, id).
			Scan(&nombre, &apellido)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrNotFound
			}
			return wrapDB(err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
			return wrapDB(err)
		}

		nombreCompleto := strings.TrimSpace(nombre + " " + apellido.String)
		mensaje = fmt.Sprintf("Usuario %s eliminado correctamente", nombreCompleto)
		return nil
	})
	if err != nil {
		return "", err
	}

	return mensaje, nil
}

func (r *PostgresRepository) Stats(ctx context.Context) (*models.Stats, error) {
	s := &models.Stats{}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&s.TotalUsuarios); err != nil {
		return nil, wrapDB(err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT version()`).Scan(&s.VersionPostgreSQL); err != nil {
		return nil, wrapDB(err)
	}

	return s, nil
}

func (r *PostgresRepository) Paginate(ctx context.Context, pagina int, limite int) (*models.Page, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, wrapDB(err)
	}

	offset := (pagina - 1) * limite
	query := `SELECT ` + selectColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limite, offset)
	if err != nil {
		return nil, wrapDB(err)
	}
	defer rows.Close()

	usuarios := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapDB(err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDB(err)
	}

	return &models.Page{
		Usuarios:   usuarios,
		Paginacion: models.NewPageInfo(pagina, limite, total),
	}, nil
}
