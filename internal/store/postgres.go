package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/AntonTsoy/jwt-auth-api/internal/model"
)

const uniqueViolation = "23505"

// OpenPostgres opens the connection pool and bootstraps the users schema.
func OpenPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err = db.Ping(); err != nil {
		return nil, err
	}

	query := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMP WITHOUT TIME ZONE NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return nil, err
	}

	return db, nil
}

// PostgresUserStore implements UserStore on a Postgres connection pool.
type PostgresUserStore struct {
	db *sql.DB
}

func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(user model.User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, string(user.Role), time.Now(),
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return model.ErrEmailTaken
	}
	return err
}

func (s *PostgresUserStore) FindByEmail(email string) (model.User, error) {
	row := s.db.QueryRow(
		`SELECT id, email, password_hash, role FROM users WHERE email = $1`, email,
	)
	return scanUser(row)
}

func (s *PostgresUserStore) FindByID(id uuid.UUID) (model.User, error) {
	row := s.db.QueryRow(
		`SELECT id, email, password_hash, role FROM users WHERE id = $1`, id,
	)
	return scanUser(row)
}

func (s *PostgresUserStore) FindAll() ([]model.User, error) {
	rows, err := s.db.Query(
		`SELECT id, email, password_hash, role FROM users ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &role); err != nil {
			return nil, err
		}
		u.Role = model.Role(role)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresUserStore) DeleteByID(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.Role = model.Role(role)
	return u, nil
}
