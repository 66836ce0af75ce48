package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/ranking"
)

var (
	// ErrNotFound is returned when no record matches the lookup key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an insert collides with the unique
	// email key.
	ErrDuplicateEmail = errors.New("email already registered")
)

// mysqlDuplicateEntry is the server error number for a unique-key violation.
const mysqlDuplicateEntry = 1062

const userColumns = "id, username, email, password_hash, score_easy, score_medium, score_hard, created_at"

// UserRepository handles all database operations for users.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Score.Easy, &u.Score.Medium, &u.Score.Hard, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// Create inserts a new user record. A collision on the unique email key is
// reported as ErrDuplicateEmail so a concurrent signup race cannot produce
// two records.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, username, email, password_hash, score_easy, score_medium, score_hard)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash,
		user.Score.Easy, user.Score.Medium, user.Score.Hard)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrDuplicateEmail
	}
	return err
}

// UpdatePassword replaces the user's password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users SET password_hash = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementScore adds delta to one difficulty counter as a single atomic
// increment, so concurrent updates for the same user cannot lose writes.
func (r *UserRepository) IncrementScore(ctx context.Context, id string, level ranking.Level, delta int) error {
	var column string
	switch level {
	case ranking.LevelEasy:
		column = "score_easy"
	case ranking.LevelMedium:
		column = "score_medium"
	case ranking.LevelHard:
		column = "score_hard"
	default:
		return ranking.ErrInvalidLevel
	}

	query := fmt.Sprintf(`UPDATE users SET %s = %s + ? WHERE id = ?`, column, column)
	_, err := r.db.ExecContext(ctx, query, delta, id)
	return err
}

// ListAll returns every user in creation order. That order is the stable
// tie-break for equal scores in the rank computations.
func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.Score.Easy, &u.Score.Medium, &u.Score.Hard, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
