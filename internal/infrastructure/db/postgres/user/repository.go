package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.City,
		&u.Country,
		&u.Role,

		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchUsers(ctx context.Context, filter user.Filter) (user.Users, error) {
	query, args := buildSelectUsers(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	us := Users{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, id.String())
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) fetchOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.ID.String(),
		req.Name,
		req.Email,
		req.PasswordHash,
		req.Phone,
		req.City,
		req.Country,
		string(req.Role),
		req.CreatedAt,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}
