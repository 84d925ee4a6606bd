package store

import (
	"context"
	"strings"

	"meeting-scheduler-api/internal/auth"
	"meeting-scheduler-api/internal/model"
)

// CreateUser persists a new account. The password is hashed here — the
// single write path through which credentials reach the table — and the
// email is lowercased so lookups are case-insensitive.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	if !auth.IsHashed(u.Password) {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hash
	}
	u.Email = strings.ToLower(u.Email)
	if u.Role == "" {
		u.Role = model.RoleUser
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password, role, active) VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Name, u.Email, u.Password, u.Role, u.Active,
	)
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password, role, active, created_at, updated_at
		 FROM users WHERE email = $1`, strings.ToLower(email),
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// EnsureHashedPassword migrates a legacy plain-text credential to bcrypt.
// Idempotent: an already-hashed value is left untouched.
func (s *Store) EnsureHashedPassword(ctx context.Context, userID, password string) error {
	if auth.IsHashed(password) {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hash, userID,
	)
	return err
}
