package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *repository.User, password string) error {
	var hash *string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		s := string(h)
		hash = &s
	}

	_, err := r.db.Exec(ctx, `
        INSERT INTO users (
            id, email, name, phone, role, customer_type, is_active,
            created_at, last_login_at, password_hash
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, user.ID, user.Email, user.Name, user.Phone, user.Role, user.CustomerType,
		user.IsActive, user.CreatedAt, user.LastLoginAt, hash)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, `
        SELECT id, email, name, phone, role, customer_type, is_active, created_at, last_login_at
        FROM users WHERE id = $1
    `, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetCustomers(ctx context.Context) ([]*repository.User, error) {
	var users []*repository.User
	err := r.db.Select(ctx, &users, `
        SELECT id, email, name, phone, role, customer_type, is_active, created_at, last_login_at
        FROM users WHERE role = $1 ORDER BY created_at ASC
    `, repository.RoleCustomer)
	return users, err
}

func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Exec(ctx, "UPDATE users SET is_active = $2 WHERE id = $1", id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// ValidateUser checks basic-auth credentials for admin routes. Only active
// admin accounts may authenticate.
func (r *UserRepo) ValidateUser(ctx context.Context, email, password string) (bool, error) {
	var hashedPassword string
	err := r.db.ExecQueryRow(ctx, `
        SELECT password_hash FROM users
        WHERE email = $1 AND role = $2 AND is_active = true AND password_hash IS NOT NULL
    `, email, repository.RoleAdmin).Scan(&hashedPassword)
	if err != nil {
		return false, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
