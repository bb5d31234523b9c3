package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/soyummy/cookbook-api/internal/model"
	"github.com/soyummy/cookbook-api/internal/utils"
)

// UserRepo persists user accounts.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,name,email,password_hash,newsletter,token,avatar,verification_token,verified,created_at,updated_at"

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Newsletter,
		&u.Token, &u.Avatar, &u.VerificationToken, &u.Verified, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts a user and the empty shopping list owned by it in one
// transaction, so either both rows exist afterwards or neither does.
// Returns the new user id, or ErrEmailExists on a duplicate email.
func (r *UserRepo) Create(ctx context.Context, name, email, password, verificationToken string, newsletter bool, cost int, avatar string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, newsletter, avatar, verification_token) VALUES (?,?,?,?,?,?)",
		name, email, hash, newsletter, avatar, verificationToken)
	if err != nil {
		// 1062 = MySQL duplicate entry
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO shopping_lists (owner_id) VALUES (?)", id); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// GetByVerificationToken fetches the user holding the given pending
// verification token.
func (r *UserRepo) GetByVerificationToken(ctx context.Context, token string) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE verification_token=? LIMIT 1", token))
}

// SetToken stores the freshly issued session token on the user row. A new
// sign-in overwrites any previous token, which is what invalidates older
// sessions.
func (r *UserRepo) SetToken(ctx context.Context, id uint64, token string) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE users SET token=? WHERE id=?", token, id)
	return err
}

// ClearToken logs the user out by nulling the stored session token.
func (r *UserRepo) ClearToken(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE users SET token=NULL WHERE id=?", id)
	return err
}

// MarkVerified flags the account verified and clears the verification token.
func (r *UserRepo) MarkVerified(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET verified=1, verification_token=NULL WHERE id=?", id)
	return err
}

// UpdateName changes the display name and returns the updated record.
func (r *UserRepo) UpdateName(ctx context.Context, id uint64, name string) (model.User, error) {
	if _, err := r.DB.ExecContext(ctx, "UPDATE users SET name=? WHERE id=?", name, id); err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// UpdateAvatar stores a new avatar URL and returns the updated record.
func (r *UserRepo) UpdateAvatar(ctx context.Context, id uint64, avatarURL string) (model.User, error) {
	if _, err := r.DB.ExecContext(ctx, "UPDATE users SET avatar=? WHERE id=?", avatarURL, id); err != nil {
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}
