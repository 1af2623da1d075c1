package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
)

type accountStore struct {
	*MYSQLStore
}

// Accounts returns an object implementing dependency.Accounts interface
func (ms *MYSQLStore) Accounts() dependency.Accounts {
	return &accountStore{
		MYSQLStore: ms,
	}
}

// AddAccount creates an account, emails are stored lower-cased.
func (s *accountStore) AddAccount(ctx context.Context, email, pwHash, fullName string) (*entity.Account, error) {
	acc := &entity.Account{
		Id:           uuid.NewString(),
		Email:        strings.ToLower(email),
		PasswordHash: pwHash,
		FullName:     fullName,
		CreatedAt:    s.Now().UTC(),
	}

	query := `
	INSERT INTO account
		(id, email, password_hash, full_name, created_at)
	VALUES
		(:id, :email, :passwordHash, :fullName, :createdAt)`

	err := ExecNamed(ctx, s.DB(), query, map[string]any{
		"id":           acc.Id,
		"email":        acc.Email,
		"passwordHash": acc.PasswordHash,
		"fullName":     acc.FullName,
		"createdAt":    acc.CreatedAt,
	})
	if err != nil {
		if isErrUniqueViolation(err) {
			return nil, gerr.ErrEmailTaken
		}
		return nil, fmt.Errorf("can't add account: %w", err)
	}
	return acc, nil
}

func (s *accountStore) GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return s.getAccount(ctx, "email", strings.ToLower(email))
}

func (s *accountStore) GetAccountById(ctx context.Context, id string) (*entity.Account, error) {
	return s.getAccount(ctx, "id", id)
}

func (s *accountStore) getAccount(ctx context.Context, column, value string) (*entity.Account, error) {
	query := fmt.Sprintf(`
	SELECT id, email, password_hash, full_name, created_at
	FROM account
	WHERE %s = :value`, column)

	acc, err := QueryNamedOne[entity.Account](ctx, s.DB(), query, map[string]any{
		"value": value,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account: %w", gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("can't get account by %s: %w", column, err)
	}
	return &acc, nil
}

type roleStore struct {
	*MYSQLStore
}

// Roles returns an object implementing dependency.Roles interface
func (ms *MYSQLStore) Roles() dependency.Roles {
	return &roleStore{
		MYSQLStore: ms,
	}
}

func (s *roleStore) HasRole(ctx context.Context, accountId string, role entity.Role) (bool, error) {
	var has bool
	err := s.DB().GetContext(ctx, &has, `
	SELECT EXISTS(SELECT 1 FROM user_role WHERE account_id = ? AND role = ?)`, accountId, role)
	if err != nil {
		return false, fmt.Errorf("can't check role: %w", err)
	}
	return has, nil
}

// AddRole grants a role, granting an existing role is a no-op.
func (s *roleStore) AddRole(ctx context.Context, accountId string, role entity.Role) error {
	query := `
	INSERT IGNORE INTO user_role (account_id, role)
	VALUES (:accountId, :role)`

	err := ExecNamed(ctx, s.DB(), query, map[string]any{
		"accountId": accountId,
		"role":      role,
	})
	if err != nil {
		return fmt.Errorf("can't add role: %w", err)
	}
	return nil
}
