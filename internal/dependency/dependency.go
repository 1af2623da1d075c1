package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/nuxtvisa/visa-portal/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Applications interface {
		// AddApplication inserts a pending application owned by userId.
		AddApplication(ctx context.Context, userId string, locale string, a *entity.VisaApplicationInsert) (*entity.VisaApplication, error)
		// GetApplicationsByUser returns the applications of one owner, newest first.
		GetApplicationsByUser(ctx context.Context, userId string) ([]entity.VisaApplication, error)
		// GetAllApplications returns every application, newest first.
		GetAllApplications(ctx context.Context) ([]entity.VisaApplication, error)
		GetApplicationById(ctx context.Context, id string) (*entity.VisaApplication, error)
		// UpdateApplicationReview writes status and admin notes only.
		UpdateApplicationReview(ctx context.Context, id string, r *entity.ApplicationReview) error
	}

	Messages interface {
		AddMessage(ctx context.Context, m *entity.SupportMessageInsert) (*entity.SupportMessage, error)
		// GetMessages returns the whole support history, oldest first.
		GetMessages(ctx context.Context) ([]entity.SupportMessage, error)
	}

	Accounts interface {
		AddAccount(ctx context.Context, email, pwHash, fullName string) (*entity.Account, error)
		GetAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
		GetAccountById(ctx context.Context, id string) (*entity.Account, error)
	}

	Sessions interface {
		AddSession(ctx context.Context, accountId string, expiresAt time.Time) (*entity.Session, error)
		GetSession(ctx context.Context, id string) (*entity.Session, error)
		DeleteSession(ctx context.Context, id string) error
		DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
	}

	Roles interface {
		HasRole(ctx context.Context, accountId string, role entity.Role) (bool, error)
		AddRole(ctx context.Context, accountId string, role entity.Role) error
	}

	Mail interface {
		AddMail(ctx context.Context, m *entity.QueuedMail) (int, error)
		GetAllUnsent(ctx context.Context, withError bool) ([]entity.QueuedMail, error)
		UpdateSent(ctx context.Context, id int) error
		AddError(ctx context.Context, id int, errMsg string) error
	}

	Mailer interface {
		QueueStatusUpdate(ctx context.Context, a *entity.VisaApplication) error
		Start(ctx context.Context) error
		Stop() error
	}

	Repository interface {
		Applications() Applications
		Messages() Messages
		Accounts() Accounts
		Sessions() Sessions
		Roles() Roles
		Mail() Mail
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
