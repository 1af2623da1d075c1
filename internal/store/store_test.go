package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*MYSQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return &MYSQLStore{db: sqlx.NewDb(db, "sqlmock")}, mock
}

var applicationRowColumns = []string{
	"id", "user_id", "applicant_name", "applicant_email", "applicant_phone", "visa_type",
	"passport_number", "nationality", "purpose", "status", "admin_notes", "locale",
	"created_at", "updated_at",
}

func applicationRow(rows *sqlmock.Rows, id, userId string, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(id, userId, "Sara Ali", "sara@example.com", "0501234567", "work",
		"A1234567", "Saudi", "", "pending", "", "ar", createdAt, createdAt)
}

func TestApplicationStore_AddApplication(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO visa_application")).
		WithArgs(sqlmock.AnyArg(), "user-1", "Sara Ali", "sara@example.com", "0501234567", entity.VisaWork,
			"A1234567", "Saudi", "", entity.StatusPending, "en", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app, err := ms.Applications().AddApplication(ctx, "user-1", "en", &entity.VisaApplicationInsert{
		ApplicantName:  "Sara Ali",
		ApplicantEmail: "sara@example.com",
		ApplicantPhone: "0501234567",
		VisaType:       entity.VisaWork,
		PassportNumber: "A1234567",
		Nationality:    "Saudi",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, app.Id)
	assert.Equal(t, "user-1", app.UserId)
	assert.Equal(t, entity.StatusPending, app.Status)
	assert.Empty(t, app.AdminNotes)
	assert.False(t, app.CreatedAt.IsZero())
}

func TestApplicationStore_GetApplicationsByUser(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	newer := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(applicationRowColumns)
	applicationRow(rows, "a2", "user-1", newer)
	applicationRow(rows, "a1", "user-1", older)

	mock.ExpectQuery(`(?s)FROM visa_application.*WHERE user_id = \?.*ORDER BY created_at DESC`).
		WithArgs("user-1").
		WillReturnRows(rows)

	apps, err := ms.Applications().GetApplicationsByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "a2", apps[0].Id)
	assert.Equal(t, entity.VisaWork, apps[0].VisaType)
	assert.Equal(t, "A1234567", apps[0].PassportNumber)
	assert.True(t, apps[0].CreatedAt.After(apps[1].CreatedAt))
}

func TestApplicationStore_GetApplicationsByUser_Empty(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)FROM visa_application.*WHERE user_id = \?`).
		WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows(applicationRowColumns))

	apps, err := ms.Applications().GetApplicationsByUser(context.Background(), "user-2")
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestApplicationStore_GetAllApplications(t *testing.T) {
	ms, mock := newMockStore(t)

	rows := sqlmock.NewRows(applicationRowColumns)
	applicationRow(rows, "a3", "user-2", time.Now())
	applicationRow(rows, "a1", "user-1", time.Now().Add(-time.Hour))

	mock.ExpectQuery(`(?s)FROM visa_application\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	apps, err := ms.Applications().GetAllApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "user-2", apps[0].UserId)
}

func TestApplicationStore_UpdateApplicationReview(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(`(?s)UPDATE visa_application\s+SET status = \?, admin_notes = \?\s+WHERE id = \?`).
		WithArgs(entity.StatusApproved, "ok", "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := ms.Applications().UpdateApplicationReview(ctx, "a1", &entity.ApplicationReview{
		Status:     entity.StatusApproved,
		AdminNotes: "ok",
	})
	assert.NoError(t, err)
}

func TestApplicationStore_UpdateApplicationReview_NotFound(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE visa_application")).
		WithArgs(entity.StatusRejected, "", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM visa_application WHERE id = ?)")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := ms.Applications().UpdateApplicationReview(ctx, "missing", &entity.ApplicationReview{
		Status: entity.StatusRejected,
	})
	assert.ErrorIs(t, err, gerr.ErrNotFound)
}

func TestApplicationStore_UpdateApplicationReview_Unchanged(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE visa_application")).
		WithArgs(entity.StatusPending, "", "a1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := ms.Applications().UpdateApplicationReview(context.Background(), "a1", &entity.ApplicationReview{
		Status: entity.StatusPending,
	})
	assert.NoError(t, err)
}

func TestMessageStore(t *testing.T) {
	ms, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO support_message")).
		WithArgs(sqlmock.AnyArg(), "Omar", "hello", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg, err := ms.Messages().AddMessage(ctx, &entity.SupportMessageInsert{
		UserName: "Omar",
		Message:  "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.Id)
	assert.False(t, msg.IsAdminReply)

	first := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)FROM support_message\s+ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "message", "is_admin_reply", "created_at"}).
			AddRow("m1", "Omar", "hello", false, first).
			AddRow("m2", "Support", "hi Omar", true, first.Add(time.Minute)))

	msgs, err := ms.Messages().GetMessages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].Id)
	assert.True(t, msgs[1].IsAdminReply)
}

func TestAccountStore_AddAccount_Duplicate(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO account")).
		WithArgs(sqlmock.AnyArg(), "sara@example.com", "hash", "Sara", sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := ms.Accounts().AddAccount(context.Background(), "Sara@Example.com", "hash", "Sara")
	assert.ErrorIs(t, err, gerr.ErrEmailTaken)
}

func TestAccountStore_GetAccountByEmail_NotFound(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)FROM account\s+WHERE email = \?`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "created_at"}))

	_, err := ms.Accounts().GetAccountByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, gerr.ErrNotFound)
}

func TestRoleStore_HasRole(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_role WHERE account_id = ? AND role = ?")).
		WithArgs("user-1", entity.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_role WHERE account_id = ? AND role = ?")).
		WithArgs("user-2", entity.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := ms.Roles().HasRole(context.Background(), "user-1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ms.Roles().HasRole(context.Background(), "user-2", entity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_DeleteExpiredSessions(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM auth_session WHERE expires_at <= ?")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := ms.Sessions().DeleteExpiredSessions(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestMailStore_GetAllUnsent(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`(?s)FROM mail_queue\s+WHERE sent = false AND error_msg IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "application_id", "to_email", "subject", "html", "sent", "sent_at", "created_at", "error_msg"}).
			AddRow(7, "a1", "sara@example.com", "update", "<p>hi</p>", false, nil, time.Now(), nil))

	mails, err := ms.Mail().GetAllUnsent(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, mails, 1)
	assert.Equal(t, 7, mails[0].Id)
	assert.Equal(t, "a1", mails[0].ApplicationId.String)
}

func TestIsErrorRepeat(t *testing.T) {
	ms := &MYSQLStore{}
	assert.True(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: 1213}))
	assert.True(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: 1205}))
	assert.False(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: 1062}))
	assert.True(t, ms.IsErrUniqueViolation(&mysql.MySQLError{Number: 1062}))
}
