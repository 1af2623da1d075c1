package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nuxtvisa/visa-portal/internal/dependency"
	"github.com/nuxtvisa/visa-portal/internal/entity"
	gerr "github.com/nuxtvisa/visa-portal/internal/errors"
)

type applicationStore struct {
	*MYSQLStore
}

// Applications returns an object implementing dependency.Applications interface
func (ms *MYSQLStore) Applications() dependency.Applications {
	return &applicationStore{
		MYSQLStore: ms,
	}
}

const applicationColumns = `
	id, user_id, applicant_name, applicant_email, applicant_phone, visa_type,
	passport_number, nationality, purpose, status, admin_notes, locale,
	created_at, updated_at`

func (s *applicationStore) AddApplication(ctx context.Context, userId string, locale string, a *entity.VisaApplicationInsert) (*entity.VisaApplication, error) {
	now := s.Now().UTC()
	app := &entity.VisaApplication{
		Id:                    uuid.NewString(),
		UserId:                userId,
		Status:                entity.StatusPending,
		Locale:                locale,
		CreatedAt:             now,
		UpdatedAt:             now,
		VisaApplicationInsert: *a,
	}

	query := `
	INSERT INTO visa_application
		(id, user_id, applicant_name, applicant_email, applicant_phone, visa_type,
		 passport_number, nationality, purpose, status, locale, created_at, updated_at)
	VALUES
		(:id, :userId, :applicantName, :applicantEmail, :applicantPhone, :visaType,
		 :passportNumber, :nationality, :purpose, :status, :locale, :createdAt, :updatedAt)`

	err := ExecNamed(ctx, s.DB(), query, map[string]any{
		"id":             app.Id,
		"userId":         app.UserId,
		"applicantName":  app.ApplicantName,
		"applicantEmail": app.ApplicantEmail,
		"applicantPhone": app.ApplicantPhone,
		"visaType":       app.VisaType,
		"passportNumber": app.PassportNumber,
		"nationality":    app.Nationality,
		"purpose":        app.Purpose,
		"status":         app.Status,
		"locale":         app.Locale,
		"createdAt":      app.CreatedAt,
		"updatedAt":      app.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("can't insert visa application: %w", err)
	}
	return app, nil
}

func (s *applicationStore) GetApplicationsByUser(ctx context.Context, userId string) ([]entity.VisaApplication, error) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM visa_application
	WHERE user_id = :userId
	ORDER BY created_at DESC`, applicationColumns)

	apps, err := QueryListNamed[entity.VisaApplication](ctx, s.DB(), query, map[string]any{
		"userId": userId,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get visa applications by user: %w", err)
	}
	return apps, nil
}

func (s *applicationStore) GetAllApplications(ctx context.Context) ([]entity.VisaApplication, error) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM visa_application
	ORDER BY created_at DESC`, applicationColumns)

	apps, err := QueryListNamed[entity.VisaApplication](ctx, s.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get visa applications: %w", err)
	}
	return apps, nil
}

func (s *applicationStore) GetApplicationById(ctx context.Context, id string) (*entity.VisaApplication, error) {
	query := fmt.Sprintf(`
	SELECT %s
	FROM visa_application
	WHERE id = :id`, applicationColumns)

	app, err := QueryNamedOne[entity.VisaApplication](ctx, s.DB(), query, map[string]any{
		"id": id,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("visa application %s: %w", id, gerr.ErrNotFound)
		}
		return nil, fmt.Errorf("can't get visa application: %w", err)
	}
	return &app, nil
}

// UpdateApplicationReview overwrites status and admin notes. Concurrent
// reviews of the same row are not coordinated, the last statement wins.
func (s *applicationStore) UpdateApplicationReview(ctx context.Context, id string, r *entity.ApplicationReview) error {
	query := `
	UPDATE visa_application
	SET status = :status, admin_notes = :adminNotes
	WHERE id = :id`

	n, err := ExecNamedAffected(ctx, s.DB(), query, map[string]any{
		"id":         id,
		"status":     r.Status,
		"adminNotes": r.AdminNotes,
	})
	if err != nil {
		return fmt.Errorf("can't update visa application review: %w", err)
	}
	if n == 0 {
		// MySQL reports zero affected rows when the values did not change,
		// so tell a missing row apart from an idempotent update.
		var exists bool
		err := s.DB().GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM visa_application WHERE id = ?)`, id)
		if err != nil {
			return fmt.Errorf("can't check visa application: %w", err)
		}
		if !exists {
			return fmt.Errorf("visa application %s: %w", id, gerr.ErrNotFound)
		}
	}
	return nil
}
