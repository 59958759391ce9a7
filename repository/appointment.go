package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/paivaedu632/dental-sub001/models"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

type AppointmentRepository interface {
	GetAppointment(ctx context.Context, id int) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, appt *models.Appointment) (int, error)
	MarkPaid(ctx context.Context, id int) (bool, error)
	UpdateSchedule(ctx context.Context, id int, scheduledAt time.Time, reason string) error
	CountPaidInRange(ctx context.Context, accountId int, start time.Time, end time.Time) (int64, error)
}

type AppointmentService struct {
	db *sql.DB
}

func NewAppointmentRepository(db *sql.DB) AppointmentRepository {
	return NewAppointmentService(db)
}

func NewAppointmentService(db *sql.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) GetAppointment(ctx context.Context, id int) (*models.Appointment, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, account_id, patient_name, patient_email, patient_phone, scheduled_at, status, payment_status, created_at, updated_at FROM appointments WHERE id = ?",
		id)

	var a models.Appointment
	err := row.Scan(&a.Id, &a.AccountId, &a.PatientName, &a.PatientEmail, &a.PatientPhone,
		&a.ScheduledAt, &a.Status, &a.PaymentStatus, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning appointment row")
	}
	return &a, nil
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, appt *models.Appointment) (int, error) {
	stmt, err := s.db.PrepareContext(ctx, "INSERT INTO appointments (`account_id`, `patient_name`, `patient_email`, `patient_phone`, `scheduled_at`, `status`, `payment_status`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())")
	if err != nil {
		return 0, errors.Wrap(err, "preparing appointment insert")
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, appt.AccountId, appt.PatientName, appt.PatientEmail,
		appt.PatientPhone, appt.ScheduledAt, models.AppointmentScheduled, models.PaymentPending)
	if err != nil {
		return 0, errors.Wrap(err, "creating appointment")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "reading appointment insert id")
	}
	return int(id), nil
}

// MarkPaid promotes pending to paid with a conditional update. The returned
// flag reports whether this call won the transition; a redelivered event
// loses and must not credit the prepayment again.
func (s *AppointmentService) MarkPaid(ctx context.Context, id int) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE appointments SET payment_status = ?, updated_at = NOW() WHERE id = ? AND payment_status = ?",
		models.PaymentPaid, id, models.PaymentPending)
	if err != nil {
		return false, errors.Wrap(err, "marking appointment paid")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "reading rows affected")
	}
	return affected > 0, nil
}

func (s *AppointmentService) UpdateSchedule(ctx context.Context, id int, scheduledAt time.Time, reason string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE appointments SET scheduled_at = ?, reschedule_reason = ?, updated_at = NOW() WHERE id = ?",
		scheduledAt, reason, id)
	if err != nil {
		return errors.Wrap(err, "updating appointment schedule")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading rows affected")
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// CountPaidInRange counts paid appointments scheduled inside [start, end). The
// end bound is exclusive so an appointment on a month boundary lands in exactly
// one statement.
func (s *AppointmentService) CountPaidInRange(ctx context.Context, accountId int, start time.Time, end time.Time) (int64, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) as count FROM appointments WHERE account_id = ? AND payment_status = ? AND scheduled_at >= ? AND scheduled_at < ?",
		accountId, models.PaymentPaid, start, end)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, errors.Wrap(err, "counting paid appointments")
	}
	return count, nil
}
