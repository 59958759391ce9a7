package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/paivaedu632/dental-sub001/models"
)

func TestMarkPaid(t *testing.T) {
	t.Parallel()

	query := "UPDATE appointments SET payment_status = ?, updated_at = NOW() WHERE id = ? AND payment_status = ?"

	t.Run("Should win the pending to paid transition", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(models.PaymentPaid, 99, models.PaymentPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		svc := NewAppointmentService(db)
		won, err := svc.MarkPaid(context.Background(), 99)
		assert.NoError(t, err)
		assert.True(t, won)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should lose when the appointment is already paid", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(models.PaymentPaid, 99, models.PaymentPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		svc := NewAppointmentService(db)
		won, err := svc.MarkPaid(context.Background(), 99)
		assert.NoError(t, err)
		assert.False(t, won)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}

func TestCreateAppointment(t *testing.T) {
	t.Parallel()

	t.Run("Should persist the appointment as scheduled and pending", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		scheduledAt := time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC)
		mockSql.ExpectPrepare("INSERT INTO appointments").
			ExpectExec().
			WithArgs(1, "Maria Silva", "maria@example.com", "+5511999990000", scheduledAt,
				models.AppointmentScheduled, models.PaymentPending).
			WillReturnResult(sqlmock.NewResult(99, 1))

		svc := NewAppointmentService(db)
		id, err := svc.CreateAppointment(context.Background(), &models.Appointment{
			AccountId:    1,
			PatientName:  "Maria Silva",
			PatientEmail: "maria@example.com",
			PatientPhone: "+5511999990000",
			ScheduledAt:  scheduledAt,
		})
		assert.NoError(t, err)
		assert.Equal(t, 99, id)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}

func TestUpdateSchedule(t *testing.T) {
	t.Parallel()

	query := "UPDATE appointments SET scheduled_at = ?, reschedule_reason = ?, updated_at = NOW() WHERE id = ?"

	t.Run("Should move the appointment", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		newTime := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
		mockSql.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(newTime, "conflict", 99).
			WillReturnResult(sqlmock.NewResult(0, 1))

		svc := NewAppointmentService(db)
		assert.NoError(t, svc.UpdateSchedule(context.Background(), 99, newTime, "conflict"))

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should report a missing appointment", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		newTime := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
		mockSql.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs(newTime, "", 404).
			WillReturnResult(sqlmock.NewResult(0, 0))

		svc := NewAppointmentService(db)
		err = svc.UpdateSchedule(context.Background(), 404, newTime, "")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCountPaidInRange(t *testing.T) {
	t.Parallel()

	t.Run("Should count only paid appointments in the window", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		mockSql.ExpectQuery("SELECT COUNT(.+) FROM appointments").
			WithArgs(1, models.PaymentPaid, start, end).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(20))

		svc := NewAppointmentService(db)
		count, err := svc.CountPaidInRange(context.Background(), 1, start, end)
		assert.NoError(t, err)
		assert.Equal(t, int64(20), count)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should exclude the first instant of the next month", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		// an appointment at exactly `end` belongs to September's statement,
		// so the window has to be half open
		query := "SELECT COUNT(*) as count FROM appointments WHERE account_id = ? AND payment_status = ? AND scheduled_at >= ? AND scheduled_at < ?"
		mockSql.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(1, models.PaymentPaid, start, end).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		svc := NewAppointmentService(db)
		count, err := svc.CountPaidInRange(context.Background(), 1, start, end)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}
