package cmd

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/paivaedu632/dental-sub001/mocks"
	"github.com/paivaedu632/dental-sub001/models"
)

type fakeUploader struct {
	filename string
	data     []byte
	err      error
}

func (u *fakeUploader) Upload(filename string, data []byte) (string, error) {
	u.filename = filename
	u.data = data
	if u.err != nil {
		return "", u.err
	}
	return "https://bucket.test/statements/" + filename, nil
}

func TestBillingReportJobRun(t *testing.T) {
	t.Parallel()

	now := time.Now()
	periodEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	periodStart := periodEnd.AddDate(0, -1, 0)

	t.Run("Should invoice each onboarded practice and upload the statement", func(t *testing.T) {
		t.Parallel()

		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		appointments := mocks.NewAppointmentRepository(t)

		rows := sqlmock.NewRows([]string{"id", "email", "onboarding_completed_at"}).
			AddRow(1, "a@acme.com", periodStart.AddDate(0, -3, 0)).
			AddRow(2, "b@acme.com", periodStart.AddDate(0, 0, 5))
		dbMock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, email, onboarding_completed_at FROM accounts WHERE status = 'onboarded'")).
			WillReturnRows(rows)

		appointments.EXPECT().CountPaidInRange(mock.Anything, 1, periodStart, periodEnd).Return(20, nil)
		appointments.EXPECT().CountPaidInRange(mock.Anything, 2, periodStart, periodEnd).Return(4, nil)

		insertPattern := regexp.QuoteMeta("INSERT INTO invoices (`account_id`, `month`, `year`, `appointment_count`, `total_fee`, `status`, `confirmation_number`, `created_at`) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())")
		dbMock.ExpectPrepare(insertPattern).ExpectExec().
			WithArgs(1, int(periodStart.Month()), periodStart.Year(), 20, int64(597), models.InvoiceStatusPending, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		dbMock.ExpectPrepare(insertPattern).ExpectExec().
			WithArgs(2, int(periodStart.Month()), periodStart.Year(), 4, int64(594), models.InvoiceStatusPending, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(2, 1))

		uploader := &fakeUploader{}
		job := NewBillingReportJob(db, appointments, uploader)
		assert.NoError(t, job.Run(context.Background()))

		assert.Equal(t, periodStart.Format("2006-01")+".csv", uploader.filename)
		lines := strings.Split(strings.TrimSpace(string(uploader.data)), "\n")
		assert.Len(t, lines, 3)
		assert.Equal(t, "account_id,email,appointments,base_fee,usage_fee,total_fee,first_month", lines[0])
		assert.Equal(t, "1,a@acme.com,20,97,500,597,false", lines[1])
		assert.Equal(t, "2,b@acme.com,4,97,0,594,true", lines[2])
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Should keep generating when one account's count fails", func(t *testing.T) {
		t.Parallel()

		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		appointments := mocks.NewAppointmentRepository(t)

		rows := sqlmock.NewRows([]string{"id", "email", "onboarding_completed_at"}).
			AddRow(1, "a@acme.com", periodStart.AddDate(0, -3, 0)).
			AddRow(2, "b@acme.com", periodStart.AddDate(0, -3, 0))
		dbMock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, email, onboarding_completed_at FROM accounts WHERE status = 'onboarded'")).
			WillReturnRows(rows)

		appointments.EXPECT().CountPaidInRange(mock.Anything, 1, periodStart, periodEnd).Return(0, assert.AnError)
		appointments.EXPECT().CountPaidInRange(mock.Anything, 2, periodStart, periodEnd).Return(5, nil)

		insertPattern := regexp.QuoteMeta("INSERT INTO invoices")
		dbMock.ExpectPrepare(insertPattern).ExpectExec().
			WithArgs(2, int(periodStart.Month()), periodStart.Year(), 5, int64(97), models.InvoiceStatusPending, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		uploader := &fakeUploader{}
		job := NewBillingReportJob(db, appointments, uploader)
		assert.NoError(t, job.Run(context.Background()))

		lines := strings.Split(strings.TrimSpace(string(uploader.data)), "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[1], "2,b@acme.com,5")
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Should surface an upload failure", func(t *testing.T) {
		t.Parallel()

		db, dbMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, email, onboarding_completed_at FROM accounts WHERE status = 'onboarded'")).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "onboarding_completed_at"}))

		uploader := &fakeUploader{err: assert.AnError}
		job := NewBillingReportJob(db, mocks.NewAppointmentRepository(t), uploader)
		assert.Error(t, job.Run(context.Background()))
	})
}
