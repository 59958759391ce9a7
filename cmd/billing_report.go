package cmd

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"

	"github.com/paivaedu632/dental-sub001/internal/billing"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
	"github.com/paivaedu632/dental-sub001/utils"
)

// ReportUploader stores a generated statement and returns its location.
type ReportUploader interface {
	Upload(filename string, data []byte) (string, error)
}

type S3ReportUploader struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

func NewS3ReportUploaderFromEnv() *S3ReportUploader {
	return &S3ReportUploader{
		Region:    utils.Config("AWS_REGION"),
		Bucket:    utils.Config("S3_BUCKET"),
		AccessKey: utils.Config("AWS_ACCESS_KEY_ID"),
		SecretKey: utils.Config("AWS_SECRET_ACCESS_KEY"),
	}
}

func (u *S3ReportUploader) Upload(filename string, data []byte) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(u.Region),
		Credentials: credentials.NewStaticCredentials(u.AccessKey, u.SecretKey, ""),
	})
	if err != nil {
		return "", err
	}

	uploader := s3manager.NewUploader(sess)
	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(u.Bucket),
		Key:    aws.String("statements/" + filename),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}

// BillingReportJob computes each onboarded practice's tiered usage charge for
// the prior month, writes the invoice rows and uploads a CSV statement.
type BillingReportJob struct {
	db           *sql.DB
	appointments repository.AppointmentRepository
	uploader     ReportUploader
	pricing      billing.Pricing
	logger       *logrus.Entry
}

func NewBillingReportJob(db *sql.DB, appointments repository.AppointmentRepository, uploader ReportUploader) *BillingReportJob {
	return &BillingReportJob{
		db:           db,
		appointments: appointments,
		uploader:     uploader,
		pricing:      billing.DefaultPricing(),
		logger:       logrus.WithField("component", "billing_report"),
	}
}

// cron tab to generate monthly usage statements
func (j *BillingReportJob) Run(ctx context.Context) error {
	now := time.Now()
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, -1, 0)
	periodLabel := start.Format("2006-01")

	results, err := j.db.QueryContext(ctx,
		"SELECT id, email, onboarding_completed_at FROM accounts WHERE status = 'onboarded'")
	if err != nil {
		j.logger.WithError(err).Error("error running query..")
		return err
	}
	defer results.Close()

	var csv bytes.Buffer
	csv.WriteString("account_id,email,appointments,base_fee,usage_fee,total_fee,first_month\n")

	var id int
	var email sql.NullString
	var onboardedAt sql.NullTime
	generated := 0
	for results.Next() {
		if err := results.Scan(&id, &email, &onboardedAt); err != nil {
			j.logger.WithError(err).Error("error scanning account row")
			continue
		}

		count, err := j.appointments.CountPaidInRange(ctx, id, start, end)
		if err != nil {
			j.logger.WithError(err).Errorf("error counting appointments for account %d", id)
			continue
		}

		isFirstMonth := onboardedAt.Valid && !onboardedAt.Time.Before(start) && onboardedAt.Time.Before(end)
		period, err := j.pricing.Compute(count, isFirstMonth)
		if err != nil {
			j.logger.WithError(err).Errorf("error computing charges for account %d", id)
			continue
		}

		confNumber, err := utils.CreateInvoiceConfirmationNumber()
		if err != nil {
			j.logger.WithError(err).Error("error while generating confirmation number")
			continue
		}

		invoice := models.Invoice{
			AccountId:          id,
			Month:              int(start.Month()),
			Year:               start.Year(),
			AppointmentCount:   int(period.AppointmentCount),
			TotalFee:           period.TotalFee,
			Status:             models.InvoiceStatusPending,
			ConfirmationNumber: confNumber,
		}
		stmt, err := j.db.PrepareContext(ctx, "INSERT INTO invoices (`account_id`, `month`, `year`, `appointment_count`, `total_fee`, `status`, `confirmation_number`, `created_at`) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())")
		if err != nil {
			j.logger.WithError(err).Error("could not prepare query..")
			continue
		}
		_, err = stmt.ExecContext(ctx, invoice.AccountId, invoice.Month, invoice.Year, invoice.AppointmentCount, invoice.TotalFee, invoice.Status, invoice.ConfirmationNumber)
		stmt.Close()
		if err != nil {
			j.logger.WithError(err).Errorf("error creating invoice for account %d", id)
			continue
		}

		csv.WriteString(fmt.Sprintf("%d,%s,%d,%d,%d,%d,%t\n",
			id, email.String, period.AppointmentCount, period.BaseFee, period.UsageFee, period.TotalFee, period.IsFirstMonth))
		generated++
	}
	if err := results.Err(); err != nil {
		return err
	}

	location, err := j.uploader.Upload(periodLabel+".csv", csv.Bytes())
	if err != nil {
		j.logger.WithError(err).Error("error uploading statement")
		return err
	}

	j.logger.Infof("generated %d statements for %s at %s", generated, periodLabel, location)
	return nil
}
