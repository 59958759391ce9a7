package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/paivaedu632/dental-sub001/models"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

type AccountRepository interface {
	GetAccount(ctx context.Context, id int) (*models.Account, error)
	GetAccountByCustomerId(ctx context.Context, customerId string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountBySlug(ctx context.Context, slug string) (*models.Account, error)
	CreateAccount(ctx context.Context, customerId string, email string) (int, error)
	SetPaymentReceived(ctx context.Context, id int) error
	BackfillCustomerId(ctx context.Context, id int, customerId string) error
	CompleteOnboarding(ctx context.Context, id int, profile *models.OnboardingProfile, completedAt time.Time) error
	PauseBilling(ctx context.Context, customerId string) error
	CreditPatientPrepayment(ctx context.Context, id int, cents int64) error
	ListAwaitingOnboarding(ctx context.Context, remindedBefore time.Time) ([]models.Account, error)
	MarkReminderSent(ctx context.Context, id int, at time.Time) error
}

type AccountService struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return NewAccountService(db)
}

func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{db: db}
}

const accountColumns = `id, stripe_customer_id, email, contact_name, practice_name, phone, slug,
	status, account_status, trial_budget_initial, trial_budget_spent, trial_budget_from_patients,
	created_at, updated_at, onboarding_completed_at`

func scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.Id, &a.StripeCustomerId, &a.Email, &a.ContactName, &a.PracticeName,
		&a.Phone, &a.Slug, &a.Status, &a.AccountStatus, &a.TrialBudgetInitial,
		&a.TrialBudgetSpent, &a.TrialBudgetFromPatients, &a.CreatedAt, &a.UpdatedAt,
		&a.OnboardingCompletedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning account row")
	}
	return &a, nil
}

func (as *AccountService) GetAccount(ctx context.Context, id int) (*models.Account, error) {
	row := as.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)
	return scanAccount(row)
}

func (as *AccountService) GetAccountByCustomerId(ctx context.Context, customerId string) (*models.Account, error) {
	row := as.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE stripe_customer_id = ?", customerId)
	return scanAccount(row)
}

func (as *AccountService) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := as.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE email = ?", email)
	return scanAccount(row)
}

func (as *AccountService) GetAccountBySlug(ctx context.Context, slug string) (*models.Account, error) {
	row := as.db.QueryRowContext(ctx, "SELECT "+accountColumns+" FROM accounts WHERE slug = ?", slug)
	return scanAccount(row)
}

func (as *AccountService) CreateAccount(ctx context.Context, customerId string, email string) (int, error) {
	stmt, err := as.db.PrepareContext(ctx, "INSERT INTO accounts (`stripe_customer_id`, `email`, `status`, `account_status`, `created_at`, `updated_at`) VALUES (?, ?, ?, ?, NOW(), NOW())")
	if err != nil {
		return 0, errors.Wrap(err, "preparing account insert")
	}
	defer stmt.Close()
	res, err := stmt.ExecContext(ctx, customerId, email, models.StatusPaymentReceived, models.AccountActive)
	if err != nil {
		return 0, errors.Wrap(err, "creating account")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "reading account insert id")
	}
	return int(id), nil
}

// SetPaymentReceived only advances a prospect; replays and out-of-order
// events leave a later status untouched.
func (as *AccountService) SetPaymentReceived(ctx context.Context, id int) error {
	_, err := as.db.ExecContext(ctx,
		"UPDATE accounts SET status = ?, updated_at = NOW() WHERE id = ? AND status = ?",
		models.StatusPaymentReceived, id, models.StatusProspect)
	return errors.Wrap(err, "marking payment received")
}

func (as *AccountService) BackfillCustomerId(ctx context.Context, id int, customerId string) error {
	_, err := as.db.ExecContext(ctx,
		"UPDATE accounts SET stripe_customer_id = ?, updated_at = NOW() WHERE id = ? AND stripe_customer_id IS NULL",
		customerId, id)
	return errors.Wrap(err, "backfilling stripe customer id")
}

func (as *AccountService) CompleteOnboarding(ctx context.Context, id int, profile *models.OnboardingProfile, completedAt time.Time) error {
	services, err := json.Marshal(profile.Services)
	if err != nil {
		return errors.Wrap(err, "encoding services")
	}
	availability, err := json.Marshal(profile.WeeklyAvailability)
	if err != nil {
		return errors.Wrap(err, "encoding weekly availability")
	}

	stmt, err := as.db.PrepareContext(ctx, "UPDATE accounts SET contact_name = ?, practice_name = ?, phone = ?, services = ?, weekly_availability = ?, weekly_capacity = ?, status = ?, onboarding_completed_at = ?, updated_at = NOW() WHERE id = ?")
	if err != nil {
		return errors.Wrap(err, "preparing onboarding update")
	}
	defer stmt.Close()
	_, err = stmt.ExecContext(ctx, profile.ContactName, profile.PracticeName, profile.Phone,
		services, availability, profile.WeeklyCapacity, models.StatusOnboarded, completedAt, id)
	return errors.Wrap(err, "completing onboarding")
}

// PauseBilling flips the billing hold only. Onboarding status is a separate
// column and is never written here.
func (as *AccountService) PauseBilling(ctx context.Context, customerId string) error {
	_, err := as.db.ExecContext(ctx,
		"UPDATE accounts SET account_status = ?, updated_at = NOW() WHERE stripe_customer_id = ?",
		models.AccountPaused, customerId)
	return errors.Wrap(err, "pausing account billing")
}

// CreditPatientPrepayment is a store-level increment, not read-modify-write,
// so concurrent confirmations cannot lose an update.
func (as *AccountService) CreditPatientPrepayment(ctx context.Context, id int, cents int64) error {
	_, err := as.db.ExecContext(ctx,
		"UPDATE accounts SET trial_budget_from_patients = trial_budget_from_patients + ?, updated_at = NOW() WHERE id = ?",
		cents, id)
	return errors.Wrap(err, "crediting patient prepayment")
}

func (as *AccountService) ListAwaitingOnboarding(ctx context.Context, remindedBefore time.Time) ([]models.Account, error) {
	rows, err := as.db.QueryContext(ctx,
		"SELECT id, email FROM accounts WHERE status = ? AND (reminder_sent_at IS NULL OR reminder_sent_at < ?)",
		models.StatusPaymentReceived, remindedBefore)
	if err != nil {
		return nil, errors.Wrap(err, "listing accounts awaiting onboarding")
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.Id, &a.Email); err != nil {
			return nil, errors.Wrap(err, "scanning reminder candidate")
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (as *AccountService) MarkReminderSent(ctx context.Context, id int, at time.Time) error {
	_, err := as.db.ExecContext(ctx,
		"UPDATE accounts SET reminder_sent_at = ? WHERE id = ?", at, id)
	return errors.Wrap(err, "marking reminder sent")
}
