package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/utils"
)

// ErrTokenInvalid covers expired, consumed and unknown tokens alike. The
// caller cannot distinguish them and should not be able to.
var ErrTokenInvalid = errors.New("token is invalid or expired")

type TokenRepository interface {
	Issue(ctx context.Context, accountId int, kind string, ttl time.Duration, appointmentId *int) (*models.AccessToken, error)
	Redeem(ctx context.Context, token string, kind string) (*models.AccessToken, error)
	FindActiveByAccount(ctx context.Context, accountId int, kind string) (*models.AccessToken, error)
	FindActiveByAppointment(ctx context.Context, appointmentId int, kind string) (*models.AccessToken, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type TokenService struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) TokenRepository {
	return NewTokenService(db)
}

func NewTokenService(db *sql.DB) *TokenService {
	return &TokenService{db: db}
}

func (ts *TokenService) Issue(ctx context.Context, accountId int, kind string, ttl time.Duration, appointmentId *int) (*models.AccessToken, error) {
	value, err := utils.CreateAccessToken()
	if err != nil {
		return nil, errors.Wrap(err, "generating token value")
	}

	expiresAt := time.Now().Add(ttl)
	var linked sql.NullInt64
	if appointmentId != nil {
		linked = sql.NullInt64{Int64: int64(*appointmentId), Valid: true}
	}

	stmt, err := ts.db.PrepareContext(ctx, "INSERT INTO access_tokens (`account_id`, `appointment_id`, `kind`, `token`, `expires_at`, `used`, `created_at`) VALUES (?, ?, ?, ?, ?, 0, NOW())")
	if err != nil {
		return nil, errors.Wrap(err, "preparing token insert")
	}
	defer stmt.Close()

	res, err := stmt.ExecContext(ctx, accountId, linked, kind, value, expiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "persisting token")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "reading token insert id")
	}

	return &models.AccessToken{
		Id:            int(id),
		AccountId:     accountId,
		AppointmentId: linked,
		Kind:          kind,
		Token:         value,
		ExpiresAt:     expiresAt,
	}, nil
}

// Redeem consumes a token with a single conditional statement so that two
// concurrent attempts on the same value produce exactly one winner. Expiry is
// re-checked inside the same statement; a sweep is never required for
// correctness.
func (ts *TokenService) Redeem(ctx context.Context, token string, kind string) (*models.AccessToken, error) {
	record, err := ts.findByToken(ctx, token, kind)
	if err != nil {
		return nil, err
	}

	var res sql.Result
	switch kind {
	case models.TokenKindReschedule:
		res, err = ts.db.ExecContext(ctx,
			"DELETE FROM access_tokens WHERE token = ? AND kind = ? AND expires_at > NOW()",
			token, kind)
	default:
		res, err = ts.db.ExecContext(ctx,
			"UPDATE access_tokens SET used = 1 WHERE token = ? AND kind = ? AND used = 0 AND expires_at > NOW()",
			token, kind)
	}
	if err != nil {
		return nil, errors.Wrap(err, "consuming token")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "reading rows affected")
	}
	if affected == 0 {
		// lost the race, already used, or expired between read and update
		return nil, ErrTokenInvalid
	}
	return record, nil
}

func (ts *TokenService) findByToken(ctx context.Context, token string, kind string) (*models.AccessToken, error) {
	row := ts.db.QueryRowContext(ctx,
		"SELECT id, account_id, appointment_id, kind, token, expires_at, used FROM access_tokens WHERE token = ? AND kind = ?",
		token, kind)

	var t models.AccessToken
	err := row.Scan(&t.Id, &t.AccountId, &t.AppointmentId, &t.Kind, &t.Token, &t.ExpiresAt, &t.Used)
	if err == sql.ErrNoRows {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning token row")
	}
	return &t, nil
}

func (ts *TokenService) FindActiveByAccount(ctx context.Context, accountId int, kind string) (*models.AccessToken, error) {
	row := ts.db.QueryRowContext(ctx,
		"SELECT id, account_id, appointment_id, kind, token, expires_at, used FROM access_tokens WHERE account_id = ? AND kind = ? AND used = 0 AND expires_at > NOW() ORDER BY id DESC LIMIT 1",
		accountId, kind)

	var t models.AccessToken
	err := row.Scan(&t.Id, &t.AccountId, &t.AppointmentId, &t.Kind, &t.Token, &t.ExpiresAt, &t.Used)
	if err == sql.ErrNoRows {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning token row")
	}
	return &t, nil
}

// FindActiveByAppointment resolves the token linked to one specific
// appointment. Overlapping bookings for the same practice each carry their own
// token; resolving by account alone could hand one patient another's link.
func (ts *TokenService) FindActiveByAppointment(ctx context.Context, appointmentId int, kind string) (*models.AccessToken, error) {
	row := ts.db.QueryRowContext(ctx,
		"SELECT id, account_id, appointment_id, kind, token, expires_at, used FROM access_tokens WHERE appointment_id = ? AND kind = ? AND used = 0 AND expires_at > NOW() ORDER BY id DESC LIMIT 1",
		appointmentId, kind)

	var t models.AccessToken
	err := row.Scan(&t.Id, &t.AccountId, &t.AppointmentId, &t.Kind, &t.Token, &t.ExpiresAt, &t.Used)
	if err == sql.ErrNoRows {
		return nil, ErrTokenInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "scanning token row")
	}
	return &t, nil
}

// SweepExpired is best-effort maintenance.
func (ts *TokenService) SweepExpired(ctx context.Context) (int64, error) {
	res, err := ts.db.ExecContext(ctx, "DELETE FROM access_tokens WHERE expires_at <= NOW()")
	if err != nil {
		return 0, errors.Wrap(err, "sweeping expired tokens")
	}
	return res.RowsAffected()
}
