package utils

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var db *sql.DB

type BillingParams struct {
	Data     map[string]string
	Provider string
}

func GetBillingParams() *BillingParams {
	provider := Config("PAYMENT_PROVIDER")
	if provider == "" {
		provider = "stripe"
	}
	data := make(map[string]string)
	data["stripe_key"] = Config("STRIPE_SECRET_KEY")
	data["braintree_api_key"] = Config("BRAINTREE_API_KEY")
	return &BillingParams{Provider: provider, Data: data}
}

func Config(key string) string {
	if os.Getenv("USE_DOTENV") != "off" {
		_ = godotenv.Load(".env")
	}
	return os.Getenv(key)
}

// ConfigInt parses an integer env var, falling back to def when it is unset
// or malformed.
func ConfigInt(key string, def int) int {
	raw := Config(key)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		logrus.Infof("variable %s is setup incorrectly. Please ensure that it is set to an integer. %s=%s setting value to %d", key, key, raw, def)
		return def
	}
	return val
}

func CreateDBConn() (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		Config("DB_USER"),
		Config("DB_PASS"),
		Config("DB_HOST"),
		Config("DB_NAME"))
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	conn.SetConnMaxLifetime(time.Minute * 3)
	conn.SetMaxOpenConns(10)
	return conn, nil
}

func GetDBConnection() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}
	var err error
	db, err = CreateDBConn()
	if err != nil {
		return nil, err
	}
	return db, nil
}

// CreateAccessToken generates an opaque 128-bit token string.
func CreateAccessToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func CreateInvoiceConfirmationNumber() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%08X", b), nil
}

// RetryPolicy bounds the polling loop that bridges the browser redirect
// racing the webhook.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 10, Interval: 500 * time.Millisecond}
}

// Run calls fn up to MaxAttempts times, sleeping Interval between attempts.
// fn returns done=true to stop early. The terminal state after the bound is
// exhausted is the last error, never an indefinite retry.
func (p RetryPolicy) Run(fn func() (done bool, err error)) error {
	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(p.Interval)
		}
		done, err := fn()
		if done {
			return err
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("retry budget of %d attempts exhausted", p.MaxAttempts)
	}
	return lastErr
}
