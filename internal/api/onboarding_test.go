package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/paivaedu632/dental-sub001/internal/account"
	"github.com/paivaedu632/dental-sub001/mocks"
	"github.com/paivaedu632/dental-sub001/models"
	"github.com/paivaedu632/dental-sub001/repository"
	"github.com/paivaedu632/dental-sub001/utils"
)

func testPollPolicy() utils.RetryPolicy {
	return utils.RetryPolicy{MaxAttempts: 3, Interval: time.Millisecond}
}

func onboardingBody(t *testing.T, req OnboardingRequest) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(req)
	assert.NoError(t, err)
	return bytes.NewReader(body)
}

func validOnboardingRequest() OnboardingRequest {
	return OnboardingRequest{
		Token:              "tok123",
		ContactName:        "Dr. Ana",
		PracticeName:       "Acme Dental",
		Phone:              "+5511999990000",
		Services:           []string{"cleaning", "whitening"},
		WeeklyAvailability: map[string]string{"mon": "09:00-18:00"},
		WeeklyCapacity:     12,
	}
}

func TestCompleteOnboarding(t *testing.T) {
	t.Parallel()

	t.Run("Should consume the token and persist the profile", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		tokens := mocks.NewTokenRepository(t)

		tokens.EXPECT().Redeem(mock.Anything, "tok123", models.TokenKindOnboarding).
			Return(&models.AccessToken{AccountId: 7, Kind: models.TokenKindOnboarding}, nil)
		accounts.EXPECT().CompleteOnboarding(mock.Anything, 7, mock.MatchedBy(func(profile *models.OnboardingProfile) bool {
			return profile.PracticeName == "Acme Dental" && profile.WeeklyCapacity == 12
		}), mock.Anything).Return(nil)

		handler := NewOnboardingHandler(accounts, tokens, account.NewService(accounts), testPollPolicy())
		rec := httptest.NewRecorder()
		handler.CompleteOnboarding(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding", onboardingBody(t, validOnboardingRequest())))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("Should reject a reused token", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		tokens := mocks.NewTokenRepository(t)
		tokens.EXPECT().Redeem(mock.Anything, "tok123", models.TokenKindOnboarding).
			Return(nil, repository.ErrTokenInvalid)

		handler := NewOnboardingHandler(accounts, tokens, account.NewService(accounts), testPollPolicy())
		rec := httptest.NewRecorder()
		handler.CompleteOnboarding(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding", onboardingBody(t, validOnboardingRequest())))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_token", resp.Error)
	})

	t.Run("Should reject a token belonging to another account", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		tokens := mocks.NewTokenRepository(t)
		tokens.EXPECT().Redeem(mock.Anything, "tok123", models.TokenKindOnboarding).
			Return(&models.AccessToken{AccountId: 7}, nil)

		req := validOnboardingRequest()
		req.DentistId = 99

		handler := NewOnboardingHandler(accounts, tokens, account.NewService(accounts), testPollPolicy())
		rec := httptest.NewRecorder()
		handler.CompleteOnboarding(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding", onboardingBody(t, req)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Should return a validation error for an incomplete profile", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		tokens := mocks.NewTokenRepository(t)
		tokens.EXPECT().Redeem(mock.Anything, "tok123", models.TokenKindOnboarding).
			Return(&models.AccessToken{AccountId: 7}, nil)

		req := validOnboardingRequest()
		req.Services = nil

		handler := NewOnboardingHandler(accounts, tokens, account.NewService(accounts), testPollPolicy())
		rec := httptest.NewRecorder()
		handler.CompleteOnboarding(rec, httptest.NewRequest(http.MethodPost, "/api/onboarding", onboardingBody(t, req)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
	})
}

func TestStartOnboarding(t *testing.T) {
	t.Parallel()

	t.Run("Should return the active token once the account appears", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		tokens := mocks.NewTokenRepository(t)

		calls := 0
		accounts.EXPECT().GetAccountByEmail(mock.Anything, "dr@acme.com").
			RunAndReturn(func(ctx context.Context, email string) (*models.Account, error) {
				calls++
				if calls < 2 {
					return nil, repository.ErrAccountNotFound
				}
				return &models.Account{Id: 7}, nil
			})
		tokens.EXPECT().FindActiveByAccount(mock.Anything, 7, models.TokenKindOnboarding).
			Return(&models.AccessToken{Token: "abc123"}, nil)

		handler := NewOnboardingHandler(accounts, tokens, account.NewService(accounts), testPollPolicy())
		rec := httptest.NewRecorder()
		handler.StartOnboarding(rec, httptest.NewRequest(http.MethodGet, "/api/onboarding/start?email=dr%40acme.com", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp OnboardingStartResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 7, resp.AccountId)
		assert.Equal(t, "abc123", resp.Token)
	})

	t.Run("Should give up after the retry budget is spent", func(t *testing.T) {
		t.Parallel()

		accounts := mocks.NewAccountRepository(t)
		tokens := mocks.NewTokenRepository(t)
		accounts.EXPECT().GetAccountByEmail(mock.Anything, "dr@acme.com").
			Return(nil, repository.ErrAccountNotFound).Times(3)

		handler := NewOnboardingHandler(accounts, tokens, account.NewService(accounts), testPollPolicy())
		rec := httptest.NewRecorder()
		handler.StartOnboarding(rec, httptest.NewRequest(http.MethodGet, "/api/onboarding/start?email=dr%40acme.com", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "setup_error", resp.Error)
	})

	t.Run("Should require an email", func(t *testing.T) {
		t.Parallel()

		handler := NewOnboardingHandler(mocks.NewAccountRepository(t), mocks.NewTokenRepository(t), account.NewService(mocks.NewAccountRepository(t)), testPollPolicy())
		rec := httptest.NewRecorder()
		handler.StartOnboarding(rec, httptest.NewRequest(http.MethodGet, "/api/onboarding/start", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
