package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-account/internal/domain"
	"bank-account/internal/service"
)

func newTestHandler(t *testing.T, opening domain.Amount) *AccountHandler {
	t.Helper()
	account, err := domain.NewAccount(opening)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAccountHandler(service.NewAccountService(account, logger))
}

type accountEnvelope struct {
	Data  *AccountResponse `json:"data"`
	Error *Error           `json:"error"`
}

func serve(t *testing.T, fn http.HandlerFunc, method, body string) (int, accountEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	fn(rec, req)

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var env accountEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestGetAccount(t *testing.T) {
	h := newTestHandler(t, 120.50)

	code, env := serve(t, h.GetAccount, http.MethodGet, "")

	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Data)
	assert.Equal(t, h.accountService.ID().String(), env.Data.AccountID)
	assert.Equal(t, domain.Amount(120.5), env.Data.Balance)
}

func TestDepositHandler(t *testing.T) {
	h := newTestHandler(t, 100.0)

	code, env := serve(t, h.Deposit, http.MethodPost, `{"amount": 20.20}`)

	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Data)
	assert.Equal(t, domain.Amount(120.2), env.Data.Balance)
}

func TestDepositHandlerRejectsInvalidAmounts(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"integer", `{"amount": 20}`},
		{"string", `{"amount": "20.20"}`},
		{"negative", `{"amount": -20.20}`},
		{"missing", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, 50.5)

			code, env := serve(t, h.Deposit, http.MethodPost, tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "invalid_transaction", env.Error.Code)
			assert.Equal(t, "Invalid transaction: Deposit in Account with Invalid money amount not permitted.", env.Error.Message)
			assert.Equal(t, domain.Amount(50.5), h.accountService.Balance())
		})
	}
}

func TestDepositHandlerRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(t, 50.5)

	code, env := serve(t, h.Deposit, http.MethodPost, `{"amount":`)

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid_input", env.Error.Code)
	assert.NotEmpty(t, env.Error.Details)
}

func TestWithdrawHandler(t *testing.T) {
	h := newTestHandler(t, 120.50)

	code, env := serve(t, h.Withdraw, http.MethodPost, `{"amount": 120.50}`)

	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Data)
	assert.Equal(t, domain.Amount(0), env.Data.Balance)
}

func TestWithdrawHandlerInsufficientBalance(t *testing.T) {
	h := newTestHandler(t, 120.50)

	code, env := serve(t, h.Withdraw, http.MethodPost, `{"amount": 150.0}`)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid transaction: Withdraw amount more than of the available balance not permitted.", env.Error.Message)
	assert.Equal(t, domain.Amount(120.5), h.accountService.Balance())
}

func TestWithdrawHandlerRejectsIntegerAmount(t *testing.T) {
	h := newTestHandler(t, 120.50)

	code, env := serve(t, h.Withdraw, http.MethodPost, `{"amount": 5}`)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid transaction: Withdraw from Account with Invalid money amount not permitted.", env.Error.Message)
}

func TestDepositHandlerOverflowReportsInternalError(t *testing.T) {
	h := newTestHandler(t, math.MaxFloat64)

	code, env := serve(t, h.Deposit, http.MethodPost, `{"amount": 1.7976931348623157e308}`)

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "internal_error", env.Error.Code)
	assert.Equal(t, "failed to encode response", env.Error.Message)
	assert.NotEmpty(t, env.Error.Details)
	assert.True(t, math.IsInf(float64(h.accountService.Balance()), 1))
}

func TestGetAccountWithInfiniteBalance(t *testing.T) {
	h := newTestHandler(t, domain.Amount(math.Inf(1)))

	code, env := serve(t, h.GetAccount, http.MethodGet, "")

	assert.Equal(t, http.StatusInternalServerError, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "internal_error", env.Error.Code)
}
