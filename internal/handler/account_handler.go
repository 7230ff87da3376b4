package handler

import (
	"encoding/json"
	"net/http"

	"bank-account/internal/domain"
	"bank-account/internal/errors"
	"bank-account/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// AmountRequest keeps the raw JSON value so the amount's type can be checked.
type AmountRequest struct {
	Amount interface{} `json:"amount"`
}

type AccountResponse struct {
	AccountID string        `json:"account_id"`
	Balance   domain.Amount `json:"balance"`
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.response(h.accountService.Balance()))
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	req, appErr := decodeAmountRequest(r)
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	balance, err := h.accountService.Deposit(req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.response(balance))
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	req, appErr := decodeAmountRequest(r)
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	balance, err := h.accountService.Withdraw(req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.response(balance))
}

func (h *AccountHandler) response(balance domain.Amount) AccountResponse {
	return AccountResponse{
		AccountID: h.accountService.ID().String(),
		Balance:   balance,
	}
}

func decodeAmountRequest(r *http.Request) (*AmountRequest, *errors.AppError) {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var req AmountRequest
	if err := decoder.Decode(&req); err != nil {
		return nil, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error())
	}
	return &req, nil
}
