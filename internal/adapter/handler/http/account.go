package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/shopcredit/creditledger/internal/core/domain"
	"github.com/shopcredit/creditledger/internal/core/port"
	"go.uber.org/zap"
)

type AccountHandler struct {
	Handler
	service port.Service
}

func NewAccountHandler(service port.Service, logger *zap.Logger) (*AccountHandler, error) {
	return &AccountHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func accountID(ctx *gin.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}

type createAccountRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	Verified    bool    `json:"verified"`
	CreditLimit float64 `json:"credit_limit"`
	Risk        string  `json:"risk_category"`
}

type accountResponse struct {
	ID              uint64          `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	Verified        bool            `json:"verified"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	RiskCategory    string          `json:"risk_category"`
}

func newAccountResponse(account *domain.Account) accountResponse {
	return accountResponse{
		ID:              account.ID,
		Name:            account.Name,
		Phone:           account.Phone,
		Verified:        account.Verified,
		CreditLimit:     account.CreditLimit,
		Outstanding:     account.Outstanding,
		AvailableCredit: account.AvailableCredit(),
		RiskCategory:    string(account.RiskCategory),
	}
}

func (ah *AccountHandler) CreateAccount(ctx *gin.Context) {
	req := createAccountRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	limit, err := decimal.NewFromFloat64(req.CreditLimit)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	account := &domain.Account{
		Name:         req.Name,
		Phone:        req.Phone,
		Verified:     req.Verified,
		CreditLimit:  limit,
		RiskCategory: domain.RiskCategory(req.Risk),
	}

	created, err := ah.service.CreateAccount(ctx, account)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccessWithStatus(ctx, newAccountResponse(created), http.StatusCreated)
}

func (ah *AccountHandler) GetAccount(ctx *gin.Context) {
	id, err := accountID(ctx)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	account, err := ah.service.GetAccount(ctx, id)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newAccountResponse(account))
}

type updateProfileRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	Verified    bool    `json:"verified"`
	CreditLimit float64 `json:"credit_limit"`
	Risk        string  `json:"risk_category" binding:"omitempty,oneof=low medium high"`
}

// UpdateProfile writes the externally owned fields: verification,
// credit limit and risk category.
func (ah *AccountHandler) UpdateProfile(ctx *gin.Context) {
	id, err := accountID(ctx)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	req := updateProfileRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	limit, err := decimal.NewFromFloat64(req.CreditLimit)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	account := &domain.Account{
		ID:           id,
		Name:         req.Name,
		Phone:        req.Phone,
		Verified:     req.Verified,
		CreditLimit:  limit,
		RiskCategory: domain.RiskCategory(req.Risk),
	}

	updated, err := ah.service.UpdateAccountProfile(ctx, account)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, newAccountResponse(updated))
}

func (ah *AccountHandler) AvailableCredit(ctx *gin.Context) {
	id, err := accountID(ctx)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	available, err := ah.service.AvailableCredit(ctx, id)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, gin.H{"available_credit": available})
}

type ledgerEntryResponse struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	OrderNumber       *string         `json:"order_number,omitempty"`
	InstallmentNumber *int            `json:"installment_number,omitempty"`
	Description       string          `json:"description"`
	BalanceAfter      decimal.Decimal `json:"balance_after"`
	CreatedAt         time.Time       `json:"created_at"`
}

func newLedgerEntryResponse(entry *domain.LedgerEntry) ledgerEntryResponse {
	resp := ledgerEntryResponse{
		ID:           entry.ID.String(),
		Type:         string(entry.Type),
		Amount:       entry.Amount,
		Description:  entry.Description,
		BalanceAfter: entry.BalanceAfter,
		CreatedAt:    entry.CreatedAt,
	}
	if entry.OrderNumber != nil {
		number := string(*entry.OrderNumber)
		resp.OrderNumber = &number
	}
	resp.InstallmentNumber = entry.InstallmentNumber
	return resp
}

func (ah *AccountHandler) Statement(ctx *gin.Context) {
	id, err := accountID(ctx)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	entries, err := ah.service.AccountStatement(ctx, id)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]ledgerEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, newLedgerEntryResponse(entry))
	}

	ah.handleSuccess(ctx, result)
}

func (ah *AccountHandler) OverdueInstallments(ctx *gin.Context) {
	id, err := accountID(ctx)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	list, err := ah.service.OverdueInstallments(ctx, id)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	result := make([]installmentResponse, 0, len(list))
	for _, inst := range list {
		result = append(result, newInstallmentResponse(inst))
	}

	ah.handleSuccess(ctx, result)
}

type suggestLimitRequest struct {
	SuggestedLimit float64 `json:"suggested_limit" binding:"required"`
	Note           string  `json:"note"`
}

type suggestionResponse struct {
	AccountID      uint64          `json:"account_id"`
	SuggestedLimit decimal.Decimal `json:"suggested_limit"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (ah *AccountHandler) SuggestCreditLimit(ctx *gin.Context) {
	id, err := accountID(ctx)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	req := suggestLimitRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	limit, err := decimal.NewFromFloat64(req.SuggestedLimit)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	suggestion, err := ah.service.SuggestCreditLimit(ctx, id, limit, req.Note)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccessWithStatus(ctx, suggestionResponse{
		AccountID:      suggestion.AccountID,
		SuggestedLimit: suggestion.SuggestedLimit,
		Note:           suggestion.Note,
		CreatedAt:      suggestion.CreatedAt,
	}, http.StatusCreated)
}

func (ah *AccountHandler) CurrentCreditSuggestion(ctx *gin.Context) {
	id, err := accountID(ctx)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	suggestion, err := ah.service.CurrentCreditSuggestion(ctx, id)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	ah.handleSuccess(ctx, suggestionResponse{
		AccountID:      suggestion.AccountID,
		SuggestedLimit: suggestion.SuggestedLimit,
		Note:           suggestion.Note,
		CreatedAt:      suggestion.CreatedAt,
	})
}
