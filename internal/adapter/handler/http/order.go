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

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func orderNumber(ctx *gin.Context) domain.OrderNumber {
	return domain.OrderNumber(ctx.Param("number"))
}

type orderItemRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

type createOrderRequest struct {
	AccountID        uint64             `json:"account_id" binding:"required"`
	CounterpartyID   uint64             `json:"counterparty_id" binding:"required"`
	InstallmentCount int                `json:"installment_count"`
	Items            []orderItemRequest `json:"items" binding:"required"`
}

type orderItemResponse struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type orderResponse struct {
	Number           string              `json:"number"`
	AccountID        uint64              `json:"account_id"`
	CounterpartyID   uint64              `json:"counterparty_id"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	InstallmentCount int                 `json:"installment_count"`
	Status           string              `json:"status"`
	OrderDate        time.Time           `json:"order_date"`
	DueDate          time.Time           `json:"due_date"`
	ApprovalDate     *time.Time          `json:"approval_date,omitempty"`
	DeliveryDate     *time.Time          `json:"delivery_date,omitempty"`
	Items            []orderItemResponse `json:"items,omitempty"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	resp := orderResponse{
		Number:           string(order.Number),
		AccountID:        order.AccountID,
		CounterpartyID:   order.CounterpartyID,
		TotalAmount:      order.TotalAmount,
		InstallmentCount: order.InstallmentCount,
		Status:           string(order.Status),
		OrderDate:        order.OrderDate,
		DueDate:          order.DueDate,
		ApprovalDate:     order.ApprovalDate,
		DeliveryDate:     order.DeliveryDate,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return resp
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		price, err := decimal.NewFromFloat64(item.UnitPrice)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		items = append(items, domain.OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   price,
		})
	}

	order, err := oh.service.CreateOrder(ctx, req.AccountID, req.CounterpartyID, items, req.InstallmentCount)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	order, err := oh.service.GetOrder(ctx, orderNumber(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrdersByAccount(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	list, err := oh.service.ListOrdersByAccount(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}
	oh.handleSuccess(ctx, result)
}

// ListOrdersByStatus serves reporting queries like "all approved
// orders". The status is passed uppercase, matching the stored enum.
func (oh *OrderHandler) ListOrdersByStatus(ctx *gin.Context) {
	status := domain.OrderStatus(ctx.Query("status"))
	if status == "" {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	list, err := oh.service.ListOrdersByStatus(ctx, status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}
	oh.handleSuccess(ctx, result)
}

type installmentResponse struct {
	OrderNumber string          `json:"order_number"`
	Number      int             `json:"number"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Paid        bool            `json:"paid"`
	PaidDate    *time.Time      `json:"paid_date,omitempty"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Late        bool            `json:"late"`
	Reference   string          `json:"reference,omitempty"`
}

func newInstallmentResponse(inst *domain.Installment) installmentResponse {
	return installmentResponse{
		OrderNumber: string(inst.OrderNumber),
		Number:      inst.Number,
		Amount:      inst.Amount,
		DueDate:     inst.DueDate,
		Paid:        inst.Paid,
		PaidDate:    inst.PaidDate,
		AmountPaid:  inst.AmountPaid,
		Late:        inst.Late,
		Reference:   inst.Reference,
	}
}

// ApproveOrder extends the credit: schedule, ledger entry and balance
// commit atomically in the service.
func (oh *OrderHandler) ApproveOrder(ctx *gin.Context) {
	schedule, err := oh.service.ApproveOrder(ctx, orderNumber(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]installmentResponse, 0, len(schedule))
	for _, inst := range schedule {
		result = append(result, newInstallmentResponse(inst))
	}
	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) DispatchOrder(ctx *gin.Context) {
	order, err := oh.service.DispatchOrder(ctx, orderNumber(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) DeliverOrder(ctx *gin.Context) {
	order, err := oh.service.DeliverOrder(ctx, orderNumber(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, newOrderResponse(order))
}

type cancelOrderRequest struct {
	Admin bool `json:"admin"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	req := cancelOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil && err.Error() != "EOF" {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.CancelOrder(ctx, orderNumber(ctx), req.Admin); err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (oh *OrderHandler) PendingInstallments(ctx *gin.Context) {
	list, err := oh.service.PendingInstallments(ctx, orderNumber(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]installmentResponse, 0, len(list))
	for _, inst := range list {
		result = append(result, newInstallmentResponse(inst))
	}
	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) OrderInDefault(ctx *gin.Context) {
	inDefault, err := oh.service.OrderInDefault(ctx, orderNumber(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	oh.handleSuccess(ctx, gin.H{"in_default": inDefault})
}

type recordPaymentRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Reference string  `json:"reference"`
}

func (oh *OrderHandler) RecordPayment(ctx *gin.Context) {
	installment, err := strconv.Atoi(ctx.Param("installment"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := recordPaymentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	entry, err := oh.service.RecordPayment(ctx, orderNumber(ctx), installment, amount, req.Reference)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newLedgerEntryResponse(entry), http.StatusCreated)
}
