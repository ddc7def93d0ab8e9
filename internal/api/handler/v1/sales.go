package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafeteria-api/internal/api/handler/v1/request"
	"cafeteria-api/internal/api/handler/v1/response"
	"cafeteria-api/internal/domain"
)

type SalesService interface {
	RecordOfflineSale(ctx context.Context, sale domain.OfflineSale) (domain.OfflineSale, error)
	TodaysOnlineSales(ctx context.Context) ([]domain.SalesRecord, map[string]int, error)
	Analytics(ctx context.Context) (domain.SalesAnalytics, error)
}

type SalesHandler struct {
	svc SalesService
}

func NewSalesHandler(svc SalesService) *SalesHandler {
	return &SalesHandler{
		svc: svc,
	}
}

// HandleRecordOfflineSale godoc
// @Summary      Record a counter sale
// @Description  Appends one offline_sales entry and its mirror in the sales ledger.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        input  body      request.OfflineSaleRequest  true  "Offline sale"
// @Success      201    {object}  domain.OfflineSale
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /sales/offline [post]
// @Security     BearerAuth
func (h *SalesHandler) HandleRecordOfflineSale(ctx *gin.Context) {
	var input request.OfflineSaleRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sale, err := h.svc.RecordOfflineSale(ctx.Request.Context(), domain.OfflineSale{
		MealName:    input.MealName,
		Quantity:    input.Quantity,
		Amount:      *input.Amount,
		PaymentType: input.PaymentType,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleRecordOfflineSale -> h.svc.RecordOfflineSale -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// HandleTodaysSales godoc
// @Summary      Today's online orders with per-meal totals
// @Tags         sales
// @Produce      json
// @Success      200  {object}  response.TodaysSalesResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sales/today [get]
// @Security     BearerAuth
func (h *SalesHandler) HandleTodaysSales(ctx *gin.Context) {
	orders, totals, err := h.svc.TodaysOnlineSales(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleTodaysSales -> h.svc.TodaysOnlineSales -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.TodaysSalesResponse{
		Orders: orders,
		Totals: totals,
	})
}

// HandleAnalytics godoc
// @Summary      Daily sales totals and next-day forecast per source
// @Tags         sales
// @Produce      json
// @Success      200  {object}  domain.SalesAnalytics
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sales/analytics [get]
// @Security     BearerAuth
func (h *SalesHandler) HandleAnalytics(ctx *gin.Context) {
	analytics, err := h.svc.Analytics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleAnalytics -> h.svc.Analytics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, analytics)
}
