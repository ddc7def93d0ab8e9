package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cafeteria-api/internal/api/handler/v1/request"
	"cafeteria-api/internal/api/handler/v1/response"
	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/service"
)

type BookingService interface {
	BookMeal(ctx context.Context, menuID uint, mealName string, userID uint) (domain.MealToken, error)
	GetUserTokens(ctx context.Context, userID uint) ([]domain.MealToken, error)
	GetMenuTokens(ctx context.Context, menuID uint) ([]domain.MealToken, error)
}

type BookingHandler struct {
	svc  BookingService
	uSvc UserService
}

func NewBookingHandler(svc BookingService, uSvc UserService) *BookingHandler {
	return &BookingHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleBookMeal godoc
// @Summary      Book one unit of a meal from an active menu
// @Description  Decrements the item's remaining quantity and issues the next token for (meal, menu).
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        input  body      request.BookMealRequest  true  "Booking"
// @Success      201    {object}  domain.MealToken
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /bookings [post]
// @Security     BearerAuth
func (h *BookingHandler) HandleBookMeal(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.BookMealRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	token, err := h.svc.BookMeal(ctx.Request.Context(), input.MenuID, input.MealName, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuNotFound):
			response.RenderErr(ctx, response.ErrNotFound("menu", "ID", input.MenuID))
		case errors.Is(err, service.ErrMealNotFound):
			response.RenderErr(ctx, response.ErrNotFound("meal", "name", input.MealName))
		case errors.Is(err, service.ErrMenuNotActive):
			response.RenderErr(ctx, response.ErrConflict(service.ErrMenuNotActive))
		case errors.Is(err, service.ErrMealSoldOut):
			response.RenderErr(ctx, response.ErrConflict(service.ErrMealSoldOut))
		default:
			err = fmt.Errorf("v1.HandleBookMeal -> h.svc.BookMeal -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, token)
}

// HandleGetMyTokens godoc
// @Summary      List the caller's meal tokens
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.MealToken
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bookings [get]
// @Security     BearerAuth
func (h *BookingHandler) HandleGetMyTokens(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tokens, err := h.svc.GetUserTokens(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyTokens -> h.svc.GetUserTokens -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tokens)
}

// HandleGetMenuTokens godoc
// @Summary      List every token issued against a menu
// @Tags         bookings
// @Produce      json
// @Param        menuID  path      int  true  "Menu ID"
// @Success      200     {array}   domain.MealToken
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /menus/{menuID}/tokens [get]
// @Security     BearerAuth
func (h *BookingHandler) HandleGetMenuTokens(ctx *gin.Context) {
	menuID, err := strconv.ParseUint(ctx.Param("menuID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid menu ID: %w", err)))
		return
	}

	tokens, err := h.svc.GetMenuTokens(ctx.Request.Context(), uint(menuID))
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMenuTokens -> h.svc.GetMenuTokens -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tokens)
}
