package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cafeteria-api/internal/api/handler/v1/request"
	"cafeteria-api/internal/api/handler/v1/response"
	"cafeteria-api/internal/domain"
	"cafeteria-api/internal/service"
)

type MenuService interface {
	ScheduleMenu(ctx context.Context, draft domain.MenuDraft) (domain.Menu, error)
	ActivateMenu(ctx context.Context, id uint) (domain.Menu, error)
	ReuseMenu(ctx context.Context, id uint) (domain.MenuDraft, error)
	GetMenu(ctx context.Context, id uint) (domain.Menu, error)
	GetMenus(ctx context.Context) ([]domain.Menu, error)
	GetScheduledMenus(ctx context.Context) ([]domain.Menu, error)
	GetActiveMenu(ctx context.Context) (domain.Menu, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
}

type MenuHandler struct {
	svc MenuService
}

func NewMenuHandler(svc MenuService) *MenuHandler {
	return &MenuHandler{
		svc: svc,
	}
}

// HandleScheduleMenu godoc
// @Summary      Schedule a daily menu
// @Description  Persists a new menu with status "scheduled" from the submitted items, launch date and launch time.
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        input  body      request.ScheduleMenuRequest  true  "Menu draft"
// @Success      201    {object}  domain.Menu
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /menus [post]
// @Security     BearerAuth
func (h *MenuHandler) HandleScheduleMenu(ctx *gin.Context) {
	var input request.ScheduleMenuRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	draft, err := buildDraft(input)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	menu, err := h.svc.ScheduleMenu(ctx.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMenu) || errors.Is(err, service.ErrMissingLaunchTime) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleScheduleMenu -> h.svc.ScheduleMenu -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, menu)
}

// buildDraft assembles a MenuDraft from the request through the draft's own
// validate+apply path, and combines date and time into the launch timestamp.
func buildDraft(input request.ScheduleMenuRequest) (domain.MenuDraft, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return domain.MenuDraft{}, fmt.Errorf("invalid date: %w", err)
	}

	clock, err := time.Parse("15:04", input.LaunchTime)
	if err != nil {
		return domain.MenuDraft{}, fmt.Errorf("invalid launch time: %w", err)
	}

	draft := domain.MenuDraft{
		Date: date,
		LaunchTime: time.Date(date.Year(), date.Month(), date.Day(),
			clock.Hour(), clock.Minute(), 0, 0, time.Local),
	}

	for _, item := range input.Items {
		err = draft.Submit(domain.Creating(), domain.MenuItem{
			Name:        item.Name,
			Price:       *item.Price,
			Description: item.Description,
			Quantity:    *item.Quantity,
		})
		if err != nil {
			return domain.MenuDraft{}, err
		}
	}

	return draft, nil
}

// HandleGetMenus godoc
// @Summary      List all menus
// @Tags         menus
// @Produce      json
// @Success      200  {array}   domain.Menu
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /menus [get]
// @Security     BearerAuth
func (h *MenuHandler) HandleGetMenus(ctx *gin.Context) {
	menus, err := h.svc.GetMenus(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMenus -> h.svc.GetMenus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, menus)
}

// HandleGetActiveMenu godoc
// @Summary      Get the menu currently open for ordering
// @Description  Several menus can be active at once; the most recently activated one wins.
// @Tags         menus
// @Produce      json
// @Success      200  {object}  domain.Menu
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /menus/active [get]
// @Security     BearerAuth
func (h *MenuHandler) HandleGetActiveMenu(ctx *gin.Context) {
	menu, err := h.svc.GetActiveMenu(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("menu", "status", "active"))
			return
		}

		err = fmt.Errorf("v1.HandleGetActiveMenu -> h.svc.GetActiveMenu -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, menu)
}

// HandleActivateMenu godoc
// @Summary      Activate a scheduled menu
// @Tags         menus
// @Produce      json
// @Param        menuID  path      int  true  "Menu ID"
// @Success      200     {object}  domain.Menu
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /menus/{menuID}/activate [post]
// @Security     BearerAuth
func (h *MenuHandler) HandleActivateMenu(ctx *gin.Context) {
	menuID, err := strconv.ParseUint(ctx.Param("menuID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid menu ID: %w", err)))
		return
	}

	menu, err := h.svc.ActivateMenu(ctx.Request.Context(), uint(menuID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuNotFound):
			response.RenderErr(ctx, response.ErrNotFound("menu", "ID", menuID))
		case errors.Is(err, service.ErrMenuNotScheduled):
			response.RenderErr(ctx, response.ErrConflict(service.ErrMenuNotScheduled))
		default:
			err = fmt.Errorf("v1.HandleActivateMenu -> h.svc.ActivateMenu -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, menu)
}

// HandleReuseMenu godoc
// @Summary      Copy a previous menu into a fresh draft
// @Tags         menus
// @Produce      json
// @Param        menuID  path      int  true  "Menu ID"
// @Success      200     {object}  domain.MenuDraft
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /menus/{menuID}/reuse [get]
// @Security     BearerAuth
func (h *MenuHandler) HandleReuseMenu(ctx *gin.Context) {
	menuID, err := strconv.ParseUint(ctx.Param("menuID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid menu ID: %w", err)))
		return
	}

	draft, err := h.svc.ReuseMenu(ctx.Request.Context(), uint(menuID))
	if err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("menu", "ID", menuID))
			return
		}

		err = fmt.Errorf("v1.HandleReuseMenu -> h.svc.ReuseMenu -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, draft)
}

// HandleListMenuItems godoc
// @Summary      List every distinct item seen across historical menus
// @Description  First occurrence wins on name collision; used to pre-fill the admin form.
// @Tags         menus
// @Produce      json
// @Success      200  {array}   domain.MenuItem
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items [get]
// @Security     BearerAuth
func (h *MenuHandler) HandleListMenuItems(ctx *gin.Context) {
	items, err := h.svc.ListMenuItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListMenuItems -> h.svc.ListMenuItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}
