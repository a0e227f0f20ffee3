package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/nutallis/nutallis-api/internal/application/analytics"
	"github.com/nutallis/nutallis-api/internal/application/dto"
)

// DashboardHandler endpoints do painel admin.
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	reorder *appanalytics.ReorderUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, reorder *appanalytics.ReorderUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reorder: reorder}
}

// GetSummary godoc
// @Summary      Resumo do painel
// @Description  Caixinhas financeiras e produtos em alerta de ponto de pedido.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// ReorderSignals godoc
// @Summary      Sinais de reposição
// @Description  Ponto de pedido recomendado e efetivo por produto ativo, com flag de estoque baixo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReorderSignalDTO
// @Router       /api/admin/reorder-signals [get]
func (h *DashboardHandler) ReorderSignals(c *fiber.Ctx) error {
	signals, err := h.reorder.Signals(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(signals)
}
