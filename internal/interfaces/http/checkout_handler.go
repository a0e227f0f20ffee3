package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nutallis/nutallis-api/internal/application/checkout"
	"github.com/nutallis/nutallis-api/internal/application/dto"
	"github.com/nutallis/nutallis-api/internal/domain"
)

// CheckoutHandler fecha pedidos e serve o comprovante em PDF.
type CheckoutHandler struct {
	uc      *checkout.UseCase
	orderUC *checkout.OrderUseCase
}

// NewCheckoutHandler constrói o handler.
func NewCheckoutHandler(uc *checkout.UseCase, orderUC *checkout.OrderUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, orderUC: orderUC}
}

// Checkout godoc
// @Summary      Fechar pedido
// @Description  Cobra o gateway pelo total do carrinho e, aprovado, persiste o pedido, baixa o estoque e esvazia o carrinho.
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "payment_method: pix | credit_card | debit_card"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Checkout(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "método de pagamento inválido"})
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "o carrinho está vazio"})
		case errors.Is(err, domain.ErrPaymentRejected):
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "PAYMENT_REJECTED", Message: "pagamento recusado pelo gateway"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente para uma das linhas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Receipt godoc
// @Summary      Comprovante do pedido em PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := h.orderUC.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if order == nil || !canSeeOrder(c, order.UserID) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido não encontrado"})
	}
	pdf, err := h.uc.ReceiptPDF(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="comprovante-`+id+`.pdf"`)
	return c.Send(pdf)
}

// canSeeOrder: o dono vê o próprio pedido; admin vê todos.
func canSeeOrder(c *fiber.Ctx, ownerID string) bool {
	return GetUserID(c) == ownerID || GetRole(c) == "admin"
}
