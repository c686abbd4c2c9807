package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caiomf/barbearia-api/internal/application/dto"
	"github.com/caiomf/barbearia-api/internal/application/servicos"
)

// ServicoHandler atende as requisições HTTP de serviços prestados.
type ServicoHandler struct {
	uc *servicos.UseCase
}

// NewServicoHandler constrói o handler.
func NewServicoHandler(uc *servicos.UseCase) *ServicoHandler {
	return &ServicoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar serviço prestado
// @Tags         servicos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarServicoRequest  true  "serviço, valor (texto) e barbeiro"
// @Success      201   {object}  dto.ServicoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/servicos [post]
func (h *ServicoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarServicoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Tabela godoc
// @Summary      Tabela fixa de preços e equipe
// @Tags         servicos
// @Produce      json
// @Success      200  {object}  dto.TabelaPrecosResponse
// @Router       /api/servicos/tabela [get]
func (h *ServicoHandler) Tabela(c *fiber.Ctx) error {
	return c.JSON(h.uc.TabelaPrecos())
}
