package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caiomf/barbearia-api/internal/application/dto"
	"github.com/caiomf/barbearia-api/internal/application/estoque"
)

// ProdutoHandler atende as requisições HTTP de produtos e estoque.
type ProdutoHandler struct {
	uc *estoque.UseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *estoque.UseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Cadastrar godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CadastrarProdutoRequest  true  "Dados do produto (quantidade e mínimo como texto)"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Cadastrar(c *fiber.Ctx) error {
	var in dto.CadastrarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CadastrarProduto(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar produtos (categoria, nome) com flag de estoque baixo
// @Tags         produtos
// @Produce      json
// @Success      200  {object}  dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.ListarProdutos(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Buscar godoc
// @Summary      Filtrar produtos por substring do nome (snapshot em memória)
// @Tags         produtos
// @Produce      json
// @Param        termo  query  string  false  "Termo de busca"
// @Success      200    {object}  dto.ProdutoListResponse
// @Router       /api/produtos/busca [get]
func (h *ProdutoHandler) Buscar(c *fiber.Ctx) error {
	out, err := h.uc.FiltrarProdutos(c.Context(), c.Query("termo"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AtualizarPrecos godoc
// @Summary      Atualizar preços de custo e venda
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.AtualizarPrecosRequest  true  "Preços como texto"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/precos [put]
func (h *ProdutoHandler) AtualizarPrecos(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.AtualizarPrecosRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AtualizarPrecos(c.Context(), int64(id), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AjustarEstoque godoc
// @Summary      Ajustar estoque (delta com sinal; tipo opcional registra movimentação)
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.AjustarEstoqueRequest  true  "delta como texto; tipo ENTRADA ou SAIDA"
// @Success      200   {object}  dto.AjusteEstoqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/movimentacoes [post]
func (h *ProdutoHandler) AjustarEstoque(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.AjustarEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AjustarEstoque(c.Context(), int64(id), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Historico godoc
// @Summary      Histórico de movimentações do produto
// @Tags         produtos
// @Produce      json
// @Param        id  path  int  true  "ID do produto"
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/movimentacoes [get]
func (h *ProdutoHandler) Historico(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.HistoricoMovimentacoes(c.Context(), int64(id))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Excluir godoc
// @Summary      Excluir produto e todo o seu histórico de movimentações
// @Tags         produtos
// @Produce      json
// @Param        id  path  int  true  "ID do produto"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Excluir(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.ExcluirProduto(c.Context(), int64(id)); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
