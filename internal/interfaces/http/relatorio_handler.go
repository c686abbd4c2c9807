package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/caiomf/barbearia-api/internal/application/dto"
	"github.com/caiomf/barbearia-api/internal/application/relatorio"
	"github.com/caiomf/barbearia-api/internal/infrastructure/pdf"
)

// RelatorioHandler atende as requisições HTTP de relatórios.
type RelatorioHandler struct {
	uc  *relatorio.UseCase
	pdf *pdf.FechamentoPDFGenerator
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *relatorio.UseCase, gen *pdf.FechamentoPDFGenerator) *RelatorioHandler {
	return &RelatorioHandler{uc: uc, pdf: gen}
}

// periodoDaQuery resolve o período da requisição: preset (periodo=) tem
// prioridade; senão usa de=/ate= como vieram (vazios = sem filtro).
func periodoDaQuery(c *fiber.Ctx) (inicio, fim string, err error) {
	if preset := c.Query("periodo"); preset != "" {
		return relatorio.ResolverPeriodo(preset, time.Now())
	}
	return c.Query("de"), c.Query("ate"), nil
}

// Servicos godoc
// @Summary      Resumo de serviços por (serviço, barbeiro)
// @Tags         relatorios
// @Produce      json
// @Param        de       query  string  false  "Data inicial AAAA-MM-DD"
// @Param        ate      query  string  false  "Data final AAAA-MM-DD"
// @Param        periodo  query  string  false  "Preset: hoje, ontem, mes_atual, mes_anterior, ultimos_30_dias"
// @Success      200  {object}  dto.ResumoServicosDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/servicos [get]
func (h *RelatorioHandler) Servicos(c *fiber.Ctx) error {
	inicio, fim, err := periodoDaQuery(c)
	if err != nil {
		return responderErro(c, err)
	}
	out, err := h.uc.ResumoServicos(c.Context(), inicio, fim)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Caixa godoc
// @Summary      Resumo de caixa por produto (entradas, saídas, compras, vendas, lucro)
// @Tags         relatorios
// @Produce      json
// @Param        de          query  string  false  "Data inicial AAAA-MM-DD"
// @Param        ate         query  string  false  "Data final AAAA-MM-DD"
// @Param        periodo     query  string  false  "Preset de período"
// @Param        produto_id  query  int     false  "Restringir a um produto"
// @Success      200  {object}  dto.ResumoCaixaDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/caixa [get]
func (h *RelatorioHandler) Caixa(c *fiber.Ctx) error {
	inicio, fim, err := periodoDaQuery(c)
	if err != nil {
		return responderErro(c, err)
	}
	produtoID := int64(c.QueryInt("produto_id", 0))
	out, err := h.uc.ResumoCaixa(c.Context(), inicio, fim, produtoID)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Fechamento godoc
// @Summary      Fechamento de caixa combinado (produtos + serviços + totais)
// @Tags         relatorios
// @Produce      json
// @Param        de       query  string  false  "Data inicial AAAA-MM-DD"
// @Param        ate      query  string  false  "Data final AAAA-MM-DD"
// @Param        periodo  query  string  false  "Preset de período"
// @Success      200  {object}  dto.FechamentoDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/fechamento [get]
func (h *RelatorioHandler) Fechamento(c *fiber.Ctx) error {
	inicio, fim, err := periodoDaQuery(c)
	if err != nil {
		return responderErro(c, err)
	}
	out, err := h.uc.Fechamento(c.Context(), inicio, fim)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// FechamentoPDF godoc
// @Summary      Fechamento de caixa em PDF
// @Tags         relatorios
// @Produce      application/pdf
// @Param        de       query  string  false  "Data inicial AAAA-MM-DD"
// @Param        ate      query  string  false  "Data final AAAA-MM-DD"
// @Param        periodo  query  string  false  "Preset de período"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/fechamento/pdf [get]
func (h *RelatorioHandler) FechamentoPDF(c *fiber.Ctx) error {
	inicio, fim, err := periodoDaQuery(c)
	if err != nil {
		return responderErro(c, err)
	}
	fechamento, err := h.uc.Fechamento(c.Context(), inicio, fim)
	if err != nil {
		return responderErro(c, err)
	}
	bytes, err := h.pdf.Gerar(c.Context(), fechamento)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="fechamento.pdf"`)
	return c.Send(bytes)
}
