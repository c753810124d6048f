package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/handlers/dto"
	"github.com/InnoAir-lgtm/server/internal/services"
)

// EmpresaHandler lida com requisições HTTP de cadastro de empresas
type EmpresaHandler struct {
	empresaService *services.EmpresaService
	logger         ports.Logger
}

// NewEmpresaHandler cria um novo EmpresaHandler
func NewEmpresaHandler(empresaService *services.EmpresaService, logger ports.Logger) *EmpresaHandler {
	return &EmpresaHandler{
		empresaService: empresaService,
		logger:         logger,
	}
}

// Cadastrar cadastra uma empresa com payload livre.
// Falha do banco vira 400 genérico sem detalhe da causa; o detalhe fica
// apenas no log do servidor.
func (h *EmpresaHandler) Cadastrar(c *gin.Context) {
	var dados map[string]any

	if err := c.ShouldBindJSON(&dados); err != nil {
		h.logger.Warn("payload inválido ao cadastrar empresa", "error", err)
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Erro ao cadastrar empresa."})
		return
	}

	result, err := h.empresaService.Cadastrar(c.Request.Context(), dados)
	if err != nil {
		if storeTimeout(c, err) {
			return
		}
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Erro ao cadastrar empresa."})
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{
		Message: "Empresa cadastrada com sucesso!",
		Data:    result,
	})
}
