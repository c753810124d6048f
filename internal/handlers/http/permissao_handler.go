package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/handlers/dto"
	"github.com/InnoAir-lgtm/server/internal/services"
)

// PermissaoHandler lida com requisições HTTP de permissões
type PermissaoHandler struct {
	permissaoService *services.PermissaoService
	logger           ports.Logger
}

// NewPermissaoHandler cria um novo PermissaoHandler
func NewPermissaoHandler(permissaoService *services.PermissaoService, logger ports.Logger) *PermissaoHandler {
	return &PermissaoHandler{
		permissaoService: permissaoService,
		logger:           logger,
	}
}

// Cadastrar cadastra uma permissão com payload livre.
// Contrato mais estrito que o de empresa/papel: falha do banco vira 400
// com a causa no campo error.
func (h *PermissaoHandler) Cadastrar(c *gin.Context) {
	var dados map[string]any

	if err := c.ShouldBindJSON(&dados); err != nil {
		h.logger.Warn("payload inválido ao cadastrar permissão", "error", err)
		c.JSON(http.StatusBadRequest, dto.ErrorDetailResponse{
			Message: "Erro ao cadastrar permissão.",
			Error:   err.Error(),
		})
		return
	}

	result, err := h.permissaoService.Cadastrar(c.Request.Context(), dados)
	if err != nil {
		if storeTimeout(c, err) {
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorDetailResponse{
			Message: "Erro ao cadastrar permissão.",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{
		Message: "Permissão cadastrada com sucesso!",
		Data:    result,
	})
}

// Listar lista todas as permissões na projeção (per_id, per_descricao)
func (h *PermissaoHandler) Listar(c *gin.Context) {
	permissoes, err := h.permissaoService.Listar(c.Request.Context())
	if err != nil {
		h.logger.Error("erro ao listar permissões", "error", err)
		if storeTimeout(c, err) {
			return
		}
		// Sem ponto final, como no serviço original
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Erro ao listar permissões"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPermissaoResponses(permissoes))
}
