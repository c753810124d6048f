package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/handlers/dto"
	"github.com/InnoAir-lgtm/server/internal/services"
)

// UsuarioHandler lida com requisições HTTP de cadastro de usuários
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
	logger         ports.Logger
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService, logger ports.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
		logger:         logger,
	}
}

// Cadastrar cadastra um usuário com payload livre.
// Mesmo contrato estrito do cadastro de permissão: falha do banco vira
// 400 com a causa no campo error.
func (h *UsuarioHandler) Cadastrar(c *gin.Context) {
	var dados map[string]any

	if err := c.ShouldBindJSON(&dados); err != nil {
		h.logger.Warn("payload inválido ao cadastrar usuário", "error", err)
		c.JSON(http.StatusBadRequest, dto.ErrorDetailResponse{
			Message: "Erro ao cadastrar usuário.",
			Error:   err.Error(),
		})
		return
	}

	result, err := h.usuarioService.Cadastrar(c.Request.Context(), dados)
	if err != nil {
		if storeTimeout(c, err) {
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorDetailResponse{
			Message: "Erro ao cadastrar usuário.",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse{
		Message: "Usuário cadastrado com sucesso!",
		Data:    result,
	})
}
