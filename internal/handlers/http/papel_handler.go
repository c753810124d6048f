package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/handlers/dto"
	"github.com/InnoAir-lgtm/server/internal/services"
)

// PapelHandler lida com requisições HTTP de papéis e de associações
// papel-permissão
type PapelHandler struct {
	papelService *services.PapelService
	logger       ports.Logger
}

// NewPapelHandler cria um novo PapelHandler
func NewPapelHandler(papelService *services.PapelService, logger ports.Logger) *PapelHandler {
	return &PapelHandler{
		papelService: papelService,
		logger:       logger,
	}
}

// Cadastrar cadastra um papel com payload livre.
// Mesmo contrato de erro do cadastro de empresa: 400 genérico, causa só
// no log.
func (h *PapelHandler) Cadastrar(c *gin.Context) {
	var dados map[string]any

	if err := c.ShouldBindJSON(&dados); err != nil {
		h.logger.Warn("payload inválido ao cadastrar papel", "error", err)
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Erro ao cadastrar Papel."})
		return
	}

	result, err := h.papelService.Cadastrar(c.Request.Context(), dados)
	if err != nil {
		if storeTimeout(c, err) {
			return
		}
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Erro ao cadastrar Papel."})
		return
	}

	// "Papel cadastrada" replica o texto do serviço original; clientes
	// comparam a mensagem literalmente.
	c.JSON(http.StatusCreated, dto.DataResponse{
		Message: "Papel cadastrada com sucesso!",
		Data:    result,
	})
}

// Listar lista todos os papéis na projeção (pap_papel, pap_id)
func (h *PapelHandler) Listar(c *gin.Context) {
	papeis, err := h.papelService.Listar(c.Request.Context())
	if err != nil {
		h.logger.Error("erro ao listar papéis", "error", err)
		if storeTimeout(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Erro ao listar papéis."})
		return
	}

	c.JSON(http.StatusOK, dto.ToPapelResponses(papeis))
}

// AssociarPermissao associa uma permissão a um papel.
// papel_id e permissao_id são obrigatórios e não-falsos; a validação
// curto-circuita antes de qualquer acesso ao banco.
func (h *PapelHandler) AssociarPermissao(c *gin.Context) {
	var req dto.AssociarPermissaoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		if dto.CamposObrigatoriosAusentes(err) {
			h.logger.Warn("associação sem papel_id ou permissao_id")
		} else {
			h.logger.Warn("payload malformado ao associar permissão", "error", err)
		}
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Papel e permissão são obrigatórios."})
		return
	}

	if err := h.papelService.AssociarPermissao(c.Request.Context(), req.PapelID, req.PermissaoID); err != nil {
		if storeTimeout(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgErroInterno})
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Permissão associada com sucesso!"})
}

// PermissoesPorPapel lista os permissao_id associados ao papel do path.
// Papel sem associações responde 200 com lista vazia.
func (h *PapelHandler) PermissoesPorPapel(c *gin.Context) {
	papelID := c.Param("papelId")

	ids, err := h.papelService.PermissoesPorPapel(c.Request.Context(), papelID)
	if err != nil {
		h.logger.Error("erro ao buscar permissões do papel", "papel_id", papelID, "error", err)
		if storeTimeout(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Erro ao buscar permissões do papel."})
		return
	}

	c.JSON(http.StatusOK, ids)
}
