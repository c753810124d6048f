package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoAir-lgtm/server/internal/domain/errors"
	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/handlers/dto"
	"github.com/InnoAir-lgtm/server/internal/services"
)

// AuthHandler lida com o login de usuários privilegiados
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginMaster autentica por email e senha.
// Campos ausentes curto-circuitam em 400 sem consultar o banco. Rejeição
// (credenciais não casam ou perfil fora do conjunto autorizado) é 403;
// falha do banco é 500.
func (h *AuthHandler) LoginMaster(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		if dto.CamposObrigatoriosAusentes(err) {
			h.logger.Warn("login sem email ou senha")
		} else {
			h.logger.Warn("payload malformado no login", "error", err)
		}
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email e senha são obrigatórios."})
		return
	}

	usuario, err := h.authService.LoginMaster(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		if storeTimeout(c, err) {
			return
		}
		switch {
		case errs.Is(err, errors.ErrCredenciaisIncorretas):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Credenciais incorretas."})
		case errs.Is(err, errors.ErrPerfilNaoAutorizado):
			c.JSON(http.StatusForbidden, dto.MessageResponse{Message: "Acesso negado: perfil não autorizado."})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgErroInterno})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(usuario))
}
