package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	Empresa   *EmpresaHandler
	Papel     *PapelHandler
	Permissao *PermissaoHandler
	Usuario   *UsuarioHandler
	Auth      *AuthHandler
}

// RegisterRotas registra as rotas da API no router.
// Os paths ficam na raiz, idênticos aos do serviço original.
func RegisterRotas(router *gin.Engine, h Handlers) {
	router.POST("/cadastrar-empresa", h.Empresa.Cadastrar)
	router.POST("/cadastrar-papeis", h.Papel.Cadastrar)
	router.POST("/cadastrar-permissoes", h.Permissao.Cadastrar)
	router.POST("/cadastrar-usuario", h.Usuario.Cadastrar)

	router.GET("/listar-papeis", h.Papel.Listar)
	router.GET("/listar-permissoes", h.Permissao.Listar)
	router.GET("/permissoes-por-papel/:papelId", h.Papel.PermissoesPorPapel)

	router.POST("/associar-permissao", h.Papel.AssociarPermissao)
	router.POST("/login-master", h.Auth.LoginMaster)
}

// Health responde a sonda de disponibilidade
func Health(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    env,
		})
	}
}
