package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InnoAir-lgtm/server/internal/handlers/dto"
)

const (
	msgErroInterno = "Erro interno do servidor."

	// Endurecimento não presente no serviço original: chamadas ao banco
	// têm duração limitada e o estouro vira 504 em vez de pendurar a
	// requisição.
	msgTimeout = "Tempo limite excedido ao acessar o banco de dados."
)

// storeTimeout responde 504 quando o erro é estouro do limite de duração
// da chamada ao banco. Retorna true se a resposta já foi emitida.
func storeTimeout(c *gin.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, dto.MessageResponse{Message: msgTimeout})
		return true
	}
	return false
}
