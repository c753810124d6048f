package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// AssociarPermissaoRequest representa a requisição de associação
// papel-permissão. `required` em campo não-ponteiro rejeita tanto a
// ausência quanto o valor zero, o mesmo recorte da checagem de
// falsidade do contrato original.
type AssociarPermissaoRequest struct {
	PapelID     int64 `json:"papel_id" binding:"required"`
	PermissaoID int64 `json:"permissao_id" binding:"required"`
}

// LoginRequest representa a requisição de login privilegiado
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// CamposObrigatoriosAusentes distingue falha de validação de campos de um
// body malformado. A resposta é 400 nos dois casos; o log é que difere.
func CamposObrigatoriosAusentes(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
