package errors

import "errors"

// Business errors
// Nota: distinguem rejeição de login (403) de falha do banco (500).
var (
	ErrCredenciaisIncorretas = errors.New("credenciais incorretas")
	ErrPerfilNaoAutorizado   = errors.New("perfil não autorizado")
)
