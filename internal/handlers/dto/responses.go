package dto

import (
	"github.com/InnoAir-lgtm/server/internal/domain/entities"
)

// Envelopes de resposta. O formato {message, ...} e os textos em português
// são contrato observável; clientes existentes dependem deles byte a byte.

// MessageResponse é o envelope mínimo {message}
type MessageResponse struct {
	Message string `json:"message"`
}

// DataResponse é o envelope de cadastro bem-sucedido {message, data}
type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorDetailResponse é o envelope {message, error} dos endpoints de
// permissão e usuário, que propagam a causa reportada pelo banco
type ErrorDetailResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// PapelResponse é a projeção (pap_papel, pap_id) de listar-papeis
type PapelResponse struct {
	PapPapel string `json:"pap_papel"`
	PapID    int64  `json:"pap_id"`
}

// ToPapelResponses converte entidades Papel para a projeção da listagem
func ToPapelResponses(papeis []entities.Papel) []PapelResponse {
	responses := make([]PapelResponse, len(papeis))
	for i, p := range papeis {
		responses[i] = PapelResponse{
			PapPapel: p.PapPapel,
			PapID:    p.PapID,
		}
	}
	return responses
}

// PermissaoResponse é a projeção (per_id, per_descricao) de listar-permissoes
type PermissaoResponse struct {
	PerID        int64  `json:"per_id"`
	PerDescricao string `json:"per_descricao"`
}

// ToPermissaoResponses converte entidades Permissao para a projeção da listagem
func ToPermissaoResponses(permissoes []entities.Permissao) []PermissaoResponse {
	responses := make([]PermissaoResponse, len(permissoes))
	for i, p := range permissoes {
		responses[i] = PermissaoResponse{
			PerID:        p.PerID,
			PerDescricao: p.PerDescricao,
		}
	}
	return responses
}

// UsuarioInfo é a projeção mínima do usuário autenticado
type UsuarioInfo struct {
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}

// LoginResponse é o envelope de login bem-sucedido
type LoginResponse struct {
	Message string      `json:"message"`
	User    UsuarioInfo `json:"user"`
}

// ToLoginResponse monta a resposta de login a partir da entidade
func ToLoginResponse(usuario *entities.Usuario) LoginResponse {
	return LoginResponse{
		Message: "Login bem-sucedido!",
		User: UsuarioInfo{
			Email:  usuario.Email,
			Perfil: string(usuario.Perfil),
		},
	}
}
