package repositories

import (
	"context"

	"github.com/InnoAir-lgtm/server/internal/domain/entities"
)

// EmpresaRepository define a persistência de empresas.
// O cadastro é livre: o payload é repassado como linha ao banco sem
// validação de campos nesta camada.
type EmpresaRepository interface {
	Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error)
}

// PapelRepository define a persistência de papéis e das associações
// papel-permissão.
type PapelRepository interface {
	Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error)
	Listar(ctx context.Context) ([]entities.Papel, error)
	AssociarPermissao(ctx context.Context, papelID, permissaoID int64) error
	PermissoesPorPapel(ctx context.Context, papelID string) ([]int64, error)
}

// PermissaoRepository define a persistência de permissões.
type PermissaoRepository interface {
	Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error)
	Listar(ctx context.Context) ([]entities.Permissao, error)
}

// UsuarioRepository define a persistência de usuários.
type UsuarioRepository interface {
	Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error)
	BuscarPorCredenciais(ctx context.Context, email, senha string) ([]entities.Usuario, error)
}
