package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/InnoAir-lgtm/server/internal/domain/entities"
	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// UsuarioRepository implementa repositories.UsuarioRepository
type UsuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository cria um novo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.UsuarioRepository {
	return &UsuarioRepository{db: db}
}

// Cadastrar insere o payload como uma linha na tabela usuarios
func (r *UsuarioRepository) Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error) {
	if err := r.db.WithContext(ctx).Table("usuarios").Create(dados).Error; err != nil {
		return nil, err
	}
	return dados, nil
}

// BuscarPorCredenciais retorna os usuários cujo email e senha casam por
// igualdade, na ordem do banco. A comparação de senha é literal, coluna
// contra valor submetido.
func (r *UsuarioRepository) BuscarPorCredenciais(ctx context.Context, email, senha string) ([]entities.Usuario, error) {
	var models []UsuarioModel

	if err := r.db.WithContext(ctx).
		Where("usr_email = ? AND usr_senha = ?", email, senha).
		Find(&models).Error; err != nil {
		return nil, err
	}

	usuarios := make([]entities.Usuario, 0, len(models))
	for _, m := range models {
		usuarios = append(usuarios, entities.Usuario{
			ID:     m.UsrID,
			Email:  m.UsrEmail,
			Perfil: entities.Perfil(m.UsrPerfil),
		})
	}
	return usuarios, nil
}
