package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/InnoAir-lgtm/server/internal/domain/entities"
	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// PermissaoRepository implementa repositories.PermissaoRepository
type PermissaoRepository struct {
	db *gorm.DB
}

// NewPermissaoRepository cria um novo PermissaoRepository
func NewPermissaoRepository(db *gorm.DB) repositories.PermissaoRepository {
	return &PermissaoRepository{db: db}
}

// Cadastrar insere o payload como uma linha na tabela permissoes
func (r *PermissaoRepository) Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error) {
	if err := r.db.WithContext(ctx).Table("permissoes").Create(dados).Error; err != nil {
		return nil, err
	}
	return dados, nil
}

// Listar projeta (per_id, per_descricao) de todas as linhas, na ordem do banco
func (r *PermissaoRepository) Listar(ctx context.Context) ([]entities.Permissao, error) {
	var models []PermissaoModel

	if err := r.db.WithContext(ctx).
		Select("per_id", "per_descricao").
		Find(&models).Error; err != nil {
		return nil, err
	}

	permissoes := make([]entities.Permissao, 0, len(models))
	for _, m := range models {
		permissoes = append(permissoes, entities.Permissao{
			PerID:        m.PerID,
			PerDescricao: m.PerDescricao,
		})
	}
	return permissoes, nil
}
