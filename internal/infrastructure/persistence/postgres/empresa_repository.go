package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// EmpresaRepository implementa repositories.EmpresaRepository
type EmpresaRepository struct {
	db *gorm.DB
}

// NewEmpresaRepository cria um novo EmpresaRepository
func NewEmpresaRepository(db *gorm.DB) repositories.EmpresaRepository {
	return &EmpresaRepository{db: db}
}

// Cadastrar insere o payload como uma linha na tabela empresas.
// Sem validação de campos: qualquer rejeição vem do banco.
func (r *EmpresaRepository) Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error) {
	if err := r.db.WithContext(ctx).Table("empresas").Create(dados).Error; err != nil {
		return nil, err
	}
	return dados, nil
}
