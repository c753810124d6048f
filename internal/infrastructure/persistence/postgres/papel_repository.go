package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/InnoAir-lgtm/server/internal/domain/entities"
	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// PapelRepository implementa repositories.PapelRepository
type PapelRepository struct {
	db *gorm.DB
}

// NewPapelRepository cria um novo PapelRepository
func NewPapelRepository(db *gorm.DB) repositories.PapelRepository {
	return &PapelRepository{db: db}
}

// Cadastrar insere o payload como uma linha na tabela papeis
func (r *PapelRepository) Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error) {
	if err := r.db.WithContext(ctx).Table("papeis").Create(dados).Error; err != nil {
		return nil, err
	}
	return dados, nil
}

// Listar projeta (pap_papel, pap_id) de todas as linhas, na ordem do banco
func (r *PapelRepository) Listar(ctx context.Context) ([]entities.Papel, error) {
	var models []PapelModel

	if err := r.db.WithContext(ctx).
		Select("pap_papel", "pap_id").
		Find(&models).Error; err != nil {
		return nil, err
	}

	papeis := make([]entities.Papel, 0, len(models))
	for _, m := range models {
		papeis = append(papeis, entities.Papel{
			PapID:    m.PapID,
			PapPapel: m.PapPapel,
		})
	}
	return papeis, nil
}

// AssociarPermissao insere uma linha na tabela de associação.
// Nenhuma checagem de duplicata aqui; unicidade é assunto do banco.
func (r *PapelRepository) AssociarPermissao(ctx context.Context, papelID, permissaoID int64) error {
	link := PapelPermissaoModel{
		PapelID:     papelID,
		PermissaoID: permissaoID,
	}
	return r.db.WithContext(ctx).Create(&link).Error
}

// PermissoesPorPapel retorna os permissao_id associados ao papel.
// Papel sem associações retorna fatia vazia, nunca nil.
func (r *PapelRepository) PermissoesPorPapel(ctx context.Context, papelID string) ([]int64, error) {
	ids := make([]int64, 0)

	if err := r.db.WithContext(ctx).
		Model(&PapelPermissaoModel{}).
		Where("papel_id = ?", papelID).
		Pluck("permissao_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
