package services

import (
	"context"
	"time"

	"github.com/InnoAir-lgtm/server/internal/domain/entities"
	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// PapelService contém a lógica de papéis e associações papel-permissão
type PapelService struct {
	papelRepo repositories.PapelRepository
	logger    ports.Logger
	timeout   time.Duration
}

// NewPapelService cria um novo PapelService
func NewPapelService(
	papelRepo repositories.PapelRepository,
	logger ports.Logger,
	timeout time.Duration,
) *PapelService {
	return &PapelService{
		papelRepo: papelRepo,
		logger:    logger,
		timeout:   timeout,
	}
}

// Cadastrar repassa o payload ao banco e devolve a linha inserida
func (s *PapelService) Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.papelRepo.Cadastrar(ctx, dados)
	if err != nil {
		s.logger.Error("erro ao cadastrar papel", "error", err)
		return nil, err
	}

	s.logger.Info("papel cadastrado")
	return result, nil
}

// Listar retorna todos os papéis na ordem do banco
func (s *PapelService) Listar(ctx context.Context) ([]entities.Papel, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.papelRepo.Listar(ctx)
}

// AssociarPermissao grava uma associação papel-permissão.
// Os campos já chegam validados; duplicatas ficam a cargo do banco.
func (s *PapelService) AssociarPermissao(ctx context.Context, papelID, permissaoID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.papelRepo.AssociarPermissao(ctx, papelID, permissaoID); err != nil {
		s.logger.Error("erro ao associar permissão",
			"papel_id", papelID,
			"permissao_id", permissaoID,
			"error", err,
		)
		return err
	}

	s.logger.Info("permissão associada",
		"papel_id", papelID,
		"permissao_id", permissaoID,
	)
	return nil
}

// PermissoesPorPapel retorna os permissao_id associados ao papel
func (s *PapelService) PermissoesPorPapel(ctx context.Context, papelID string) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.papelRepo.PermissoesPorPapel(ctx, papelID)
}
