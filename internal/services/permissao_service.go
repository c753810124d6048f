package services

import (
	"context"
	"time"

	"github.com/InnoAir-lgtm/server/internal/domain/entities"
	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// PermissaoService contém a lógica de cadastro e listagem de permissões
type PermissaoService struct {
	permissaoRepo repositories.PermissaoRepository
	logger        ports.Logger
	timeout       time.Duration
}

// NewPermissaoService cria um novo PermissaoService
func NewPermissaoService(
	permissaoRepo repositories.PermissaoRepository,
	logger ports.Logger,
	timeout time.Duration,
) *PermissaoService {
	return &PermissaoService{
		permissaoRepo: permissaoRepo,
		logger:        logger,
		timeout:       timeout,
	}
}

// Cadastrar repassa o payload ao banco e devolve a linha inserida
func (s *PermissaoService) Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.permissaoRepo.Cadastrar(ctx, dados)
	if err != nil {
		s.logger.Error("erro ao cadastrar permissão", "error", err)
		return nil, err
	}

	s.logger.Info("permissão cadastrada")
	return result, nil
}

// Listar retorna todas as permissões na ordem do banco
func (s *PermissaoService) Listar(ctx context.Context) ([]entities.Permissao, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.permissaoRepo.Listar(ctx)
}
