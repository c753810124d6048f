package services

import (
	"context"
	"time"

	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// EmpresaService contém a lógica de cadastro de empresas
type EmpresaService struct {
	empresaRepo repositories.EmpresaRepository
	logger      ports.Logger
	timeout     time.Duration
}

// NewEmpresaService cria um novo EmpresaService
func NewEmpresaService(
	empresaRepo repositories.EmpresaRepository,
	logger ports.Logger,
	timeout time.Duration,
) *EmpresaService {
	return &EmpresaService{
		empresaRepo: empresaRepo,
		logger:      logger,
		timeout:     timeout,
	}
}

// Cadastrar repassa o payload ao banco e devolve a linha inserida
func (s *EmpresaService) Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.empresaRepo.Cadastrar(ctx, dados)
	if err != nil {
		s.logger.Error("erro ao cadastrar empresa", "error", err)
		return nil, err
	}

	s.logger.Info("empresa cadastrada")
	return result, nil
}
