package services

import (
	"context"
	"time"

	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// UsuarioService contém a lógica de cadastro de usuários
type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepository
	logger      ports.Logger
	timeout     time.Duration
}

// NewUsuarioService cria um novo UsuarioService
func NewUsuarioService(
	usuarioRepo repositories.UsuarioRepository,
	logger ports.Logger,
	timeout time.Duration,
) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		logger:      logger,
		timeout:     timeout,
	}
}

// Cadastrar repassa o payload ao banco e devolve a linha inserida
func (s *UsuarioService) Cadastrar(ctx context.Context, dados map[string]any) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.usuarioRepo.Cadastrar(ctx, dados)
	if err != nil {
		s.logger.Error("erro ao cadastrar usuário", "error", err)
		return nil, err
	}

	s.logger.Info("usuário cadastrado")
	return result, nil
}
