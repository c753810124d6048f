package services

import (
	"context"
	"time"

	"github.com/InnoAir-lgtm/server/internal/domain/entities"
	"github.com/InnoAir-lgtm/server/internal/domain/errors"
	"github.com/InnoAir-lgtm/server/internal/domain/ports"
	"github.com/InnoAir-lgtm/server/internal/domain/repositories"
)

// AuthService autentica usuários privilegiados por email e senha
type AuthService struct {
	usuarioRepo repositories.UsuarioRepository
	logger      ports.Logger
	timeout     time.Duration
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	usuarioRepo repositories.UsuarioRepository,
	logger ports.Logger,
	timeout time.Duration,
) *AuthService {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		logger:      logger,
		timeout:     timeout,
	}
}

// LoginMaster busca usuários casando email e senha por igualdade.
// Zero linhas é rejeição, não erro. Se houver mais de uma linha, apenas a
// primeira, na ordem do banco, é consultada. O perfil da linha precisa
// pertencer ao conjunto autorizado (Master, Administrador).
func (s *AuthService) LoginMaster(ctx context.Context, email, senha string) (*entities.Usuario, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	usuarios, err := s.usuarioRepo.BuscarPorCredenciais(ctx, email, senha)
	if err != nil {
		s.logger.Error("erro ao autenticar", "error", err)
		return nil, err
	}

	if len(usuarios) == 0 {
		s.logger.Warn("login recusado: credenciais incorretas", "email", email)
		return nil, errors.ErrCredenciaisIncorretas
	}

	usuario := usuarios[0]
	if !usuario.Perfil.Privilegiado() {
		s.logger.Warn("login recusado: perfil não autorizado",
			"email", usuario.Email,
			"perfil", string(usuario.Perfil),
		)
		return nil, errors.ErrPerfilNaoAutorizado
	}

	s.logger.Info("login bem-sucedido",
		"email", usuario.Email,
		"perfil", string(usuario.Perfil),
	)
	return &usuario, nil
}
