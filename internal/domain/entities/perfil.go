package entities

// Perfil representa o perfil de acesso de um usuário
type Perfil string

const (
	PerfilMaster        Perfil = "Master"
	PerfilAdministrador Perfil = "Administrador"
)

// perfisPrivilegiados é o conjunto de perfis autorizados no login-master
var perfisPrivilegiados = map[Perfil]bool{
	PerfilMaster:        true,
	PerfilAdministrador: true,
}

// Privilegiado verifica se o perfil pertence ao conjunto autorizado
func (p Perfil) Privilegiado() bool {
	return perfisPrivilegiados[p]
}
