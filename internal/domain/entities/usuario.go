package entities

// Usuario representa a projeção mínima de um usuário lida durante o login.
// O cadastro de usuários é livre; apenas estas colunas são consultadas.
type Usuario struct {
	ID     int64
	Email  string
	Perfil Perfil
}
