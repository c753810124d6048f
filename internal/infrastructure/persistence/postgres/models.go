package postgres

// Models GORM apenas para as colunas que este sistema projeta.
// O esquema pertence ao banco; identificadores são atribuídos por ele
// (colunas seriais), nunca fabricados aqui. O cadastro livre de linhas
// não passa por estes models (ver inserção por map nos repositórios).

// PapelModel é o model GORM para papéis
type PapelModel struct {
	PapID    int64  `gorm:"column:pap_id;primaryKey;autoIncrement"`
	PapPapel string `gorm:"column:pap_papel"`
}

func (PapelModel) TableName() string {
	return "papeis"
}

// PermissaoModel é o model GORM para permissões
type PermissaoModel struct {
	PerID        int64  `gorm:"column:per_id;primaryKey;autoIncrement"`
	PerDescricao string `gorm:"column:per_descricao"`
}

func (PermissaoModel) TableName() string {
	return "permissoes"
}

// UsuarioModel é o model GORM para usuários (somente as colunas consultadas
// no login; o cadastro pode gravar outras colunas)
type UsuarioModel struct {
	UsrID     int64  `gorm:"column:usr_id;primaryKey;autoIncrement"`
	UsrEmail  string `gorm:"column:usr_email"`
	UsrSenha  string `gorm:"column:usr_senha"`
	UsrPerfil string `gorm:"column:usr_perfil"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}

// PapelPermissaoModel é o model GORM da associação papel-permissão.
// Sem chave primária própria e sem restrição de unicidade nesta camada:
// duplicatas são arbitradas pelo banco.
type PapelPermissaoModel struct {
	PapelID     int64 `gorm:"column:papel_id"`
	PermissaoID int64 `gorm:"column:permissao_id"`
}

func (PapelPermissaoModel) TableName() string {
	return "papel_permissao"
}
