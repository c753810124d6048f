package entities

// Papel representa um papel do sistema
type Papel struct {
	PapID    int64
	PapPapel string
}

// Permissao representa uma permissão cadastrada
type Permissao struct {
	PerID        int64
	PerDescricao string
}
