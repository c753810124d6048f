package entities

import "testing"

func TestPerfil_Privilegiado(t *testing.T) {
	tests := []struct {
		perfil   Perfil
		expected bool
	}{
		{PerfilMaster, true},
		{PerfilAdministrador, true},
		{Perfil("Funcionario"), false},
		{Perfil("master"), false}, // comparação é sensível a maiúsculas
		{Perfil(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.perfil), func(t *testing.T) {
			if got := tt.perfil.Privilegiado(); got != tt.expected {
				t.Errorf("para perfil %q, esperava %v, obteve %v", tt.perfil, tt.expected, got)
			}
		})
	}
}
