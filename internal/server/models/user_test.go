package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNombreCompleto(t *testing.T) {
	ap := "Pérez"
	empty := ""

	tests := []struct {
		name string
		user User
		want string
	}{
		{"with apellido", User{Nombre: "Juan", Apellido: &ap}, "Juan Pérez"},
		{"nil apellido", User{Nombre: "Juan"}, "Juan"},
		{"empty apellido", User{Nombre: "Juan", Apellido: &empty}, "Juan"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.NombreCompleto())
		})
	}
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name   string
		pagina int
		limite int
		total  int64
		want   PageInfo
	}{
		{
			name: "first of two pages", pagina: 1, limite: 5, total: 10,
			want: PageInfo{Pagina: 1, Limite: 5, TotalPaginas: 2, TotalRegistros: 10, TieneSiguiente: true, TieneAnterior: false},
		},
		{
			name: "past the end keeps metadata", pagina: 3, limite: 5, total: 10,
			want: PageInfo{Pagina: 3, Limite: 5, TotalPaginas: 2, TotalRegistros: 10, TieneSiguiente: false, TieneAnterior: true},
		},
		{
			name: "uneven division rounds up", pagina: 1, limite: 4, total: 10,
			want: PageInfo{Pagina: 1, Limite: 4, TotalPaginas: 3, TotalRegistros: 10, TieneSiguiente: true, TieneAnterior: false},
		},
		{
			name: "empty table", pagina: 1, limite: 10, total: 0,
			want: PageInfo{Pagina: 1, Limite: 10, TotalPaginas: 0, TotalRegistros: 0, TieneSiguiente: false, TieneAnterior: false},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPageInfo(tc.pagina, tc.limite, tc.total))
		})
	}
}
