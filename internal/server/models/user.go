// Package models contains the server-side data structures exchanged between
// the repository and the HTTP layer.
package models

import "fmt"

// User is one row of the users table as it appears on the wire. Optional
// columns are pointers so NULL survives the round trip as JSON null.
// Timestamps are pre-rendered to RFC 3339 strings by the repository; clients
// never see raw database timestamps and can never set them.
type User struct {
	ID                 int64   `json:"id"`
	Nombre             string  `json:"nombre"`
	Apellido           *string `json:"apellido"`
	Email              string  `json:"email"`
	Edad               *int64  `json:"edad"`
	Telefono           *string `json:"telefono"`
	Ciudad             *string `json:"ciudad"`
	Activo             bool    `json:"activo"`
	FechaRegistro      string  `json:"fecha_registro"`
	FechaActualizacion string  `json:"fecha_actualizacion"`
	Genero             *string `json:"genero"`
	Profesion          *string `json:"profesion"`
	Salario            *string `json:"salario"`
}

// NombreCompleto joins nombre and apellido for human-readable messages.
func (u *User) NombreCompleto() string {
	if u.Apellido == nil || *u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + *u.Apellido
}

// UserFields is a decoded request body: wire field name to raw JSON value.
// Presence in the map is significant — a merge update only touches the keys
// that were actually submitted.
type UserFields map[string]any

// UpdateResult is the outcome of a merge (PATCH) update.
type UpdateResult struct {
	Usuario            *User    `json:"usuario"`
	CamposActualizados []string `json:"campos_actualizados"`

	// Mensaje is surfaced through the response envelope, not the data payload.
	Mensaje string `json:"-"`
}

// Stats is the read-only aggregate behind the system-info endpoint.
type Stats struct {
	TotalUsuarios     int64  `json:"total_usuarios"`
	VersionPostgreSQL string `json:"version_postgresql"`
}

// Page is one slice of the users table plus pagination metadata.
type Page struct {
	Usuarios   []*User  `json:"usuarios"`
	Paginacion PageInfo `json:"paginacion"`
}

// PageInfo describes where a page sits inside the full result set.
type PageInfo struct {
	Pagina         int   `json:"pagina"`
	Limite         int   `json:"limite"`
	TotalPaginas   int   `json:"total_paginas"`
	TotalRegistros int64 `json:"total_registros"`
	TieneSiguiente bool  `json:"tiene_siguiente"`
	TieneAnterior  bool  `json:"tiene_anterior"`
}

// NewPageInfo computes pagination metadata. TotalPaginas is a ceiling
// division; an empty table yields zero pages.
func NewPageInfo(pagina, limite int, total int64) PageInfo {
	totalPaginas := int((total + int64(limite) - 1) / int64(limite))
	return PageInfo{
		Pagina:         pagina,
		Limite:         limite,
		TotalPaginas:   totalPaginas,
		TotalRegistros: total,
		TieneSiguiente: pagina < totalPaginas,
		TieneAnterior:  pagina > 1,
	}
}

func (p PageInfo) String() string {
	return fmt.Sprintf("pagina %d/%d (%d registros)", p.Pagina, p.TotalPaginas, p.TotalRegistros)
}
