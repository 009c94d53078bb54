package models

import "time"

// Usuario is a dashboard account. Contrasena holds the bcrypt hash and is
// never serialized.
type Usuario struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Nombre        string    `json:"nombre"`
	Correo        string    `json:"correo" gorm:"uniqueIndex;not null"`
	Contrasena    string    `json:"-" gorm:"not null"`
	FechaCreacion time.Time `json:"fecha_creacion" gorm:"autoCreateTime"`
	Rol           string    `json:"rol" gorm:"default:user"`
}

func (Usuario) TableName() string { return "usuarios" }

// UsuarioInfo is the projection returned by GET /data/usuario.
type UsuarioInfo struct {
	Nombre        string    `json:"nombre"`
	Correo        string    `json:"correo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
	Rol           string    `json:"rol"`
}
