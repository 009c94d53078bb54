package models

import "time"

// Medicion is a single sensor sample. DiaRegistro and HoraRegistro carry the
// calendar date and time-of-day the client charts; FechaRegistro is the
// timestamp every "latest" and trailing-window query orders and filters by.
type Medicion struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	PhValor          float64   `json:"ph_valor"`
	TemperaturaValor float64   `json:"temperatura_valor"`
	LuzPresente      bool      `json:"luz_presente"`
	DiaRegistro      string    `json:"dia_registro"`
	HoraRegistro     string    `json:"hora_registro"`
	FechaRegistro    time.Time `json:"fecha_registro" gorm:"index"`
}

func (Medicion) TableName() string { return "mediciones" }

// UltimaMedicion is the shape of the `latest` field in GET /data/mediciones.
type UltimaMedicion struct {
	Ph          float64 `json:"ph"`
	Temperatura float64 `json:"temperatura"`
	Luz         bool    `json:"luz"`
	Hora        string  `json:"hora"`
}

// MedicionPunto is one chart point in the trailing-window arrays.
type MedicionPunto struct {
	Ph          float64 `json:"ph"`
	Temperatura float64 `json:"temperatura"`
	DiaRegistro string  `json:"dia_registro"`
	Hora        string  `json:"hora"`
}

// MaximosDia and MinimosDia hold the 24h extrema; the fields are pointers so
// an empty window serializes as null rather than zero.
type MaximosDia struct {
	MaxPh   *float64 `json:"maxPh"`
	MaxTemp *float64 `json:"maxTemp"`
}

type MinimosDia struct {
	MinPh   *float64 `json:"minPh"`
	MinTemp *float64 `json:"minTemp"`
}
