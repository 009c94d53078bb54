package models

// Alerta records an out-of-range reading. Rows are written by the ingestion
// endpoint and read back verbatim by GET /data/alertas.
type Alerta struct {
	ID           uint    `json:"-" gorm:"primaryKey"`
	FechaAlerta  string  `json:"fecha_alerta"`
	HoraAlerta   string  `json:"hora_alerta"`
	Comentarios  string  `json:"comentarios"`
	PhValor      float64 `json:"ph_valor"`
	LuzDetectada bool    `json:"luz_detectada"`
	Temperatura  float64 `json:"temperatura"`
}

func (Alerta) TableName() string { return "alertas" }
