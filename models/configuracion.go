package models

// Configuracion is the single active threshold row (id 1 by convention).
type Configuracion struct {
	ID                   uint    `json:"id" gorm:"primaryKey"`
	PhMin                float64 `json:"ph_min"`
	PhMax                float64 `json:"ph_max"`
	TemperaturaMin       float64 `json:"temperatura_min"`
	TemperaturaMax       float64 `json:"temperatura_max"`
	AgitacionRecomendada float64 `json:"agitacion_recomendada"`
	Intervalo            int     `json:"intervalo"`
}

func (Configuracion) TableName() string { return "configuraciones" }

// ConfiguracionView is the response shape, with agitacion_recomendada aliased
// to agitacion as the client expects.
type ConfiguracionView struct {
	PhMin          float64 `json:"ph_min"`
	PhMax          float64 `json:"ph_max"`
	TemperaturaMin float64 `json:"temperatura_min"`
	TemperaturaMax float64 `json:"temperatura_max"`
	Agitacion      float64 `json:"agitacion"`
	Intervalo      int     `json:"intervalo"`
}
