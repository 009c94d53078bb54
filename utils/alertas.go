package utils

import (
	"strings"

	"github.com/Ezequiel060805/allge-care-apis/models"
)

// EvaluarMedicion checks a reading against the configured thresholds and
// returns the alert to record, or nil when everything is in range.
func EvaluarMedicion(m models.Medicion, cfg models.Configuracion) *models.Alerta {
	var causas []string
	if m.PhValor < cfg.PhMin || m.PhValor > cfg.PhMax {
		causas = append(causas, "pH out of range")
	}
	if m.TemperaturaValor < cfg.TemperaturaMin || m.TemperaturaValor > cfg.TemperaturaMax {
		causas = append(causas, "Temperature out of range")
	}
	if len(causas) == 0 {
		return nil
	}
	return &models.Alerta{
		FechaAlerta:  m.DiaRegistro,
		HoraAlerta:   m.HoraRegistro,
		Comentarios:  strings.Join(causas, "; "),
		PhValor:      m.PhValor,
		LuzDetectada: m.LuzPresente,
		Temperatura:  m.TemperaturaValor,
	}
}
