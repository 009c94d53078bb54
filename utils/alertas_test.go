package utils

import (
	"strings"
	"testing"

	"github.com/Ezequiel060805/allge-care-apis/models"
)

var testCfg = models.Configuracion{
	ID: 1, PhMin: 6.5, PhMax: 7.5, TemperaturaMin: 18, TemperaturaMax: 26,
}

func TestEvaluarMedicion_EnRango(t *testing.T) {
	m := models.Medicion{PhValor: 7.0, TemperaturaValor: 22}
	if a := EvaluarMedicion(m, testCfg); a != nil {
		t.Errorf("in-range reading should not raise an alert, got %+v", a)
	}
}

func TestEvaluarMedicion_PhFueraDeRango(t *testing.T) {
	m := models.Medicion{
		PhValor: 5.9, TemperaturaValor: 22, LuzPresente: true,
		DiaRegistro: "2026-08-28", HoraRegistro: "10:15:00",
	}
	a := EvaluarMedicion(m, testCfg)
	if a == nil {
		t.Fatal("low pH should raise an alert")
	}
	if !strings.Contains(a.Comentarios, "pH") {
		t.Errorf("comment should name pH, got %q", a.Comentarios)
	}
	if a.PhValor != 5.9 || a.Temperatura != 22 || !a.LuzDetectada {
		t.Errorf("alert should carry the reading values, got %+v", a)
	}
	if a.FechaAlerta != "2026-08-28" || a.HoraAlerta != "10:15:00" {
		t.Errorf("alert should carry the reading date and time, got %+v", a)
	}
}

func TestEvaluarMedicion_AmbosFueraDeRango(t *testing.T) {
	m := models.Medicion{PhValor: 8.2, TemperaturaValor: 30}
	a := EvaluarMedicion(m, testCfg)
	if a == nil {
		t.Fatal("out-of-range pH and temperature should raise an alert")
	}
	if !strings.Contains(a.Comentarios, "pH") || !strings.Contains(a.Comentarios, "Temperature") {
		t.Errorf("comment should name both causes, got %q", a.Comentarios)
	}
}
