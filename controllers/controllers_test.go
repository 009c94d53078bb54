package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ezequiel060805/allge-care-apis/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB opens an in-memory sqlite database with the full schema. The
// pool is capped at one connection so every query sees the same memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Medicion{},
		&models.Configuracion{},
		&models.Alerta{},
	); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}

func seedMedicion(t *testing.T, db *gorm.DB, ts time.Time, ph, temp float64) models.Medicion {
	t.Helper()
	m := models.Medicion{
		PhValor:          ph,
		TemperaturaValor: temp,
		LuzPresente:      true,
		DiaRegistro:      ts.Format("2006-01-02"),
		HoraRegistro:     ts.Format("15:04:05"),
		FechaRegistro:    ts,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seeding medicion: %v", err)
	}
	return m
}

func seedConfiguracion(t *testing.T, db *gorm.DB) models.Configuracion {
	t.Helper()
	cfg := models.Configuracion{
		ID:                   1,
		PhMin:                6.5,
		PhMax:                7.5,
		TemperaturaMin:       18,
		TemperaturaMax:       26,
		AgitacionRecomendada: 2.5,
		Intervalo:            60,
	}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("seeding configuracion: %v", err)
	}
	return cfg
}
