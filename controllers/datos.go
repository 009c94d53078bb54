package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Ezequiel060805/allge-care-apis/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DatosController serves the read projections under /data.
type DatosController struct {
	DB *gorm.DB
}

func NewDatosController(db *gorm.DB) *DatosController {
	return &DatosController{DB: db}
}

// GetUsuarios returns all users, or the single user matching the optional
// `email` query parameter. No match is an empty array, not an error.
func (d *DatosController) GetUsuarios(c *gin.Context) {
	usuarios := make([]models.UsuarioInfo, 0)

	q := d.DB.Model(&models.Usuario{}).Select("nombre, correo, fecha_creacion, rol")
	if email := c.Query("email"); email != "" {
		q = q.Where("correo = ?", email)
	}
	if err := q.Scan(&usuarios).Error; err != nil {
		slog.Error("usuario: query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, usuarios)
}

// GetMediciones returns the latest reading, the 24h extrema, and the
// trailing day/week/month series. All five windows are anchored to one
// timestamp taken at the start of the request.
func (d *DatosController) GetMediciones(c *gin.Context) {
	now := time.Now()

	var latestRows []models.UltimaMedicion
	err := d.DB.Model(&models.Medicion{}).
		Select("ph_valor AS ph, temperatura_valor AS temperatura, luz_presente AS luz, hora_registro AS hora").
		Order("fecha_registro DESC, hora_registro DESC").
		Limit(1).
		Scan(&latestRows).Error
	if err != nil {
		d.medicionesError(c, err)
		return
	}
	var latest *models.UltimaMedicion
	if len(latestRows) > 0 {
		latest = &latestRows[0]
	}

	dayCutoff := now.Add(-24 * time.Hour)

	var maxLastDay models.MaximosDia
	err = d.DB.Model(&models.Medicion{}).
		Select("MAX(ph_valor) AS max_ph, MAX(temperatura_valor) AS max_temp").
		Where("fecha_registro >= ?", dayCutoff).
		Scan(&maxLastDay).Error
	if err != nil {
		d.medicionesError(c, err)
		return
	}

	var minLastDay models.MinimosDia
	err = d.DB.Model(&models.Medicion{}).
		Select("MIN(ph_valor) AS min_ph, MIN(temperatura_valor) AS min_temp").
		Where("fecha_registro >= ?", dayCutoff).
		Scan(&minLastDay).Error
	if err != nil {
		d.medicionesError(c, err)
		return
	}

	lastDayData, err := d.serie(dayCutoff)
	if err != nil {
		d.medicionesError(c, err)
		return
	}
	lastWeekData, err := d.serie(now.AddDate(0, 0, -7))
	if err != nil {
		d.medicionesError(c, err)
		return
	}
	lastMonthData, err := d.serie(now.AddDate(0, 0, -30))
	if err != nil {
		d.medicionesError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"latest":        latest,
		"maxLastDay":    maxLastDay,
		"minLastDay":    minLastDay,
		"lastDayData":   lastDayData,
		"lastWeekData":  lastWeekData,
		"lastMonthData": lastMonthData,
	})
}

// serie loads the chart points for one trailing window, oldest first.
func (d *DatosController) serie(desde time.Time) ([]models.MedicionPunto, error) {
	puntos := make([]models.MedicionPunto, 0)
	err := d.DB.Model(&models.Medicion{}).
		Select("ph_valor AS ph, temperatura_valor AS temperatura, dia_registro, hora_registro AS hora").
		Where("fecha_registro >= ?", desde).
		Order("fecha_registro, hora_registro").
		Scan(&puntos).Error
	return puntos, err
}

func (d *DatosController) medicionesError(c *gin.Context, err error) {
	slog.Error("mediciones: query failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// GetConfiguraciones returns the active configuration row, or null when the
// table is empty.
func (d *DatosController) GetConfiguraciones(c *gin.Context) {
	var rows []models.ConfiguracionView
	err := d.DB.Model(&models.Configuracion{}).
		Select("ph_min, ph_max, temperatura_min, temperatura_max, agitacion_recomendada AS agitacion, intervalo").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		slog.Error("configuraciones: query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if len(rows) == 0 {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, rows[0])
}

// GetAlertas returns every stored alert, newest last.
func (d *DatosController) GetAlertas(c *gin.Context) {
	alertas := make([]models.Alerta, 0)
	if err := d.DB.Find(&alertas).Error; err != nil {
		slog.Error("alertas: query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, alertas)
}
