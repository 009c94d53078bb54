package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ezequiel060805/allge-care-apis/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ConfigController applies partial updates to the configuration row.
type ConfigController struct {
	DB *gorm.DB
}

func NewConfigController(db *gorm.DB) *ConfigController {
	return &ConfigController{DB: db}
}

// camposPermitidos maps accepted request fields to the columns they update.
// Caller-supplied keys never reach SQL: only values are bound, and only for
// fields named here. Anything else in the body is ignored.
var camposPermitidos = map[string]string{
	"ph_min":                "ph_min",
	"ph_max":                "ph_max",
	"temperatura_min":       "temperatura_min",
	"temperatura_max":       "temperatura_max",
	"agitacion_recomendada": "agitacion_recomendada",
	"intervalo":             "intervalo",
}

// UpdateConfiguracion updates only the allow-listed fields present in the
// body, targeting the row with the given id (default 1), and returns the
// refreshed row.
func (cc *ConfigController) UpdateConfiguracion(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	cambios := map[string]any{}
	for campo, columna := range camposPermitidos {
		if v, ok := body[campo]; ok {
			cambios[columna] = v
		}
	}
	if len(cambios) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	id := 1
	if raw, ok := body["id"]; ok {
		if f, ok := raw.(float64); ok {
			id = int(f)
		}
	}

	res := cc.DB.Model(&models.Configuracion{}).Where("id = ?", id).Updates(cambios)
	if res.Error != nil {
		slog.Error("configuraciones: update failed", "error", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if res.RowsAffected == 0 {
		// MySQL counts changed rows, not matched rows, so a no-op update of an
		// existing row also lands here. Only a missing row is a 404.
		var existing models.Configuracion
		err := cc.DB.Select("id").First(&existing, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
			return
		}
		if err != nil {
			slog.Error("configuraciones: lookup after update failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	var rows []models.ConfiguracionView
	err := cc.DB.Model(&models.Configuracion{}).
		Select("ph_min, ph_max, temperatura_min, temperatura_max, agitacion_recomendada AS agitacion, intervalo").
		Where("id = ?", id).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		slog.Error("configuraciones: reload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": rows[0]})
}
