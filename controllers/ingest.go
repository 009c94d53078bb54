package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ezequiel060805/allge-care-apis/models"
	"github.com/Ezequiel060805/allge-care-apis/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IngestController receives sensor readings from the monitoring device,
// raises alerts against the configured thresholds, and feeds the live feed.
type IngestController struct {
	DB  *gorm.DB
	Hub *WebsocketHub
}

func NewIngestController(db *gorm.DB, hub *WebsocketHub) *IngestController {
	return &IngestController{DB: db, Hub: hub}
}

type medicionInput struct {
	PhValor          float64 `json:"ph_valor"`
	TemperaturaValor float64 `json:"temperatura_valor"`
	LuzPresente      bool    `json:"luz_presente"`
}

// ReceiveMedicion stores an incoming reading stamped with the server clock.
// If the reading falls outside the configured pH or temperature range an
// alert row is recorded alongside it.
func (ic *IngestController) ReceiveMedicion(c *gin.Context) {
	var in medicionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	now := time.Now()
	m := models.Medicion{
		PhValor:          in.PhValor,
		TemperaturaValor: in.TemperaturaValor,
		LuzPresente:      in.LuzPresente,
		DiaRegistro:      now.Format("2006-01-02"),
		HoraRegistro:     now.Format("15:04:05"),
		FechaRegistro:    now,
	}
	if err := ic.DB.Create(&m).Error; err != nil {
		slog.Error("mediciones: insert failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ic.Hub.BroadcastUpdate(m)

	// No configuration row means no thresholds to enforce yet.
	var cfg models.Configuracion
	err := ic.DB.First(&cfg).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("mediciones: configuration lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err == nil {
		if alerta := utils.EvaluarMedicion(m, cfg); alerta != nil {
			if err := ic.DB.Create(alerta).Error; err != nil {
				slog.Error("alertas: insert failed", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			ic.Hub.BroadcastNotification(*alerta)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data received successfully"})
}
