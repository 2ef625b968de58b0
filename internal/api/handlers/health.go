package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/baharkarakas/book-manager/internal/api/httpx"
)

type HealthHandler struct {
	started time.Time
}

func NewHealthHandler(started time.Time) *HealthHandler {
	return &HealthHandler{started: started}
}

type healthResp struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"` // seconds
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	up := time.Since(h.started).Seconds()
	httpx.WriteJSON(w, http.StatusOK, healthResp{
		Status:    "OK",
		Timestamp: httpx.Timestamp(),
		Uptime:    math.Round(up*1000) / 1000,
	})
}
