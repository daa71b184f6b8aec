package v1

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/safepoint/internal/events"
	"github.com/shenikar/safepoint/internal/service"
)

// @Summary Recent incidents
// @Description Newest incidents in any status with their safepoint. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Number of incidents" default(10)
// @Success 200 {array} IncidentSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Data store unavailable"
// @Router /dashboard/incidents [get]
func (h *Handler) recentIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "recentIncidents")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultRecentLimit)))

	incidents, err := h.dashboardService.RecentIncidents(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentSummaryResponses(incidents))
}

// @Summary Get dashboard statistics
// @Description Incidents today, average response time and active incidents. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Data store unavailable"
// @Router /dashboard/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
}

// @Summary Stream dashboard updates
// @Description Server-sent events: a "stats" event on connect and after incident changes. Requires API key.
// @Tags Dashboard
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse "stats event payload"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /dashboard/stream [get]
func (h *Handler) streamDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	log := h.logger.WithField("method", "streamDashboard")

	// Буфер на одно событие: пока перезагрузка не выполнена, новые изменения не накапливаются
	changes := make(chan struct{}, 1)
	unsubscribe := h.dashboardService.Subscribe(func(context.Context, events.ChangeEvent) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	pushStats := func() {
		stats, err := h.dashboardService.Stats(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to reload stats for stream")
			c.SSEvent("error", gin.H{"error": "stats unavailable"})
		} else {
			c.SSEvent("stats", ModelToStatsResponse(stats))
		}
		c.Writer.Flush()
	}

	log.Debug("Dashboard stream opened")
	pushStats()

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Dashboard stream closed")
			return
		case <-keepAlive.C:
			c.SSEvent("ping", time.Now().Unix())
			c.Writer.Flush()
		case <-changes:
			timer := time.NewTimer(h.coalesceWindow)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			select {
			case <-changes:
			default:
			}
			pushStats()
		}
	}
}
