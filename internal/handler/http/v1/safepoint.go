package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary List safepoints
// @Description List active safepoints ordered by name, optionally for one city
// @Tags Safepoints
// @Accept json
// @Produce json
// @Param city query string false "City filter"
// @Success 200 {array} SafepointResponse
// @Failure 503 {object} map[string]string "Data store unavailable"
// @Router /safepoints [get]
func (h *Handler) listSafepoints(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	log := h.logger.WithField("method", "listSafepoints").WithField("city", city)

	safepoints, err := h.safepointService.ListSafepoints(c.Request.Context(), city)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSafepointResponses(safepoints))
}

// @Summary Find nearest safepoints
// @Description Active safepoints sorted by distance from the given point
// @Tags Safepoints
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param limit query int false "Number of safepoints" default(3)
// @Success 200 {array} NearestSafepointResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 503 {object} map[string]string "Data store unavailable"
// @Router /safepoints/nearest [get]
func (h *Handler) nearestSafepoints(c *gin.Context) {
	log := h.logger.WithField("method", "nearestSafepoints")

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	ranked, err := h.safepointService.NearestSafepoints(c.Request.Context(), lat, lon, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearestResponses(ranked))
}

// @Summary Get the current code phrase
// @Description The phrase a person says at a safepoint to ask for help discreetly
// @Tags Safepoints
// @Accept json
// @Produce json
// @Success 200 {object} CodePhraseResponse
// @Router /code-phrase [get]
func (h *Handler) getCodePhrase(c *gin.Context) {
	c.JSON(http.StatusOK, CodePhraseResponse{CodePhrase: h.safepointService.CodePhrase(c.Request.Context())})
}
