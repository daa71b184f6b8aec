package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/chatbot"
	"github.com/shenikar/safepoint/internal/config"
	"github.com/shenikar/safepoint/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	// streamCoalesceWindow - изменения внутри окна дают одну перезагрузку сводки
	streamCoalesceWindow = 250 * time.Millisecond
	streamKeepAlive      = 15 * time.Second
)

type Handler struct {
	incidentService  service.IncidentService
	safepointService service.SafepointService
	dashboardService service.DashboardService
	bot              chatbot.Assistant
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config

	coalesceWindow time.Duration
	keepAlive      time.Duration
}

func NewHandler(
	incidentService service.IncidentService,
	safepointService service.SafepointService,
	dashboardService service.DashboardService,
	bot chatbot.Assistant,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:  incidentService,
		safepointService: safepointService,
		dashboardService: dashboardService,
		bot:              bot,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
		coalesceWindow:   streamCoalesceWindow,
		keepAlive:        streamKeepAlive,
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForError сопоставляет категорию ошибки с HTTP-статусом
func statusForError(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindInvalidState:
		return http.StatusConflict
	case apperror.KindDataAccess:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError пишет ответ с ошибкой. Детали ошибок хранилища в ответ не попадают.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	status := statusForError(err)
	switch status {
	case http.StatusServiceUnavailable:
		log.WithError(err).Error("Data store unavailable")
		c.JSON(status, gin.H{"error": "service temporarily unavailable"})
	case http.StatusInternalServerError:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(status, gin.H{"error": "internal server error"})
	default:
		log.WithError(err).Warn("Request rejected by service")
		msg := err.Error()
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Msg != "" {
			msg = appErr.Msg
		}
		c.JSON(status, gin.H{"error": msg})
	}
}
