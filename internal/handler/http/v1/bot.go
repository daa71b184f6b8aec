package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Start a bot conversation
// @Description First message of the support bot
// @Tags Bot
// @Accept json
// @Produce json
// @Success 200 {object} BotReplyResponse
// @Router /bot/greeting [get]
func (h *Handler) botGreeting(c *gin.Context) {
	c.JSON(http.StatusOK, BotReplyToResponse(h.bot.Greeting(c.Request.Context())))
}

// @Summary Send a message to the bot
// @Description Send a tapped option or free text and get the bot reply
// @Tags Bot
// @Accept json
// @Produce json
// @Param message body BotMessageRequest true "Option label or free text"
// @Success 200 {object} BotReplyResponse
// @Failure 400 {object} map[string]string "Invalid request body or unknown option"
// @Router /bot/messages [post]
func (h *Handler) botMessage(c *gin.Context) {
	var input BotMessageRequest
	log := h.logger.WithField("method", "botMessage")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.bot.Respond(c.Request.Context(), DTOToBotRequest(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, BotReplyToResponse(reply))
}
