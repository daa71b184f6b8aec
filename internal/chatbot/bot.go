package chatbot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/shenikar/safepoint/internal/apperror"
	"github.com/shenikar/safepoint/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=bot.go -destination=mocks/mock_bot.go -package=mocks

const (
	// DefaultLatitude и DefaultLongitude - Sandton City, если клиент не передал координаты
	DefaultLatitude  = -26.1076
	DefaultLongitude = 28.0567

	nearestCount = 3
)

// Locator - поиск ближайших точек
type Locator interface {
	NearestSafepoints(ctx context.Context, lat, lon float64, limit int) ([]*models.RankedSafepoint, error)
}

// Assistant - интерфейс бота для обработчиков HTTP
type Assistant interface {
	Greeting(ctx context.Context) Reply
	Respond(ctx context.Context, req Request) (Reply, error)
}

// Message - одно сообщение бота, с кнопками или без
type Message struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// Reply - ответ бота на одно действие пользователя
type Reply struct {
	Step     Step      `json:"step"`
	Messages []Message `json:"messages"`
}

// Request - нажатая кнопка или введенный текст. Option имеет приоритет над Text.
type Request struct {
	Option    string
	Text      string
	Latitude  *float64
	Longitude *float64
}

type responder func(ctx context.Context, b *Bot, req Request) []Message

// responses - ответ на каждый шаг сценария
var responses = map[Step]responder{
	StepGreeting: static(Message{
		Text:    "Hello! You've reached FNB SafePoint. Are you safe right now?",
		Options: []string{OptionYes, OptionNo},
	}),
	StepNotSafe: func(ctx context.Context, b *Bot, req Request) []Message {
		msgs := []Message{{Text: "I understand you need help. Here are the 3 nearest SafePoints to you:"}}
		nearest, ok := b.nearest(ctx, req)
		if !ok {
			return append(msgs, locationsUnavailable())
		}
		for i, sp := range nearest {
			msgs = append(msgs, Message{Text: fmt.Sprintf("%d. %s\n📍 %s\n🚶 %.1fkm away\n⏰ %s", i+1, sp.Name, sp.Address, sp.DistanceKm, sp.Hours)})
		}
		return append(msgs, Message{
			Text:    "What would you like to do?",
			Options: []string{OptionFindDirections, OptionCallHelpline, OptionRequestTransport, OptionSendAlert},
		})
	},
	StepSafe: static(Message{
		Text:    "I'm glad you're safe. How can I help you today?",
		Options: []string{OptionFindNearest, OptionLearnAbout, OptionEmergencyContacts},
	}),
	StepDirections: func(ctx context.Context, b *Bot, req Request) []Message {
		nearest, ok := b.nearest(ctx, req)
		if !ok {
			return []Message{locationsUnavailable()}
		}
		first := nearest[0]
		return []Message{
			{Text: fmt.Sprintf("Opening directions to %s...\n\n📍 Google Maps link: https://maps.google.com/?q=%v,%v", first.Name, first.Latitude, first.Longitude)},
			{Text: "Is there anything else I can help with?", Options: []string{OptionCallHelpline, OptionRequestTransport, OptionSafeNow}},
		}
	},
	StepHelpline: func(_ context.Context, b *Bot, _ Request) []Message {
		return []Message{
			{Text: fmt.Sprintf("Connecting you to GBV Command Centre (24/7)...\n\n☎️ Call connecting now\n📞 Reference: SP%d", b.intn(10000))},
			{Text: "✅ Connected to counselor. They will help you from here.\n\nYou can also:", Options: []string{OptionRequestTransport, OptionSendAlert, OptionEndChat}},
		}
	},
	StepTransport: func(_ context.Context, b *Bot, _ Request) []Message {
		voucher := fmt.Sprintf("%d-%d", 1000+b.intn(9000), 1000+b.intn(9000))
		return []Message{
			{Text: fmt.Sprintf("🎫 Transport voucher issued!\n\nCode: %s\nAmount: R150 eWallet\nValid: 4 hours\n\nUse for Uber/Bolt to:\n• Police station\n• Hospital\n• Shelter\n• Trusted person's address", voucher)},
			{Text: "The voucher has been sent to your phone. Stay safe.", Options: []string{OptionCallHelpline, OptionEndChat}},
		}
	},
	StepAlertContact: static(Message{
		Text: "📱 Who should I notify?\n\nPlease type their name and number, or say 'Mom', 'Dad', 'Friend', etc.",
	}),
	StepFindSafepoints: func(ctx context.Context, b *Bot, req Request) []Message {
		msgs := []Message{{Text: "Here are SafePoints near you:"}}
		nearest, ok := b.nearest(ctx, req)
		if !ok {
			return append(msgs, locationsUnavailable())
		}
		for i, sp := range nearest {
			msgs = append(msgs, Message{Text: fmt.Sprintf("%d. %s\n📍 %.1fkm away\n⏰ %s", i+1, sp.Name, sp.DistanceKm, sp.Hours)})
		}
		return append(msgs, Message{
			Text:    "Would you like directions to any of these?",
			Options: []string{OptionGetDirections, OptionCallHelpline, OptionBackToMenu},
		})
	},
	StepAbout: static(Message{
		Text:    "SafePoint is a network of safe locations where you can:\n\n✓ Ask for help discreetly\n✓ Connect to counselors\n✓ Get transport to safety\n✓ Contact police if needed\n\nAll FNB branches, many ATMs, and partner stores are SafePoints.",
		Options: []string{OptionFindNearest, OptionBackToMenu},
	}),
	StepEmergencyContacts: static(Message{
		Text:    "📞 Emergency Contacts:\n\nGBV Command Centre: 0800 428 428\nSAPS: 10111\nLifeline: 0861 322 322\nTEARS Foundation: 010 590 5920\n\nThese are available 24/7.",
		Options: []string{OptionCallHelpline, OptionFindSafepoints, OptionBackToMenu},
	}),
	StepEnd: static(Message{
		Text: "I'm glad you're safe. Remember, SafePoint is here whenever you need help.\n\n💙 Stay safe.",
	}),
	StepMenu: static(Message{
		Text:    "How can I help you?",
		Options: []string{OptionFindNearest, OptionCallHelpline, OptionRequestTransport, OptionEmergencyContacts},
	}),
	StepAskSafety: static(Message{
		Text:    "Are you safe right now?",
		Options: []string{OptionYes, OptionNo},
	}),
	StepAlertSent: func(_ context.Context, _ *Bot, req Request) []Message {
		return []Message{{
			Text:    fmt.Sprintf("✅ Alert sent to %s!\n\nThey will receive:\n• Your approximate location\n• Message: \"I need help\"\n• SafePoint contact info", strings.TrimSpace(req.Text)),
			Options: []string{OptionCallHelpline, OptionRequestTransport, OptionEndChat},
		}}
	},
	StepCapabilities: static(Message{
		Text:    "I can help you with:\n\n• Finding nearest SafePoints\n• Connecting to helpline\n• Requesting transport\n• Sending alerts",
		Options: []string{OptionFindSafepoints, OptionCallHelpline, OptionRequestTransport},
	}),
}

func static(msgs ...Message) responder {
	return func(context.Context, *Bot, Request) []Message {
		return msgs
	}
}

func locationsUnavailable() Message {
	return Message{
		Text:    "Sorry, I can't load nearby SafePoints right now. Please call the GBV Command Centre on 0800 428 428.",
		Options: []string{OptionCallHelpline, OptionBackToMenu},
	}
}

// Bot - сценарный помощник. Состояние разговора не хранится, каждый ответ зависит только от запроса.
type Bot struct {
	locator Locator
	logger  *logrus.Logger
	intn    func(n int) int
}

// BotOption настраивает Bot
type BotOption func(*Bot)

// WithRandom подменяет источник случайных номеров обращений и ваучеров
func WithRandom(intn func(n int) int) BotOption {
	return func(b *Bot) {
		b.intn = intn
	}
}

func NewBot(locator Locator, logger *logrus.Logger, opts ...BotOption) *Bot {
	b := &Bot{
		locator: locator,
		logger:  logger,
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Greeting - первое сообщение разговора
func (b *Bot) Greeting(ctx context.Context) Reply {
	return b.reply(ctx, StepGreeting, Request{})
}

// Respond отвечает на нажатую кнопку или введенный текст
func (b *Bot) Respond(ctx context.Context, req Request) (Reply, error) {
	const op = "chatbot.Respond"
	option := strings.TrimSpace(req.Option)
	if option != "" {
		step, ok := StepForOption(option)
		if !ok {
			return Reply{}, apperror.Validation(op, "unknown option %q", option)
		}
		return b.reply(ctx, step, req), nil
	}

	if strings.TrimSpace(req.Text) == "" {
		return Reply{}, apperror.Validation(op, "option or text is required")
	}
	return b.reply(ctx, ClassifyText(req.Text), req), nil
}

// ClassifyText выбирает шаг по свободному тексту
func ClassifyText(text string) Step {
	msg := strings.ToLower(text)
	switch {
	case strings.Contains(msg, "help") || strings.Contains(msg, "safe"):
		return StepAskSafety
	case strings.Contains(msg, "mom") || strings.Contains(msg, "dad") || strings.Contains(msg, "friend"):
		return StepAlertSent
	default:
		return StepCapabilities
	}
}

func (b *Bot) reply(ctx context.Context, step Step, req Request) Reply {
	b.logger.WithFields(logrus.Fields{
		"component": "chatbot",
		"step":      step,
	}).Debug("Bot responding")
	return Reply{Step: step, Messages: responses[step](ctx, b, req)}
}

// nearest ищет ближайшие точки. false - список недоступен или пуст.
func (b *Bot) nearest(ctx context.Context, req Request) ([]*models.RankedSafepoint, bool) {
	lat, lon := DefaultLatitude, DefaultLongitude
	if req.Latitude != nil && req.Longitude != nil {
		lat, lon = *req.Latitude, *req.Longitude
	}

	nearest, err := b.locator.NearestSafepoints(ctx, lat, lon, nearestCount)
	if err != nil {
		b.logger.WithFields(logrus.Fields{
			"component": "chatbot",
			"latitude":  lat,
			"longitude": lon,
		}).WithError(err).Warn("Failed to load nearest safepoints")
		return nil, false
	}
	return nearest, len(nearest) > 0
}
