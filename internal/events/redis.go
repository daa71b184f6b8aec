package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultChannel - канал Redis Pub/Sub для событий об обращениях
const DefaultChannel = "safepoint:incidents"

// RedisPublisher публикует события в канал Redis, чтобы их получили все инстансы
type RedisPublisher struct {
	redisClient *redis.Client
	channel     string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{
		redisClient: client,
		channel:     channel,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, event ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}
	if err := p.redisClient.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event to Redis: %w", err)
	}
	return nil
}

// Пауза перед повторной подпиской растет от subscribeBaseDelay до subscribeMaxDelay
const (
	subscribeBaseDelay = 500 * time.Millisecond
	subscribeMaxDelay  = 30 * time.Second
)

// RedisSubscriber читает канал Redis и передает события в локальную шину
type RedisSubscriber struct {
	redisClient *redis.Client
	channel     string
	logger      *logrus.Logger
}

func NewRedisSubscriber(client *redis.Client, channel string, logger *logrus.Logger) *RedisSubscriber {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisSubscriber{
		redisClient: client,
		channel:     channel,
		logger:      logger,
	}
}

// Listen держит подписку до отмены контекста, переподписываясь с экспоненциальной паузой
func (s *RedisSubscriber) Listen(ctx context.Context, target Publisher) {
	log := s.logger.WithField("channel", s.channel)
	keepRunning(ctx, log, subscribeBaseDelay, subscribeMaxDelay, func(ctx context.Context) error {
		return s.Run(ctx, target)
	})
}

// keepRunning перезапускает run, пока контекст не отменен. Пауза сбрасывается,
// если предыдущий запуск проработал дольше maxDelay.
func keepRunning(ctx context.Context, log *logrus.Entry, baseDelay, maxDelay time.Duration, run func(ctx context.Context) error) {
	delay := baseDelay
	for {
		started := time.Now()
		err := run(ctx)
		if ctx.Err() != nil {
			return
		}
		if time.Since(started) > maxDelay {
			delay = baseDelay
		}
		log.WithError(err).WithField("retry_in", delay.String()).Error("Change event subscriber stopped, resubscribing")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		delay = min(delay*2, maxDelay)
	}
}

// Run блокируется до отмены контекста или обрыва подписки
func (s *RedisSubscriber) Run(ctx context.Context, target Publisher) error {
	log := s.logger.WithField("channel", s.channel)

	pubsub := s.redisClient.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	// Дожидаемся подтверждения подписки
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to change events: %w", err)
	}
	log.Info("Subscribed to incident change events")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping change event subscriber.")
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errors.New("change event channel closed")
			}
			var event ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.WithError(err).Error("Failed to unmarshal change event from Redis")
				continue
			}
			if err := target.Publish(ctx, event); err != nil {
				log.WithError(err).Warn("Failed to dispatch change event")
			}
		}
	}
}
