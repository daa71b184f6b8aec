package service

import (
	"context"
	"errors"
	"time"

	"github.com/Songmu/retry"
	"github.com/shenikar/safepoint/internal/apperror"
)

// StorePolicy - ограничения на обращения к хранилищу: таймаут на попытку и число повторов для чтения
type StorePolicy struct {
	Timeout  time.Duration
	Attempts uint
	Delay    time.Duration
}

// DefaultStorePolicy используется, если политика не задана
var DefaultStorePolicy = StorePolicy{
	Timeout:  5 * time.Second,
	Attempts: 3,
	Delay:    200 * time.Millisecond,
}

func (p StorePolicy) normalized() StorePolicy {
	if p.Timeout <= 0 {
		p.Timeout = DefaultStorePolicy.Timeout
	}
	if p.Attempts == 0 {
		p.Attempts = 1
	}
	return p
}

// read выполняет идемпотентное чтение с повторами. Ошибки "не найдено" и отмена контекста не повторяются.
func (p StorePolicy) read(ctx context.Context, fn func(ctx context.Context) error) error {
	p = p.normalized()
	var final error
	err := retry.Retry(p.Attempts, p.Delay, func() error {
		if ctx.Err() != nil {
			final = ctx.Err()
			return nil
		}
		callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
		defer cancel()

		err := fn(callCtx)
		if err == nil || isPermanent(err) {
			final = err
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	return final
}

// write выполняет неидемпотентную запись ровно один раз с таймаутом
func (p StorePolicy) write(ctx context.Context, fn func(ctx context.Context) error) error {
	p = p.normalized()
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()
	return fn(callCtx)
}

func isPermanent(err error) bool {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound, apperror.KindInvalidState, apperror.KindValidation:
		return true
	}
	return errors.Is(err, context.Canceled)
}

// classify оставляет ошибки приложения как есть, остальное считает ошибкой доступа к данным
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if apperror.KindOf(err) != "" {
		return err
	}
	return apperror.DataAccess(op, err)
}
