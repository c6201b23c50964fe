package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmkvsk/JSR-FleetService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, повторите позже"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RateLimit ограничивает частоту запросов по IP клиента.
// Счетчики живут в Redis: фиксированное окно длиной window на ключ.
// При недоступности Redis запросы пропускаются, ограничитель
// не должен ронять сервис.
func RateLimit(client *redis.Client, limit int, window time.Duration, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			bucket := time.Now().Unix() / int64(window.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%d", ip, bucket)

			count, err := client.Incr(r.Context(), key).Result()
			if err != nil {
				log.Error("RateLimit: redis error, allowing request: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			if count == 1 {
				client.Expire(r.Context(), key, window)
			}

			if count > int64(limit) {
				log.Warn("RateLimit: too many requests from %s (%d per window)", ip, count)
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
