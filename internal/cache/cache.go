package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache é lido pelos endpoints de capacidade e invalidado a cada
// escrita de agendamento. Falha de cache nunca falha a requisição.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

// NoopCache mantém a API funcionando sem redis configurado.
type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (*NoopCache) Get(context.Context, string) (string, bool) { return "", false }

func (*NoopCache) Set(context.Context, string, string, time.Duration) {}

func (*NoopCache) Delete(context.Context, ...string) {}

// ---------- chaves ----------

func DayCapacityKey(date string) string {
	return "capacity:day:" + date
}

func MonthUtilizationKey(year, month int) string {
	return fmt.Sprintf("capacity:month:%04d-%02d", year, month)
}
