package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_PATH", "ORDER_LOG_PATH", "DB_HOST", "REDIS_HOST", "KAFKA_BROKER", "RECOMMEND_LIMIT"} {
		t.Setenv(key, "")
	}

	s := Load()

	assert.Equal(t, "8081", s.Port)
	assert.Equal(t, "medicine_database.csv", s.CatalogPath)
	assert.Equal(t, "orders.csv", s.OrderLogPath)
	assert.Equal(t, 5, s.RecommendLimit)
	assert.False(t, s.PostgresEnabled())
	assert.False(t, s.RedisEnabled())
	assert.False(t, s.KafkaEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "meds")
	t.Setenv("DB_NAME", "dronemeds")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("RECOMMEND_LIMIT", "3")

	s := Load()

	assert.Equal(t, "9000", s.Port)
	assert.Equal(t, 3, s.RecommendLimit)
	assert.True(t, s.PostgresEnabled())
	assert.True(t, s.RedisEnabled())
	assert.True(t, s.KafkaEnabled())
	assert.Equal(t, "cache:6379", s.RedisAddr())
	assert.Contains(t, s.PostgresDSN(), "dbname=dronemeds")
	assert.Contains(t, s.PostgresDSN(), "sslmode=disable")
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("QR_SIZE", "huge")
	assert.Equal(t, 256, GetEnvInt("QR_SIZE", 256))

	t.Setenv("QR_SIZE", "-1")
	assert.Equal(t, 256, GetEnvInt("QR_SIZE", 256))
}

func TestInitLogger_Level(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	entry := InitLogger("storefront-svc")

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.Equal(t, "storefront-svc", entry.Data["service"])
}
