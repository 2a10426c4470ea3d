package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Settings struct {
	Port           string
	CatalogPath    string
	OrderLogPath   string
	UPIID          string
	PayeeName      string
	GeoIPURL       string
	RecommendLimit int
	QRSize         int

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string

	KafkaBroker string
	OrdersTopic string
}

// Load reads an optional .env file and then the process environment.
func Load() Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("could not read .env file")
	}

	return Settings{
		Port:           GetEnv("PORT", "8081"),
		CatalogPath:    GetEnv("CATALOG_PATH", "medicine_database.csv"),
		OrderLogPath:   GetEnv("ORDER_LOG_PATH", "orders.csv"),
		UPIID:          GetEnv("UPI_ID", "mastermahesh17@okhdfcbank"),
		PayeeName:      GetEnv("PAYEE_NAME", "DroneMeds"),
		GeoIPURL:       GetEnv("GEOIP_URL", "https://ipinfo.io"),
		RecommendLimit: GetEnvInt("RECOMMEND_LIMIT", 5),
		QRSize:         GetEnvInt("QR_SIZE", 256),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     os.Getenv("DB_NAME"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),

		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: GetEnv("REDIS_PORT", "6379"),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		OrdersTopic: GetEnv("ORDERS_TOPIC", "orders"),
	}
}

func (s Settings) PostgresEnabled() bool { return s.DBHost != "" }

func (s Settings) RedisEnabled() bool { return s.RedisHost != "" }

func (s Settings) KafkaEnabled() bool { return s.KafkaBroker != "" }

func (s Settings) PostgresDSN() string {
	return "host=" + s.DBHost + " port=" + s.DBPort + " user=" + s.DBUser +
		" password=" + s.DBPassword + " dbname=" + s.DBName + " sslmode=disable"
}

func (s Settings) RedisAddr() string {
	return s.RedisHost + ":" + s.RedisPort
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func MustInitPostgres(s Settings) *sql.DB {
	db, err := sql.Open("postgres", s.PostgresDSN())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(s Settings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: s.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to Redis")
	}

	return client
}

func NewKafkaReader(s Settings, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.KafkaBroker},
		Topic:   s.OrdersTopic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(s Settings) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(s.KafkaBroker),
		Topic:    s.OrdersTopic,
		Balancer: &kafka.LeastBytes{},
	}
}
