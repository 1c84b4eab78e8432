package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port         string
	DB           DBConfig
	RedisAddr    string
	KafkaBrokers []string
	JWTSecret    string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Leave LeavePolicyConfig
	Admin AdminSeedConfig
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

// LeavePolicyConfig adalah jatah cuti tahunan per kategori.
// Dibaca sekali saat proses start, setelah itu immutable.
type LeavePolicyConfig struct {
	AnnualDays    int
	SickDays      int
	CasualDays    int
	EmergencyDays int
}

// AdminSeedConfig adalah akun administrator awal yang di-seed saat start.
// Password default hanya untuk development; produksi wajib set ADMIN_PASSWORD.
type AdminSeedConfig struct {
	EmployeeNumber string
	FirstName      string
	LastName       string
	Email          string
	Password       string
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "3000"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "lms"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		Leave: LeavePolicyConfig{
			AnnualDays:    getEnvInt("ANNUAL_LEAVE_DAYS", 12),
			SickDays:      getEnvInt("SICK_LEAVE_DAYS", 10),
			CasualDays:    getEnvInt("CASUAL_LEAVE_DAYS", 7),
			EmergencyDays: getEnvInt("EMERGENCY_LEAVE_DAYS", 5),
		},
		Admin: AdminSeedConfig{
			EmployeeNumber: getEnv("ADMIN_EMPLOYEE_NUMBER", "ADMIN001"),
			FirstName:      getEnv("ADMIN_FIRST_NAME", "System"),
			LastName:       getEnv("ADMIN_LAST_NAME", "Administrator"),
			Email:          getEnv("ADMIN_EMAIL", "admin@textile.com"),
			Password:       getEnv("ADMIN_PASSWORD", "admin123"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
