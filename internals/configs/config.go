package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseAnonKey    string
	SupabaseJWTSecret  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	SupabaseURL = GetEnv("SUPABASE_PROJECT_URL")
	SupabaseServiceKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY")
	SupabaseAnonKey = GetEnv("SUPABASE_ANON_KEY")
	SupabaseJWTSecret = GetEnv("SUPABASE_JWT_SECRET")

	if SupabaseURL == "" {
		log.Println("❌ SUPABASE_PROJECT_URL is not set!")
	}
	if SupabaseServiceKey == "" {
		log.Println("❌ SUPABASE_SERVICE_ROLE_KEY is not set!")
	}
	if SupabaseJWTSecret == "" {
		log.Println("❌ SUPABASE_JWT_SECRET is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// IsProduction reports whether the app runs with production cookie flags.
func IsProduction() bool {
	return GetEnv("APP_ENV") == "production"
}

// MaxUploadBytes is the per-file upload cap (default 50MB).
func MaxUploadBytes() int64 {
	return int64(GetEnvInt("MAX_UPLOAD_MB", 50)) * 1024 * 1024
}
