package config

import (
	"os"
	"strconv"
)

// Config twa-synth 服务配置
type Config struct {
	HTTP struct {
		Addr string
	}
	Log struct {
		Level  string
		Format string
	}
	// Generation 生成默认值（CLI/HTTP 请求未显式给出时使用）
	Generation struct {
		Subjects int
		Months   int
		Workers  int
		Seed     int64
	}
	// CalibrationPath 可选 YAML 校准文件（覆盖模型数值常数），为空则用内置默认表
	CalibrationPath string
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.Generation.Subjects = parseInt(getEnv("SYNTH_SUBJECTS", "100"), 100)
	cfg.Generation.Months = parseInt(getEnv("SYNTH_MONTHS", "12"), 12)
	cfg.Generation.Workers = parseInt(getEnv("SYNTH_WORKERS", "0"), 0)
	cfg.Generation.Seed = parseInt64(getEnv("SYNTH_SEED", "0"), 0)

	cfg.CalibrationPath = getEnv("SYNTH_CALIBRATION", "")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseInt64(s string, def int64) int64 {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return i
}
