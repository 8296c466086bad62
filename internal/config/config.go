package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gridironhq/nfl-companion/internal/domain/nfl"
	"github.com/gridironhq/nfl-companion/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                          string
	ServiceName                     string
	ServiceVersion                  string
	HTTPAddr                        string
	ReadTimeout                     time.Duration
	WriteTimeout                    time.Duration
	CORSAllowedOrigins              []string
	CacheEnabled                    bool
	CacheTTL                        time.Duration
	SeasonCutoffMonth               time.Month
	PlayoffOverrideTeams            []string
	Owners                          []nfl.Owner
	SportsDataAPIKey                string
	SportsDataBaseURL               string
	SportsDataTimeout               time.Duration
	SportsDataMaxRetries            int
	SportsDataCircuitEnabled        bool
	SportsDataCircuitFailureCount   int
	SportsDataCircuitOpenTimeout    time.Duration
	SportsDataCircuitHalfOpenMaxReq int
	ESPNSiteAPIBaseURL              string
	ESPNWebAPIBaseURL               string
	ESPNCDNBaseURL                  string
	ESPNTimeout                     time.Duration
	ESPNMaxRetries                  int
	ESPNCircuitEnabled              bool
	ESPNCircuitFailureCount         int
	ESPNCircuitOpenTimeout          time.Duration
	ESPNCircuitHalfOpenMaxReq       int
	PprofEnabled                    bool
	PprofAddr                       string
	UptraceEnabled                  bool
	UptraceDSN                      string
	PyroscopeEnabled                bool
	PyroscopeServerAddress          string
	PyroscopeAppName                string
	PyroscopeAuthToken              string
	PyroscopeBasicAuthUser          string
	PyroscopeBasicAuthPassword      string
	PyroscopeUploadRate             time.Duration
	LogLevel                        logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	seasonCutoffMonth, err := getEnvAsInt("SEASON_CUTOFF_MONTH", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON_CUTOFF_MONTH: %w", err)
	}
	if seasonCutoffMonth < 1 || seasonCutoffMonth > 12 {
		return Config{}, fmt.Errorf("SEASON_CUTOFF_MONTH must be between 1 and 12")
	}

	owners, err := parseOwnerMap(getEnv("OWNER_TEAMS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse OWNER_TEAMS: %w", err)
	}

	sportsDataTimeout, err := time.ParseDuration(getEnv("SPORTSDATA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_TIMEOUT: %w", err)
	}
	if sportsDataTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_TIMEOUT must be > 0")
	}
	sportsDataMaxRetries, err := getEnvAsInt("SPORTSDATA_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_MAX_RETRIES: %w", err)
	}
	if sportsDataMaxRetries < 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_MAX_RETRIES must be >= 0")
	}
	sportsDataCircuitEnabled, err := strconv.ParseBool(getEnv("SPORTSDATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_ENABLED: %w", err)
	}
	sportsDataCircuitFailureCount, err := getEnvAsInt("SPORTSDATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sportsDataCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sportsDataCircuitOpenTimeout, err := time.ParseDuration(getEnv("SPORTSDATA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sportsDataCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sportsDataCircuitHalfOpenMaxReq, err := getEnvAsInt("SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sportsDataCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	espnTimeout, err := time.ParseDuration(getEnv("ESPN_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_TIMEOUT: %w", err)
	}
	if espnTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_TIMEOUT must be > 0")
	}
	espnMaxRetries, err := getEnvAsInt("ESPN_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_MAX_RETRIES: %w", err)
	}
	if espnMaxRetries < 0 {
		return Config{}, fmt.Errorf("ESPN_MAX_RETRIES must be >= 0")
	}
	espnCircuitEnabled, err := strconv.ParseBool(getEnv("ESPN_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_ENABLED: %w", err)
	}
	espnCircuitFailureCount, err := getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if espnCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	espnCircuitOpenTimeout, err := time.ParseDuration(getEnv("ESPN_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if espnCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	espnCircuitHalfOpenMaxReq, err := getEnvAsInt("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if espnCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                          appEnv,
		ServiceName:                     getEnv("APP_SERVICE_NAME", "nfl-companion-api"),
		ServiceVersion:                  getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                        getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                     readTimeout,
		WriteTimeout:                    writeTimeout,
		CORSAllowedOrigins:              splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheEnabled:                    cacheEnabled,
		CacheTTL:                        cacheTTL,
		SeasonCutoffMonth:               time.Month(seasonCutoffMonth),
		PlayoffOverrideTeams:            splitCSV(getEnv("PLAYOFF_OVERRIDE_TEAMS", "")),
		Owners:                          owners,
		SportsDataAPIKey:                strings.TrimSpace(getEnv("SPORTSDATA_API_KEY", "")),
		SportsDataBaseURL:               strings.TrimSpace(getEnv("SPORTSDATA_BASE_URL", "https://api.sportsdata.io/v3/nfl")),
		SportsDataTimeout:               sportsDataTimeout,
		SportsDataMaxRetries:            sportsDataMaxRetries,
		SportsDataCircuitEnabled:        sportsDataCircuitEnabled,
		SportsDataCircuitFailureCount:   sportsDataCircuitFailureCount,
		SportsDataCircuitOpenTimeout:    sportsDataCircuitOpenTimeout,
		SportsDataCircuitHalfOpenMaxReq: sportsDataCircuitHalfOpenMaxReq,
		ESPNSiteAPIBaseURL:              strings.TrimSpace(getEnv("ESPN_SITE_API_BASE_URL", "")),
		ESPNWebAPIBaseURL:               strings.TrimSpace(getEnv("ESPN_WEB_API_BASE_URL", "")),
		ESPNCDNBaseURL:                  strings.TrimSpace(getEnv("ESPN_CDN_BASE_URL", "")),
		ESPNTimeout:                     espnTimeout,
		ESPNMaxRetries:                  espnMaxRetries,
		ESPNCircuitEnabled:              espnCircuitEnabled,
		ESPNCircuitFailureCount:         espnCircuitFailureCount,
		ESPNCircuitOpenTimeout:          espnCircuitOpenTimeout,
		ESPNCircuitHalfOpenMaxReq:       espnCircuitHalfOpenMaxReq,
		PprofEnabled:                    pprofEnabled,
		PprofAddr:                       pprofAddr,
		UptraceEnabled:                  uptraceEnabled,
		UptraceDSN:                      uptraceDSN,
		PyroscopeEnabled:                pyroscopeEnabled,
		PyroscopeServerAddress:          pyroscopeServerAddress,
		PyroscopeAuthToken:              strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:          strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:             pyroscopeUploadRate,
		LogLevel:                        parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

// HasSportsDataKey gates the paid provider. A missing key is a silent
// feature flag, not a configuration error.
func (c Config) HasSportsDataKey() bool {
	return c.SportsDataAPIKey != ""
}

func parseAppEnv(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case EnvDev, "development":
		return EnvDev, nil
	case EnvStage, "staging":
		return EnvStage, nil
	case EnvProd, "production":
		return EnvProd, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q", v)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseOwnerMap reads "Alice:patriots|seahawks,Bob:chiefs|49ers" into owner
// rosters. An empty value disables the leaderboard endpoint.
func parseOwnerMap(raw string) ([]nfl.Owner, error) {
	out := make([]nfl.Owner, 0, 8)
	for _, part := range strings.Split(raw, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}

		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid owner item %q, expected name:team|team", item)
		}

		owner := nfl.Owner{Name: strings.TrimSpace(segments[0])}
		for _, id := range strings.Split(segments[1], "|") {
			teamID := strings.TrimSpace(id)
			if teamID == "" {
				continue
			}
			owner.TeamIDs = append(owner.TeamIDs, teamID)
		}
		if err := owner.Validate(); err != nil {
			return nil, err
		}
		out = append(out, owner)
	}

	return out, nil
}
