package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"markdown-task-calendar/internal/colorrule"
	"markdown-task-calendar/pkg/dateparser"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Markdown tasks
	Parser   ParserConfig
	Schedule ScheduleConfig
	Colors   colorrule.ColorSettings

	// Google Calendar publication
	GoogleCalendar GoogleCalendarConfig
	Sync           SyncConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type ParserConfig struct {
	Timezone string
	Grammar  dateparser.Grammar
	Priority []dateparser.DateFieldType // nil means the default order
}

type ScheduleConfig struct {
	DefaultFormat dateparser.Format
	CacheSize     int
	CacheTTL      time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type SyncConfig struct {
	Files []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(viper.GetViper())
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Parser
	cfg.Parser.Timezone = v.GetString("parser.timezone")
	cfg.Parser.Grammar = dateparser.Grammar(strings.ToLower(strings.TrimSpace(v.GetString("parser.grammar"))))
	if !cfg.Parser.Grammar.IsValid() {
		return nil, fmt.Errorf("parser.grammar: unknown grammar %q", cfg.Parser.Grammar)
	}
	if v.IsSet("parser.priority") {
		names := stringList(v.Get("parser.priority"))
		if len(names) > 0 {
			priority, err := dateparser.ParsePriority(names)
			if err != nil {
				return nil, fmt.Errorf("parser.priority: %w", err)
			}
			cfg.Parser.Priority = priority
		}
	}

	// Schedule
	format, err := defaultFormat(v.GetString("schedule.default_format"), v.GetString("schedule.dataview_style"), cfg.Parser.Grammar)
	if err != nil {
		return nil, err
	}
	cfg.Schedule.DefaultFormat = format
	cfg.Schedule.CacheSize = v.GetInt("schedule.cache_size")
	cfg.Schedule.CacheTTL = v.GetDuration("schedule.cache_ttl")

	// Colors
	colors, err := loadColors(v)
	if err != nil {
		return nil, err
	}
	cfg.Colors = colors

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Sync: yaml list or comma separated env value
	cfg.Sync.Files = stringList(v.Get("sync.files"))

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.grammar", "")
	viper.SetDefault("schedule.dataview_style", "bracket")
	viper.SetDefault("schedule.cache_size", 1024)
	viper.SetDefault("schedule.cache_ttl", "10m")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")
}

// defaultFormat resolves the format of created lines. An empty name follows
// the parser grammar; "dataview" picks the bracket or paren style. The
// format must be readable under grammar or created lines lose their dates.
func defaultFormat(name, dataviewStyle string, grammar dateparser.Grammar) (dateparser.Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = string(grammar.DefaultFormat().Grammar())
	}
	if name == string(dateparser.GrammarDataview) {
		switch strings.ToLower(strings.TrimSpace(dataviewStyle)) {
		case "", "bracket":
			name = string(dateparser.FormatDataviewBracket)
		case "paren":
			name = string(dateparser.FormatDataviewParen)
		default:
			return "", fmt.Errorf("schedule.dataview_style: unknown style %q", dataviewStyle)
		}
	}
	format := dateparser.Format(name)
	if !format.IsValid() {
		return "", fmt.Errorf("schedule.default_format: unknown format %q", name)
	}
	if !grammar.Reads(format) {
		return "", fmt.Errorf("schedule.default_format: %q is not read by parser.grammar %q", format, grammar)
	}
	return format, nil
}

func loadColors(v *viper.Viper) (colorrule.ColorSettings, error) {
	settings := colorrule.ColorSettings{
		Default: colorrule.ColorTheme{
			Light: v.GetString("colors.default_light"),
			Dark:  v.GetString("colors.default_dark"),
		},
		Sections: themeMap(v.GetStringMap("colors.sections")),
		Files:    themeMap(v.GetStringMap("colors.files")),
	}

	if rulesList, ok := v.Get("colors.rules").([]interface{}); ok {
		for i, r := range rulesList {
			ruleMap, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			rule := colorrule.ColorRule{
				Enabled:   getBoolFromMap(ruleMap, "enabled", true),
				Condition: colorrule.ConditionType(getStringFromMap(ruleMap, "condition")),
				Param:     getStringFromMap(ruleMap, "param"),
				Color: colorrule.ColorTheme{
					Light: getStringFromMap(ruleMap, "light"),
					Dark:  getStringFromMap(ruleMap, "dark"),
				},
				Files: stringList(ruleMap["files"]),
			}
			if !colorrule.IsValidCondition(rule.Condition) {
				return settings, fmt.Errorf("colors.rules[%d]: unknown condition %q", i, rule.Condition)
			}
			settings.Rules = append(settings.Rules, rule)
		}
	}

	return settings, nil
}

// themeMap reads either "name: color" or "name: {light, dark}" entries.
func themeMap(raw map[string]interface{}) map[string]colorrule.ColorTheme {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]colorrule.ColorTheme, len(raw))
	for k, val := range raw {
		switch t := val.(type) {
		case string:
			out[k] = colorrule.ColorTheme{Light: t}
		case map[string]interface{}:
			out[k] = colorrule.ColorTheme{
				Light: getStringFromMap(t, "light"),
				Dark:  getStringFromMap(t, "dark"),
			}
		}
	}
	return out
}

// stringList accepts a yaml list or a comma separated string.
func stringList(raw interface{}) []string {
	var items []string
	switch t := raw.(type) {
	case string:
		items = strings.Split(t, ",")
	case []string:
		items = t
	case []interface{}:
		for _, item := range t {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	}

	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, expandEnvVar(item))
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		if envValue := os.Getenv(value[2 : len(value)-1]); envValue != "" {
			return envValue
		}
	}
	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string, fallback bool) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return fallback
}
