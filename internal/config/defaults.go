package config

const (
	defaultBaseURL         = "https://backend.metacritic.com"
	defaultSiteOrigin      = "https://www.metacritic.com"
	defaultUserAgent       = "CriticDeck/0.1 (+https://github.com/chrismichaelps/metacritic)"
	defaultRequestTimeout  = 15
	defaultPlatform        = "PC"
	defaultCacheTTLSeconds = 21600 // 6 hours
	defaultSettingsPath    = "~/.config/criticdeck/settings.json"
	defaultAPIBind         = "127.0.0.1:7823"
	defaultLogFormat       = "auto"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Metacritic: Metacritic{
			BaseURL:         defaultBaseURL,
			SiteOrigin:      defaultSiteOrigin,
			UserAgent:       defaultUserAgent,
			RequestTimeout:  defaultRequestTimeout,
			DefaultPlatform: defaultPlatform,
		},
		Cache: Cache{
			TTLSeconds: defaultCacheTTLSeconds,
		},
		Settings: Settings{
			Path: defaultSettingsPath,
		},
		API: API{
			Bind: defaultAPIBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
