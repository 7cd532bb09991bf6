package config

// NewViewForTest creates a View config for testing purposes
func NewViewForTest(pageSize int, timezone string, scopedStats bool) *View {
	return &View{
		pageSize:    pageSize,
		timezone:    timezone,
		scopedStats: scopedStats,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSentryForTest creates a Sentry config for testing purposes
func NewSentryForTest(dsn string) *Sentry {
	return &Sentry{dsn: dsn}
}

// NewSentryForTestWithEnv creates a Sentry config with an environment for testing purposes
func NewSentryForTestWithEnv(dsn, environment string) *Sentry {
	return &Sentry{dsn: dsn, environment: environment}
}
