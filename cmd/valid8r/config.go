package main

// Config is the process configuration read from the environment.
type Config struct {
	LogLevel     string `env:"VALID8R_LOG_LEVEL" envDefault:"warn"`
	LogFormat    string `env:"VALID8R_LOG_FORMAT" envDefault:"text"`
	DefaultsFile string `env:"VALID8R_DEFAULTS_FILE"`
	// EnvPrefix selects the variables merged into validator defaults,
	// e.g. VALID8R_EMAIL_MIN_LEN. Empty disables the merge.
	EnvPrefix string `env:"VALID8R_ENV_PREFIX" envDefault:"VALID8R_"`
}
