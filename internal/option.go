package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	port   int
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithPort overrides the configured HTTP port.
func WithPort(port int) Option {
	return func(a *application) {
		a.port = port
	}
}
