package configs

// Metrics configures the Prometheus scrape endpoint, served separately
// from the API so it is never exposed publicly by accident.
type Metrics struct {
	// Enabled toggles the metrics server.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// Port is the TCP port the metrics server listens on.
	Port uint16 `env:"PORT" envDefault:"9090"`
}
