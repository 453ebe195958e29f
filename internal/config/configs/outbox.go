package configs

import "time"

// Outbox configures the notification delivery worker.
type Outbox struct {
	// Interval is how often the worker polls for pending notifications.
	Interval time.Duration `env:"INTERVAL" envDefault:"5s"`
	// BatchSize caps how many notifications one polling pass delivers.
	BatchSize int `env:"BATCH_SIZE" envDefault:"50"`
}
