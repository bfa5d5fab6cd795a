package configs

// HTTP holds configuration for the inbound HTTP server.
type HTTP struct {
	// Port is the TCP port the API server binds to.
	Port uint16 `env:"PORT" envDefault:"3001"`
}
