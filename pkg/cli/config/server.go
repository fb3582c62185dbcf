package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr         string
	MaxBodyBytes int64
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("XCSBRIDGE_ADDR"),
		},
		&cli.Int64Flag{
			Name:        "max-body-bytes",
			Usage:       "Maximum accepted request document size",
			Value:       4 << 20,
			Destination: &c.MaxBodyBytes,
			Sources:     cli.EnvVars("XCSBRIDGE_MAX_BODY_BYTES"),
		},
	}
}
