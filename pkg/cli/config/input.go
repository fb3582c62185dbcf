package config

import (
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Input holds the document source of a one-shot command
type Input struct {
	Path string
}

// Flags returns CLI flags for input configuration
func (c *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Input file path, '-' for stdin",
			Value:       "-",
			Destination: &c.Path,
		},
	}
}

// Read returns the whole input document
func (c *Input) Read(stdin io.Reader) ([]byte, error) {
	if c.Path == "" || c.Path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read input file", goerr.V("path", c.Path))
	}
	return data, nil
}
