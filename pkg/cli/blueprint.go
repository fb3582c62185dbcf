package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/cli/config"
	"github.com/m-mizutani/xcsbridge/pkg/domain/interfaces"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
	"github.com/m-mizutani/xcsbridge/pkg/infra/identifier"
	"github.com/m-mizutani/xcsbridge/pkg/usecase"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Blueprint input formats accepted by "blueprint encode"
const (
	formatTOML   = "toml"
	formatJSON   = "json"
	formatExport = "export"
)

func cmdBlueprint() *cli.Command {
	return &cli.Command{
		Name:  "blueprint",
		Usage: "Decode and encode source control blueprints",
		Commands: []*cli.Command{
			cmdBlueprintDecode(),
			cmdBlueprintEncode(),
		},
	}
}

func cmdBlueprintDecode() *cli.Command {
	var inputCfg config.Input

	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a blueprint exported by Xcode Server",
		Flags: inputCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := inputCfg.Read(c.Root().Reader)
			if err != nil {
				return err
			}

			uc := usecase.NewTranslate(identifier.NewUUID())
			bp, err := uc.DecodeBlueprint(ctx, data)
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, bp)
		},
	}
}

func cmdBlueprintEncode() *cli.Command {
	var (
		inputCfg    config.Input
		mode        string
		format      string
		fingerprint string
		fixedID     string
	)

	flags := append(inputCfg.Flags(),
		&cli.StringFlag{
			Name:        "mode",
			Aliases:     []string{"m"},
			Usage:       "Payload to build (preflight, bot)",
			Value:       string(model.PayloadBotCreation),
			Destination: &mode,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Input format (toml, json, export). Guessed from the file extension if empty",
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        "fingerprint",
			Usage:       "Certificate fingerprint of the remote, overrides the input",
			Destination: &fingerprint,
		},
		&cli.StringFlag{
			Name:        "id",
			Usage:       "Use a fixed blueprint identifier instead of a random UUID",
			Destination: &fixedID,
			Sources:     cli.EnvVars("XCSBRIDGE_BLUEPRINT_ID"),
		},
	)

	return &cli.Command{
		Name:  "encode",
		Usage: "Build a preflight or bot creation payload",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			data, err := inputCfg.Read(c.Root().Reader)
			if err != nil {
				return err
			}

			var idGen interfaces.IDGenerator = identifier.NewUUID()
			if fixedID != "" {
				idGen = identifier.Fixed(fixedID)
			}
			uc := usecase.NewTranslate(idGen)

			if format == "" {
				format = guessFormat(inputCfg.Path)
			}
			bp, err := loadBlueprint(ctx, uc, format, data)
			if err != nil {
				return err
			}
			if fingerprint != "" {
				bp = bp.WithCertificateFingerprint(fingerprint)
			}

			logger.Debug("Encoding blueprint", "mode", mode, "format", format)
			payload, err := uc.EncodeBlueprint(ctx, bp, model.PayloadMode(mode))
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, payload)
		},
	}
}

func guessFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML
	default:
		return formatJSON
	}
}

func loadBlueprint(ctx context.Context, uc interfaces.TranslateUseCase, format string, data []byte) (model.Blueprint, error) {
	var bp model.Blueprint

	switch format {
	case formatTOML:
		if err := toml.Unmarshal(data, &bp); err != nil {
			return model.Blueprint{}, goerr.Wrap(err, "failed to parse TOML blueprint")
		}
	case formatJSON:
		if err := json.Unmarshal(data, &bp); err != nil {
			return model.Blueprint{}, goerr.Wrap(err, "failed to parse JSON blueprint")
		}
	case formatExport:
		return uc.DecodeBlueprint(ctx, data)
	default:
		return model.Blueprint{}, goerr.New("unsupported blueprint format", goerr.V("format", format))
	}

	return bp, nil
}
