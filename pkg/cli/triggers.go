package cli

import (
	"context"

	"github.com/m-mizutani/xcsbridge/pkg/cli/config"
	"github.com/m-mizutani/xcsbridge/pkg/infra/identifier"
	"github.com/m-mizutani/xcsbridge/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdTriggers() *cli.Command {
	var inputCfg config.Input

	return &cli.Command{
		Name:  "triggers",
		Usage: "Decode a trigger conditions record",
		Flags: inputCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := inputCfg.Read(c.Root().Reader)
			if err != nil {
				return err
			}

			uc := usecase.NewTranslate(identifier.NewUUID())
			tc, err := uc.DecodeTriggerConditions(ctx, data)
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, tc)
		},
	}
}
