package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/xcsbridge/pkg/cli/config"
	"github.com/m-mizutani/xcsbridge/pkg/codec"
	"github.com/m-mizutani/xcsbridge/pkg/domain/model"
	"github.com/m-mizutani/xcsbridge/pkg/infra/identifier"
	"github.com/m-mizutani/xcsbridge/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdTests() *cli.Command {
	var (
		inputCfg  config.Input
		jsonOut   bool
		noColor   bool
		failOnErr bool
	)

	flags := append(inputCfg.Flags(),
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print the decoded hierarchy as JSON",
			Destination: &jsonOut,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &noColor,
		},
		&cli.BoolFlag{
			Name:        "fail-on-failure",
			Usage:       "Exit with an error if any test method failed",
			Destination: &failOnErr,
		},
	)

	return &cli.Command{
		Name:  "tests",
		Usage: "Report a test hierarchy of an integration",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if noColor {
				color.NoColor = true
			}

			data, err := inputCfg.Read(c.Root().Reader)
			if err != nil {
				return err
			}

			uc := usecase.NewTranslate(identifier.NewUUID())
			h, err := uc.DecodeTestHierarchy(ctx, data)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if jsonOut {
				if err := writeJSON(w, codec.EncodeTestHierarchy(h)); err != nil {
					return err
				}
			} else {
				renderTestHierarchy(w, h)
			}

			if failures := h.Failures(); failOnErr && len(failures) > 0 {
				return goerr.New("test failures found", goerr.V("failures", failures))
			}
			return nil
		},
	}
}

func renderTestHierarchy(w io.Writer, h model.TestHierarchy) {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)
	bold := color.New(color.Bold)

	for _, targetName := range h.TargetNames() {
		target, _ := h.Target(targetName)
		bold.Fprintln(w, targetName)

		for _, className := range target.ClassNames() {
			class, _ := target.Class(className)
			fmt.Fprintf(w, "  %s\n", className)

			for _, methodName := range class.MethodNames() {
				method, _ := class.Method(methodName)
				result := method.Result()
				if result.Passed() {
					pass.Fprintf(w, "    ✓ %s\n", methodName)
					continue
				}
				fail.Fprintf(w, "    ✗ %s (%s)\n", methodName, strings.Join(failedDevices(result), ", "))
			}
		}
	}

	s := h.Summary()
	line := fmt.Sprintf("%d tests, %d passed, %d failed", s.Total, s.Passed, s.Failed)
	if s.Failed > 0 {
		fail.Fprintln(w, line)
	} else {
		pass.Fprintln(w, line)
	}
}

func failedDevices(r model.TestResult) []string {
	var devices []string
	for _, device := range slices.Sorted(maps.Keys(r)) {
		if r[device] != 1 {
			devices = append(devices, device)
		}
	}
	return devices
}
