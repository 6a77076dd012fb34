package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/DuyTa506/docuflow/spatial"
)

// analyze is the "analyze" subcommand's Action: load configuration, load
// the input manifest, extract every page, run the pipeline, and write
// the resulting tree as JSON.
func analyze(ctx context.Context, cmd *cli.Command) error {
	log := loggerFromContext(ctx)

	cfg, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	manifest, err := LoadManifest(cmd.String("input"))
	if err != nil {
		return err
	}

	elements, pages, err := BuildElements(manifest, log)
	if err != nil {
		return fmt.Errorf("unable to build elements: %w", err)
	}
	log.Info("extracted elements", zap.Int("count", len(elements)), zap.Int("pages", len(pages)))

	tree, info, err := spatial.Analyze(elements, pages, cfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	log.Info("analysis complete",
		zap.Int("elements_processed", info.ElementsProcessed),
		zap.Int("repeated_filtered", info.RepeatedFiltered),
		zap.Int("noise_filtered", info.NoiseFiltered),
		zap.Int("margin_filtered", info.MarginFiltered),
		zap.Int("nodes_before_thinning", info.NodesBeforeThinning),
		zap.Int("nodes_after_thinning", info.NodesAfterThinning),
	)

	var out []byte
	if cmd.Bool("pretty") {
		out, err = json.MarshalIndent(tree, "", "  ")
	} else {
		out, err = json.Marshal(tree)
	}
	if err != nil {
		return fmt.Errorf("unable to render tree as JSON: %w", err)
	}

	return writeOutput(cmd.String("out"), out)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// dumpConfig is the "dumpconfig" subcommand's Action, mirroring the
// teacher's own command of the same name: prints either the embedded
// defaults or the resolved configuration for a --config file.
func dumpConfig(ctx context.Context, cmd *cli.Command) error {
	var cfg spatial.Config
	if cmd.Bool("default") {
		cfg = spatial.DefaultConfig()
	} else {
		var err error
		cfg, err = LoadConfig(cmd.String("config"))
		if err != nil {
			return err
		}
	}

	data, err := DumpConfig(cfg)
	if err != nil {
		return fmt.Errorf("unable to render configuration: %w", err)
	}

	_, err = os.Stdout.Write(data)
	return err
}
