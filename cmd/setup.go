package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/SridharSuresh2709/SpoMoodAgent/internal/shared"
)

// SetupConfig writes the embedded starter configuration to disk.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.writeOk("Config written to %s", configPath)
	r.writePlain("%s\n", r.palette.Help("Fill in your Spotify credentials, then run `spomood auth login`."))

	return nil
}
