// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package frontendcmd

import (
	"github.com/luxfi/scholarship-deploy/cmd/flags"
	"github.com/luxfi/scholarship-deploy/pkg/artifact"
	"github.com/luxfi/scholarship-deploy/pkg/config"
	"github.com/luxfi/scholarship-deploy/pkg/handoff"
	"github.com/luxfi/scholarship-deploy/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncRecord string

// scholarship-deploy frontend sync
func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Write the deployed addresses and ABIs into the frontend",
		Long: `The sync command applies a deployment record to the frontend project:
the MANAGER_ADDRESS and TOKEN_ADDRESS exports of src/services/eth.js are
replaced (or added) and both contract artifacts are copied to src/contracts/.
Everything else in src/services/eth.js is left untouched.`,
		RunE: syncFrontend,
		Args: cobra.NoArgs,
	}
	flags.AddRecordFlagToCmd(cmd, &syncRecord)
	cmd.Flags().String(config.KeyFrontendDir, ".", "root directory of the frontend project")
	flags.BindConfigFlags(cmd.Flags(), config.KeyFrontendDir)
	return cmd
}

func syncFrontend(cmd *cobra.Command, _ []string) error {
	out := ux.NewUserLog(app.Log, cmd.OutOrStdout())
	rec, err := handoff.ReadRecord(syncRecord)
	if err != nil {
		return err
	}
	res, err := handoff.Sync(rec, app.Conf.FrontendDir, artifact.NewStore(app.Conf.ArtifactsDir))
	if err != nil {
		return err
	}
	out.GreenCheckmarkToUser("Updated %s", res.ConfigPath)
	for _, c := range res.Copied {
		out.GreenCheckmarkToUser("Copied %s -> %s", c.From, c.To)
	}
	app.Log.Info("frontend synced",
		zap.String("record", syncRecord),
		zap.String("frontendDir", app.Conf.FrontendDir),
	)
	return nil
}
