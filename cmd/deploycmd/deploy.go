// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/luxfi/scholarship-deploy/cmd/flags"
	"github.com/luxfi/scholarship-deploy/pkg/application"
	"github.com/luxfi/scholarship-deploy/pkg/config"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/deployer"
	"github.com/luxfi/scholarship-deploy/pkg/handoff"
	"github.com/luxfi/scholarship-deploy/pkg/key"
	"github.com/luxfi/scholarship-deploy/pkg/prompts"
	"github.com/luxfi/scholarship-deploy/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var app *application.App

// scholarship-deploy deploy
func NewCmd(injectedApp *application.App) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy MyToken and ScholarshipManager",
		Long: `The deploy command deploys MyToken, then ScholarshipManager with the MyToken
address as its only constructor argument, and waits for both to be confirmed.

The deployer is the first account available from SCHOLARSHIP_PRIVATE_KEY,
SCHOLARSHIP_MNEMONIC (with --hd-index) or --key-file, in that order.

On success the addresses are printed together with the frontend changes they
require, and a deployment record is written for 'frontend sync'. If
ScholarshipManager fails, MyToken stays deployed and its address is printed.`,
		RunE: deploy,
		Args: cobra.NoArgs,
	}
	cmd.Flags().BoolP(config.KeyYes, "y", false, "deploy without asking for confirmation")
	cmd.Flags().String(config.KeyRecordFile, "", "deployment record path (default deployments/<chain-id>.<record-format>)")
	cmd.Flags().String(config.KeyRecordFormat, constants.RecordFormatJSON, "deployment record format: json or yaml")
	cmd.Flags().Duration(config.KeyConfirmTimeout, constants.ConfirmationTimeout, "how long to wait for each deployment to be mined")
	cmd.Flags().Uint64(config.KeyGasLimit, 0, "gas limit of each deployment (0 estimates it)")
	cmd.Flags().String(config.KeyLowBalanceWarning, constants.DefaultLowBalanceWarning, "warn when the deployer balance is below this amount")
	flags.BindConfigFlags(cmd.Flags(),
		config.KeyYes,
		config.KeyRecordFile,
		config.KeyRecordFormat,
		config.KeyConfirmTimeout,
		config.KeyGasLimit,
		config.KeyLowBalanceWarning,
	)
	return cmd
}

func deploy(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := ux.NewUserLog(app.Log, cmd.OutOrStdout())
	signers, err := resolveSigners(ctx)
	if err != nil {
		return err
	}
	env, err := newEnvironment(ctx, app)
	if err != nil {
		return err
	}
	defer env.Close()

	recordPath := app.Conf.RecordPath(env.ChainID)
	recordFormat := app.Conf.RecordFormat
	if app.Conf.RecordFile != "" {
		recordFormat = handoff.FormatFromPath(recordPath)
	}

	params := deployer.Params{
		Signers: signers,
		Ledger:  env.Ledger,
		Factory: env.Factory,
		Emitter: &handoff.Emitter{
			Out:          out,
			Log:          app.Log,
			RecordPath:   recordPath,
			RecordFormat: recordFormat,
		},
		Out:               out,
		Log:               app.Log,
		ChainID:           env.ChainID,
		RPCURL:            env.RPCURL,
		LowBalanceWarning: app.Conf.LowBalanceWarning,
		Observer:          ux.NewProgressTracker(out),
	}
	if needsConfirmation() {
		params.Confirmer = &prompts.DeploymentConfirmer{Prompter: app.Prompt, Out: out}
	}

	res, err := deployer.New(params).Run(ctx)
	if err != nil {
		app.Log.Error("deployment run failed", zap.String("lastStep", string(res.LastStep)), zap.Error(err))
		out.PrintToUser("Full log: %s", app.GetLogFile())
		return err
	}
	return nil
}

// needsConfirmation is false with --yes and when nobody can answer a prompt.
func needsConfirmation() bool {
	if app.Conf.AssumeYes {
		return false
	}
	_, nonInteractive := app.Prompt.(*prompts.NonInteractivePrompter)
	return !nonInteractive
}

// resolvedSigners hands the accounts checked up front to the orchestrator,
// so a keystore is only decrypted once.
type resolvedSigners []*key.Account

func (r resolvedSigners) Accounts(context.Context) ([]*key.Account, error) {
	return r, nil
}

// resolveSigners fails with a ConfigurationError before any connection to
// the node is made.
func resolveSigners(ctx context.Context) (resolvedSigners, error) {
	signers, err := app.Signers()
	if err != nil {
		return nil, &deployer.ConfigurationError{Step: deployer.StepResolveSigner, Err: err}
	}
	accounts, err := signers.Accounts(ctx)
	if err != nil {
		return nil, &deployer.ConfigurationError{Step: deployer.StepResolveSigner, Err: err}
	}
	if len(accounts) == 0 {
		return nil, &deployer.ConfigurationError{Step: deployer.StepResolveSigner, Err: constants.ErrNoSigner}
	}
	return accounts, nil
}
