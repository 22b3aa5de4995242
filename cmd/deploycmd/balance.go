// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"github.com/luxfi/scholarship-deploy/pkg/application"
	"github.com/luxfi/scholarship-deploy/pkg/constants"
	"github.com/luxfi/scholarship-deploy/pkg/utils"
	"github.com/luxfi/scholarship-deploy/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scholarship-deploy balance
func NewBalanceCmd(injectedApp *application.App) *cobra.Command {
	app = injectedApp
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the deployer accounts and their balances",
		Long: `The balance command resolves every configured deployer account and prints
its balance on the target chain, without sending any transaction. The first
account listed is the one deploy would use.`,
		RunE: balance,
		Args: cobra.NoArgs,
	}
}

func balance(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := ux.NewUserLog(app.Log, cmd.OutOrStdout())

	accounts, err := resolveSigners(ctx)
	if err != nil {
		return err
	}

	env, err := newEnvironment(ctx, app)
	if err != nil {
		return err
	}
	defer env.Close()

	rows := make([][]string, 0, len(accounts))
	for _, acct := range accounts {
		amount := "unavailable"
		wei, err := env.Ledger.BalanceAt(ctx, acct.Address)
		if err != nil {
			app.Log.Warn("balance query failed", zap.String("address", acct.Address.Hex()), zap.Error(err))
		} else {
			amount = utils.FormatEtherGrouped(wei) + " " + constants.NativeSymbol
		}
		rows = append(rows, []string{string(acct.Source), acct.Address.Hex(), amount})
	}
	out.PrintToUser("Chain ID %s at %s", env.ChainID, env.RPCURL)
	return ux.PrintTable(out.Writer(), []string{"Source", "Address", "Balance"}, rows)
}
