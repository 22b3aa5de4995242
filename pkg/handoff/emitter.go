// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package handoff

import (
	"context"
	"fmt"
	"strconv"

	"github.com/luxfi/scholarship-deploy/pkg/deployer"
	"github.com/luxfi/scholarship-deploy/pkg/models"
	"github.com/luxfi/scholarship-deploy/pkg/ux"
	"go.uber.org/zap"
)

// Emitter prints the deployment summary and the frontend instructions, and
// stores the deployment record when RecordPath is set.
type Emitter struct {
	Out          *ux.UserLog
	Log          *zap.Logger
	RecordPath   string
	RecordFormat string
}

var _ deployer.Emitter = (*Emitter)(nil)

func (e *Emitter) Emit(_ context.Context, res *deployer.Result) error {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	rec, err := NewRecord(res)
	if err != nil {
		return err
	}

	e.Out.PrintToUser("")
	if err := ux.PrintTable(e.Out.Writer(), []string{"Contract", "Address", "Tx", "Block", "Gas Used"}, [][]string{
		summaryRow(res.Token),
		summaryRow(res.Manager),
	}); err != nil {
		return fmt.Errorf("failed to print deployment summary: %w", err)
	}

	if e.RecordPath != "" {
		if err := WriteRecord(e.RecordPath, e.RecordFormat, rec); err != nil {
			return fmt.Errorf("failed to write deployment record: %w", err)
		}
		log.Info("deployment record written", zap.String("path", e.RecordPath))
	}

	addrs := Addresses{Token: res.Token.Address, Manager: res.Manager.Address}
	if err := RenderInstructions(e.Out.Writer(), addrs, e.RecordPath); err != nil {
		return fmt.Errorf("failed to print frontend instructions: %w", err)
	}
	if e.RecordPath != "" {
		e.Out.PrintToUser("Deployment record saved to %s", e.RecordPath)
	}
	return nil
}

func summaryRow(d *models.Deployment) []string {
	return []string{
		d.ContractName,
		d.Address.Hex(),
		d.TxHash.Hex(),
		strconv.FormatUint(d.BlockNumber, 10),
		strconv.FormatUint(d.GasUsed, 10),
	}
}
