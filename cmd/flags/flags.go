// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	recordFlag = "record"
)

// AddRecordFlagToCmd registers the --record flag pointing at a deployment record
func AddRecordFlagToCmd(cmd *cobra.Command, record *string) {
	cmd.Flags().StringVar(record, recordFlag, "", "deployment record written by `scholarship-deploy deploy`")
	_ = cmd.MarkFlagRequired(recordFlag)
}

// BindConfigFlags binds flags of fs to the config keys of the same name.
// Flags that don't exist in fs are ignored.
func BindConfigFlags(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if f := fs.Lookup(name); f != nil {
			_ = viper.BindPFlag(name, f)
		}
	}
}
