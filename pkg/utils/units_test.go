// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatEther(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"nil", nil, "0.0"},
		{"zero", big.NewInt(0), "0.0"},
		{"one ether", big.NewInt(1_000_000_000_000_000_000), "1.0"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"fraction", big.NewInt(1_500_000_000_000_000_000), "1.5"},
		{"negative", big.NewInt(-250_000_000_000_000_000), "-0.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatEther(tt.wei))
		})
	}
}

func TestFormatEtherGrouped(t *testing.T) {
	wei, ok := new(big.Int).SetString("1234567500000000000000000", 10)
	require.True(t, ok)
	require.Equal(t, "1,234,567.5", FormatEtherGrouped(wei))
}

func TestParseEther(t *testing.T) {
	require := require.New(t)

	wei, err := ParseEther("0.1")
	require.NoError(err)
	require.Equal("100000000000000000", wei.String())

	wei, err = ParseEther("2")
	require.NoError(err)
	require.Equal("2.0", FormatEther(wei))

	wei, err = ParseEther(".5")
	require.NoError(err)
	require.Equal("0.5", FormatEther(wei))

	_, err = ParseEther("")
	require.Error(err)
	_, err = ParseEther("-1")
	require.Error(err)
	_, err = ParseEther("1.0000000000000000001")
	require.Error(err)
	_, err = ParseEther("abc")
	require.Error(err)
}
