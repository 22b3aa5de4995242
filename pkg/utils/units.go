// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/luxfi/geth/params"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const etherDecimals = 18

// FormatEther renders a wei amount as a decimal ether string.
// Trailing zeros of the fraction are trimmed but at least one fractional
// digit is kept, so 1e18 renders as "1.0" and 0 as "0.0".
func FormatEther(wei *big.Int) string {
	whole, frac, neg := splitEther(wei)
	sign := ""
	if neg {
		sign = "-"
	}
	return sign + whole.String() + "." + frac
}

// FormatEtherGrouped is FormatEther with thousands separators on the integer part.
func FormatEtherGrouped(wei *big.Int) string {
	whole, frac, neg := splitEther(wei)
	sign := ""
	if neg {
		sign = "-"
	}
	grouped := whole.String()
	if whole.IsInt64() {
		grouped = message.NewPrinter(language.English).Sprintf("%d", whole.Int64())
	}
	return sign + grouped + "." + frac
}

func splitEther(wei *big.Int) (*big.Int, string, bool) {
	if wei == nil {
		return new(big.Int), "0", false
	}
	abs := new(big.Int).Abs(wei)
	whole, rem := new(big.Int).QuoRem(abs, big.NewInt(params.Ether), new(big.Int))
	frac := rem.String()
	if len(frac) < etherDecimals {
		frac = strings.Repeat("0", etherDecimals-len(frac)) + frac
	}
	frac = strings.TrimRight(frac, "0")
	if frac == "" {
		frac = "0"
	}
	return whole, frac, wei.Sign() < 0
}

// ParseEther converts a decimal ether string ("0.5", "12") into wei.
func ParseEther(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty ether amount")
	}
	if strings.HasPrefix(s, "-") {
		return nil, fmt.Errorf("ether amount must not be negative: %s", s)
	}
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > etherDecimals {
		return nil, fmt.Errorf("ether amount %s has more than %d decimals", s, etherDecimals)
	}
	if whole == "" {
		whole = "0"
	}
	digits := whole + frac + strings.Repeat("0", etherDecimals-len(frac))
	wei, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("invalid ether amount: %s", s)
	}
	return wei, nil
}
