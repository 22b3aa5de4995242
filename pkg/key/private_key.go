// Copyright (C) 2022-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package key

import (
	"context"
	"fmt"
	"strings"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
)

// PrivateKeySource loads a hex encoded secp256k1 key, with or without 0x.
type PrivateKeySource struct {
	hexKey string
}

func NewPrivateKeySource(hexKey string) *PrivateKeySource {
	return &PrivateKeySource{hexKey: strings.TrimSpace(hexKey)}
}

func (*PrivateKeySource) Type() SourceType {
	return SourcePrivateKey
}

func (s *PrivateKeySource) Available() bool {
	return s.hexKey != ""
}

func (s *PrivateKeySource) Load(_ context.Context) (*Account, error) {
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(s.hexKey, "0x"))
	if err != nil {
		// never echo the key itself
		return nil, fmt.Errorf("%w: private key is not valid hex secp256k1", ErrInvalidKey)
	}
	return &Account{
		Address:    common.Address(crypto.PubkeyToAddress(pk.PublicKey)),
		PrivateKey: pk,
		Source:     SourcePrivateKey,
	}, nil
}
