// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/ethclient"
	"go.uber.org/zap"
)

// Client wraps the EVM JSON-RPC client with a per-call timeout.
type Client struct {
	client  *ethclient.Client
	url     string
	timeout time.Duration
	log     *zap.Logger
}

// Dial connects to url. timeout bounds every read call made through the client.
func Dial(ctx context.Context, url string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial EVM RPC %s: %w", url, err)
	}
	log.Debug("connected to EVM RPC", zap.String("url", url))
	return &Client{
		client:  client,
		url:     url,
		timeout: timeout,
		log:     log,
	}, nil
}

func (c *Client) URL() string {
	return c.url
}

// ChainID gets the chain ID
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.ChainID(ctx)
}

// BalanceAt returns the latest native balance of addr, in wei
func (c *Client) BalanceAt(ctx context.Context, addr common.Address) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.client.BalanceAt(ctx, addr, nil)
}

// ClientVersion gets the node's client version
func (c *Client) ClientVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var result string
	if err := c.client.Client().CallContext(ctx, &result, "web3_clientVersion"); err != nil {
		return "", err
	}
	return result, nil
}

// Close closes the client connection
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
