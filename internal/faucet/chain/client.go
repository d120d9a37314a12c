package chain

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RPCClient wraps one or more ethclient connections and fails over between
// them. Safe for concurrent use by many request handlers.
type RPCClient struct {
	mu      sync.Mutex
	urls    []string
	clients []*ethclient.Client
	current int
}

var _ Client = (*RPCClient)(nil)

// NewRPCClient dials the given RPC URLs. Endpoints that cannot be dialed
// immediately are retried lazily on use; at least one URL is required.
func NewRPCClient(urls []string) (*RPCClient, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one RPC URL is required")
	}

	clients := make([]*ethclient.Client, len(urls))
	dialed := 0

	for i, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			log.Warn().
				Str("url", url).
				Err(err).
				Msg("Failed to connect to RPC node, will retry on use")
			continue
		}

		clients[i] = client
		dialed++
	}

	if dialed == 0 {
		return nil, errors.New("failed to connect to any RPC node")
	}

	return &RPCClient{
		urls:    urls,
		clients: clients,
	}, nil
}

// ParseURLs splits a comma-separated endpoint list into its trimmed parts.
func ParseURLs(rpcURL string) []string {
	parts := strings.Split(rpcURL, ",")
	urls := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			urls = append(urls, part)
		}
	}

	return urls
}

// Close closes all client connections.
func (c *RPCClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, client := range c.clients {
		if client != nil {
			client.Close()
		}
	}
}

// BalanceAt returns the balance of an address at the latest known block.
func (c *RPCClient) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	balance, err := client.BalanceAt(ctx, address, nil)
	if err != nil {
		c.markFailed(client)
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return balance, nil
}

// PendingNonceAt returns the pending nonce for the given address.
func (c *RPCClient) PendingNonceAt(ctx context.Context, address common.Address) (uint64, error) {
	client, err := c.getClient()
	if err != nil {
		return 0, errors.Wrap(err, "failed to get RPC client")
	}

	nonce, err := client.PendingNonceAt(ctx, address)
	if err != nil {
		c.markFailed(client)
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

// ChainID returns the network chain identifier.
func (c *RPCClient) ChainID(ctx context.Context) (*big.Int, error) {
	client, err := c.getClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get RPC client")
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		c.markFailed(client)
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	return chainID, nil
}

// SendTransaction broadcasts a signed transaction.
func (c *RPCClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	client, err := c.getClient()
	if err != nil {
		return errors.Wrap(err, "failed to get RPC client")
	}

	// No failover here: re-broadcasting on a different node after an
	// ambiguous failure could double-spend the nonce.
	if err := client.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	return nil
}

// getClient returns the current client, lazily re-dialing endpoints whose
// initial dial failed.
func (c *RPCClient) getClient() (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := 0; i < len(c.clients); i++ {
		idx := (c.current + i) % len(c.clients)

		if c.clients[idx] == nil {
			client, err := ethclient.Dial(c.urls[idx])
			if err != nil {
				log.Warn().
					Str("url", c.urls[idx]).
					Err(err).
					Msg("Failed to reconnect to RPC node")
				continue
			}
			c.clients[idx] = client
		}

		c.current = idx

		return c.clients[idx], nil
	}

	return nil, errors.New("all RPC clients are unavailable")
}

// markFailed advances to the next endpoint after a failed call.
func (c *RPCClient) markFailed(failed *ethclient.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.clients) < 2 {
		return
	}

	if c.clients[c.current] == failed {
		c.current = (c.current + 1) % len(c.clients)
	}
}
