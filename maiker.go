package maikergo

import (
	"github.com/maiker-fi/maiker-go/maiker"
)

// NewClient creates a strategy accounting client.
//
// Example:
//
// client := NewClient(rpcClient, maiker.WithLogger(logger))
//
// snap, _ := client.Snapshot(ctx, strategyAddress)
//
// value, _ := snap.Value()
var NewClient = maiker.NewClient
