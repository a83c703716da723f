package services

import (
	"context"
	"time"

	"github.com/vkozyrev/floodwatch/internal/client/client"
)

// PingProber answers connectivity checks with a short-deadline Ping against
// the backend. A slow backend counts as unreachable.
type PingProber struct {
	Client  client.Client
	Timeout time.Duration
}

func (p *PingProber) IsReachable(ctx context.Context) bool {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Client.Ping(ctx) == nil
}
