package adapter

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestConnectivityProbe_HTTP(t *testing.T) {
	var calls int
	p, err := NewConnectivityProbe(pingFunc(func(ctx context.Context) error {
		calls++
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		if calls == 1 {
			return nil
		}
		return ErrUnreachable
	}), config.ClientAdapter{PingTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ok, err := p.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, p.Close())
}

func TestConnectivityProbe_CanceledContext(t *testing.T) {
	p, err := NewConnectivityProbe(pingFunc(func(ctx context.Context) error {
		return errors.New("should not be called")
	}), config.ClientAdapter{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := p.Check(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnectivityProbe_GRPCHealth(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	hs := health.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	go func() { _ = srv.Serve(lis) }()
	defer srv.Stop()

	p, err := NewConnectivityProbe(nil, config.ClientAdapter{
		GRPCAddress: lis.Addr().String(),
		PingTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	defer p.Close()

	ok, err := p.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	ok, err = p.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
