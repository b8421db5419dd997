package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// ConnectivityProbe reports whether the DocVault server is reachable.
// With a gRPC address configured it asks the standard health service,
// otherwise it calls the HTTP ping endpoint. Either way a single check is
// bounded by the configured ping timeout.
type ConnectivityProbe struct {
	http    pinger
	health  healthpb.HealthClient
	conn    *grpc.ClientConn
	timeout time.Duration
	logger  *logger.Logger
}

// NewConnectivityProbe builds a probe on top of the adapter's Ping, or on
// a gRPC health client when cfg.GRPCAddress is set.
func NewConnectivityProbe(server pinger, cfg config.ClientAdapter, log *logger.Logger) (*ConnectivityProbe, error) {
	p := &ConnectivityProbe{
		http:    server,
		timeout: cfg.PingTimeout,
		logger:  log,
	}

	if cfg.GRPCAddress != "" {
		conn, err := grpc.NewClient(cfg.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("dial health service: %w", err)
		}
		p.conn = conn
		p.health = healthpb.NewHealthClient(conn)
	}

	return p, nil
}

// Check returns false with a nil error when the server answered negatively
// or could not be reached. Only a canceled caller context is an error.
func (p *ConnectivityProbe) Check(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	checkCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	var err error
	if p.health != nil {
		err = p.checkHealth(checkCtx)
	} else {
		err = p.http.Ping(checkCtx)
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		p.logger.Debug().Err(err).Str("func", "*ConnectivityProbe.Check").Msg("server unreachable")
		return false, nil
	}

	return true, nil
}

func (p *ConnectivityProbe) checkHealth(ctx context.Context) error {
	resp, err := p.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return err
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return errors.New("health status " + resp.GetStatus().String())
	}
	return nil
}

// Close releases the gRPC connection, if any.
func (p *ConnectivityProbe) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
