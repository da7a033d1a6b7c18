package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func dialServer(t *testing.T, handler *ReminderHandler, logger *zap.Logger) (*Server, *grpc.ClientConn) {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	srv := NewServer(handler, 0, logger)
	go func() { _ = srv.Serve(listener) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
		srv.Stop()
	})

	return srv, conn
}

func startServer(t *testing.T, logger *zap.Logger) (*Server, grpc_health_v1.HealthClient) {
	t.Helper()

	srv, conn := dialServer(t, NewReminderHandler(nil, nil, nil), logger)
	return srv, grpc_health_v1.NewHealthClient(conn)
}

func TestServer_Health(t *testing.T) {
	srv, client := startServer(t, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())

	srv.SetServing(false)

	resp, err = client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestLoggingInterceptor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, client := startServer(t, zap.New(core))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: "unknown.Service"})
	require.Error(t, err)

	failed := logs.FilterMessage("gRPC request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "/grpc.health.v1.Health/Check", failed[0].ContextMap()["method"])
	assert.Equal(t, "NotFound", failed[0].ContextMap()["code"])
}
