package workers

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"forum-lab/contract"
	"forum-lab/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func freeAddress(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := listener.Addr().String()
	require.NoError(t, listener.Close())
	return address
}

func TestHTTPServerWorker_Serves_Until_Cancelled(t *testing.T) {
	req := require.New(t)
	address := freeAddress(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewHTTPServerWorker(log, address, handler).Run(ctx) }()

	req.Eventually(func() bool {
		response, err := http.Get(fmt.Sprintf("http://%s/", address))
		if err != nil {
			return false
		}
		_ = response.Body.Close()
		return response.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(2 * time.Second):
		req.Fail("HTTP server worker should have stopped")
	}
}

func TestHealthWorker_Reports_Serving(t *testing.T) {
	req := require.New(t)
	address := freeAddress(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = NewHealthWorker(log, address).Run(ctx) }()

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	defer conn.Close()
	client := grpc_health_v1.NewHealthClient(conn)

	req.Eventually(func() bool {
		callCtx, callCancel := context.WithTimeout(ctx, 200*time.Millisecond)
		defer callCancel()
		response, err := client.Check(callCtx, &grpc_health_v1.HealthCheckRequest{})
		return err == nil && response.Status == grpc_health_v1.HealthCheckResponse_SERVING
	}, 3*time.Second, 50*time.Millisecond)
}

func TestTelemetryWorker_Reads_Registry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	registry := mocks.NewMockISessionRegistry(ctrl)
	ticks := make(chan struct{}, 10)
	registry.EXPECT().Stats().DoAndReturn(func() contract.RegistryStats {
		select {
		case ticks <- struct{}{}:
		default:
		}
		return contract.RegistryStats{Connections: 2, Rooms: 1}
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewTelemetryWorker(log, 10*time.Millisecond, registry).Run(ctx) }()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		require.Fail(t, "telemetry never read the registry")
	}
	cancel()
	require.NoError(t, <-done)
}
