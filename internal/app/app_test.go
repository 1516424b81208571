package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, ":9090", cfg.MetricsAddr)
	require.Empty(t, cfg.PostgresDSN)
}

// TestRunSmoke запускает приложение на in-memory хранилище, проверяет
// служебные пробы и делает полный круг по /customers через живой сервер.
func TestRunSmoke(t *testing.T) {
	apiAddr := freeAddr(t)
	metricsAddr := freeAddr(t)

	cfg := Config{
		HTTPAddr:    apiAddr,
		MetricsAddr: metricsAddr,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg)
	}()

	waitForServer(t, "http://"+metricsAddr+"/livez")
	waitForServer(t, "http://"+apiAddr+"/")

	body, err := json.Marshal(map[string]any{
		"name":  "Smoke Tester",
		"email": "smoke@example.com",
		"phone": "+70000000000",
	})
	require.NoError(t, err)

	resp, err := http.Post("http://"+apiAddr+"/customers", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotZero(t, created.ID)

	getResp, err := http.Get(fmt.Sprintf("http://%s/customers/%d", apiAddr, created.ID))
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	healthResp, err := http.Get("http://" + metricsAddr + "/healthz")
	require.NoError(t, err)
	defer healthResp.Body.Close()
	require.Equal(t, http.StatusOK, healthResp.StatusCode)

	metricsResp, err := http.Get("http://" + metricsAddr + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	require.Equal(t, http.StatusOK, metricsResp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.True(t, err == nil || errors.Is(err, context.Canceled), "unexpected run error: %v", err)
	case <-time.After(10 * time.Second):
		t.Fatal("application did not stop after context cancellation")
	}
}

// freeAddr резервирует свободный локальный адрес для теста.
func freeAddr(t *testing.T) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

// waitForServer ждёт, пока сервер начнёт отвечать на запросы.
func waitForServer(t *testing.T, url string) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("server at %s did not start in time", url)
}
