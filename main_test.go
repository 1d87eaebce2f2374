package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"katalog/internal/config"
	"katalog/internal/handlers"
	"katalog/internal/repositories"
	"katalog/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewProductRepositoryMemory(t *testing.T) {
	repo, closeRepo, err := newProductRepository(context.Background(), &config.Config{DatabaseDriver: "memory"}, zap.NewNop())
	require.NoError(t, err)
	defer closeRepo()

	assert.IsType(t, &repositories.InMemoryProductRepository{}, repo)
}

func TestNewProductRepositorySQLite(t *testing.T) {
	cfg := &config.Config{
		DatabaseDriver:    "sqlite",
		DatabaseDSN:       filepath.Join(t.TempDir(), "katalog.db"),
		DBMaxOpenConns:    1,
		DBMaxIdleConns:    1,
		DBConnMaxLifetime: time.Minute,
	}

	repo, closeRepo, err := newProductRepository(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeRepo()

	assert.IsType(t, &repositories.GORMProductRepository{}, repo)

	created, err := repo.Create(context.Background(), "Laptop", 1200, 10)
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Laptop", found.Name)
}

func TestServerStartupAndHealthCheck(t *testing.T) {
	app := server.NewApp(server.Deps{
		ProductRepo: repositories.NewInMemoryProductRepository(),
		Logger:      zap.NewNop(),
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.ShutdownWithTimeout(5 * time.Second)
	})

	baseURL := fmt.Sprintf("http://%s", ln.Addr().String())
	client := &http.Client{Timeout: 5 * time.Second}

	t.Run("HealthCheck", func(t *testing.T) {
		var resp *http.Response
		require.Eventually(t, func() bool {
			resp, err = client.Get(baseURL + "/health")
			return err == nil
		}, 2*time.Second, 20*time.Millisecond)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, handlers.HealthMessage, string(body))
	})

	t.Run("ProductsWithoutAuth", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/api/products")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"success":true,"message":"Products retrieved","data":[]}`, string(body))
	})
}
