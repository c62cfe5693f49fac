package state

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"tabletpl/config"
)

func TestLocalEnv_Storage(t *testing.T) {
	ctx := context.Background()
	env := newLocalEnv()

	if _, err := env.Storage(ctx); err == nil {
		t.Fatal("Storage() without configuration succeeded")
	}

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)

	repo, err := env.Storage(ctx)
	if err != nil {
		t.Fatalf("Storage() error = %v", err)
	}
	again, err := env.Storage(ctx)
	if err != nil || again != repo {
		t.Errorf("Storage() opened storage twice: %v", err)
	}
	if _, err := repo.List(ctx); err != nil {
		t.Errorf("List() error = %v", err)
	}

	if err := env.CloseStorage(); err != nil {
		t.Errorf("CloseStorage() error = %v", err)
	}
	if err := env.CloseStorage(); err != nil {
		t.Errorf("second CloseStorage() error = %v", err)
	}
}
