package state

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tabletpl/storage"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		Log:   zap.NewNop(),
	}
}

// Storage opens document storage configured for the program on first use.
func (e *LocalEnv) Storage(ctx context.Context) (*storage.Repository, error) {
	if e.repo != nil {
		return e.repo, nil
	}
	if e.Cfg == nil {
		return nil, errors.New("configuration is not loaded")
	}
	repo, err := storage.Open(ctx, e.Cfg.Storage.Path, e.Log)
	if err != nil {
		return nil, err
	}
	e.repo = repo
	return repo, nil
}

// CloseStorage releases storage if it was opened.
func (e *LocalEnv) CloseStorage() error {
	if e.repo == nil {
		return nil
	}
	err := e.repo.Close()
	e.repo = nil
	return err
}
