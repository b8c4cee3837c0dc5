//go:build integration

// Package containers provides shared test containers for integration tests.
// Containers are started once per test binary and reused across suites.
package containers

import (
	"sync"
	"testing"
)

// Manager hands out shared containers, starting each kind at most once.
type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
	redis    *RedisContainer
}

var (
	managerOnce sync.Once
	manager     *Manager
)

// GetManager returns the process-wide container manager.
func GetManager() *Manager {
	managerOnce.Do(func() {
		manager = &Manager{}
	})
	return manager
}

// GetPostgres returns the shared PostgreSQL container, starting it on first use.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.postgres == nil {
		pc, err := startPostgres()
		if err != nil {
			t.Fatalf("start postgres container: %v", err)
		}
		m.postgres = pc
	}
	return m.postgres
}

// GetRedis returns the shared Redis container, starting it on first use.
func (m *Manager) GetRedis(t *testing.T) *RedisContainer {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.redis == nil {
		rc, err := startRedis()
		if err != nil {
			t.Fatalf("start redis container: %v", err)
		}
		m.redis = rc
	}
	return m.redis
}
