package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quotes-api/internal/config"
	"quotes-api/pkg/server"
)

// ConnectionManager keeps the service container alive across warm
// Lambda invocations so the database pool outlives a single request
type ConnectionManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.Mutex
	initialized bool
	config      *config.Config
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = &ConnectionManager{}
	})
	return globalConnectionManager
}

// Initialize initializes the connection manager with configuration
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.initializeLocked(cfg)
}

// initializeLocked builds the container. State is only stored on
// success, so a failed cold start is retried on the next invocation
// instead of poisoning the manager.
func (cm *ConnectionManager) initializeLocked(cfg *config.Config) error {
	if cm.initialized && cm.container != nil {
		return nil
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.container = container
	cm.lastUsed = time.Now()
	cm.initialized = true
	return nil
}

// GetContainer returns the service container, initializing if
// necessary. A nil container is always paired with a non-nil error.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*server.Container, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized && cm.container != nil {
		cm.lastUsed = time.Now()
		return cm.container, nil
	}

	cfg := cm.config
	if cfg == nil {
		var err error
		cfg, err = config.GetOptimizedConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	if err := cm.initializeLocked(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	return cm.container, nil
}

// IsHealthy checks if the connection manager is healthy
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.initialized || cm.container == nil {
		return false
	}

	// Connections idle past five minutes count as stale
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup performs cleanup operations
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	cm.initialized = false
	return nil
}
