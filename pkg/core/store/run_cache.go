package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"zngsim/pkg/config"
	"zngsim/pkg/models"
)

// RunCache caches simulation results keyed by a hash of the scenario and
// charger variant that produced them. Hybrid vault: DB (primary) + file
// system (fallback/local), same shape as the teacher's FSAPCache.
type RunCache struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewRunCache creates a run cache. If pool is nil and dir is empty, it
// defaults to a local .cache directory.
func NewRunCache(pool *pgxpool.Pool, dir string) *RunCache {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "zngsim", "runs")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check RunCache dir: %v\n", err)
		}
	}
	return &RunCache{pool: pool, fileDir: dir}
}

// RunEntry is a cached simulation run, wrapping the result with the key
// inputs that produced it.
type RunEntry struct {
	Key        string                  `json:"key"`
	ScenarioID string                  `json:"scenario_id"`
	EngineType string                  `json:"engine_type"`
	Result     models.SimulationResult `json:"result"`
	CachedAt   time.Time               `json:"cached_at"`
}

// Key computes a stable cache key from a scenario, the charger variant it
// was run against, and the engine used. Two identical scenario/charger/engine
// triples always produce the same key, so re-running an unchanged scenario
// hits the cache instead of recomputing.
func Key(scenario config.Scenario, charger config.ChargerVariant, engineType string) (string, error) {
	payload := struct {
		Scenario   config.Scenario
		Charger    config.ChargerVariant
		EngineType string
	}{scenario, charger, engineType}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cache key payload: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Get retrieves a cached simulation result by key.
func (c *RunCache) Get(ctx context.Context, key string) (*models.SimulationResult, error) {
	if c.pool != nil {
		query := `SELECT result FROM run_cache WHERE key = $1 LIMIT 1`
		var dataJSON []byte
		err := c.pool.QueryRow(ctx, query, key).Scan(&dataJSON)
		if err == nil {
			var result models.SimulationResult
			if err := json.Unmarshal(dataJSON, &result); err != nil {
				return nil, fmt.Errorf("failed to unmarshal db cached run: %w", err)
			}
			return &result, nil
		}
		return nil, nil
	}

	if c.fileDir != "" {
		return c.loadFromFile(c.path(key))
	}
	return nil, nil
}

// Save stores a simulation result under key.
func (c *RunCache) Save(ctx context.Context, key string, scenarioID string, result models.SimulationResult) error {
	entry := RunEntry{
		Key:        key,
		ScenarioID: scenarioID,
		EngineType: result.EngineType,
		Result:     result,
		CachedAt:   time.Now(),
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if c.pool != nil {
		query := `
			INSERT INTO run_cache (key, scenario_id, engine_type, result)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (key)
			DO UPDATE SET result = EXCLUDED.result, engine_type = EXCLUDED.engine_type
		`
		if _, err := c.pool.Exec(ctx, query, key, scenarioID, result.EngineType, resultJSON); err != nil {
			return fmt.Errorf("failed to save to db cache: %w", err)
		}
	}

	if c.fileDir != "" {
		fileBytes, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal cache entry: %w", err)
		}
		if err := ioutil.WriteFile(c.path(key), fileBytes, 0644); err != nil {
			return fmt.Errorf("failed to save to file cache: %w", err)
		}
	}

	return nil
}

// Exists reports whether key is already cached.
func (c *RunCache) Exists(ctx context.Context, key string) bool {
	if c.pool != nil {
		query := `SELECT 1 FROM run_cache WHERE key = $1 LIMIT 1`
		var exists int
		if err := c.pool.QueryRow(ctx, query, key).Scan(&exists); err == nil {
			return true
		}
	}

	if c.fileDir != "" {
		if _, err := os.Stat(c.path(key)); err == nil {
			return true
		}
	}
	return false
}

func (c *RunCache) path(key string) string {
	return filepath.Join(c.fileDir, key+".json")
}

func (c *RunCache) loadFromFile(path string) (*models.SimulationResult, error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	var entry RunEntry
	if err := json.Unmarshal(bytes, &entry); err == nil && entry.Result.EngineType != "" {
		return &entry.Result, nil
	}

	var result models.SimulationResult
	if err := json.Unmarshal(bytes, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
