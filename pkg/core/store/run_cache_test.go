package store

import (
	"context"
	"testing"

	"zngsim/pkg/config"
	"zngsim/pkg/core/engine"
)

func TestRunCacheSaveThenGetRoundTripsViaFile(t *testing.T) {
	dir := t.TempDir()
	cache := NewRunCache(nil, dir)

	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]
	result := engine.RunStatic(scenario, charger)

	key, err := Key(scenario, charger, result.EngineType)
	if err != nil {
		t.Fatalf("unexpected error computing key: %v", err)
	}

	ctx := context.Background()
	if cache.Exists(ctx, key) {
		t.Fatal("expected cache miss before Save")
	}

	if err := cache.Save(ctx, key, "pilot-scenario", result); err != nil {
		t.Fatalf("unexpected error saving run: %v", err)
	}

	if !cache.Exists(ctx, key) {
		t.Error("expected cache hit after Save")
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error getting run: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cached result, got nil")
	}
	if got.Summary.TotalNetCashFlow != result.Summary.TotalNetCashFlow {
		t.Errorf("expected total net cash flow %v, got %v", result.Summary.TotalNetCashFlow, got.Summary.TotalNetCashFlow)
	}
}

func TestRunCacheGetMissReturnsNil(t *testing.T) {
	dir := t.TempDir()
	cache := NewRunCache(nil, dir)

	got, err := cache.Get(context.Background(), "nonexistent-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected nil result for a cache miss")
	}
}

func TestKeyIsStableForIdenticalScenarios(t *testing.T) {
	scenario := config.DefaultScenario()
	charger := scenario.ChargerVariants[0]

	k1, err := Key(scenario, charger, "static")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k2, err := Key(scenario, charger, "static")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k1 != k2 {
		t.Error("expected identical scenario/charger/engine to produce the same key")
	}

	scenario.Revenue.InitialFleetSize += 1
	k3, err := Key(scenario, charger, "static")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k1 == k3 {
		t.Error("expected a changed scenario to produce a different key")
	}
}
