// Command server is a thin HTTP server wiring pkg/api handlers. Grounded on
// cmd/api/main.go: godotenv.Load() for process defaults, http.HandleFunc
// registration, fmt-based startup logging.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"zngsim/pkg/api/scenario"
	"zngsim/pkg/core/cfgio"
	"zngsim/pkg/core/store"
)

func main() {
	cfgio.LoadEnv("")

	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] failed to init DB pool, falling back to file cache: %v\n", err)
		}
	}

	cacheDir := os.Getenv("RUN_CACHE_DIR")
	cache := store.NewRunCache(store.GetPool(), cacheDir)

	handler := scenario.NewHandler(cache)
	http.HandleFunc("/api/scenario/simulate", handler.HandleSimulate)
	http.HandleFunc("/api/scenario/report", handler.HandleReport)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("zngsim API server starting on :%s\n", port)
	fmt.Println("  - POST /api/scenario/simulate")
	fmt.Println("  - POST /api/scenario/report")

	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
