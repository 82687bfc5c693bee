// loader carga CSVs de movimientos e inventario directamente a PostgreSQL,
// sin pasar por la API. Útil para la carga histórica inicial del log.
//
// Uso: go run ./cmd/loader -movements recepcion.csv -inventory existencias.csv
// Requiere la misma configuración de BD que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/ingest"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/infrastructure/postgres"
	"github.com/brettsimpson1971-buildai/ride1dashboard/pkg/config"
)

func main() {
	movementsPath := flag.String("movements", "", "CSV de movimientos para receiving_log")
	inventoryPath := flag.String("inventory", "", "CSV de existencias para inventory_items")
	flag.Parse()

	if *movementsPath == "" && *inventoryPath == "" {
		fmt.Fprintln(os.Stderr, "se requiere -movements y/o -inventory")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := ingest.NewUseCase(postgres.NewTxRunner(pool))

	if *inventoryPath != "" {
		n, err := loadFile(ctx, *inventoryPath, uc.LoadInventory)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Inventario %s: %v\n", *inventoryPath, err)
			os.Exit(1)
		}
		fmt.Printf("inventario: %d filas procesadas\n", n)
	}

	if *movementsPath != "" {
		n, err := loadFile(ctx, *movementsPath, uc.LoadMovements)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Movimientos %s: %v\n", *movementsPath, err)
			os.Exit(1)
		}
		fmt.Printf("movimientos: %d filas insertadas\n", n)
	}
}

func loadFile(ctx context.Context, path string, load func(context.Context, io.Reader) (int64, error)) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return load(ctx, f)
}
