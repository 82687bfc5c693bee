// Package ingest carga masiva de CSV hacia receiving_log e inventory_items.
// Es el único productor de registros del log: el núcleo de fugas jamás crea
// ni borra movimientos.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/entity"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La carga de un archivo es todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRecordRepository,
		itemRepo repository.InventoryItemRepository,
	) error) error
}

// Cabeceras esperadas de los CSV.
var (
	movementHeader  = []string{"part_number", "description", "quantity", "employee_id", "movement_type", "location_bin", "variance_amount", "severity_level", "timestamp"}
	inventoryHeader = []string{"part_number", "description", "quantity_on_hand", "location_bin"}
)

// Formatos de fecha aceptados en la columna timestamp.
var timestampLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// UseCase carga masiva transaccional.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// LoadMovements parsea un CSV de movimientos y lo inserta en receiving_log
// dentro de una transacción. Devuelve el número de filas insertadas.
//
// Celdas vacías de employee_id, variance_amount y severity_level se cargan
// como NULL (la forma "cadena vacía" de employee_id existe en datos ya
// cargados por otras fuentes; el clasificador cubre ambas).
func (uc *UseCase) LoadMovements(ctx context.Context, r io.Reader) (int64, error) {
	records, err := parseMovements(r)
	if err != nil {
		return 0, err
	}
	var inserted int64
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRecordRepository, _ repository.InventoryItemRepository) error {
		n, err := movRepo.BulkInsert(ctx, records)
		if err != nil {
			return err
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("carga de movimientos: %w", err)
	}
	return inserted, nil
}

// LoadInventory parsea un CSV de existencias y hace upsert por part_number
// dentro de una transacción. Devuelve el número de filas procesadas.
func (uc *UseCase) LoadInventory(ctx context.Context, r io.Reader) (int64, error) {
	items, err := parseInventory(r)
	if err != nil {
		return 0, err
	}
	var upserted int64
	err = uc.txRunner.Run(ctx, func(_ repository.MovementRecordRepository, itemRepo repository.InventoryItemRepository) error {
		n, err := itemRepo.BulkUpsert(ctx, items)
		if err != nil {
			return err
		}
		upserted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("carga de inventario: %w", err)
	}
	return upserted, nil
}

func parseMovements(r io.Reader) ([]*entity.MovementRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	if err := expectHeader(cr, movementHeader); err != nil {
		return nil, err
	}

	var out []*entity.MovementRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		rec, err := rowToMovement(row)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if len(out) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return out, nil
}

func rowToMovement(row []string) (*entity.MovementRecord, error) {
	if len(row) != len(movementHeader) {
		return nil, fmt.Errorf("se esperaban %d columnas, llegaron %d", len(movementHeader), len(row))
	}
	qty, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return nil, fmt.Errorf("quantity %q: %w", row[2], err)
	}
	rec := &entity.MovementRecord{
		PartNumber:   strings.TrimSpace(row[0]),
		Description:  strings.TrimSpace(row[1]),
		Quantity:     qty,
		MovementType: strings.TrimSpace(row[4]),
		LocationBin:  strings.TrimSpace(row[5]),
	}
	if rec.PartNumber == "" {
		return nil, fmt.Errorf("part_number vacío")
	}
	if emp := strings.TrimSpace(row[3]); emp != "" {
		rec.EmployeeID = &emp
	}
	if v := strings.TrimSpace(row[6]); v != "" {
		variance, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("variance_amount %q: %w", v, err)
		}
		rec.VarianceAmount = &variance
	}
	if sev := strings.ToUpper(strings.TrimSpace(row[7])); sev != "" {
		switch sev {
		case entity.SeverityLow, entity.SeverityMedium, entity.SeverityHigh:
			rec.SeverityLevel = &sev
		default:
			return nil, fmt.Errorf("severity_level %q desconocido", sev)
		}
	}
	ts, err := parseTimestamp(strings.TrimSpace(row[8]))
	if err != nil {
		return nil, err
	}
	rec.Timestamp = ts
	return rec, nil
}

func parseInventory(r io.Reader) ([]*entity.InventoryItem, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	if err := expectHeader(cr, inventoryHeader); err != nil {
		return nil, err
	}

	var out []*entity.InventoryItem
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if len(row) != len(inventoryHeader) {
			return nil, fmt.Errorf("línea %d: se esperaban %d columnas, llegaron %d", line, len(inventoryHeader), len(row))
		}
		qty, err := decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: quantity_on_hand %q: %w", line, row[2], err)
		}
		pn := strings.TrimSpace(row[0])
		if pn == "" {
			return nil, fmt.Errorf("línea %d: part_number vacío", line)
		}
		out = append(out, &entity.InventoryItem{
			PartNumber:     pn,
			Description:    strings.TrimSpace(row[1]),
			QuantityOnHand: qty,
			LocationBin:    strings.TrimSpace(row[3]),
		})
	}
	if len(out) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return out, nil
}

func expectHeader(cr *csv.Reader, want []string) error {
	got, err := cr.Read()
	if err != nil {
		return fmt.Errorf("leer cabecera: %w", err)
	}
	if len(got) != len(want) {
		return fmt.Errorf("cabecera inválida: se esperaban %d columnas", len(want))
	}
	for i := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want[i]) {
			return fmt.Errorf("cabecera inválida: columna %d debe ser %q", i+1, want[i])
		}
	}
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("timestamp %q no reconocido", s)
}
