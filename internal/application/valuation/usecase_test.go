package valuation_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmgroup/inventory-api/internal/application/valuation"
	"github.com/mdmgroup/inventory-api/internal/domain"
	"github.com/mdmgroup/inventory-api/internal/domain/entity"
	"github.com/mdmgroup/inventory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake respaldado por el ledger
// ──────────────────────────────────────────────────────────────────────────────

// ledgerRepo deriva los agregados desde filas crudas del ledger aplicando las
// mismas reglas que las vistas SQL: solo califica qty > 0, costo nulo vale 0,
// los artículos se cuentan una sola vez. Así el escenario ejercita la regla de
// agregación en vez de precargar el resultado.
type ledgerRepo struct {
	movements []entity.Movement
	projects  map[string]*entity.Project
}

func (f *ledgerRepo) Summary(context.Context) (*repository.ValuationSummary, error) {
	s := &repository.ValuationSummary{TotalValue: decimal.Zero}
	items := map[string]struct{}{}
	for _, m := range f.movements {
		if !m.Qty.IsPositive() {
			continue
		}
		cost := decimal.Zero
		if m.UnitCost != nil {
			cost = *m.UnitCost
		}
		s.TotalValue = s.TotalValue.Add(m.Qty.Mul(cost))
		items[m.ItemID] = struct{}{}
		s.TotalMovements++
	}
	s.UniqueItems = int64(len(items))
	return s, nil
}

func (f *ledgerRepo) ByProject(_ context.Context, projectID string) (*repository.ProjectValuation, error) {
	p, ok := f.projects[projectID]
	if !ok {
		return nil, nil
	}
	row := &repository.ProjectValuation{ProjectID: p.ID, Code: p.Code, Name: p.Name, ProjectValue: decimal.Zero}
	items := map[string]struct{}{}
	for _, m := range f.movements {
		if m.ProjectID == nil || *m.ProjectID != projectID || !m.Qty.IsPositive() {
			continue
		}
		cost := decimal.Zero
		if m.UnitCost != nil {
			cost = *m.UnitCost
		}
		row.ProjectValue = row.ProjectValue.Add(m.Qty.Mul(cost))
		items[m.ItemID] = struct{}{}
	}
	row.ItemCount = int64(len(items))
	return row, nil
}

func (f *ledgerRepo) AllProjects(ctx context.Context) ([]*repository.ProjectValuation, error) {
	out := make([]*repository.ProjectValuation, 0, len(f.projects))
	for id := range f.projects {
		row, err := f.ByProject(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}

func mov(itemID, projectID string, qty, unitCost string) entity.Movement {
	m := entity.Movement{
		ItemID: itemID,
		Qty:    decimal.RequireFromString(qty),
		Type:   entity.MovementPOReceive,
	}
	if projectID != "" {
		m.ProjectID = &projectID
	}
	if unitCost != "" {
		c := decimal.RequireFromString(unitCost)
		m.UnitCost = &c
	}
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregado global
// ──────────────────────────────────────────────────────────────────────────────

// Solo las filas con qty > 0 cuentan: un recibo de 10 unidades a costo 2
// seguido de una salida de 5 deja total_value 20, un único artículo y un
// único movimiento calificante. El agregado modela valor recibido, no
// existencias netas.
func TestSummary_SoloEntradasCalifican(t *testing.T) {
	uc := valuation.NewUseCase(&ledgerRepo{movements: []entity.Movement{
		mov("i1", "", "10", "2"),
		mov("i1", "", "-5", "2"),
	}})

	out, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, int64(1), out.UniqueItems)
	assert.Equal(t, int64(1), out.TotalMovements)
}

// Costo nulo vale 0 en la suma pero la fila sigue contando como movimiento y
// su artículo como distinto.
func TestSummary_CostoNuloCuentaComoCero(t *testing.T) {
	uc := valuation.NewUseCase(&ledgerRepo{movements: []entity.Movement{
		mov("i1", "", "10", "2"),
		mov("i2", "", "3", ""),
	}})

	out, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, int64(2), out.UniqueItems)
	assert.Equal(t, int64(2), out.TotalMovements)
}

func TestSummary_LedgerVacio_DevuelveCeros(t *testing.T) {
	uc := valuation.NewUseCase(&ledgerRepo{})

	out, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalValue.IsZero())
	assert.Zero(t, out.UniqueItems)
	assert.Zero(t, out.TotalMovements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Valorización por proyecto
// ──────────────────────────────────────────────────────────────────────────────

func TestByProject_AtribuyeSoloSusEntradas(t *testing.T) {
	uc := valuation.NewUseCase(&ledgerRepo{
		projects: map[string]*entity.Project{
			"p1": {ID: "p1", Code: "PRJ-1", Name: "Obra Norte"},
			"p2": {ID: "p2", Code: "PRJ-2", Name: "Obra Sur"},
		},
		movements: []entity.Movement{
			mov("i1", "p1", "4", "5"),
			mov("i2", "p1", "-2", "5"),
			mov("i1", "p2", "100", "1"),
		},
	})

	out, err := uc.ByProject(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, out.ProjectValue.Equal(decimal.RequireFromString("20")))
	assert.Equal(t, int64(1), out.ItemCount)
	assert.Equal(t, "PRJ-1", out.Code)
}

func TestByProject_ProyectoInexistente_NotFound(t *testing.T) {
	uc := valuation.NewUseCase(&ledgerRepo{projects: map[string]*entity.Project{}})

	_, err := uc.ByProject(context.Background(), "p-missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestByProject_ProyectoSinMovimientos_DevuelveCeros(t *testing.T) {
	uc := valuation.NewUseCase(&ledgerRepo{projects: map[string]*entity.Project{
		"p1": {ID: "p1", Code: "PRJ-1", Name: "Obra Norte"},
	}})

	out, err := uc.ByProject(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, out.ProjectValue.IsZero())
	assert.Zero(t, out.ItemCount)
	assert.Equal(t, "PRJ-1", out.Code)
}
