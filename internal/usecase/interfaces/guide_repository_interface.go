package interfaces

import (
	"context"
	"time"

	"lazarus_guide/internal/domain/entities"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=guide_repository_interface.go -destination=mocks/guide_repository_mock.go -package=mock_interfaces

// GuideFilter is the query contract shared by the rollup engine and the
// analytics aggregator: tenant partition, creation window, optional type and
// search predicates, optional lifecycle-state predicate.
type GuideFilter struct {
	HospitalID  string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	TipoGuia    string
	// Search matches case-insensitively against numero_guia_prestador,
	// numero_carteira OR numero_guia_operadora.
	Search string
	State  entities.GuideState
}

// GuideTotals are the monetary sums aggregated over a filtered set.
type GuideTotals struct {
	ValorTotalGeral         decimal.Decimal
	ValorTotalProcedimentos decimal.Decimal
	ValorTotalMateriais     decimal.Decimal
	ValorTotalMedicamentos  decimal.Decimal
}

// ProcedureStatusUpdate carries the partial update applied by the audit flow.
// Nil fields are left untouched. Status is already translated to the
// persisted vocabulary when it reaches the repository.
type ProcedureStatusUpdate struct {
	Status            entities.AuditoriaStatus
	ValorAprovado     *decimal.Decimal
	MotivoRejeicao    *string
	CategoriaRejeicao *string
}

// IGuideRepository abstracts the relational guide store.
//
// FindGuides preloads the procedure projection (id, sequence, code,
// description, total value) and orders by created_at descending. A limit <= 0
// means no limit.
type IGuideRepository interface {
	FindGuides(ctx context.Context, f GuideFilter, limit, offset int) ([]entities.Guia, error)
	CountGuides(ctx context.Context, f GuideFilter) (int64, error)
	SumGuideTotals(ctx context.Context, f GuideFilter) (GuideTotals, error)
	CountGuidesByTipo(ctx context.Context, hospitalID string) (map[string]int64, error)

	FindGuideByID(ctx context.Context, id int) (*entities.Guia, error)
	FindGuideByNumeroPrestador(ctx context.Context, hospitalID, numeroGuiaPrestador string) (*entities.Guia, error)

	FindProceduresByGuiaID(ctx context.Context, guiaID, limit, offset int) ([]entities.GuiaProcedimento, error)
	FindProcedureByID(ctx context.Context, id int) (*entities.GuiaProcedimento, error)
	CountProceduresByGuideWindow(ctx context.Context, f GuideFilter) (int64, error)

	FindStatusesByGuiaID(ctx context.Context, guiaID int) ([]entities.ProcedimentoStatus, error)
	UpdateProcedureStatus(ctx context.Context, procedimentoID int, upd ProcedureStatusUpdate) (*entities.GuiaProcedimento, error)

	Ping(ctx context.Context) error
}
