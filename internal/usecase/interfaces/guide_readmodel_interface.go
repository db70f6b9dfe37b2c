package interfaces

import (
	"context"
	"time"

	"lazarus_guide/internal/domain/entities"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=guide_readmodel_interface.go -destination=mocks/guide_readmodel_mock.go -package=mock_interfaces

// GuideDocument is the denormalized read-side projection of a guide. It is
// refreshed best-effort after mutations; the relational store remains the
// source of truth and the read side is not guaranteed consistent with it.
type GuideDocument struct {
	ID                  int
	HospitalID          string
	NumeroGuiaPrestador string
	TipoGuia            string
	State               entities.GuideState
	AuditStatus         entities.AuditStatus
	ValorTotalGeral     decimal.Decimal
	UpdatedAt           time.Time
}

// IGuideReadModel abstracts the document store holding guide projections.
type IGuideReadModel interface {
	UpsertGuideSummary(ctx context.Context, doc GuideDocument) error
	Ping(ctx context.Context) error
}
