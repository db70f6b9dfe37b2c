package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lazarus_guide/internal/domain/entities"
	"lazarus_guide/internal/usecase/interfaces"
	mock_interfaces "lazarus_guide/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

// countsByState stubs CountGuides with fixed per-state counts.
func countsByState(repo *mock_interfaces.MockIGuideRepository, counts map[entities.GuideState]int64) {
	repo.EXPECT().CountGuides(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f interfaces.GuideFilter) (int64, error) {
			return counts[f.State], nil
		},
	).Times(4)
}

func TestAnalyticsUseCase_GetDailySummary(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("computes counts and averages over the day window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewAnalyticsUseCase(repo, testHospital)

		countsByState(repo, map[entities.GuideState]int64{
			"":                             4,
			entities.GuideStateFinalizada:  2,
			entities.GuideStateEmAndamento: 1,
			entities.GuideStateCancelada:   1,
		})
		repo.EXPECT().SumGuideTotals(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f interfaces.GuideFilter) (interfaces.GuideTotals, error) {
				if f.HospitalID != testHospital {
					t.Fatalf("expected default hospital, got %q", f.HospitalID)
				}
				wantStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
				if f.CreatedFrom == nil || !f.CreatedFrom.Equal(wantStart) {
					t.Fatalf("unexpected window start: %v", f.CreatedFrom)
				}
				return interfaces.GuideTotals{ValorTotalGeral: decimal.NewFromInt(1000)}, nil
			},
		)

		s, err := uc.GetDailySummary(context.Background(), ref, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Total != 4 || s.Finalizadas != 2 || s.EmAndamento != 1 || s.Canceladas != 1 {
			t.Fatalf("unexpected counts: %+v", s)
		}
		if !s.ValorMedio.Equal(decimal.NewFromInt(250)) {
			t.Fatalf("expected valor medio 250, got %s", s.ValorMedio)
		}
	})

	t.Run("empty day divides by nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewAnalyticsUseCase(repo, testHospital)

		countsByState(repo, map[entities.GuideState]int64{})
		repo.EXPECT().SumGuideTotals(gomock.Any(), gomock.Any()).Return(interfaces.GuideTotals{}, nil)

		s, err := uc.GetDailySummary(context.Background(), ref, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.ValorMedio.IsZero() {
			t.Fatalf("expected zero valor medio, got %s", s.ValorMedio)
		}
	})
}

func TestAnalyticsUseCase_GetGuidesByStatus(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := NewAnalyticsUseCase(nil, testHospital)
		_, err := uc.GetGuidesByStatus(context.Background(), "DONE", ref, 0, "")
		if !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})

	t.Run("accepts lowercase and defaults limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewAnalyticsUseCase(repo, testHospital)

		repo.EXPECT().FindGuides(gomock.Any(), gomock.Any(), 100, 0).DoAndReturn(
			func(_ context.Context, f interfaces.GuideFilter, _, _ int) ([]entities.Guia, error) {
				if f.State != entities.GuideStateFinalizada {
					t.Fatalf("expected FINALIZADA filter, got %s", f.State)
				}
				return []entities.Guia{{ID: 1, NumeroGuiaPrestador: "G-1"}}, nil
			},
		)

		guides, err := uc.GetGuidesByStatus(context.Background(), "finalizada", ref, 0, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(guides) != 1 || guides[0].Status != "FINALIZADA" {
			t.Fatalf("unexpected result: %+v", guides)
		}
	})
}

func TestAnalyticsUseCase_GetStatistics(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("rejects unknown period", func(t *testing.T) {
		uc := NewAnalyticsUseCase(nil, testHospital)
		_, err := uc.GetStatistics(context.Background(), "quarter", ref, "")
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("taxa counts cancellations as completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewAnalyticsUseCase(repo, testHospital)

		countsByState(repo, map[entities.GuideState]int64{
			"":                             3,
			entities.GuideStateFinalizada:  1,
			entities.GuideStateEmAndamento: 1,
			entities.GuideStateCancelada:   1,
		})
		repo.EXPECT().SumGuideTotals(gomock.Any(), gomock.Any()).Return(interfaces.GuideTotals{ValorTotalGeral: decimal.NewFromInt(100)}, nil)
		repo.EXPECT().CountProceduresByGuideWindow(gomock.Any(), gomock.Any()).Return(int64(7), nil)

		s, err := uc.GetStatistics(context.Background(), "week", ref, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// (1 finalizada + 1 cancelada) / 3 * 100 = 66.67
		if !s.TaxaFinalizacao.Equal(decimal.NewFromFloat(66.67)) {
			t.Fatalf("expected taxa 66.67, got %s", s.TaxaFinalizacao)
		}
		if !s.ProcedimentosPorGuia.Equal(decimal.NewFromFloat(2.33)) {
			t.Fatalf("expected 2.33 procs per guide, got %s", s.ProcedimentosPorGuia)
		}
	})

	t.Run("empty window yields zero rates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewAnalyticsUseCase(repo, testHospital)

		countsByState(repo, map[entities.GuideState]int64{})
		repo.EXPECT().SumGuideTotals(gomock.Any(), gomock.Any()).Return(interfaces.GuideTotals{}, nil)
		repo.EXPECT().CountProceduresByGuideWindow(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		s, err := uc.GetStatistics(context.Background(), "day", ref, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.TaxaFinalizacao.IsZero() || !s.ValorMedioGuia.IsZero() {
			t.Fatalf("expected zero rates, got %+v", s)
		}
	})
}

func TestAnalyticsUseCase_GetRevenue(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("rejects unknown period", func(t *testing.T) {
		uc := NewAnalyticsUseCase(nil, testHospital)
		_, err := uc.GetRevenue(context.Background(), "always", ref, "")
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("filters to finalized guides and groups by billing type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewAnalyticsUseCase(repo, testHospital)

		repo.EXPECT().FindGuides(gomock.Any(), gomock.Any(), 0, 0).DoAndReturn(
			func(_ context.Context, f interfaces.GuideFilter, _, _ int) ([]entities.Guia, error) {
				if f.State != entities.GuideStateFinalizada {
					t.Fatalf("expected FINALIZADA filter, got %q", f.State)
				}
				return []entities.Guia{
					{ID: 1, TipoFaturamento: strPtr("CONVENIO"), ValorTotalGeral: decimal.NewFromInt(300)},
					{ID: 2, ValorTotalGeral: decimal.NewFromInt(100)},
					{ID: 3, TipoFaturamento: strPtr("CONVENIO"), ValorTotalGeral: decimal.NewFromInt(200)},
				}, nil
			},
		)

		rev, err := uc.GetRevenue(context.Background(), "month", ref, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rev.GuiasFaturadas != 3 || !rev.ReceitaTotal.Equal(decimal.NewFromInt(600)) {
			t.Fatalf("unexpected totals: %+v", rev)
		}
		if !rev.ValorMedioGuia.Equal(decimal.NewFromInt(200)) {
			t.Fatalf("expected valor medio 200, got %s", rev.ValorMedioGuia)
		}
		if len(rev.PorTipoFaturamento) != 2 {
			t.Fatalf("expected 2 billing-type buckets, got %d", len(rev.PorTipoFaturamento))
		}
		// First-seen order: CONVENIO then the unspecified bucket.
		if rev.PorTipoFaturamento[0].Tipo != "CONVENIO" || rev.PorTipoFaturamento[0].Quantidade != 2 {
			t.Fatalf("unexpected first bucket: %+v", rev.PorTipoFaturamento[0])
		}
		if rev.PorTipoFaturamento[1].Tipo != TipoFaturamentoUnspecified || !rev.PorTipoFaturamento[1].ValorTotal.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("unexpected second bucket: %+v", rev.PorTipoFaturamento[1])
		}
	})

	t.Run("no revenue without finalized guides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := NewAnalyticsUseCase(repo, testHospital)

		repo.EXPECT().FindGuides(gomock.Any(), gomock.Any(), 0, 0).Return(nil, nil)

		rev, err := uc.GetRevenue(context.Background(), "day", ref, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rev.ReceitaTotal.IsZero() || rev.GuiasFaturadas != 0 || len(rev.PorTipoFaturamento) != 0 {
			t.Fatalf("expected empty revenue, got %+v", rev)
		}
	})
}
