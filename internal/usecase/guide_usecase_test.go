package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lazarus_guide/internal/config"
	"lazarus_guide/internal/domain/entities"
	"lazarus_guide/internal/usecase/interfaces"
	mock_interfaces "lazarus_guide/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testHospital = "hosp_test_001"

func newTestGuideUseCase(repo interfaces.IGuideRepository) *GuideUseCase {
	return NewGuideUseCase(repo, nil, nil, testHospital, config.EventBusConfig{})
}

func TestGuideUseCase_ListGuides(t *testing.T) {
	t.Run("clamps limit and defaults hospital", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		wantFilter := interfaces.GuideFilter{HospitalID: testHospital}
		repo.EXPECT().FindGuides(gomock.Any(), wantFilter, 100, 0).Return([]entities.Guia{}, nil)
		repo.EXPECT().CountGuides(gomock.Any(), wantFilter).Return(int64(0), nil)

		res, err := uc.ListGuides(context.Background(), ListGuidesParams{Limit: 5000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Limit != 100 || res.Page != 1 {
			t.Fatalf("expected limit 100 page 1, got %d/%d", res.Limit, res.Page)
		}
	})

	t.Run("page drives offset when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		repo.EXPECT().FindGuides(gomock.Any(), gomock.Any(), 10, 20).Return([]entities.Guia{}, nil)
		repo.EXPECT().CountGuides(gomock.Any(), gomock.Any()).Return(int64(45), nil)

		res, err := uc.ListGuides(context.Background(), ListGuidesParams{Limit: 10, Page: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.HasNext || !res.HasPrev {
			t.Fatalf("expected hasNext and hasPrev, got %+v", res)
		}
	})

	t.Run("explicit offset wins over page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		offset := 7
		repo.EXPECT().FindGuides(gomock.Any(), gomock.Any(), 10, 7).Return([]entities.Guia{}, nil)
		repo.EXPECT().CountGuides(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		if _, err := uc.ListGuides(context.Background(), ListGuidesParams{Limit: 10, Page: 3, Offset: &offset}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("attaches derived audit rollup per guide", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		guides := []entities.Guia{
			{ID: 1, Procedimentos: []entities.GuiaProcedimento{{ID: 10}}},
			{ID: 2, Procedimentos: []entities.GuiaProcedimento{{ID: 20}}},
		}
		repo.EXPECT().FindGuides(gomock.Any(), gomock.Any(), 100, 0).Return(guides, nil)
		repo.EXPECT().CountGuides(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		repo.EXPECT().FindStatusesByGuiaID(gomock.Any(), 1).Return([]entities.ProcedimentoStatus{
			{ProcedimentoID: 10, Status: entities.AuditoriaAprovado},
		}, nil)
		repo.EXPECT().FindStatusesByGuiaID(gomock.Any(), 2).Return(nil, nil)

		res, err := uc.ListGuides(context.Background(), ListGuidesParams{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Data[0].AuditStatus != entities.AuditStatusCompleted {
			t.Fatalf("guide 1: expected COMPLETED, got %s", res.Data[0].AuditStatus)
		}
		if res.Data[1].AuditStatus != entities.AuditStatusPending {
			t.Fatalf("guide 2: expected PENDING, got %s", res.Data[1].AuditStatus)
		}
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		repo.EXPECT().FindGuides(gomock.Any(), gomock.Any(), 100, 0).Return(nil, errors.New("db down"))

		_, err := uc.ListGuides(context.Background(), ListGuidesParams{})
		if !errors.Is(err, ErrStoreFailure) {
			t.Fatalf("expected ErrStoreFailure, got %v", err)
		}
	})
}

func TestGuideUseCase_GetGuideByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newTestGuideUseCase(nil)
		_, err := uc.GetGuideByID(context.Background(), "abc")
		if !errors.Is(err, ErrInvalidGuideID) {
			t.Fatalf("expected ErrInvalidGuideID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		repo.EXPECT().FindGuideByID(gomock.Any(), 42).Return(nil, nil)

		_, err := uc.GetGuideByID(context.Background(), "42")
		if !errors.Is(err, ErrGuideNotFound) {
			t.Fatalf("expected ErrGuideNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		repo.EXPECT().FindGuideByID(gomock.Any(), 42).Return(&entities.Guia{ID: 42}, nil)

		g, err := uc.GetGuideByID(context.Background(), " 42 ")
		if err != nil || g.ID != 42 {
			t.Fatalf("unexpected result: %v %v", g, err)
		}
	})
}

func TestGuideUseCase_GetGuideProcedures(t *testing.T) {
	t.Run("blank numero", func(t *testing.T) {
		uc := newTestGuideUseCase(nil)
		_, err := uc.GetGuideProcedures(context.Background(), "   ", 0, 0)
		if !errors.Is(err, ErrInvalidNumeroGuia) {
			t.Fatalf("expected ErrInvalidNumeroGuia, got %v", err)
		}
	})

	t.Run("unknown guide yields empty list, not error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		repo.EXPECT().FindGuideByNumeroPrestador(gomock.Any(), testHospital, "G-999").Return(nil, nil)

		procs, err := uc.GetGuideProcedures(context.Background(), "G-999", 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if procs == nil || len(procs) != 0 {
			t.Fatalf("expected empty slice, got %v", procs)
		}
	})

	t.Run("merges status rows and defaults to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		guide := &entities.Guia{ID: 7}
		updatedAt := time.Now()
		repo.EXPECT().FindGuideByNumeroPrestador(gomock.Any(), testHospital, "G-7").Return(guide, nil)
		repo.EXPECT().FindProceduresByGuiaID(gomock.Any(), 7, 200, 0).Return([]entities.GuiaProcedimento{
			{ID: 70}, {ID: 71},
		}, nil)
		repo.EXPECT().FindStatusesByGuiaID(gomock.Any(), 7).Return([]entities.ProcedimentoStatus{
			{ProcedimentoID: 70, Status: entities.AuditoriaRejeitado, AuditorID: "aud-1", UpdatedAt: updatedAt},
		}, nil)

		procs, err := uc.GetGuideProcedures(context.Background(), "G-7", 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if procs[0].Status != entities.StatusRejected || *procs[0].AuditorID != "aud-1" {
			t.Fatalf("unexpected first procedure: %+v", procs[0])
		}
		if procs[1].Status != entities.StatusPending || procs[1].AuditorID != nil {
			t.Fatalf("unexpected second procedure: %+v", procs[1])
		}
	})
}

func TestGuideUseCase_GetGuideStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIGuideRepository(ctrl)
	uc := newTestGuideUseCase(repo)

	repo.EXPECT().CountGuidesByTipo(gomock.Any(), testHospital).Return(map[string]int64{"SP/SADT": 3}, nil)
	repo.EXPECT().SumGuideTotals(gomock.Any(), interfaces.GuideFilter{HospitalID: testHospital}).Return(interfaces.GuideTotals{}, nil)

	stats, err := uc.GetGuideStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.CountByType["SP/SADT"] != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestGuideUseCase_UpdateProcedureStatus(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newTestGuideUseCase(nil)
		_, err := uc.UpdateProcedureStatus(context.Background(), "x", UpdateProcedureStatusInput{Status: "APPROVED"})
		if !errors.Is(err, ErrInvalidProcedureID) {
			t.Fatalf("expected ErrInvalidProcedureID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := newTestGuideUseCase(nil)
		_, err := uc.UpdateProcedureStatus(context.Background(), "1", UpdateProcedureStatusInput{Status: "DONE"})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("rejection requires motivo and makes no store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		blank := "   "
		_, err := uc.UpdateProcedureStatus(context.Background(), "1", UpdateProcedureStatusInput{Status: "REJECTED", MotivoRejeicao: &blank})
		if !errors.Is(err, ErrMotivoRejeicaoRequired) {
			t.Fatalf("expected ErrMotivoRejeicaoRequired, got %v", err)
		}
	})

	t.Run("lowercase status is accepted and translated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		repo.EXPECT().UpdateProcedureStatus(gomock.Any(), 5, gomock.AssignableToTypeOf(interfaces.ProcedureStatusUpdate{})).DoAndReturn(
			func(_ context.Context, _ int, upd interfaces.ProcedureStatusUpdate) (*entities.GuiaProcedimento, error) {
				if upd.Status != entities.AuditoriaAprovado {
					t.Fatalf("expected APROVADO, got %s", upd.Status)
				}
				return &entities.GuiaProcedimento{ID: 5}, nil
			},
		)

		proc, err := uc.UpdateProcedureStatus(context.Background(), "5", UpdateProcedureStatusInput{Status: "approved"})
		if err != nil || proc.ID != 5 {
			t.Fatalf("unexpected result: %v %v", proc, err)
		}
	})

	t.Run("missing procedure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		repo.EXPECT().UpdateProcedureStatus(gomock.Any(), 5, gomock.Any()).Return(nil, nil)

		_, err := uc.UpdateProcedureStatus(context.Background(), "5", UpdateProcedureStatusInput{Status: "PENDING"})
		if !errors.Is(err, ErrProcedureNotFound) {
			t.Fatalf("expected ErrProcedureNotFound, got %v", err)
		}
	})

	t.Run("rejection with motivo persists it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGuideRepository(ctrl)
		uc := newTestGuideUseCase(repo)

		motivo := "codigo incompativel"
		repo.EXPECT().UpdateProcedureStatus(gomock.Any(), 9, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, upd interfaces.ProcedureStatusUpdate) (*entities.GuiaProcedimento, error) {
				if upd.Status != entities.AuditoriaRejeitado || upd.MotivoRejeicao == nil || *upd.MotivoRejeicao != motivo {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return &entities.GuiaProcedimento{ID: 9}, nil
			},
		)

		if _, err := uc.UpdateProcedureStatus(context.Background(), "9", UpdateProcedureStatusInput{Status: "REJECTED", MotivoRejeicao: &motivo}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
