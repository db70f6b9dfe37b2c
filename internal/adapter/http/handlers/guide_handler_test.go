package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lazarus_guide/internal/adapter/http/handlers/mocks"
	"lazarus_guide/internal/domain/entities"
	"lazarus_guide/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newGuideRouter(h *GuideHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/api/v1/guides")
	g.GET("", h.ListGuides)
	g.GET("/stats", h.GetGuideStats)
	g.GET("/procedures/:procedureId", h.GetProcedureByID)
	g.PUT("/procedures/:procedureId/status", h.UpdateProcedureStatus)
	g.GET("/:id", h.GetGuideByID)
	g.GET("/:id/procedures", h.GetGuideProcedures)
	return r
}

func TestGuideHandler_ListGuides(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filters through and flattens pagination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().ListGuides(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, p usecase.ListGuidesParams) (usecase.PaginatedGuides, error) {
				if p.Limit != 10 || p.Page != 2 || p.Search != "G-1" || p.TipoGuia != "SP/SADT" {
					t.Fatalf("unexpected params: %+v", p)
				}
				if p.Offset != nil {
					t.Fatalf("expected nil offset, got %d", *p.Offset)
				}
				return usecase.PaginatedGuides{Total: 25, Page: 2, Limit: 10, HasNext: true, HasPrev: true}, nil
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/guides?limit=10&page=2&search=G-1&tipoGuia=SP%2FSADT", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool            `json:"success"`
			Data    json.RawMessage `json:"data"`
			Total   int64           `json:"total"`
			HasNext bool            `json:"hasNext"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Total != 25 || !body.HasNext {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if string(body.Data) != "[]" {
			t.Fatalf("expected empty array data, got %s", body.Data)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().ListGuides(gomock.Any(), gomock.Any()).Return(usecase.PaginatedGuides{}, usecase.ErrStoreFailure)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/guides", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestGuideHandler_GetGuideByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().GetGuideByID(gomock.Any(), "abc").Return(nil, usecase.ErrInvalidGuideID)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown guide maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().GetGuideByID(gomock.Any(), "99").Return(nil, usecase.ErrGuideNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found guide is wrapped in the envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().GetGuideByID(gomock.Any(), "7").Return(&entities.Guia{ID: 7, NumeroGuiaPrestador: "G-7"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Data    struct {
				ID int `json:"id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Data.ID != 7 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestGuideHandler_GetGuideProcedures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty result maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().GetGuideProcedures(gomock.Any(), "G-404", 0, 0).Return([]usecase.ProcedureWithStatus{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/G-404/procedures", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("procedures include audit status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().GetGuideProcedures(gomock.Any(), "G-7", 50, 10).Return([]usecase.ProcedureWithStatus{
			{GuiaProcedimento: entities.GuiaProcedimento{ID: 70}, Status: entities.StatusApproved},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/G-7/procedures?limit=50&offset=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data []struct {
				ID     int    `json:"id"`
				Status string `json:"status"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Data) != 1 || body.Data[0].Status != "APPROVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestGuideHandler_UpdateProcedureStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/api/v1/guides/procedures/5/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing status field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		req := httptest.NewRequest(http.MethodPut, "/api/v1/guides/procedures/5/status", bytes.NewBufferString(`{"motivoRejeicao":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejection without motivo maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().UpdateProcedureStatus(gomock.Any(), "5", gomock.Any()).Return(nil, usecase.ErrMotivoRejeicaoRequired)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/guides/procedures/5/status", bytes.NewBufferString(`{"status":"REJECTED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("successful update returns the procedure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGuideUseCase(ctrl)
		r := newGuideRouter(NewGuideHandler(uc))

		uc.EXPECT().UpdateProcedureStatus(gomock.Any(), "5", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, in usecase.UpdateProcedureStatusInput) (*entities.GuiaProcedimento, error) {
				if in.Status != "APPROVED" {
					t.Fatalf("unexpected status: %q", in.Status)
				}
				return &entities.GuiaProcedimento{ID: 5}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/guides/procedures/5/status", bytes.NewBufferString(`{"status":"APPROVED","valorAprovado":150.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Message == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestGuideHandler_GetGuideStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGuideUseCase(ctrl)
	r := newGuideRouter(NewGuideHandler(uc))

	uc.EXPECT().GetGuideStats(gomock.Any()).Return(usecase.GuideStats{CountByType: map[string]int64{"SP/SADT": 2}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
