package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"lazarus_guide/internal/config"
	"lazarus_guide/internal/domain/entities"
	"lazarus_guide/internal/infrastructure/logging"
	"lazarus_guide/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGuideNotFound          = errors.New("guide not found")
	ErrProcedureNotFound      = errors.New("guide procedure not found")
	ErrInvalidGuideID         = errors.New("invalid guide id")
	ErrInvalidProcedureID     = errors.New("invalid procedure id")
	ErrInvalidNumeroGuia      = errors.New("numeroGuiaPrestador is required")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrMotivoRejeicaoRequired = errors.New("motivoRejeicao is required when rejecting a procedure")
	ErrStoreFailure           = errors.New("guide store operation failed")
)

const (
	maxListLimit         = 100
	defaultProcListLimit = 200
)

// ListGuidesParams are the listing filters. Offset is a pointer so the page
// fallback only applies when the caller did not pass an explicit offset.
type ListGuidesParams struct {
	Limit      int
	Offset     *int
	Page       int
	Search     string
	TipoGuia   string
	HospitalID string
}

// GuideWithAudit is a guide plus its derived audit rollup.
type GuideWithAudit struct {
	entities.Guia
	AuditStatus entities.AuditStatus `json:"auditStatus"`
}

type PaginatedGuides struct {
	Data    []GuideWithAudit `json:"data"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	HasNext bool             `json:"hasNext"`
	HasPrev bool             `json:"hasPrev"`
}

// ProcedureWithStatus is a procedure annotated with its current audit status
// in the exposed vocabulary. Procedures without a status row report PENDING.
type ProcedureWithStatus struct {
	entities.GuiaProcedimento
	Status          string     `json:"status"`
	AuditorID       *string    `json:"auditorId"`
	Observacoes     *string    `json:"observacoes"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt"`
}

type GuideStats struct {
	CountByType map[string]int64 `json:"countByType"`
	TotalValue  decimal.Decimal  `json:"totalValue"`
}

type UpdateProcedureStatusInput struct {
	Status            string
	ValorAprovado     *decimal.Decimal
	MotivoRejeicao    *string
	CategoriaRejeicao *string
}

type IGuideUseCase interface {
	ListGuides(ctx context.Context, p ListGuidesParams) (PaginatedGuides, error)
	GetGuideByID(ctx context.Context, id string) (*entities.Guia, error)
	GetGuideProcedures(ctx context.Context, numeroGuiaPrestador string, limit, offset int) ([]ProcedureWithStatus, error)
	GetProcedureByID(ctx context.Context, id string) (*entities.GuiaProcedimento, error)
	GetGuideStats(ctx context.Context) (GuideStats, error)
	UpdateProcedureStatus(ctx context.Context, id string, in UpdateProcedureStatusInput) (*entities.GuiaProcedimento, error)
}

type GuideUseCase struct {
	repo              interfaces.IGuideRepository
	publisher         interfaces.IEventPublisher
	readModel         interfaces.IGuideReadModel
	defaultHospitalID string
	eventBus          config.EventBusConfig
}

var _ IGuideUseCase = (*GuideUseCase)(nil)

// NewGuideUseCase builds the rollup engine. publisher and readModel are
// optional collaborators; pass nil when the feature is disabled.
func NewGuideUseCase(
	repo interfaces.IGuideRepository,
	publisher interfaces.IEventPublisher,
	readModel interfaces.IGuideReadModel,
	defaultHospitalID string,
	eventBus config.EventBusConfig,
) *GuideUseCase {
	return &GuideUseCase{
		repo:              repo,
		publisher:         publisher,
		readModel:         readModel,
		defaultHospitalID: defaultHospitalID,
		eventBus:          eventBus,
	}
}

func (u *GuideUseCase) ListGuides(ctx context.Context, p ListGuidesParams) (PaginatedGuides, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = maxListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	page := p.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	if p.Offset != nil {
		offset = *p.Offset
	}
	if offset < 0 {
		offset = 0
	}

	hospitalID := p.HospitalID
	if hospitalID == "" {
		hospitalID = u.defaultHospitalID
	}

	f := interfaces.GuideFilter{
		HospitalID: hospitalID,
		TipoGuia:   strings.TrimSpace(p.TipoGuia),
		Search:     strings.TrimSpace(p.Search),
	}

	guides, err := u.repo.FindGuides(ctx, f, limit, offset)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "ListGuides", "find guides", f, err)
		return PaginatedGuides{}, ErrStoreFailure
	}
	total, err := u.repo.CountGuides(ctx, f)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "ListGuides", "count guides", f, err)
		return PaginatedGuides{}, ErrStoreFailure
	}

	data, err := u.attachAuditStatus(ctx, guides)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "ListGuides", "load procedure statuses", f, err)
		return PaginatedGuides{}, ErrStoreFailure
	}

	return PaginatedGuides{
		Data:    data,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasNext: int64(offset+limit) < total,
		HasPrev: offset > 0,
	}, nil
}

// attachAuditStatus fans out one status lookup per guide. The lookups are
// read-only and independent; results land in index-addressed slots so only
// the page order matters.
func (u *GuideUseCase) attachAuditStatus(ctx context.Context, guides []entities.Guia) ([]GuideWithAudit, error) {
	out := make([]GuideWithAudit, len(guides))
	errs := make([]error, len(guides))

	var wg sync.WaitGroup
	for i := range guides {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statuses, err := u.repo.FindStatusesByGuiaID(ctx, guides[i].ID)
			if err != nil {
				errs[i] = err
				return
			}
			out[i] = GuideWithAudit{
				Guia:        guides[i],
				AuditStatus: entities.ComputeAuditStatus(guides[i].Procedimentos, statuses),
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (u *GuideUseCase) GetGuideByID(ctx context.Context, id string) (*entities.Guia, error) {
	intID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrInvalidGuideID
	}

	guide, err := u.repo.FindGuideByID(ctx, intID)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetGuideByID", "find guide", intID, err)
		return nil, ErrStoreFailure
	}
	if guide == nil {
		return nil, ErrGuideNotFound
	}
	return guide, nil
}

func (u *GuideUseCase) GetGuideProcedures(ctx context.Context, numeroGuiaPrestador string, limit, offset int) ([]ProcedureWithStatus, error) {
	numeroGuiaPrestador = strings.TrimSpace(numeroGuiaPrestador)
	if numeroGuiaPrestador == "" {
		return nil, ErrInvalidNumeroGuia
	}
	if limit <= 0 {
		limit = defaultProcListLimit
	}
	if offset < 0 {
		offset = 0
	}

	guide, err := u.repo.FindGuideByNumeroPrestador(ctx, u.defaultHospitalID, numeroGuiaPrestador)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetGuideProcedures", "resolve guide", numeroGuiaPrestador, err)
		return nil, ErrStoreFailure
	}
	if guide == nil {
		// Unknown guide and guide-without-procedures look the same to the
		// caller: an empty list.
		return []ProcedureWithStatus{}, nil
	}

	procs, err := u.repo.FindProceduresByGuiaID(ctx, guide.ID, limit, offset)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetGuideProcedures", "find procedures", guide.ID, err)
		return nil, ErrStoreFailure
	}
	statuses, err := u.repo.FindStatusesByGuiaID(ctx, guide.ID)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetGuideProcedures", "find statuses", guide.ID, err)
		return nil, ErrStoreFailure
	}

	byProc := make(map[int]entities.ProcedimentoStatus, len(statuses))
	for _, s := range statuses {
		byProc[s.ProcedimentoID] = s
	}

	out := make([]ProcedureWithStatus, 0, len(procs))
	for _, p := range procs {
		ps := ProcedureWithStatus{
			GuiaProcedimento: p,
			Status:           entities.StatusPending,
		}
		if s, ok := byProc[p.ID]; ok {
			ps.Status = s.Status.Exposed()
			auditor := s.AuditorID
			obs := s.Observacoes
			updatedAt := s.UpdatedAt
			ps.AuditorID = &auditor
			ps.Observacoes = &obs
			ps.StatusUpdatedAt = &updatedAt
		}
		out = append(out, ps)
	}
	return out, nil
}

func (u *GuideUseCase) GetProcedureByID(ctx context.Context, id string) (*entities.GuiaProcedimento, error) {
	intID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrInvalidProcedureID
	}

	proc, err := u.repo.FindProcedureByID(ctx, intID)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetProcedureByID", "find procedure", intID, err)
		return nil, ErrStoreFailure
	}
	if proc == nil {
		return nil, ErrProcedureNotFound
	}
	return proc, nil
}

func (u *GuideUseCase) GetGuideStats(ctx context.Context) (GuideStats, error) {
	counts, err := u.repo.CountGuidesByTipo(ctx, u.defaultHospitalID)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetGuideStats", "count by tipo", u.defaultHospitalID, err)
		return GuideStats{}, ErrStoreFailure
	}
	totals, err := u.repo.SumGuideTotals(ctx, interfaces.GuideFilter{HospitalID: u.defaultHospitalID})
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetGuideStats", "sum totals", u.defaultHospitalID, err)
		return GuideStats{}, ErrStoreFailure
	}
	return GuideStats{
		CountByType: counts,
		TotalValue:  totals.ValorTotalProcedimentos,
	}, nil
}

func (u *GuideUseCase) UpdateProcedureStatus(ctx context.Context, id string, in UpdateProcedureStatusInput) (*entities.GuiaProcedimento, error) {
	intID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrInvalidProcedureID
	}

	status := strings.ToUpper(strings.TrimSpace(in.Status))
	if !entities.IsValidExposedStatus(status) {
		return nil, ErrInvalidStatus
	}
	if status == entities.StatusRejected && (in.MotivoRejeicao == nil || strings.TrimSpace(*in.MotivoRejeicao) == "") {
		return nil, ErrMotivoRejeicaoRequired
	}

	upd := interfaces.ProcedureStatusUpdate{
		Status:            entities.ToPersistedStatus(status),
		ValorAprovado:     in.ValorAprovado,
		MotivoRejeicao:    in.MotivoRejeicao,
		CategoriaRejeicao: in.CategoriaRejeicao,
	}

	proc, err := u.repo.UpdateProcedureStatus(ctx, intID, upd)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "UpdateProcedureStatus", "update procedure", intID, err)
		return nil, ErrStoreFailure
	}
	if proc == nil {
		return nil, ErrProcedureNotFound
	}

	logging.GetLogger().WithFields(map[string]any{
		"procedimentoId": intID,
		"status":         status,
		"hasRejeicao":    in.MotivoRejeicao != nil,
	}).Info("procedure status updated")

	u.afterProcedureUpdate(proc, status)

	return proc, nil
}

// afterProcedureUpdate refreshes the read-side projection and publishes the
// guide.updated notification. Both are fire-and-forget: failures are logged
// and never surfaced to the caller.
func (u *GuideUseCase) afterProcedureUpdate(proc *entities.GuiaProcedimento, status string) {
	if proc.Guia == nil || (u.publisher == nil && u.readModel == nil) {
		return
	}
	guia := *proc.Guia

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if u.publisher != nil {
			event := map[string]any{
				"event":          u.eventBus.TopicGuideUpdated,
				"guiaId":         guia.ID,
				"procedimentoId": proc.ID,
				"status":         status,
				"hospitalId":     guia.HospitalID,
				"correlationId":  uuid.NewString(),
				"timestamp":      time.Now().UTC(),
			}
			if err := u.publisher.Publish(ctx, u.eventBus.TopicGuideUpdated, event); err != nil {
				logging.LogError(logging.GetLogger(), "usecase", "afterProcedureUpdate", "publish guide.updated", guia.ID, err)
			}
		}

		if u.readModel != nil {
			u.projectGuide(ctx, guia)
		}
	}()
}

func (u *GuideUseCase) projectGuide(ctx context.Context, guia entities.Guia) {
	procs, err := u.repo.FindProceduresByGuiaID(ctx, guia.ID, 0, 0)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "projectGuide", "find procedures", guia.ID, err)
		return
	}
	statuses, err := u.repo.FindStatusesByGuiaID(ctx, guia.ID)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "projectGuide", "find statuses", guia.ID, err)
		return
	}

	tipo := ""
	if guia.TipoGuia != nil {
		tipo = *guia.TipoGuia
	}
	doc := interfaces.GuideDocument{
		ID:                  guia.ID,
		HospitalID:          guia.HospitalID,
		NumeroGuiaPrestador: guia.NumeroGuiaPrestador,
		TipoGuia:            tipo,
		State:               guia.State(),
		AuditStatus:         entities.ComputeAuditStatus(procs, statuses),
		ValorTotalGeral:     guia.ValorTotalGeral,
		UpdatedAt:           time.Now().UTC(),
	}
	if err := u.readModel.UpsertGuideSummary(ctx, doc); err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "projectGuide", "upsert read model", guia.ID, err)
	}
}
