package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"lazarus_guide/internal/domain/entities"
	"lazarus_guide/internal/infrastructure/logging"
	"lazarus_guide/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod       = errors.New("invalid period")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
)

const defaultByStatusLimit = 100

// TipoFaturamentoUnspecified buckets guides without a billing type in the
// revenue breakdown.
const TipoFaturamentoUnspecified = "NAO_ESPECIFICADO"

type DailySummary struct {
	Total       int64           `json:"total"`
	Finalizadas int64           `json:"finalizadas"`
	EmAndamento int64           `json:"em_andamento"`
	Canceladas  int64           `json:"canceladas"`
	ValorTotal  decimal.Decimal `json:"valor_total"`
	ValorMedio  decimal.Decimal `json:"valor_medio"`
}

type GuideInfo struct {
	ID                  int             `json:"id"`
	NumeroGuiaPrestador string          `json:"numeroGuiaPrestador"`
	NumeroGuiaOperadora *string         `json:"numeroGuiaOperadora"`
	NumeroCarteira      *string         `json:"numeroCarteira"`
	DataAutorizacao     *time.Time      `json:"dataAutorizacao"`
	ValorTotalGeral     decimal.Decimal `json:"valorTotalGeral"`
	TipoFaturamento     *string         `json:"tipoFaturamento"`
	Status              string          `json:"status"`
}

type Statistics struct {
	TotalGuias           int64           `json:"total_guias"`
	GuiasFinalizadas     int64           `json:"guias_finalizadas"`
	GuiasEmAndamento     int64           `json:"guias_em_andamento"`
	GuiasCanceladas      int64           `json:"guias_canceladas"`
	TaxaFinalizacao      decimal.Decimal `json:"taxa_finalizacao"`
	ValorTotal           decimal.Decimal `json:"valor_total"`
	ValorMedioGuia       decimal.Decimal `json:"valor_medio_guia"`
	ProcedimentosTotal   int64           `json:"procedimentos_total"`
	ProcedimentosPorGuia decimal.Decimal `json:"procedimentos_por_guia"`
}

type RevenueByTipo struct {
	Tipo       string          `json:"tipo"`
	Quantidade int64           `json:"quantidade"`
	ValorTotal decimal.Decimal `json:"valor_total"`
}

type Revenue struct {
	ReceitaTotal            decimal.Decimal `json:"receita_total"`
	GuiasFaturadas          int64           `json:"guias_faturadas"`
	ValorMedioGuia          decimal.Decimal `json:"valor_medio_guia"`
	ValorTotalProcedimentos decimal.Decimal `json:"valor_total_procedimentos"`
	ValorTotalMateriais     decimal.Decimal `json:"valor_total_materiais"`
	ValorTotalMedicamentos  decimal.Decimal `json:"valor_total_medicamentos"`
	PorTipoFaturamento      []RevenueByTipo `json:"por_tipo_faturamento"`
}

type IAnalyticsUseCase interface {
	GetDailySummary(ctx context.Context, date time.Time, hospitalID string) (DailySummary, error)
	GetGuidesByStatus(ctx context.Context, status string, date time.Time, limit int, hospitalID string) ([]GuideInfo, error)
	GetStatistics(ctx context.Context, period string, date time.Time, hospitalID string) (Statistics, error)
	GetRevenue(ctx context.Context, period string, date time.Time, hospitalID string) (Revenue, error)
}

// AnalyticsUseCase computes time-windowed aggregates over the guide corpus.
// The fallback tenant is injected so tests can override it.
type AnalyticsUseCase struct {
	repo              interfaces.IGuideRepository
	defaultHospitalID string
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.IGuideRepository, defaultHospitalID string) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, defaultHospitalID: defaultHospitalID}
}

func (u *AnalyticsUseCase) hospital(hospitalID string) string {
	if hospitalID == "" {
		return u.defaultHospitalID
	}
	return hospitalID
}

func windowFilter(hospitalID string, w entities.Window) interfaces.GuideFilter {
	start := w.Start
	end := w.End
	return interfaces.GuideFilter{
		HospitalID:  hospitalID,
		CreatedFrom: &start,
		CreatedTo:   &end,
	}
}

func (u *AnalyticsUseCase) countByState(ctx context.Context, base interfaces.GuideFilter) (total, finalizadas, emAndamento, canceladas int64, err error) {
	states := []entities.GuideState{"", entities.GuideStateFinalizada, entities.GuideStateEmAndamento, entities.GuideStateCancelada}
	counts := make([]int64, len(states))
	for i, s := range states {
		f := base
		f.State = s
		counts[i], err = u.repo.CountGuides(ctx, f)
		if err != nil {
			return 0, 0, 0, 0, err
		}
	}
	return counts[0], counts[1], counts[2], counts[3], nil
}

func (u *AnalyticsUseCase) GetDailySummary(ctx context.Context, date time.Time, hospitalID string) (DailySummary, error) {
	f := windowFilter(u.hospital(hospitalID), entities.DayWindow(date))

	total, finalizadas, emAndamento, canceladas, err := u.countByState(ctx, f)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetDailySummary", "count guides", f, err)
		return DailySummary{}, ErrStoreFailure
	}

	totals, err := u.repo.SumGuideTotals(ctx, f)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetDailySummary", "sum totals", f, err)
		return DailySummary{}, ErrStoreFailure
	}

	valorMedio := decimal.Zero
	if total > 0 {
		valorMedio = totals.ValorTotalGeral.Div(decimal.NewFromInt(total))
	}

	return DailySummary{
		Total:       total,
		Finalizadas: finalizadas,
		EmAndamento: emAndamento,
		Canceladas:  canceladas,
		ValorTotal:  totals.ValorTotalGeral,
		ValorMedio:  valorMedio,
	}, nil
}

func (u *AnalyticsUseCase) GetGuidesByStatus(ctx context.Context, status string, date time.Time, limit int, hospitalID string) ([]GuideInfo, error) {
	state, ok := entities.ParseGuideState(strings.ToUpper(strings.TrimSpace(status)))
	if !ok {
		return nil, ErrInvalidStatusFilter
	}
	if limit <= 0 {
		limit = defaultByStatusLimit
	}

	f := windowFilter(u.hospital(hospitalID), entities.DayWindow(date))
	f.State = state

	guides, err := u.repo.FindGuides(ctx, f, limit, 0)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetGuidesByStatus", "find guides", f, err)
		return nil, ErrStoreFailure
	}

	out := make([]GuideInfo, 0, len(guides))
	for _, g := range guides {
		out = append(out, GuideInfo{
			ID:                  g.ID,
			NumeroGuiaPrestador: g.NumeroGuiaPrestador,
			NumeroGuiaOperadora: g.NumeroGuiaOperadora,
			NumeroCarteira:      g.NumeroCarteira,
			DataAutorizacao:     g.DataAutorizacao,
			ValorTotalGeral:     g.ValorTotalGeral,
			TipoFaturamento:     g.TipoFaturamento,
			Status:              string(state),
		})
	}
	return out, nil
}

func (u *AnalyticsUseCase) GetStatistics(ctx context.Context, period string, date time.Time, hospitalID string) (Statistics, error) {
	p, ok := entities.ParsePeriod(period)
	if !ok {
		return Statistics{}, ErrInvalidPeriod
	}

	f := windowFilter(u.hospital(hospitalID), entities.PeriodWindow(p, date))

	total, finalizadas, emAndamento, canceladas, err := u.countByState(ctx, f)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetStatistics", "count guides", f, err)
		return Statistics{}, ErrStoreFailure
	}

	totals, err := u.repo.SumGuideTotals(ctx, f)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetStatistics", "sum totals", f, err)
		return Statistics{}, ErrStoreFailure
	}

	procCount, err := u.repo.CountProceduresByGuideWindow(ctx, f)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetStatistics", "count procedures", f, err)
		return Statistics{}, ErrStoreFailure
	}

	taxa := decimal.Zero
	valorMedio := decimal.Zero
	procsPorGuia := decimal.Zero
	if total > 0 {
		den := decimal.NewFromInt(total)
		// Cancellation counts as a form of completion for this rate.
		taxa = decimal.NewFromInt(finalizadas + canceladas).Div(den).Mul(decimal.NewFromInt(100)).Round(2)
		valorMedio = totals.ValorTotalGeral.Div(den).Round(2)
		procsPorGuia = decimal.NewFromInt(procCount).Div(den).Round(2)
	}

	return Statistics{
		TotalGuias:           total,
		GuiasFinalizadas:     finalizadas,
		GuiasEmAndamento:     emAndamento,
		GuiasCanceladas:      canceladas,
		TaxaFinalizacao:      taxa,
		ValorTotal:           totals.ValorTotalGeral,
		ValorMedioGuia:       valorMedio,
		ProcedimentosTotal:   procCount,
		ProcedimentosPorGuia: procsPorGuia,
	}, nil
}

func (u *AnalyticsUseCase) GetRevenue(ctx context.Context, period string, date time.Time, hospitalID string) (Revenue, error) {
	p, ok := entities.ParsePeriod(period)
	if !ok {
		return Revenue{}, ErrInvalidPeriod
	}

	f := windowFilter(u.hospital(hospitalID), entities.PeriodWindow(p, date))
	// Cancelled guides never contribute revenue, even when they carry a
	// finalization date.
	f.State = entities.GuideStateFinalizada

	guides, err := u.repo.FindGuides(ctx, f, 0, 0)
	if err != nil {
		logging.LogError(logging.GetLogger(), "usecase", "GetRevenue", "find guides", f, err)
		return Revenue{}, ErrStoreFailure
	}

	rev := Revenue{
		ReceitaTotal:            decimal.Zero,
		ValorMedioGuia:          decimal.Zero,
		ValorTotalProcedimentos: decimal.Zero,
		ValorTotalMateriais:     decimal.Zero,
		ValorTotalMedicamentos:  decimal.Zero,
		GuiasFaturadas:          int64(len(guides)),
		PorTipoFaturamento:      []RevenueByTipo{},
	}

	// Insertion order of first occurrence, not sorted.
	tipoIndex := map[string]int{}
	for _, g := range guides {
		rev.ReceitaTotal = rev.ReceitaTotal.Add(g.ValorTotalGeral)
		rev.ValorTotalProcedimentos = rev.ValorTotalProcedimentos.Add(g.ValorTotalProcedimentos)
		rev.ValorTotalMateriais = rev.ValorTotalMateriais.Add(g.ValorTotalMateriais)
		rev.ValorTotalMedicamentos = rev.ValorTotalMedicamentos.Add(g.ValorTotalMedicamentos)

		tipo := TipoFaturamentoUnspecified
		if g.TipoFaturamento != nil && *g.TipoFaturamento != "" {
			tipo = *g.TipoFaturamento
		}
		idx, ok := tipoIndex[tipo]
		if !ok {
			idx = len(rev.PorTipoFaturamento)
			tipoIndex[tipo] = idx
			rev.PorTipoFaturamento = append(rev.PorTipoFaturamento, RevenueByTipo{Tipo: tipo, ValorTotal: decimal.Zero})
		}
		rev.PorTipoFaturamento[idx].Quantidade++
		rev.PorTipoFaturamento[idx].ValorTotal = rev.PorTipoFaturamento[idx].ValorTotal.Add(g.ValorTotalGeral)
	}

	if len(guides) > 0 {
		rev.ValorMedioGuia = rev.ReceitaTotal.Div(decimal.NewFromInt(int64(len(guides)))).Round(2)
	}
	return rev, nil
}
