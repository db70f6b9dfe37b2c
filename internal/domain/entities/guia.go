package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuideState classifies a guide's lifecycle from the pair
// (DataFinalFaturamento, MotivoEncerramento). There is no stored status column;
// a guide is cancelled whenever MotivoEncerramento is set, regardless of the
// finalization date.
type GuideState string

const (
	GuideStateFinalizada  GuideState = "FINALIZADA"
	GuideStateEmAndamento GuideState = "EM_ANDAMENTO"
	GuideStateCancelada   GuideState = "CANCELADA"
)

// ParseGuideState resolves the status filter accepted by the analytics
// by-status listing.
func ParseGuideState(s string) (GuideState, bool) {
	switch GuideState(s) {
	case GuideStateFinalizada, GuideStateEmAndamento, GuideStateCancelada:
		return GuideState(s), true
	default:
		return "", false
	}
}

// Guia is a TISS billing guide. Rows are created by the upstream ingestion
// pipeline; this service only updates closure fields and totals.
//
// Storage model (MySQL):
//   - PK: id
//   - numero_guia_prestador unique per hospital_id
//   - created_at indexed (all analytics windows filter on it)
type Guia struct {
	ID                  int     `gorm:"primary_key" json:"id"`
	NumeroGuiaPrestador string  `gorm:"size:64;not null;uniqueIndex:idx_guia_prestador_hospital,priority:2" json:"numeroGuiaPrestador"`
	NumeroGuiaOperadora *string `gorm:"size:64;default:null" json:"numeroGuiaOperadora"`
	NumeroCarteira      *string `gorm:"size:64;default:null" json:"numeroCarteira"`
	TipoGuia            *string `gorm:"size:32;index;default:null" json:"tipoGuia"`
	HospitalID          string  `gorm:"size:64;not null;uniqueIndex:idx_guia_prestador_hospital,priority:1" json:"hospitalId"`
	LoteGuia            *string `gorm:"size:64;default:null" json:"loteGuia"`
	Diagnostico         *string `gorm:"size:255;default:null" json:"diagnostico"`

	DataAutorizacao      *time.Time `gorm:"default:null" json:"dataAutorizacao"`
	DataFinalFaturamento *time.Time `gorm:"default:null" json:"dataFinalFaturamento"`
	MotivoEncerramento   *string    `gorm:"size:255;default:null" json:"motivoEncerramento"`
	TipoFaturamento      *string    `gorm:"size:64;default:null" json:"tipoFaturamento"`

	ValorTotalGeral         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"valorTotalGeral"`
	ValorTotalProcedimentos decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"valorTotalProcedimentos"`
	ValorTotalMateriais     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"valorTotalMateriais"`
	ValorTotalMedicamentos  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"valorTotalMedicamentos"`

	Procedimentos []GuiaProcedimento `gorm:"foreignKey:GuiaID" json:"procedimentos,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Guia) TableName() string {
	return "guias"
}

// State derives the lifecycle category. Cancellation takes precedence over
// finalization.
func (g *Guia) State() GuideState {
	if g.MotivoEncerramento != nil {
		return GuideStateCancelada
	}
	if g.DataFinalFaturamento != nil {
		return GuideStateFinalizada
	}
	return GuideStateEmAndamento
}

// GuiaProcedimento is a billable line item owned by exactly one guide.
// Audit fields (ValorAprovado, MotivoRejeicao, CategoriaRejeicao) are written
// by the status-update flow; the audit status itself lives in
// ProcedimentoStatus.
type GuiaProcedimento struct {
	ID                    int              `gorm:"primary_key" json:"id"`
	GuiaID                int              `gorm:"index;not null" json:"guiaId"`
	SequencialItem        string           `gorm:"size:16;not null" json:"sequencialItem"`
	CodigoProcedimento    *string          `gorm:"size:32;default:null" json:"codigoProcedimento"`
	DescricaoProcedimento *string          `gorm:"size:255;default:null" json:"descricaoProcedimento"`
	QuantidadeExecutada   decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"quantidadeExecutada"`
	ValorUnitario         decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"valorUnitario"`
	ValorTotal            decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"valorTotal"`
	ValorAprovado         *decimal.Decimal `gorm:"type:decimal(20,4);default:null" json:"valorAprovado"`
	MotivoRejeicao        *string          `gorm:"size:255;default:null" json:"motivoRejeicao"`
	CategoriaRejeicao     *string          `gorm:"size:64;default:null" json:"categoriaRejeicao"`
	DataExecucao          *time.Time       `gorm:"default:null" json:"dataExecucao"`

	Guia *Guia `gorm:"foreignKey:GuiaID" json:"guia,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (GuiaProcedimento) TableName() string {
	return "guia_procedimentos"
}
