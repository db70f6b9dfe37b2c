package entities

import "time"

// AuditoriaStatus is the persisted per-procedure audit status vocabulary.
// The database keeps the Portuguese enum; the API exposes the English one.
type AuditoriaStatus string

const (
	AuditoriaPendente  AuditoriaStatus = "PENDENTE"
	AuditoriaAprovado  AuditoriaStatus = "APROVADO"
	AuditoriaRejeitado AuditoriaStatus = "REJEITADO"
)

// Exposed API vocabulary. FINALIZED is accepted by request validation but has
// no persisted counterpart; the translation passes it through unchanged.
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusFinalized = "FINALIZED"
)

// AuditorSystem is the auditor recorded when a status row is created by the
// service itself rather than a named reviewer.
const AuditorSystem = "SYSTEM"

// ValidExposedStatuses lists the values accepted by the status-update request.
var ValidExposedStatuses = []string{StatusPending, StatusApproved, StatusRejected, StatusFinalized}

// IsValidExposedStatus reports whether s (already uppercased) is accepted by
// the status-update validation.
func IsValidExposedStatus(s string) bool {
	for _, v := range ValidExposedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Exposed translates the persisted vocabulary to the API one. Unknown values
// default to PENDING.
func (s AuditoriaStatus) Exposed() string {
	switch s {
	case AuditoriaAprovado:
		return StatusApproved
	case AuditoriaRejeitado:
		return StatusRejected
	case AuditoriaPendente:
		return StatusPending
	default:
		return StatusPending
	}
}

// ToPersistedStatus translates the API vocabulary to the persisted one.
// Values without a mapping (FINALIZED) are passed through unchanged.
func ToPersistedStatus(exposed string) AuditoriaStatus {
	switch exposed {
	case StatusApproved:
		return AuditoriaAprovado
	case StatusRejected:
		return AuditoriaRejeitado
	case StatusPending:
		return AuditoriaPendente
	default:
		return AuditoriaStatus(exposed)
	}
}

// ProcedimentoStatus is the independently-lifecycled audit record for one
// procedure. At most one row exists per (guia_id, procedimento_id); it is
// created lazily on the first audit action and updated in place afterwards.
type ProcedimentoStatus struct {
	ID             int             `gorm:"primary_key" json:"id"`
	GuiaID         int             `gorm:"not null;uniqueIndex:idx_guia_procedimento,priority:1" json:"guiaId"`
	ProcedimentoID int             `gorm:"not null;uniqueIndex:idx_guia_procedimento,priority:2" json:"procedimentoId"`
	Status         AuditoriaStatus `gorm:"type:varchar(16);not null;default:PENDENTE" json:"status"`
	AuditorID      string          `gorm:"size:64;not null" json:"auditorId"`
	Observacoes    string          `gorm:"type:text" json:"observacoes"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ProcedimentoStatus) TableName() string {
	return "procedimento_status"
}

// AuditStatus is the derived rollup over a guide's procedures. It is computed
// per read and never stored.
type AuditStatus string

const (
	AuditStatusPending   AuditStatus = "PENDING"
	AuditStatusCompleted AuditStatus = "COMPLETED"
)

// ComputeAuditStatus folds a guide's procedures and their audit rows into the
// rollup state: COMPLETED iff the guide has at least one procedure, every
// procedure has an explicit status row, and none of them is PENDENTE.
func ComputeAuditStatus(procs []GuiaProcedimento, statuses []ProcedimentoStatus) AuditStatus {
	if len(procs) == 0 {
		return AuditStatusPending
	}

	byProc := make(map[int]AuditoriaStatus, len(statuses))
	for _, s := range statuses {
		byProc[s.ProcedimentoID] = s.Status
	}

	for _, p := range procs {
		s, ok := byProc[p.ID]
		if !ok || s == AuditoriaPendente {
			return AuditStatusPending
		}
	}
	return AuditStatusCompleted
}
