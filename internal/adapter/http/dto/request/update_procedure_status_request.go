package request

import (
	"lazarus_guide/internal/usecase"

	"github.com/shopspring/decimal"
)

// UpdateProcedureStatusRequest is the PUT /guides/procedures/:id/status body.
// Only the supplied optional fields are written; absent fields stay untouched.
type UpdateProcedureStatusRequest struct {
	Status            string           `json:"status" binding:"required"`
	ValorAprovado     *decimal.Decimal `json:"valorAprovado"`
	MotivoRejeicao    *string          `json:"motivoRejeicao"`
	CategoriaRejeicao *string          `json:"categoriaRejeicao"`
}

func (r UpdateProcedureStatusRequest) ToInput() usecase.UpdateProcedureStatusInput {
	return usecase.UpdateProcedureStatusInput{
		Status:            r.Status,
		ValorAprovado:     r.ValorAprovado,
		MotivoRejeicao:    r.MotivoRejeicao,
		CategoriaRejeicao: r.CategoriaRejeicao,
	}
}
