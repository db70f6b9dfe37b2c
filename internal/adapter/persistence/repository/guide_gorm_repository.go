package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"lazarus_guide/internal/domain/entities"
	"lazarus_guide/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// procedureProjection is the compact shape loaded for listing pages. The full
// row is only fetched on the single-procedure endpoints.
var procedureProjection = []string{
	"id", "guia_id", "sequencial_item", "codigo_procedimento", "descricao_procedimento", "valor_total",
}

// guiaParentProjection is the parent slice attached to a single procedure:
// identification fields plus what the read-model projector needs.
var guiaParentProjection = []string{
	"id", "hospital_id", "numero_guia_prestador", "numero_carteira", "tipo_guia",
	"valor_total_geral", "data_final_faturamento", "motivo_encerramento",
}

var errProcedureRowMissing = errors.New("procedure row missing")

// GuideGormRepository is the relational guide store (write side and all core
// queries).
type GuideGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IGuideRepository = (*GuideGormRepository)(nil)

func NewGuideGormRepository(db *gorm.DB) *GuideGormRepository {
	return &GuideGormRepository{db: db}
}

func (r *GuideGormRepository) guideQuery(ctx context.Context, f interfaces.GuideFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&entities.Guia{}).Where("hospital_id = ?", f.HospitalID)
	if f.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		q = q.Where("created_at <= ?", *f.CreatedTo)
	}
	if f.TipoGuia != "" {
		q = q.Where("tipo_guia = ?", f.TipoGuia)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(numero_guia_prestador) LIKE ? OR LOWER(numero_carteira) LIKE ? OR LOWER(numero_guia_operadora) LIKE ?",
			like, like, like,
		)
	}
	switch f.State {
	case entities.GuideStateFinalizada:
		q = q.Where("data_final_faturamento IS NOT NULL AND motivo_encerramento IS NULL")
	case entities.GuideStateEmAndamento:
		q = q.Where("data_final_faturamento IS NULL AND motivo_encerramento IS NULL")
	case entities.GuideStateCancelada:
		q = q.Where("motivo_encerramento IS NOT NULL")
	}
	return q
}

func (r *GuideGormRepository) FindGuides(ctx context.Context, f interfaces.GuideFilter, limit, offset int) ([]entities.Guia, error) {
	q := r.guideQuery(ctx, f).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var guides []entities.Guia
	err := q.Preload("Procedimentos", func(db *gorm.DB) *gorm.DB {
		return db.Select(procedureProjection).Order("sequencial_item ASC, id ASC")
	}).Find(&guides).Error
	if err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *GuideGormRepository) CountGuides(ctx context.Context, f interfaces.GuideFilter) (int64, error) {
	var n int64
	if err := r.guideQuery(ctx, f).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *GuideGormRepository) SumGuideTotals(ctx context.Context, f interfaces.GuideFilter) (interfaces.GuideTotals, error) {
	var row struct {
		ValorTotalGeral         decimal.Decimal
		ValorTotalProcedimentos decimal.Decimal
		ValorTotalMateriais     decimal.Decimal
		ValorTotalMedicamentos  decimal.Decimal
	}
	err := r.guideQuery(ctx, f).
		Select(
			"COALESCE(SUM(valor_total_geral), 0) AS valor_total_geral, " +
				"COALESCE(SUM(valor_total_procedimentos), 0) AS valor_total_procedimentos, " +
				"COALESCE(SUM(valor_total_materiais), 0) AS valor_total_materiais, " +
				"COALESCE(SUM(valor_total_medicamentos), 0) AS valor_total_medicamentos",
		).
		Scan(&row).Error
	if err != nil {
		return interfaces.GuideTotals{}, err
	}
	return interfaces.GuideTotals{
		ValorTotalGeral:         row.ValorTotalGeral,
		ValorTotalProcedimentos: row.ValorTotalProcedimentos,
		ValorTotalMateriais:     row.ValorTotalMateriais,
		ValorTotalMedicamentos:  row.ValorTotalMedicamentos,
	}, nil
}

func (r *GuideGormRepository) CountGuidesByTipo(ctx context.Context, hospitalID string) (map[string]int64, error) {
	var rows []struct {
		TipoGuia *string
		Total    int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Guia{}).
		Select("tipo_guia, COUNT(*) AS total").
		Where("hospital_id = ?", hospitalID).
		Group("tipo_guia").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.TipoGuia != nil {
			counts[*row.TipoGuia] = row.Total
		}
	}
	return counts, nil
}

func (r *GuideGormRepository) FindGuideByID(ctx context.Context, id int) (*entities.Guia, error) {
	var guide entities.Guia
	err := r.db.WithContext(ctx).
		Preload("Procedimentos", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequencial_item ASC, id ASC")
		}).
		First(&guide, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *GuideGormRepository) FindGuideByNumeroPrestador(ctx context.Context, hospitalID, numeroGuiaPrestador string) (*entities.Guia, error) {
	var guide entities.Guia
	err := r.db.WithContext(ctx).
		Where("hospital_id = ? AND numero_guia_prestador = ?", hospitalID, numeroGuiaPrestador).
		First(&guide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

func (r *GuideGormRepository) FindProceduresByGuiaID(ctx context.Context, guiaID, limit, offset int) ([]entities.GuiaProcedimento, error) {
	q := r.db.WithContext(ctx).
		Where("guia_id = ?", guiaID).
		Order("sequencial_item ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var procs []entities.GuiaProcedimento
	if err := q.Find(&procs).Error; err != nil {
		return nil, err
	}
	return procs, nil
}

func (r *GuideGormRepository) FindProcedureByID(ctx context.Context, id int) (*entities.GuiaProcedimento, error) {
	var proc entities.GuiaProcedimento
	err := r.db.WithContext(ctx).
		Preload("Guia", func(db *gorm.DB) *gorm.DB {
			return db.Select(guiaParentProjection)
		}).
		First(&proc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &proc, nil
}

func (r *GuideGormRepository) CountProceduresByGuideWindow(ctx context.Context, f interfaces.GuideFilter) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&entities.GuiaProcedimento{}).
		Joins("JOIN guias ON guias.id = guia_procedimentos.guia_id").
		Where("guias.hospital_id = ?", f.HospitalID)
	if f.CreatedFrom != nil {
		q = q.Where("guias.created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		q = q.Where("guias.created_at <= ?", *f.CreatedTo)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *GuideGormRepository) FindStatusesByGuiaID(ctx context.Context, guiaID int) ([]entities.ProcedimentoStatus, error) {
	var statuses []entities.ProcedimentoStatus
	err := r.db.WithContext(ctx).
		Where("guia_id = ?", guiaID).
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// UpdateProcedureStatus applies the partial field update and the status upsert
// inside one transaction, so a failure between the two writes never leaves an
// orphaned half-update. auditor_id is written only when the status row is
// created; updates touch status and updated_at alone.
func (r *GuideGormRepository) UpdateProcedureStatus(ctx context.Context, procedimentoID int, upd interfaces.ProcedureStatusUpdate) (*entities.GuiaProcedimento, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var proc entities.GuiaProcedimento
		if err := tx.Select("id", "guia_id").First(&proc, procedimentoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProcedureRowMissing
			}
			return err
		}

		fields := map[string]any{}
		if upd.ValorAprovado != nil {
			fields["valor_aprovado"] = *upd.ValorAprovado
		}
		if upd.MotivoRejeicao != nil {
			fields["motivo_rejeicao"] = *upd.MotivoRejeicao
		}
		if upd.CategoriaRejeicao != nil {
			fields["categoria_rejeicao"] = *upd.CategoriaRejeicao
		}
		if len(fields) > 0 {
			if err := tx.Model(&entities.GuiaProcedimento{}).Where("id = ?", procedimentoID).Updates(fields).Error; err != nil {
				return err
			}
		}

		if upd.Status != "" {
			now := time.Now().UTC()
			row := entities.ProcedimentoStatus{
				GuiaID:         proc.GuiaID,
				ProcedimentoID: procedimentoID,
				Status:         upd.Status,
				AuditorID:      entities.AuditorSystem,
				UpdatedAt:      now,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "guia_id"}, {Name: "procedimento_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"status":     upd.Status,
					"updated_at": now,
				}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errProcedureRowMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return r.FindProcedureByID(ctx, procedimentoID)
}

func (r *GuideGormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
