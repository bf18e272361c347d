package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxfolio/docpipe/gen/ent"
	"github.com/taxfolio/docpipe/internal/common"
	"github.com/taxfolio/docpipe/internal/entity"
)

type TaxYearRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxYear, error)
}

type taxYearRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTaxYearRepository(entc *ent.Client, log *slog.Logger) TaxYearRepository {
	return &taxYearRepo{ent: entc, log: log}
}

func (r *taxYearRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxYear, error) {
	row, err := r.ent.TaxYear.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("TAX_YEAR_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return nil, common.WrapError(err, "get tax year")
	}
	return &entity.TaxYear{
		ID:           row.ID,
		ClientID:     row.ClientID,
		Year:         row.Year,
		Status:       row.Status,
		Completeness: row.Completeness,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
