package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/integration/persistence/model"
)

// retirementPlanRepository implements the adapter.RetirementPlanRepository interface.
type retirementPlanRepository struct {
	db *gorm.DB
}

// NewRetirementPlanRepository creates a new retirement plan repository instance.
func NewRetirementPlanRepository(db *gorm.DB) adapter.RetirementPlanRepository {
	return &retirementPlanRepository{
		db: db,
	}
}

// Upsert saves the user's plan, replacing any existing one. The user_id
// unique index drives the conflict resolution.
func (r *retirementPlanRepository) Upsert(ctx context.Context, plan *entity.RetirementPlan) error {
	planModel := model.PlanFromEntity(plan)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current_age",
				"retirement_age",
				"monthly_contribution",
				"current_savings",
				"expected_return_pct",
				"inflation_rate_pct",
				"desired_monthly_income",
				"updated_at",
			}),
		}).
		Create(planModel)
	return result.Error
}

// FindByUser retrieves the plan for a given user.
func (r *retirementPlanRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.RetirementPlan, error) {
	var planModel model.RetirementPlanModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRetirementPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}
