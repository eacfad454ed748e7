package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/integration/persistence/model"
)

// insuranceRepository implements the adapter.InsuranceRepository interface.
type insuranceRepository struct {
	db *gorm.DB
}

// NewInsuranceRepository creates a new insurance repository instance.
func NewInsuranceRepository(db *gorm.DB) adapter.InsuranceRepository {
	return &insuranceRepository{
		db: db,
	}
}

// Create creates a new policy in the database.
func (r *insuranceRepository) Create(ctx context.Context, policy *entity.InsurancePolicy) error {
	policyModel := model.PolicyFromEntity(policy)
	result := r.db.WithContext(ctx).Create(policyModel)
	return result.Error
}

// FindByID retrieves a policy by its ID.
func (r *insuranceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InsurancePolicy, error) {
	var policyModel model.InsurancePolicyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&policyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPolicyNotFound
		}
		return nil, result.Error
	}
	return policyModel.ToEntity(), nil
}

// FindByUser retrieves all policies for a given user.
func (r *insuranceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InsurancePolicy, error) {
	var policyModels []model.InsurancePolicyModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("next_due_date ASC").
		Find(&policyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	policies := make([]*entity.InsurancePolicy, 0, len(policyModels))
	for i := range policyModels {
		policies = append(policies, policyModels[i].ToEntity())
	}
	return policies, nil
}

// Delete removes a policy from the database.
func (r *insuranceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InsurancePolicyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPolicyNotFound
	}
	return nil
}
