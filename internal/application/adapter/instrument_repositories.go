// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// LoanRepository defines the interface for loan persistence operations.
type LoanRepository interface {
	// Create creates a new loan in the database.
	Create(ctx context.Context, loan *entity.Loan) error

	// FindByID retrieves a loan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByUser retrieves all loans for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error)

	// Delete removes a loan from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InsuranceRepository defines the interface for insurance policy persistence operations.
type InsuranceRepository interface {
	// Create creates a new policy in the database.
	Create(ctx context.Context, policy *entity.InsurancePolicy) error

	// FindByID retrieves a policy by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InsurancePolicy, error)

	// FindByUser retrieves all policies for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.InsurancePolicy, error)

	// Delete removes a policy from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// RetirementPlanRepository defines the interface for retirement plan persistence operations.
type RetirementPlanRepository interface {
	// Upsert saves the user's plan, replacing any existing one.
	Upsert(ctx context.Context, plan *entity.RetirementPlan) error

	// FindByUser retrieves the plan for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.RetirementPlan, error)
}
