package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// LoanModel represents the loans table in the database. Repayment figures are
// derived from the stored terms, never persisted.
type LoanModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Principal     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	AnnualRatePct float64         `gorm:"type:decimal(6,3);not null"`
	TermMonths    int             `gorm:"not null"`
	StartDate     time.Time       `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the LoanModel.
func (LoanModel) TableName() string {
	return "loans"
}

// ToEntity converts a LoanModel to a domain Loan entity.
func (m *LoanModel) ToEntity() *entity.Loan {
	return &entity.Loan{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Principal:     m.Principal,
		AnnualRatePct: m.AnnualRatePct,
		TermMonths:    m.TermMonths,
		StartDate:     m.StartDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// LoanFromEntity creates a LoanModel from a domain Loan entity.
func LoanFromEntity(loan *entity.Loan) *LoanModel {
	return &LoanModel{
		ID:            loan.ID,
		UserID:        loan.UserID,
		Name:          loan.Name,
		Principal:     loan.Principal,
		AnnualRatePct: loan.AnnualRatePct,
		TermMonths:    loan.TermMonths,
		StartDate:     loan.StartDate,
		CreatedAt:     loan.CreatedAt,
		UpdatedAt:     loan.UpdatedAt,
	}
}

// InsurancePolicyModel represents the insurance_policies table in the database.
type InsurancePolicyModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Provider      string          `gorm:"type:varchar(100)"`
	AnnualPremium decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TermYears     int             `gorm:"not null"`
	AnnualRatePct float64         `gorm:"type:decimal(6,3);not null"`
	NextDueDate   time.Time       `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InsurancePolicyModel.
func (InsurancePolicyModel) TableName() string {
	return "insurance_policies"
}

// ToEntity converts an InsurancePolicyModel to a domain InsurancePolicy entity.
func (m *InsurancePolicyModel) ToEntity() *entity.InsurancePolicy {
	return &entity.InsurancePolicy{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Provider:      m.Provider,
		AnnualPremium: m.AnnualPremium,
		TermYears:     m.TermYears,
		AnnualRatePct: m.AnnualRatePct,
		NextDueDate:   m.NextDueDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// PolicyFromEntity creates an InsurancePolicyModel from a domain InsurancePolicy entity.
func PolicyFromEntity(policy *entity.InsurancePolicy) *InsurancePolicyModel {
	return &InsurancePolicyModel{
		ID:            policy.ID,
		UserID:        policy.UserID,
		Name:          policy.Name,
		Provider:      policy.Provider,
		AnnualPremium: policy.AnnualPremium,
		TermYears:     policy.TermYears,
		AnnualRatePct: policy.AnnualRatePct,
		NextDueDate:   policy.NextDueDate,
		CreatedAt:     policy.CreatedAt,
		UpdatedAt:     policy.UpdatedAt,
	}
}

// RetirementPlanModel represents the retirement_plans table. Each user keeps
// at most one row.
type RetirementPlanModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	CurrentAge           int             `gorm:"not null"`
	RetirementAge        int             `gorm:"not null"`
	MonthlyContribution  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CurrentSavings       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ExpectedReturnPct    float64         `gorm:"type:decimal(6,3);not null"`
	InflationRatePct     float64         `gorm:"type:decimal(6,3);not null"`
	DesiredMonthlyIncome decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RetirementPlanModel.
func (RetirementPlanModel) TableName() string {
	return "retirement_plans"
}

// ToEntity converts a RetirementPlanModel to a domain RetirementPlan entity.
func (m *RetirementPlanModel) ToEntity() *entity.RetirementPlan {
	return &entity.RetirementPlan{
		ID:                   m.ID,
		UserID:               m.UserID,
		CurrentAge:           m.CurrentAge,
		RetirementAge:        m.RetirementAge,
		MonthlyContribution:  m.MonthlyContribution,
		CurrentSavings:       m.CurrentSavings,
		ExpectedReturnPct:    m.ExpectedReturnPct,
		InflationRatePct:     m.InflationRatePct,
		DesiredMonthlyIncome: m.DesiredMonthlyIncome,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// PlanFromEntity creates a RetirementPlanModel from a domain RetirementPlan entity.
func PlanFromEntity(plan *entity.RetirementPlan) *RetirementPlanModel {
	return &RetirementPlanModel{
		ID:                   plan.ID,
		UserID:               plan.UserID,
		CurrentAge:           plan.CurrentAge,
		RetirementAge:        plan.RetirementAge,
		MonthlyContribution:  plan.MonthlyContribution,
		CurrentSavings:       plan.CurrentSavings,
		ExpectedReturnPct:    plan.ExpectedReturnPct,
		InflationRatePct:     plan.InflationRatePct,
		DesiredMonthlyIncome: plan.DesiredMonthlyIncome,
		CreatedAt:            plan.CreatedAt,
		UpdatedAt:            plan.UpdatedAt,
	}
}
