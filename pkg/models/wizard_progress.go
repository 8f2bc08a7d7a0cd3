package models

import "time"

// Wizard step names, in order.
const (
	StepBasics    = "basics"
	StepMarket    = "market"
	StepProduct   = "product"
	StepFinancial = "financial"
	StepResults   = "results"
)

// WizardSteps lists the wizard steps in presentation order.
var WizardSteps = []string{StepBasics, StepMarket, StepProduct, StepFinancial, StepResults}

// IsWizardStep reports whether name is a known wizard step.
func IsWizardStep(name string) bool {
	for _, s := range WizardSteps {
		if s == name {
			return true
		}
	}
	return false
}

// WizardProgress is the server-side record of where a founder is in the
// questionnaire, keyed by project. It replaces the browser-local state the
// wizard would otherwise keep, so a session can resume from another device.
type WizardProgress struct {
	ProjectID      int64     `json:"projectId"`
	CurrentStep    string    `json:"currentStep"`
	CompletedSteps []string  `json:"completedSteps"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
