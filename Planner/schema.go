package Planner

import (
	"strings"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
)

// PlanFields lists the required plan fields in output order.
var PlanFields = []string{
	"diagnosis",
	"prognosis",
	"phaseI",
	"phaseII",
	"maintenance",
	"additionalRecommendations",
}

type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (v FieldViolation) String() string {
	return v.Field + ": " + v.Reason
}

func planField(plan *Models.TreatmentPlan, name string) *string {
	switch name {
	case "diagnosis":
		return &plan.Diagnosis
	case "prognosis":
		return &plan.Prognosis
	case "phaseI":
		return &plan.PhaseI
	case "phaseII":
		return &plan.PhaseII
	case "maintenance":
		return &plan.Maintenance
	case "additionalRecommendations":
		return &plan.AdditionalRecommendations
	}
	return nil
}

// ValidateObject checks a candidate object against the plan schema without
// coercing anything. Each required field must be present, a string, and
// non-empty after whitespace trimming.
func ValidateObject(v Value) (Models.TreatmentPlan, []FieldViolation) {
	var plan Models.TreatmentPlan
	if v.Kind != KindObject {
		return plan, []FieldViolation{{Field: "", Reason: "response is not a JSON object"}}
	}

	var violations []FieldViolation
	for _, field := range PlanFields {
		member, ok := v.Get(field)
		if !ok {
			violations = append(violations, FieldViolation{Field: field, Reason: "missing"})
			continue
		}
		if member.Kind != KindString {
			violations = append(violations, FieldViolation{Field: field, Reason: "not a string"})
			continue
		}
		if strings.TrimSpace(member.Str) == "" {
			violations = append(violations, FieldViolation{Field: field, Reason: "empty"})
			continue
		}
		*planField(&plan, field) = member.Str
	}
	if len(violations) > 0 {
		return Models.TreatmentPlan{}, violations
	}
	return plan, nil
}

// ValidatePlan re-checks an already-typed plan, e.g. after coercion or a
// manual edit, against the non-empty-string invariant.
func ValidatePlan(plan Models.TreatmentPlan) []FieldViolation {
	var violations []FieldViolation
	for _, field := range PlanFields {
		if strings.TrimSpace(*planField(&plan, field)) == "" {
			violations = append(violations, FieldViolation{Field: field, Reason: "empty"})
		}
	}
	return violations
}
