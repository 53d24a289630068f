package Planner

import (
	"strings"
	"testing"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"

	"github.com/stretchr/testify/assert"
)

func TestFallbackPlanYoungShallowPockets(t *testing.T) {
	patient := Models.PatientData{
		Name: "A", Age: 20, Gender: "female",
		PeriodontalFindings: Models.PeriodontalFindings{ProbingDepths: "3-4mm generalized"},
	}
	plan := FallbackPlan(patient)
	assert.Contains(t, plan.Diagnosis, "Aggressive")
	assert.Equal(t, fallbackPhaseIINotIndicated, plan.PhaseII)
	assert.Empty(t, ValidatePlan(plan))
}

func TestFallbackPlanOlderDeepPockets(t *testing.T) {
	patient := Models.PatientData{
		Name: "B", Age: 50, Gender: "male",
		PeriodontalFindings: Models.PeriodontalFindings{ProbingDepths: "7mm pockets posterior sextants"},
	}
	plan := FallbackPlan(patient)
	assert.Contains(t, plan.Diagnosis, "Chronic")
	assert.Equal(t, fallbackPhaseIISurgical, plan.PhaseII)
	assert.True(t, strings.Contains(plan.PhaseII, "Surgical intervention indicated"))
}

func TestFallbackPlanAgeBoundary(t *testing.T) {
	under := FallbackPlan(Models.PatientData{Age: 34})
	over := FallbackPlan(Models.PatientData{Age: 35})
	assert.Contains(t, under.Diagnosis, "Aggressive")
	assert.Contains(t, over.Diagnosis, "Chronic")
}
