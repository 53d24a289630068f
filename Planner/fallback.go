package Planner

import (
	"strings"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
)

const (
	fallbackDiagnosisAggressive = "Generalized Aggressive Periodontitis (Stage III, Grade C). Early-onset presentation with attachment loss disproportionate to the patient's age; confirm with full-mouth periodontal charting and radiographic review."

	fallbackDiagnosisChronic = "Generalized Chronic Periodontitis (Stage II-III, Grade B). Slowly progressing plaque-associated attachment loss; confirm with full-mouth periodontal charting and radiographic review."

	fallbackPrognosis = "Fair to good overall prognosis provided strict plaque control is achieved and active therapy is completed. Individual tooth prognosis depends on residual probing depths and mobility at re-evaluation."

	fallbackPhaseI = "1. Oral hygiene instruction and motivation. 2. Full-mouth scaling and root planing per quadrant under local anesthesia. 3. Adjunctive chlorhexidine 0.12% rinse twice daily for 2 weeks. 4. Re-evaluation of periodontal status 4-6 weeks after completion."

	fallbackPhaseIISurgical = "Surgical intervention indicated for residual deep pockets after initial therapy: open flap debridement in the affected sextants, with osseous recontouring or regenerative therapy (bone graft and membrane) at angular defects."

	fallbackPhaseIINotIndicated = "Surgical intervention not indicated at this time. Continue non-surgical management and reassess pocket depths at re-evaluation; consider periodontal surgery only if deep residual pockets persist."

	fallbackMaintenance = "Periodontal maintenance every 3 months: oral hygiene reinforcement, full-mouth supragingival and subgingival debridement, and annual full-mouth charting with radiographs as indicated."

	fallbackRecommendations = "Smoking cessation counselling if applicable. Evaluate and manage contributing systemic factors such as diabetes control. Daily interdental cleaning; a powered toothbrush is recommended."
)

// FallbackPlan synthesizes a plan without any model call. Diagnosis framing
// branches on an age threshold; phase II branches on deep-pocket signals
// (any 7/8/9 digit) in the probing depth text. It cannot fail.
func FallbackPlan(patient Models.PatientData) Models.TreatmentPlan {
	diagnosis := fallbackDiagnosisChronic
	if patient.Age < 35 {
		diagnosis = fallbackDiagnosisAggressive
	}

	phaseII := fallbackPhaseIINotIndicated
	if strings.ContainsAny(patient.PeriodontalFindings.ProbingDepths, "789") {
		phaseII = fallbackPhaseIISurgical
	}

	return Models.TreatmentPlan{
		Diagnosis:                 diagnosis,
		Prognosis:                 fallbackPrognosis,
		PhaseI:                    fallbackPhaseI,
		PhaseII:                   phaseII,
		Maintenance:               fallbackMaintenance,
		AdditionalRecommendations: fallbackRecommendations,
	}
}
