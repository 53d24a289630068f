package Models

import "gorm.io/gorm"

// TreatmentPlan is the six-field structured plan. Every field must be a
// non-empty flat string before the plan reaches the renderer or a response.
type TreatmentPlan struct {
	Diagnosis                 string `json:"diagnosis"`
	Prognosis                 string `json:"prognosis"`
	PhaseI                    string `json:"phaseI"`
	PhaseII                   string `json:"phaseII"`
	Maintenance               string `json:"maintenance"`
	AdditionalRecommendations string `json:"additionalRecommendations"`
}

// PlanRecord is a persisted snapshot of one generation. The six plan fields
// are editable afterwards through UpdatePlanRecord.
type PlanRecord struct {
	gorm.Model
	PatientName               string `json:"patient_name"`
	Age                       int    `json:"age"`
	Gender                    string `json:"gender"`
	Diagnosis                 string `json:"diagnosis" gorm:"type:text"`
	Prognosis                 string `json:"prognosis" gorm:"type:text"`
	PhaseI                    string `json:"phase_i" gorm:"type:text"`
	PhaseII                   string `json:"phase_ii" gorm:"type:text"`
	Maintenance               string `json:"maintenance" gorm:"type:text"`
	AdditionalRecommendations string `json:"additional_recommendations" gorm:"type:text"`
	Source                    string `json:"source"` // strict | lenient | fallback
}

// Plan returns the editable plan fields of the record.
func (r *PlanRecord) Plan() TreatmentPlan {
	return TreatmentPlan{
		Diagnosis:                 r.Diagnosis,
		Prognosis:                 r.Prognosis,
		PhaseI:                    r.PhaseI,
		PhaseII:                   r.PhaseII,
		Maintenance:               r.Maintenance,
		AdditionalRecommendations: r.AdditionalRecommendations,
	}
}

// SetPlan overwrites the editable plan fields of the record.
func (r *PlanRecord) SetPlan(plan TreatmentPlan) {
	r.Diagnosis = plan.Diagnosis
	r.Prognosis = plan.Prognosis
	r.PhaseI = plan.PhaseI
	r.PhaseII = plan.PhaseII
	r.Maintenance = plan.Maintenance
	r.AdditionalRecommendations = plan.AdditionalRecommendations
}
