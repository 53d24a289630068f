package Models

// Symptoms holds the named symptom flags from the intake form. Declaration
// order is the display order used when building the model prompt.
type Symptoms struct {
	BleedingGums  bool `json:"bleedingGums"`
	ToothMobility bool `json:"toothMobility"`
	Halitosis     bool `json:"halitosis"`
	Sensitivity   bool `json:"sensitivity"`
	Pain          bool `json:"pain"`
}

type PeriodontalFindings struct {
	ProbingDepths        string `json:"probingDepths"`
	GingivalRecession    string `json:"gingivalRecession"`
	MobilityGrade        string `json:"mobilityGrade"`
	RadiographicBoneLoss string `json:"radiographicBoneLoss"`
}

// PatientData is the intake form payload. It is immutable once submitted;
// free-text fields are passed through to the prompt verbatim.
type PatientData struct {
	Name                string              `json:"name" binding:"required"`
	Age                 int                 `json:"age" binding:"required,gt=0,lte=120"`
	Gender              string              `json:"gender" binding:"required,oneof=male female other"`
	MedicalHistory      string              `json:"medicalHistory"`
	DentalHistory       string              `json:"dentalHistory"`
	Symptoms            Symptoms            `json:"symptoms"`
	PeriodontalFindings PeriodontalFindings `json:"periodontalFindings"`
}
