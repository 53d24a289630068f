package Planner

import (
	"fmt"
	"strings"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
)

// StrictSystemPrompt is sent with the constrained-output call shape.
const StrictSystemPrompt = "You are an experienced periodontist writing structured treatment plans.\n\n" +
	"RETURN ONLY A STRICT JSON OBJECT. NO PROSE, NO EXPLANATIONS, NO MARKDOWN.\n" +
	"Fields (all required): diagnosis: string, prognosis: string, phaseI: string, phaseII: string, maintenance: string, additionalRecommendations: string\n" +
	"Every value must be a single flat string, never an object or an array."

// LenientSystemPrompt is sent with the unconstrained call shape and relies on
// instructions alone.
const LenientSystemPrompt = "You are an experienced periodontist writing structured treatment plans. " +
	"Respond with a single JSON object containing exactly the keys diagnosis, prognosis, phaseI, phaseII, " +
	"maintenance and additionalRecommendations. Each value must be a single flat string."

const promptInstructions = `Write a complete periodontal treatment plan for this patient as a JSON object with the keys diagnosis, prognosis, phaseI, phaseII, maintenance and additionalRecommendations.

Formatting rules:
- diagnosis: full periodontal diagnosis with staging and grading.
- prognosis: overall and tooth-level prognosis.
- phaseI: non-surgical (initial/hygienic) therapy steps.
- phaseII: surgical therapy, or state clearly that surgery is not indicated.
- maintenance: recall interval and maintenance procedures.
- additionalRecommendations: adjunctive advice (habits, systemic factors, referrals).
- Use professional clinical language. Number multi-step instructions inside each string.

Example of the expected output shape:
{"diagnosis": "Generalized Chronic Periodontitis, Stage II, Grade B.", "prognosis": "Good overall prognosis with adequate plaque control.", "phaseI": "1. Oral hygiene instruction. 2. Full-mouth scaling and root planing. 3. Re-evaluation after 4-6 weeks.", "phaseII": "Surgical intervention not indicated at this time.", "maintenance": "Periodontal maintenance every 3 months.", "additionalRecommendations": "Smoking cessation counselling; interdental cleaning daily."}`

var symptomLabels = []struct {
	label  string
	active func(Models.Symptoms) bool
}{
	{"Bleeding Gums", func(s Models.Symptoms) bool { return s.BleedingGums }},
	{"Tooth Mobility", func(s Models.Symptoms) bool { return s.ToothMobility }},
	{"Halitosis", func(s Models.Symptoms) bool { return s.Halitosis }},
	{"Tooth Sensitivity", func(s Models.Symptoms) bool { return s.Sensitivity }},
	{"Pain", func(s Models.Symptoms) bool { return s.Pain }},
}

// ActiveSymptoms maps the boolean symptom flags to display labels in
// declaration order, omitting inactive flags.
func ActiveSymptoms(s Models.Symptoms) []string {
	var active []string
	for _, entry := range symptomLabels {
		if entry.active(s) {
			active = append(active, entry.label)
		}
	}
	return active
}

// BuildPrompt renders the patient data into the user instruction block. Pure;
// malformed or empty fields are passed through verbatim, upstream validation
// is the form's concern.
func BuildPrompt(patient Models.PatientData) string {
	symptoms := strings.Join(ActiveSymptoms(patient.Symptoms), ", ")
	if symptoms == "" {
		symptoms = "None reported"
	}

	var b strings.Builder
	b.WriteString("Patient Information:\n")
	fmt.Fprintf(&b, "Name: %s\n", patient.Name)
	fmt.Fprintf(&b, "Age: %d\n", patient.Age)
	fmt.Fprintf(&b, "Gender: %s\n", patient.Gender)
	fmt.Fprintf(&b, "Medical History: %s\n", patient.MedicalHistory)
	fmt.Fprintf(&b, "Dental History: %s\n", patient.DentalHistory)
	fmt.Fprintf(&b, "Symptoms: %s\n", symptoms)
	b.WriteString("\nPeriodontal Findings:\n")
	fmt.Fprintf(&b, "Probing Depths: %s\n", patient.PeriodontalFindings.ProbingDepths)
	fmt.Fprintf(&b, "Gingival Recession: %s\n", patient.PeriodontalFindings.GingivalRecession)
	fmt.Fprintf(&b, "Mobility Grade: %s\n", patient.PeriodontalFindings.MobilityGrade)
	fmt.Fprintf(&b, "Radiographic Bone Loss: %s\n", patient.PeriodontalFindings.RadiographicBoneLoss)
	b.WriteString("\n")
	b.WriteString(promptInstructions)
	return b.String()
}
