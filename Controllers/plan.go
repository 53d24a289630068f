package Controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/OpenAI"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/PDF"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Planner"

	"github.com/gin-gonic/gin"
)

// DocumentsDir is where exported plan documents are written.
var DocumentsDir = "./GeneratedDocuments"

// PlanGenerator lets tests swap in a generator with a fake model client.
type PlanGenerator interface {
	Generate(ctx context.Context, patient Models.PatientData) (Models.TreatmentPlan, Planner.Source, error)
}

var Generator PlanGenerator

// planGenerator returns the injected generator or builds one with the real
// client. The credential is read here, at call time, so a missing key is
// reported per request rather than at startup.
func planGenerator() (PlanGenerator, error) {
	if Generator != nil {
		return Generator, nil
	}
	client, err := OpenAI.NewClient()
	if err != nil {
		return nil, err
	}
	return Planner.NewGenerator(client), nil
}

func GeneratePlan(c *gin.Context) {
	var input Models.PatientData
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println("Invalid patient payload:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate treatment plan"})
		return
	}

	gen, err := planGenerator()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate treatment plan"})
		return
	}

	plan, source, err := gen.Generate(c.Request.Context(), input)
	if err != nil {
		log.Println("Plan generation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate treatment plan"})
		return
	}

	archivePlan(input, plan, source)
	c.JSON(http.StatusOK, plan)
}

// archivePlan persists a history record when the database is enabled.
// Best-effort: an archive failure never fails the generation response.
func archivePlan(patient Models.PatientData, plan Models.TreatmentPlan, source Planner.Source) {
	if !Models.DBEnabled() {
		return
	}
	record := Models.PlanRecord{
		PatientName: patient.Name,
		Age:         patient.Age,
		Gender:      patient.Gender,
		Source:      string(source),
	}
	record.SetPlan(plan)
	if err := Models.DB.Create(&record).Error; err != nil {
		log.Printf("Failed to archive plan record: %v", err)
	}
}

func ExportTreatmentPlan(c *gin.Context) {
	var input struct {
		Patient Models.PatientData   `json:"patient" binding:"required"`
		Plan    Models.TreatmentPlan `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The plan may have been edited by hand; re-check the invariant before
	// it reaches the renderer.
	if violations := Planner.ValidatePlan(input.Plan); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan", "violations": violations})
		return
	}

	if err := os.MkdirAll(DocumentsDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create documents directory"})
		return
	}

	filename := PDF.DocumentFileName(input.Patient.Name, time.Now())
	path := filepath.Join(DocumentsDir, filename)
	if err := PDF.RenderTreatmentPlan(input.Patient, input.Plan, path); err != nil {
		log.Println("Failed to render treatment plan document:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render treatment plan document"})
		return
	}

	c.FileAttachment(path, filename)
}
