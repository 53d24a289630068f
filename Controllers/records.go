package Controllers

import (
	"net/http"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Planner"

	"github.com/gin-gonic/gin"
)

func requireDB(c *gin.Context) bool {
	if Models.DBEnabled() {
		return true
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Plan history requires the database"})
	return false
}

func FetchPlanRecords(c *gin.Context) {
	if !requireDB(c) {
		return
	}
	var records []Models.PlanRecord
	if err := Models.DB.Model(&Models.PlanRecord{}).Order("created_at desc").Find(&records).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// UpdatePlanRecord stores a manually edited plan. Edits must still satisfy
// the non-empty-string invariant.
func UpdatePlanRecord(c *gin.Context) {
	var input struct {
		ID   uint                 `json:"id" binding:"required"`
		Plan Models.TreatmentPlan `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if violations := Planner.ValidatePlan(input.Plan); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan", "violations": violations})
		return
	}
	if !requireDB(c) {
		return
	}

	var record Models.PlanRecord
	if err := Models.DB.Model(&Models.PlanRecord{}).Where("id = ?", input.ID).First(&record).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Record not found: " + err.Error()})
		return
	}

	record.SetPlan(input.Plan)
	if err := Models.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan record updated successfully"})
}

func DeletePlanRecord(c *gin.Context) {
	var input struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !requireDB(c) {
		return
	}
	if err := Models.DB.Delete(&Models.PlanRecord{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan record deleted successfully"})
}
