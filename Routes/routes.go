package Routes

import (
	"net/http"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Controllers"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Plan generation and document export
		api.POST("/GeneratePlan", Controllers.GeneratePlan)
		api.POST("/ExportTreatmentPlan", Controllers.ExportTreatmentPlan)

		// Plan history routes
		api.GET("/FetchPlanRecords", Controllers.FetchPlanRecords)
		api.POST("/UpdatePlanRecord", Controllers.UpdatePlanRecord)
		api.POST("/DeletePlanRecord", Controllers.DeletePlanRecord)
		api.POST("/ExportPlanRecordsExcel", Controllers.ExportPlanRecordsExcel)
	}

	// Static file serving
	router.Static("/GeneratedDocuments", "./GeneratedDocuments")
	router.Static("/Web", "./Static")
}
