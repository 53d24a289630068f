package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

func ExportPlanRecordsExcel(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !requireDB(c) {
		return
	}

	var records []Models.PlanRecord
	if input.DateFrom != "" && input.DateTo != "" {
		if err := Models.DB.Model(&Models.PlanRecord{}).
			Where("created_at BETWEEN ? AND ?", input.DateFrom, input.DateTo).
			Find(&records).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := Models.DB.Model(&Models.PlanRecord{}).Find(&records).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Patient",
		"C1": "Age",
		"D1": "Gender",
		"E1": "Diagnosis",
		"F1": "Source",
	}
	file := excelize.NewFile()
	sheet := "TreatmentPlans"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(records); i++ {
		appendRowPlans(sheet, file, i, records)
	}

	var filename string = "./PlanRecords.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export file"})
		return
	}
	c.File(filename)
}

func appendRowPlans(sheet string, file *excelize.File, index int, rows []Models.PlanRecord) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].CreatedAt.Format("2006-01-02"))
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].PatientName)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Age)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Gender)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Diagnosis)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].Source)
	return file
}
