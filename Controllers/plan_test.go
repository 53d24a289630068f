package Controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Controllers"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Models"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Planner"
	"github.com/Ujwal0404/AI-Dental-Treatment-Plan/Routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errClient simulates a model endpoint that is permanently down.
type errClient struct{}

func (errClient) ChatJSON(ctx context.Context, system, user string) (string, error) {
	return "", errors.New("connection refused")
}

func (errClient) Chat(ctx context.Context, system, user string) (string, error) {
	return "", errors.New("connection refused")
}

// cannedClient returns a fixed strict-mode response.
type cannedClient struct{ content string }

func (c cannedClient) ChatJSON(ctx context.Context, system, user string) (string, error) {
	return c.content, nil
}

func (c cannedClient) Chat(ctx context.Context, system, user string) (string, error) {
	return c.content, nil
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	Routes.ConfigRoutes(router)
	return router
}

func setGenerator(t *testing.T, gen Controllers.PlanGenerator) {
	t.Helper()
	old := Controllers.Generator
	Controllers.Generator = gen
	t.Cleanup(func() { Controllers.Generator = old })
}

const validPatientJSON = `{
	"name": "Jane Roe",
	"age": 20,
	"gender": "female",
	"medicalHistory": "None",
	"dentalHistory": "Routine cleanings",
	"symptoms": {"bleedingGums": true, "pain": true},
	"periodontalFindings": {
		"probingDepths": "3-4mm generalized",
		"gingivalRecession": "None",
		"mobilityGrade": "None",
		"radiographicBoneLoss": "None"
	}
}`

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// A model that always errors must still produce a complete plan response.
func TestGeneratePlanFallsBackWhenModelIsDown(t *testing.T) {
	setGenerator(t, Planner.NewGenerator(errClient{}))
	router := newRouter(t)

	w := postJSON(router, "/api/GeneratePlan", validPatientJSON)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var plan Models.TreatmentPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Empty(t, Planner.ValidatePlan(plan))
	assert.Contains(t, plan.Diagnosis, "Aggressive")
	assert.Contains(t, plan.PhaseII, "not indicated")
}

func TestGeneratePlanReturnsModelPlan(t *testing.T) {
	setGenerator(t, Planner.NewGenerator(cannedClient{content: `{
		"diagnosis": "Localized Chronic Periodontitis, Stage I, Grade A",
		"prognosis": "Good",
		"phaseI": "Scaling and root planing",
		"phaseII": "Not indicated",
		"maintenance": "6 month recall",
		"additionalRecommendations": "Electric toothbrush"
	}`}))
	router := newRouter(t)

	w := postJSON(router, "/api/GeneratePlan", validPatientJSON)
	require.Equal(t, http.StatusOK, w.Code)

	var plan Models.TreatmentPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	assert.Equal(t, "Good", plan.Prognosis)
}

func TestGeneratePlanMalformedBodyIsServerError(t *testing.T) {
	setGenerator(t, Planner.NewGenerator(errClient{}))
	router := newRouter(t)

	w := postJSON(router, "/api/GeneratePlan", `{"name": "missing required fields"`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate treatment plan")
}

func TestGeneratePlanRejectsOutOfRangeAge(t *testing.T) {
	setGenerator(t, Planner.NewGenerator(errClient{}))
	router := newRouter(t)

	w := postJSON(router, "/api/GeneratePlan", `{"name": "X", "age": 300, "gender": "male"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGeneratePlanMissingCredential(t *testing.T) {
	setGenerator(t, nil)
	t.Setenv("OPENAI_API_KEY", "")
	router := newRouter(t)

	w := postJSON(router, "/api/GeneratePlan", validPatientJSON)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate treatment plan")
}

func TestExportTreatmentPlanProducesPDF(t *testing.T) {
	oldDir := Controllers.DocumentsDir
	Controllers.DocumentsDir = t.TempDir()
	t.Cleanup(func() { Controllers.DocumentsDir = oldDir })
	router := newRouter(t)

	body := `{
		"patient": ` + validPatientJSON + `,
		"plan": {
			"diagnosis": "Chronic periodontitis",
			"prognosis": "Fair",
			"phaseI": "Scaling and root planing",
			"phaseII": "Not indicated",
			"maintenance": "3 month recall",
			"additionalRecommendations": "Floss daily"
		}
	}`
	w := postJSON(router, "/api/ExportTreatmentPlan", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "jane_roe_treatment_plan_")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportTreatmentPlanRejectsIncompletePlan(t *testing.T) {
	router := newRouter(t)

	body := `{
		"patient": ` + validPatientJSON + `,
		"plan": {"diagnosis": "Chronic periodontitis"}
	}`
	w := postJSON(router, "/api/ExportTreatmentPlan", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "violations")
}

func TestUpdatePlanRecordRejectsEmptiedField(t *testing.T) {
	router := newRouter(t)

	body := `{
		"id": 1,
		"plan": {
			"diagnosis": "Chronic periodontitis",
			"prognosis": "Fair",
			"phaseI": "   ",
			"phaseII": "Not indicated",
			"maintenance": "3 month recall",
			"additionalRecommendations": "Floss daily"
		}
	}`
	w := postJSON(router, "/api/UpdatePlanRecord", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "violations")
	assert.Contains(t, w.Body.String(), "phaseI")
}

func TestFetchPlanRecordsWithoutDatabase(t *testing.T) {
	router := newRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/FetchPlanRecords", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
