package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-roast/internal/llm"
	"resume-roast/internal/prompts"
	"resume-roast/internal/shared/server/respond"
)

func newRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc, 1<<20).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func analyzeRequest(t *testing.T, contentType string, file []byte, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="resume"; filename="resume"`)
		h.Set("Content-Type", contentType)
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) respond.ErrorResponse {
	t.Helper()
	var body respond.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestAnalyzeHandlerEndToEnd(t *testing.T) {
	quietLogs(t)
	client := &cannedLLM{responses: allCanned()}
	r := newRouter(NewService(client))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t, "text/plain", []byte("Jane Doe\nQuant Analyst"), map[string]string{
		"mode": "savage", "industry": "finance", "personaMode": "evil",
	}))

	require.Equal(t, http.StatusOK, resp.Code)
	var got Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, cannedRoast, got.Roast)
	assert.Equal(t, cannedIndustry, got.IndustryView)
	assert.Equal(t, cannedPersona, got.PersonaAnalysis)
	assert.Equal(t, "Solid quant work hidden in paragraph four.", got.FirstImpression.SevenSecond)
	assert.Equal(t, "The Skeptic", got.BiasFilters[0].Persona)

	assert.Contains(t, client.requests[prompts.FacetRoast].Prompt, "Quant Analyst")
	assert.Contains(t, client.requests[prompts.FacetIndustry].Prompt, "finance industry")
}

func TestAnalyzeHandlerMissingFile(t *testing.T) {
	quietLogs(t)
	r := newRouter(NewService(&cannedLLM{}))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t, "", nil, map[string]string{"mode": "genz"}))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodeError(t, resp)
	assert.Equal(t, "missing_input", body.Error.Code)
	assert.Equal(t, "No file uploaded", body.Error.Message)
}

func TestAnalyzeHandlerOversizedUpload(t *testing.T) {
	quietLogs(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(&cannedLLM{}), 512).RegisterRoutes(r.Group("/api/v1"))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t, "text/plain", bytes.Repeat([]byte("x"), 4096), nil))

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	body := decodeError(t, resp)
	assert.Equal(t, "payload_too_large", body.Error.Code)
	assert.Equal(t, "File too large", body.Error.Message)
}

func TestAnalyzeHandlerBlankDocument(t *testing.T) {
	quietLogs(t)
	client := &cannedLLM{responses: allCanned()}
	r := newRouter(NewService(client))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t, "text/plain", []byte(" \n\t "), nil))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodeError(t, resp)
	assert.Equal(t, "missing_input", body.Error.Code)
	assert.Equal(t, "No text could be extracted from the file", body.Error.Message)
	assert.Empty(t, client.requests)
}

func TestAnalyzeHandlerUnparseablePDF(t *testing.T) {
	quietLogs(t)
	r := newRouter(NewService(&cannedLLM{}))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t, "application/pdf", []byte("not a pdf"), nil))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodeError(t, resp)
	assert.Equal(t, "document_parse_error", body.Error.Code)
	assert.Equal(t, "Failed to parse file", body.Error.Message)
}

func TestAnalyzeHandlerMissingCredential(t *testing.T) {
	quietLogs(t)
	r := newRouter(NewService(nil))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t, "text/plain", []byte("cv"), nil))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "configuration_error", decodeError(t, resp).Error.Code)
}

func TestAnalyzeHandlerTotalOutageStillResponds(t *testing.T) {
	quietLogs(t)
	down := llm.ClientFunc(func(ctx context.Context, req llm.Request) (string, error) {
		return "", llm.ServiceError("groq", context.DeadlineExceeded)
	})
	r := newRouter(NewService(down))

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, analyzeRequest(t, "text/plain", []byte("cv"), nil))

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Equal(t, "completion_service_error", decodeError(t, resp).Error.Code)
}
