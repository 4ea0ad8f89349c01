package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bluecarbon/bcms/internal/config"
	"github.com/bluecarbon/bcms/internal/pinning"
	"github.com/bluecarbon/bcms/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePinner 测试用固定服务客户端
type fakePinner struct {
	fail bool
}

func (f *fakePinner) Pin(_ context.Context, body io.Reader, filename, contentType string, meta map[string]string) (*pinning.PinResult, error) {
	if f.fail {
		return nil, io.ErrUnexpectedEOF
	}
	io.Copy(io.Discard, body)
	return &pinning.PinResult{
		Cid:      "QmFakeCid",
		ImageURL: "https://gateway.example.com/ipfs/QmFakeCid",
		Size:     11,
	}, nil
}

func newTestRouter(t *testing.T, pinner pinning.Pinner) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	return Setup(s, pinner, cfg), s
}

// newSubmissionForm 构造multipart提交表单
func newSubmissionForm(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withFile {
		part, err := writer.CreateFormFile("file", "plot.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, &fakePinner{})

	w := doJSON(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bcms")
}

func TestCreateSubmission(t *testing.T) {
	r, _ := newTestRouter(t, &fakePinner{})

	body, contentType := newSubmissionForm(t, map[string]string{
		"description": "Restored mangrove belt",
		"title":       "Plot 7",
		"latitude":    "9.93",
		"longitude":   "76.26",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Submission struct {
				Id          string `json:"id"`
				Description string `json:"description"`
				Status      string `json:"status"`
				ImageURL    string `json:"imageUrl"`
			} `json:"submission"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Submission.Id)
	assert.Equal(t, "Restored mangrove belt", resp.Data.Submission.Description)
	assert.Equal(t, "pending", resp.Data.Submission.Status)
	assert.Equal(t, "https://gateway.example.com/ipfs/QmFakeCid", resp.Data.Submission.ImageURL)
}

func TestCreateSubmissionMissingDescription(t *testing.T) {
	r, s := newTestRouter(t, &fakePinner{})

	body, contentType := newSubmissionForm(t, map[string]string{}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing description")

	submissions, err := s.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, submissions)
}

func TestCreateSubmissionMissingFile(t *testing.T) {
	r, s := newTestRouter(t, &fakePinner{})

	body, contentType := newSubmissionForm(t, map[string]string{"description": "d"}, false)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing file")

	submissions, err := s.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, submissions)
}

func TestCreateSubmissionPinFailure(t *testing.T) {
	r, s := newTestRouter(t, &fakePinner{fail: true})

	body, contentType := newSubmissionForm(t, map[string]string{"description": "d"}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	submissions, err := s.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, submissions)
}

func createSubmission(t *testing.T, r *gin.Engine) string {
	t.Helper()
	body, contentType := newSubmissionForm(t, map[string]string{
		"description": "d",
		"title":       "Plot 7",
	}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			Submission struct {
				Id string `json:"id"`
			} `json:"submission"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Submission.Id
}

func TestGetMetadata(t *testing.T) {
	r, _ := newTestRouter(t, &fakePinner{})
	id := createSubmission(t, r)

	w := doJSON(r, http.MethodGet, "/api/v1/submissions/"+id+"/metadata", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var metadata struct {
		Name       string `json:"name"`
		Image      string `json:"image"`
		Attributes []struct {
			TraitType string `json:"trait_type"`
		} `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metadata))
	assert.Equal(t, "Plot 7", metadata.Name)
	assert.Equal(t, "https://gateway.example.com/ipfs/QmFakeCid", metadata.Image)
	assert.Len(t, metadata.Attributes, 3)
}

func TestGetMetadataNotFound(t *testing.T) {
	r, _ := newTestRouter(t, &fakePinner{})

	w := doJSON(r, http.MethodGet, "/api/v1/submissions/missing/metadata", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestMarkMinted(t *testing.T) {
	r, _ := newTestRouter(t, &fakePinner{})
	id := createSubmission(t, r)

	evidence := map[string]string{
		"txHash":      "0xdeadbeef",
		"tokenId":     "7",
		"metadataURI": "ipfs://QmMeta",
	}
	w := doJSON(r, http.MethodPost, "/api/v1/submissions/"+id+"/minted", evidence)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Submission struct {
				Status      string `json:"status"`
				TxHash      string `json:"txHash"`
				TokenId     string `json:"tokenId"`
				MetadataURI string `json:"metadataURI"`
			} `json:"submission"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Data.Submission.Status)
	assert.Equal(t, "0xdeadbeef", resp.Data.Submission.TxHash)
	assert.Equal(t, "7", resp.Data.Submission.TokenId)
	assert.Equal(t, "ipfs://QmMeta", resp.Data.Submission.MetadataURI)
}

func TestMarkMintedNotFound(t *testing.T) {
	r, _ := newTestRouter(t, &fakePinner{})

	w := doJSON(r, http.MethodPost, "/api/v1/submissions/missing/minted", map[string]string{"txHash": "0x1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectLifecycle(t *testing.T) {
	r, _ := newTestRouter(t, &fakePinner{})

	project := map[string]interface{}{
		"projectId":          "BC-001",
		"projectName":        "Sundarbans belt",
		"latitude":           "21.9",
		"longitude":          "89.1",
		"ecosystemType":      "mangrove",
		"implementingAgency": "State Forest Dept",
	}
	w := doJSON(r, http.MethodPost, "/api/v1/projects", project)
	require.Equal(t, http.StatusCreated, w.Code)

	// 缺必填项
	w = doJSON(r, http.MethodPost, "/api/v1/projects", map[string]interface{}{"projectId": "BC-002"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 列表
	w = doJSON(r, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BC-001")

	// 提交项目
	w = doJSON(r, http.MethodPut, "/api/v1/projects/BC-001/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "submitted")

	// 未知项目
	w = doJSON(r, http.MethodPut, "/api/v1/projects/missing/submit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMonitoringEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, &fakePinner{})

	w := doJSON(r, http.MethodPost, "/api/v1/baseline", map[string]interface{}{
		"projectId":    "BC-001",
		"samplingDate": "2025-06-01",
		"carbonStock":  120.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/baseline/BC-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025-06-01")

	w = doJSON(r, http.MethodPost, "/api/v1/activities", map[string]interface{}{
		"projectId":    "BC-001",
		"activityType": "plantation",
		"date":         "2025-07-15",
		"saplingCount": 500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/activities/BC-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "planned")

	w = doJSON(r, http.MethodPost, "/api/v1/mrv", map[string]interface{}{
		"projectId": "BC-001",
		"date":      "2025-08-01",
		"mrvType":   "satellite",
		"ndvi":      0.72,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/mrv/BC-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "satellite")

	// 缺必填项
	w = doJSON(r, http.MethodPost, "/api/v1/mrv", map[string]interface{}{"projectId": "BC-001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
