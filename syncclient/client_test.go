package syncclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classwindow/models"
)

// recordingServer captures the last request body and replies with a fixed
// response.
func recordingServer(t *testing.T, reply any) (*httptest.Server, *map[string]any) {
	t.Helper()
	var last map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		last = body
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &last
}

func TestRegisterSendsActionAndFields(t *testing.T) {
	srv, last := recordingServer(t, map[string]any{"success": true, "message": "registration successful", "schoolCode": "SCH001", "classCode": "3A"})
	c := New(srv.URL)

	resp, err := c.Register(context.Background(), "SCH001", "3A", "pw")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "SCH001", resp.SchoolCode)

	assert.Equal(t, map[string]any{
		"action":     "register",
		"schoolCode": "SCH001",
		"classCode":  "3A",
		"password":   "pw",
	}, *last)
}

func TestUploadSendsHomework(t *testing.T) {
	srv, last := recordingServer(t, map[string]any{"success": true, "homeworkCount": 1})
	c := New(srv.URL)

	_, err := c.Upload(context.Background(), "SCH001", "3A", "pw", []models.Homework{
		{Subject: "math", Content: "p. 12", DueDate: "2026-09-02", Timestamp: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "upload", (*last)["action"])
	hw, ok := (*last)["homeworkData"].([]any)
	require.True(t, ok)
	require.Len(t, hw, 1)
	entry := hw[0].(map[string]any)
	assert.Equal(t, "math", entry["subject"])
}

func TestStudentAccessOmitsPassword(t *testing.T) {
	srv, last := recordingServer(t, map[string]any{"success": true})
	c := New(srv.URL)

	_, err := c.StudentAccess(context.Background(), "SCH001", "3A")
	require.NoError(t, err)

	assert.Equal(t, "student", (*last)["action"])
	assert.NotContains(t, *last, "password")
}

func TestDeleteHomeworkSendsZeroIndex(t *testing.T) {
	srv, last := recordingServer(t, map[string]any{"success": true})
	c := New(srv.URL)

	_, err := c.DeleteHomework(context.Background(), "SCH001", "3A", 0)
	require.NoError(t, err)

	assert.Equal(t, "deleteHomework", (*last)["action"])
	assert.Equal(t, float64(0), (*last)["index"])
}

func TestTemplateSyncActions(t *testing.T) {
	srv, last := recordingServer(t, map[string]any{"success": true})
	c := New(srv.URL)

	_, err := c.UploadTemplates(context.Background(), "SCH001", "3A", "pw", []models.Template{{ID: "tpl-1", Name: "A"}})
	require.NoError(t, err)
	assert.Equal(t, "templateSync", (*last)["action"])
	assert.Equal(t, "upload", (*last)["syncAction"])

	_, err = c.DownloadTemplates(context.Background(), "SCH001", "3A", "pw")
	require.NoError(t, err)
	assert.Equal(t, "download", (*last)["syncAction"])
	assert.NotContains(t, *last, "templates")
}

func TestProtocolFailureIsNotAnError(t *testing.T) {
	srv, _ := recordingServer(t, map[string]any{"success": false, "message": "wrong password"})
	c := New(srv.URL)

	resp, err := c.Download(context.Background(), "SCH001", "3A", "bad")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "wrong password", resp.Message)
}

func TestNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL)

	_, err := c.Download(context.Background(), "SCH001", "3A", "pw")
	assert.Error(t, err)
}

func TestUnreachableServer(t *testing.T) {
	c := New("http://127.0.0.1:1/api/sync")

	_, err := c.StudentAccess(context.Background(), "SCH001", "3A")
	assert.Error(t, err)
}

func TestContextCancellation(t *testing.T) {
	srv, _ := recordingServer(t, map[string]any{"success": true})
	c := New(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.StudentAccess(ctx, "SCH001", "3A")
	assert.Error(t, err)
}
