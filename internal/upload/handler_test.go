package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	dir := t.TempDir()
	app := fiber.New(fiber.Config{BodyLimit: MaxFileSize + 1024*1024})
	app.Post("/api/upload", FileHandler(dir, zerolog.Nop()))
	return app, dir
}

func multipartRequest(t *testing.T, fieldName, fileName string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadFile(t *testing.T) {
	app, dir := setupApp(t)

	resp, err := app.Test(multipartRequest(t, "file", "kaffe.png", []byte("fake png bytes")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success  bool   `json:"success"`
		FilePath string `json:"filePath"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.True(t, strings.HasPrefix(body.FilePath, "/uploads/"))
	assert.True(t, strings.HasSuffix(body.FilePath, ".png"))

	// The file landed in the upload dir under the returned name
	saved := filepath.Join(dir, strings.TrimPrefix(body.FilePath, "/uploads/"))
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), data)
}

func TestUploadUniqueNames(t *testing.T) {
	app, _ := setupApp(t)

	paths := make(map[string]bool)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(multipartRequest(t, "file", "same-name.jpg", []byte("x")))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			FilePath string `json:"filePath"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		paths[body.FilePath] = true
	}

	assert.Len(t, paths, 3)
}

func TestUploadMissingFile(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(multipartRequest(t, "other-field", "kaffe.png", []byte("x")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectedTypes(t *testing.T) {
	app, _ := setupApp(t)

	for _, name := range []string{"script.sh", "note.txt", "noext"} {
		resp, err := app.Test(multipartRequest(t, "file", name, []byte("x")))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "file %s should be rejected", name)
	}
}

func TestUploadTooLarge(t *testing.T) {
	app, _ := setupApp(t)

	big := make([]byte, MaxFileSize+1)
	resp, err := app.Test(multipartRequest(t, "file", "huge.png", big))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
