package inventory_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-manager/core/storage/mocks"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *inventory.Service, *mocks.Client) {
	t.Helper()
	svc, client := setupService(t)
	app := fiber.New()
	feature := inventory.NewFeature(svc)
	require.Equal(t, "inventory", feature.Name())
	require.NoError(t, feature.Load(app))
	return app, svc, client
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHandleStatus(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doJSON(t, app, "GET", "/", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "inventory server is running", decode[map[string]string](t, resp)["message"])
}

func TestHandleCRUD(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doJSON(t, app, "POST", "/inventory", map[string]any{
		"id":                 12,
		"item_number":        "1001",
		"title":              "Linen Shirt",
		"available_quantity": 3,
		"currency":           "$",
		"start_price":        19.9,
	})
	require.Equal(t, 201, resp.StatusCode)
	created := decode[models.Item](t, resp)
	assert.Equal(t, int64(12), created.ID)

	resp = doJSON(t, app, "GET", "/inventory/12", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Linen Shirt", decode[models.Item](t, resp).Title)

	resp = doJSON(t, app, "PUT", "/inventory/12", map[string]any{
		"item_number":        "1001",
		"title":              "Linen Shirt XL",
		"available_quantity": 1,
		"currency":           "$",
		"start_price":        21,
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Linen Shirt XL", decode[models.Item](t, resp).Title)

	resp = doJSON(t, app, "DELETE", "/inventory/12", nil)
	assert.Equal(t, 204, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/inventory/12", nil)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "item not found", decode[map[string]string](t, resp)["error"])
}

func TestHandleCreate_Validation(t *testing.T) {
	app, _, _ := setupApp(t)

	tests := []struct {
		name string
		body any
	}{
		{"MissingTitle", map[string]any{"item_number": "1", "currency": "$", "available_quantity": 1, "start_price": 1}},
		{"NegativeQuantity", map[string]any{"item_number": "1", "title": "T", "currency": "$", "available_quantity": -2, "start_price": 1}},
		{"NegativePrice", map[string]any{"item_number": "1", "title": "T", "currency": "$", "available_quantity": 1, "start_price": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, "POST", "/inventory", tt.body)
			assert.Equal(t, 400, resp.StatusCode)
			assert.NotEmpty(t, decode[map[string]string](t, resp)["error"])
		})
	}

	req := httptest.NewRequest("POST", "/inventory", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleInvalidID(t *testing.T) {
	app, _, _ := setupApp(t)

	for _, path := range []string{"/inventory/abc", "/inventory/0", "/inventory/-3"} {
		resp := doJSON(t, app, "GET", path, nil)
		assert.Equal(t, 400, resp.StatusCode, path)
	}
}

func TestHandleList(t *testing.T) {
	app, svc, _ := setupApp(t)
	ctx := t.Context()

	for _, v := range []string{"Size=S", "Size=M"} {
		in := validInput("2001")
		in.VariationDetails = v
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, validInput("2002"))
	require.NoError(t, err)

	resp := doJSON(t, app, "GET", "/inventory?page=1", nil)
	require.Equal(t, 200, resp.StatusCode)
	page := decode[models.Page[models.Item]](t, resp)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 50, page.PerPage)
	assert.Equal(t, "2002", page.Items[0].ItemNumber)

	resp = doJSON(t, app, "GET", "/inventory?group=1", nil)
	require.Equal(t, 200, resp.StatusCode)
	grouped := decode[models.Page[models.GroupedItem]](t, resp)
	assert.Equal(t, int64(2), grouped.Total)
	require.Len(t, grouped.Items, 2)
	assert.Equal(t, 2, grouped.Items[1].VariantCount)

	resp = doJSON(t, app, "GET", "/inventory?search=Size%3DM", nil)
	require.Equal(t, 200, resp.StatusCode)
	found := decode[models.Page[models.Item]](t, resp)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Size=M", found.Items[0].VariationDetails)
}

func multipartUpload(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleImages(t *testing.T) {
	app, svc, client := setupApp(t)
	ctx := t.Context()

	item, err := svc.Create(ctx, validInput("3001"))
	require.NoError(t, err)

	client.On("PutObject", mock.Anything, "inventory", mock.Anything, mock.Anything, int64(4), mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(multipartUpload(t, "/inventory/1/image", "cat.png", []byte("meow")))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	uploaded := decode[models.Item](t, resp)
	assert.Equal(t, item.ID, uploaded.ID)
	assert.NotEmpty(t, uploaded.ImagePath)

	client.On("GetObject", mock.Anything, "inventory", uploaded.ImagePath, mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("meow"))), nil)

	resp, err = app.Test(httptest.NewRequest("GET", "/inventory/1/image", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "meow", string(body))

	resp = doJSON(t, app, "GET", "/images", nil)
	require.Equal(t, 200, resp.StatusCode)
	refs := decode[[]models.ImageRef](t, resp)
	require.Len(t, refs, 1)
	assert.Equal(t, "3001", refs[0].ItemNumber)

	resp, err = app.Test(multipartUpload(t, "/inventory/1/image", "cat.bmp", []byte("meow")))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/inventory/1/image", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleGetImage_NoImage(t *testing.T) {
	app, svc, _ := setupApp(t)

	_, err := svc.Create(t.Context(), validInput("4001"))
	require.NoError(t, err)

	resp := doJSON(t, app, "GET", "/inventory/1/image", nil)
	assert.Equal(t, 404, resp.StatusCode)
}
