package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appconfig "github.com/seyirtepe/seyirtepe-backend/config"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/controller"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/model"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/repository"
	"github.com/seyirtepe/seyirtepe-backend/internal/app/service"
	"github.com/seyirtepe/seyirtepe-backend/internal/db"
	"github.com/seyirtepe/seyirtepe-backend/internal/middleware"
	"github.com/seyirtepe/seyirtepe-backend/internal/router"
	"github.com/seyirtepe/seyirtepe-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testSecret        = "integration-test-secret"
	testAdminEmail    = "admin@seyirtepe.com"
	testAdminPassword = "integration-password"
)

type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	cfg := &appconfig.Config{
		Server: appconfig.ServerConfig{GinMode: gin.TestMode},
		JWT: appconfig.JWTConfig{
			Secret:            testSecret,
			AccessTokenExpiry: 30 * time.Minute,
		},
		Admin: appconfig.AdminConfig{
			Email:    testAdminEmail,
			Password: testAdminPassword,
		},
		CORS:   appconfig.CORSConfig{AllowedOrigins: []string{"*"}},
		Upload: appconfig.UploadConfig{Dir: t.TempDir(), MaxSize: 1024},
	}

	categoryRepo := repository.NewCategoryRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	reservationRepo := repository.NewReservationRepository(testDB)
	galleryRepo := repository.NewGalleryRepository(testDB)
	settingsRepo := repository.NewSiteSettingsRepository(testDB)

	localStore := storage.NewLocalStorage(cfg.Upload.Dir, "/uploads")
	mediaService := service.NewMediaService(nil, localStore, cfg.Upload.MaxSize)

	authService := service.NewAuthService(cfg.Admin, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	orderService := service.NewOrderService(orderRepo)
	reservationService := service.NewReservationService(reservationRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	settingsService := service.NewSiteSettingsService(settingsRepo, mediaService)
	reportService := service.NewReportService(orderRepo, reservationRepo)

	r := router.NewRouter(
		controller.NewAuthController(authService),
		controller.NewCategoryController(categoryService),
		controller.NewProductController(productService, mediaService),
		controller.NewOrderController(orderService, reportService),
		controller.NewReservationController(reservationService, reportService),
		controller.NewGalleryController(galleryService, mediaService),
		controller.NewSiteSettingsController(settingsService),
		middleware.NewAuthMiddleware(cfg.JWT.Secret),
		cfg,
	)

	return &TestServer{
		Router: r.Setup(),
		DB:     testDB,
	}
}

func (s *TestServer) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *TestServer) login(t *testing.T) string {
	t.Helper()

	w := s.request(t, "POST", "/api/v1/auth/login", gin.H{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int64(1800), resp.ExpiresIn)
	return resp.AccessToken
}

func TestLoginFlow(t *testing.T) {
	s := setupIntegrationTest(t)

	s.login(t)

	w := s.request(t, "POST", "/api/v1/auth/login", gin.H{
		"email":    testAdminEmail,
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_INVALID_CREDENTIALS")
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	s := setupIntegrationTest(t)
	token := s.login(t)

	// anyone may place an order
	w := s.request(t, "POST", "/api/v1/orders", gin.H{
		"customer_name":  "Fatma Kaya",
		"customer_phone": "+90-555-111-2233",
		"items": []gin.H{
			{"product_id": 1, "product_name": "Iskender", "quantity": 1, "price": 220.0},
		},
		"total_amount": 220.0,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, model.OrderStatusPending, created.Status)

	// listing orders requires the admin token
	w = s.request(t, "GET", "/api/v1/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(t, "GET", "/api/v1/orders", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// invalid status leaves the order untouched
	w = s.request(t, "PATCH", orderPath(created.ID), gin.H{"status": "shipped"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ORDER_INVALID_STATUS")

	w = s.request(t, "GET", orderPath(created.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, model.OrderStatusPending, fetched.Status)

	// valid transition
	w = s.request(t, "PATCH", orderPath(created.ID), gin.H{"status": "confirmed"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, model.OrderStatusConfirmed, fetched.Status)

	// delete
	w = s.request(t, "DELETE", orderPath(created.ID), nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.request(t, "GET", orderPath(created.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReservationLifecycleOverHTTP(t *testing.T) {
	s := setupIntegrationTest(t)
	token := s.login(t)

	w := s.request(t, "POST", "/api/v1/reservations", gin.H{
		"customer_name":  "Ali Vural",
		"customer_phone": "+90-555-999-8877",
		"date":           time.Now().AddDate(0, 0, 2).Format(time.RFC3339),
		"guests":         6,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, model.ReservationStatusPending, created.Status)

	// reservation reads are admin-only
	w = s.request(t, "GET", "/api/v1/reservations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(t, "PATCH", reservationPath(created.ID), gin.H{"status": "preparing"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RESERVATION_INVALID_STATUS")

	w = s.request(t, "PATCH", reservationPath(created.ID), gin.H{"status": "confirmed"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, model.ReservationStatusConfirmed, updated.Status)
}

func TestCatalogAdminGate(t *testing.T) {
	s := setupIntegrationTest(t)
	token := s.login(t)

	// category writes without a token are rejected
	w := s.request(t, "POST", "/api/v1/categories", gin.H{"name": "Kebaplar"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(t, "POST", "/api/v1/categories", gin.H{"name": "Kebaplar"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var category model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))

	w = s.request(t, "POST", "/api/v1/products", gin.H{
		"name":        "Adana Kebap",
		"price":       180.0,
		"category_id": category.ID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	// public reads work without a token
	w = s.request(t, "GET", "/api/v1/categories/with-products", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Adana Kebap")
}

func TestSiteSettingsLogoOverHTTP(t *testing.T) {
	s := setupIntegrationTest(t)
	token := s.login(t)

	// singleton row exists from the first read
	w := s.request(t, "GET", "/api/v1/site-settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var settings model.SiteSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Equal(t, model.SiteSettingsID, settings.ID)
	assert.Nil(t, settings.LogoURL)

	// upload a logo
	w = s.uploadFile(t, "/api/v1/site-settings/logo", "logo.png", "image/png", []byte("png bytes"), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"storage":"local"`)

	// the logo URL is now visible publicly
	w = s.request(t, "GET", "/api/v1/site-settings", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	require.NotNil(t, settings.LogoURL)
	assert.Contains(t, *settings.LogoURL, "/uploads/site/logo.png")

	// clear it
	w = s.request(t, "DELETE", "/api/v1/site-settings/logo", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.Nil(t, settings.LogoURL)
}

func TestUploadValidationOverHTTP(t *testing.T) {
	s := setupIntegrationTest(t)
	token := s.login(t)

	// non-image is rejected
	w := s.uploadFile(t, "/api/v1/gallery/upload-image", "notes.txt", "text/plain", []byte("hello"), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UPLOAD_INVALID_FILE_TYPE")

	// oversized payload is rejected with 413 (limit is 1024 in tests)
	big := bytes.Repeat([]byte("a"), 2048)
	w = s.uploadFile(t, "/api/v1/gallery/upload-image", "big.png", "image/png", big, token)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "UPLOAD_FILE_TOO_LARGE")

	// valid image succeeds
	w = s.uploadFile(t, "/api/v1/gallery/upload-image", "terrace.png", "image/png", []byte("png"), token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"storage":"local"`)
}

func (s *TestServer) uploadFile(t *testing.T, path, filename, contentType string, content []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func orderPath(id uint) string {
	return "/api/v1/orders/" + itoa(id)
}

func reservationPath(id uint) string {
	return "/api/v1/reservations/" + itoa(id)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
