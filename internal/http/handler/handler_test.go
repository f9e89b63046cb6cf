package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"sigtransportes/internal/http/middleware"
	"sigtransportes/internal/http/view"
	"sigtransportes/internal/model"
	"sigtransportes/internal/service"
	serviceMocks "sigtransportes/internal/service/mocks"
	"sigtransportes/internal/session"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		Views:        view.NewEngine(),
		ErrorHandler: ErrorHandler(),
	})
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// authedApp wires the session guard with a live admin session and returns
// the cookie to use in requests. Routes registered afterwards are guarded;
// /whoami echoes the session owner for assertions.
func authedApp(t *testing.T, app *fiber.App) (*session.Store, *http.Cookie) {
	t.Helper()
	store := session.NewStore()
	app.Post("/entrar", func(c *fiber.Ctx) error {
		return store.Create(c, "admin", "Admin")
	})
	app.Use(middleware.RequireSession(store))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		sess, _ := middleware.SessionFromCtx(c)
		return c.SendString(sess.Username)
	})

	req := httptest.NewRequest(http.MethodPost, "/entrar", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == session.CookieName {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	return store, cookie
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := newTestApp()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	t.Run("success sets cookie and redirects", func(t *testing.T) {
		mockAuth := new(serviceMocks.MockAuthService)
		mockAuth.On("Login", mock.Anything, "admin", "admin123").Return("Admin", nil)

		store := session.NewStore()
		app := newTestApp()
		app.Post("/login", Login(mockAuth, store))
		app.Use(middleware.RequireSession(store))
		app.Get("/whoami", func(c *fiber.Ctx) error {
			sess, _ := middleware.SessionFromCtx(c)
			return c.SendString(sess.Username + ":" + sess.Role)
		})

		form := "username=admin&password=admin123"
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

		var sessCookie *http.Cookie
		for _, ck := range resp.Cookies() {
			if ck.Name == session.CookieName {
				sessCookie = ck
			}
		}
		require.NotNil(t, sessCookie)

		// The cookie authenticates follow-up requests with the stored role.
		req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(sessCookie)
		resp, _ = app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "admin:Admin", bodyOf(t, resp))
		mockAuth.AssertExpectations(t)
	})

	t.Run("bad credentials re-render the form with a generic error", func(t *testing.T) {
		mockAuth := new(serviceMocks.MockAuthService)
		mockAuth.On("Login", mock.Anything, "admin", "nope").
			Return("", service.ErrInvalidCredentials)

		app := newTestApp()
		app.Post("/login", Login(mockAuth, session.NewStore()))

		form := "username=admin&password=nope"
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), "Usuario o contraseña incorrectos")
	})
}

func TestLogoutClearsSession(t *testing.T) {
	app := newTestApp()
	store, cookie := authedApp(t, app)
	app.Get("/logout", Logout(store))

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// Session state is gone: the old cookie no longer authenticates.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	resp, _ = app.Test(req)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestDashboard(t *testing.T) {
	t.Run("renders charts for cataloged documents", func(t *testing.T) {
		mockDash := new(serviceMocks.MockDashboardService)
		mockDash.On("Stats", mock.Anything).Return(&service.DashboardStats{
			Total: 3,
			ByArea: []service.AreaCount{
				{Area: model.AreaCalidad, Count: 2},
				{Area: model.AreaSeguridad, Count: 1},
			},
			ByDate: []service.DateCount{{Date: "2026-08-31", Count: 3}},
		}, nil)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Get("/", Dashboard(mockDash))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := bodyOf(t, resp)
		assert.Contains(t, body, "chart-area")
		assert.Contains(t, body, "chart-fecha")
		mockDash.AssertExpectations(t)
	})

	t.Run("empty catalog renders the placeholder", func(t *testing.T) {
		mockDash := new(serviceMocks.MockDashboardService)
		mockDash.On("Stats", mock.Anything).Return(&service.DashboardStats{Total: 0}, nil)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Get("/", Dashboard(mockDash))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := bodyOf(t, resp)
		assert.Contains(t, body, "No hay documentos cargados aún")
		assert.NotContains(t, body, "chart-area")
	})

	t.Run("unauthenticated request is redirected", func(t *testing.T) {
		mockDash := new(serviceMocks.MockDashboardService)

		app := newTestApp()
		authedApp(t, app)
		app.Get("/", Dashboard(mockDash))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		mockDash.AssertNotCalled(t, "Stats", mock.Anything)
	})
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreateDocument(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		mockDocs := new(serviceMocks.MockDocumentService)
		mockDocs.On("Add", mock.Anything, "Manual", model.AreaCalidad, "PDF", mock.Anything, "manual.pdf", mock.Anything).
			Return(&model.Document{ID: 1, Title: "Manual"}, nil)
		mockDocs.On("List", mock.Anything).Return([]model.Document{
			{ID: 1, Title: "Manual", Area: model.AreaCalidad, CreatedAt: "2026-09-01", Type: "PDF", FileRef: "documentos/manual.pdf"},
		}, nil)
		mockDocs.On("FileURL", mock.Anything, "documentos/manual.pdf").Return("https://blob/manual.pdf", nil)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Post("/documentos", CreateDocument(mockDocs))

		buf, ct := multipartBody(t, map[string]string{
			"titulo": "Manual", "area": model.AreaCalidad, "tipo": "PDF",
		}, "archivo", "manual.pdf", "contenido pdf")
		req := httptest.NewRequest(http.MethodPost, "/documentos", buf)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), "Documento agregado")
		mockDocs.AssertExpectations(t)
	})

	t.Run("file without title does not create a row", func(t *testing.T) {
		mockDocs := new(serviceMocks.MockDocumentService)
		mockDocs.On("List", mock.Anything).Return([]model.Document{}, nil)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Post("/documentos", CreateDocument(mockDocs))

		buf, ct := multipartBody(t, map[string]string{
			"area": model.AreaCalidad, "tipo": "PDF",
		}, "archivo", "manual.pdf", "contenido pdf")
		req := httptest.NewRequest(http.MethodPost, "/documentos", buf)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), "Debe subir un archivo y poner título")
		mockDocs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("title without file does not create a row", func(t *testing.T) {
		mockDocs := new(serviceMocks.MockDocumentService)
		mockDocs.On("List", mock.Anything).Return([]model.Document{}, nil)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Post("/documentos", CreateDocument(mockDocs))

		buf, ct := multipartBody(t, map[string]string{
			"titulo": "Manual", "area": model.AreaCalidad, "tipo": "PDF",
		}, "", "", "")
		req := httptest.NewRequest(http.MethodPost, "/documentos", buf)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockDocs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDocumentsPage(t *testing.T) {
	mockDocs := new(serviceMocks.MockDocumentService)
	mockDocs.On("List", mock.Anything).Return([]model.Document{
		{ID: 1, Title: "Manual", Area: model.AreaCalidad, CreatedAt: "2026-09-01", Type: "PDF", FileRef: "documentos/manual.pdf"},
		{ID: 2, Title: "Informe", Area: model.AreaSeguridad, CreatedAt: "2026-09-01", Type: "Word", FileRef: "documentos/informe.docx"},
	}, nil)
	mockDocs.On("FileURL", mock.Anything, mock.Anything).Return("https://blob/x", nil)

	app := newTestApp()
	_, cookie := authedApp(t, app)
	app.Get("/documentos", DocumentsPage(mockDocs))

	req := httptest.NewRequest(http.MethodGet, "/documentos", nil)
	req.AddCookie(cookie)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := bodyOf(t, resp)
	assert.Contains(t, body, "Manual")
	assert.Contains(t, body, "Informe")
	assert.Contains(t, body, "Agregar Documento")
}

func TestCreateRecord(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		mockRecs := new(serviceMocks.MockRecordService)
		mockRecs.On("Add", mock.Anything, "Acta", model.AreaCalidad, "contenido").
			Return(&model.Record{ID: 1, Title: "Acta"}, nil)
		mockRecs.On("List", mock.Anything).Return([]model.Record{
			{ID: 1, Title: "Acta", Area: model.AreaCalidad, CreatedAt: "2026-09-01", Content: "contenido"},
		}, nil)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Post("/registros", CreateRecord(mockRecs))

		form := "titulo=Acta&area=Calidad&contenido=contenido"
		req := httptest.NewRequest(http.MethodPost, "/registros", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), "Registro agregado")
		mockRecs.AssertExpectations(t)
	})

	t.Run("missing content is a validation error", func(t *testing.T) {
		mockRecs := new(serviceMocks.MockRecordService)
		mockRecs.On("List", mock.Anything).Return([]model.Record{}, nil)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Post("/registros", CreateRecord(mockRecs))

		form := "titulo=Acta&area=Calidad"
		req := httptest.NewRequest(http.MethodPost, "/registros", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), "Debe ingresar título y contenido")
		mockRecs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSendNotification(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockNotif := new(serviceMocks.MockNotificationService)
		mockNotif.On("Send", mock.Anything, "a@empresa.cl", "b@empresa.cl", "Alerta", "mensaje").
			Return(nil)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Post("/alertas", SendNotification(mockNotif))

		form := "remitente=a@empresa.cl&destinatario=b@empresa.cl&asunto=Alerta&mensaje=mensaje"
		req := httptest.NewRequest(http.MethodPost, "/alertas", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), "Correo enviado")
		mockNotif.AssertExpectations(t)
	})

	t.Run("missing field is a validation error", func(t *testing.T) {
		mockNotif := new(serviceMocks.MockNotificationService)
		mockNotif.On("Send", mock.Anything, "a@empresa.cl", "", "Alerta", "mensaje").
			Return(service.ErrMissingFields)

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Post("/alertas", SendNotification(mockNotif))

		form := "remitente=a@empresa.cl&asunto=Alerta&mensaje=mensaje"
		req := httptest.NewRequest(http.MethodPost, "/alertas", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), "Complete todos los campos")
	})

	t.Run("transport failure surfaces without crashing the session", func(t *testing.T) {
		mockNotif := new(serviceMocks.MockNotificationService)
		mockNotif.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("dial tcp: connection refused"))

		app := newTestApp()
		_, cookie := authedApp(t, app)
		app.Post("/alertas", SendNotification(mockNotif))

		form := "remitente=a@empresa.cl&destinatario=b@empresa.cl&asunto=Alerta&mensaje=mensaje"
		req := httptest.NewRequest(http.MethodPost, "/alertas", bytes.NewBufferString(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(cookie)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Contains(t, bodyOf(t, resp), "No se pudo enviar correo")

		// The session survives the failed send.
		req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(cookie)
		resp, _ = app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
