package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/clc-api/internal/dto"
	"github.com/noah-isme/clc-api/internal/middleware"
	"github.com/noah-isme/clc-api/internal/models"
	"github.com/noah-isme/clc-api/internal/service"
	appErrors "github.com/noah-isme/clc-api/pkg/errors"
	"github.com/noah-isme/clc-api/pkg/response"
)

type applicationStoreMock struct {
	app        *models.Application
	created    *models.Application
	createErr  error
	detail     *models.ApplicationDetail
	confirmed  *models.Application
	confirmErr error
}

func (m *applicationStoreMock) Create(ctx context.Context, app *models.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = app
	return nil
}

func (m *applicationStoreMock) FindByStudent(ctx context.Context, studentID string) (*models.Application, error) {
	if m.app == nil {
		return nil, sql.ErrNoRows
	}
	return m.app, nil
}

func (m *applicationStoreMock) FindDetailByStudent(ctx context.Context, studentID string) (*models.ApplicationDetail, error) {
	if m.detail == nil {
		return nil, sql.ErrNoRows
	}
	return m.detail, nil
}

func (m *applicationStoreMock) ConfirmPayment(ctx context.Context, studentID, paymentID string, amount float64, mode string, paidAt time.Time) (*models.Application, error) {
	if m.confirmErr != nil {
		return nil, m.confirmErr
	}
	return m.confirmed, nil
}

type uploaderMock struct {
	url string
	err error
}

func (m *uploaderMock) Accept(ctx context.Context, filename string, size int64, body io.Reader) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.url, nil
}

func (m *uploaderMock) ResolveURL(ref string) (string, error) {
	return ref, nil
}

func newTestApplicationHandler(store *applicationStoreMock, uploads *uploaderMock) *ApplicationHandler {
	svc := service.NewApplicationService(store, uploads, validator.New(), zap.NewNop(), nil, service.PaymentPolicy{DefaultMode: "Online"})
	return NewApplicationHandler(svc)
}

func submitForm(t *testing.T, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fields := map[string]string{
		"village":       "Banmankhi",
		"postOffice":    "Banmankhi Bazar",
		"policeStation": "Banmankhi",
		"district":      "Purnea",
		"state":         "Bihar",
		"pinCode":       "854202",
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if withFile {
		part, err := writer.CreateFormFile("marksheet", "marksheet.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("imagedata"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func authedContext(w *httptest.ResponseRecorder) (*gin.Context, func(req *http.Request)) {
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextStudentKey, &models.SessionClaims{StudentID: "stu-1", ReferenceID: "REF001"})
	return c, func(req *http.Request) { c.Request = req }
}

func TestApplicationHandlerSubmitCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &applicationStoreMock{}
	handler := newTestApplicationHandler(store, &uploaderMock{url: "https://files.example.com/abc.jpg"})

	body, contentType := submitForm(t, true)
	w := httptest.NewRecorder()
	c, setReq := authedContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/applications/submit", body)
	req.Header.Set("Content-Type", contentType)
	setReq(req)

	handler.Submit(c)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, "stu-1", store.created.StudentID)
	assert.Equal(t, "https://files.example.com/abc.jpg", store.created.MarksheetURL)
}

func TestApplicationHandlerSubmitMissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestApplicationHandler(&applicationStoreMock{}, &uploaderMock{})

	body, contentType := submitForm(t, false)
	w := httptest.NewRecorder()
	c, setReq := authedContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/applications/submit", body)
	req.Header.Set("Content-Type", contentType)
	setReq(req)

	handler.Submit(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplicationHandlerSubmitAlreadySubmitted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &applicationStoreMock{app: &models.Application{ID: "app-1", StudentID: "stu-1"}}
	handler := newTestApplicationHandler(store, &uploaderMock{url: "https://files.example.com/abc.jpg"})

	body, contentType := submitForm(t, true)
	w := httptest.NewRecorder()
	c, setReq := authedContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/applications/submit", body)
	req.Header.Set("Content-Type", contentType)
	setReq(req)

	handler.Submit(c)
	require.Equal(t, http.StatusConflict, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrAlreadySubmitted.Code, envelope.Error.Code)
}

func TestApplicationHandlerSubmitUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestApplicationHandler(&applicationStoreMock{}, &uploaderMock{})

	body, contentType := submitForm(t, true)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/applications/submit", body)
	req.Header.Set("Content-Type", contentType)
	c.Request = req

	handler.Submit(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApplicationHandlerConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	paymentID := "pay_123"
	amount := 2.00
	mode := "Online"
	paidAt := time.Now().UTC()
	store := &applicationStoreMock{confirmed: &models.Application{
		ID: "app-1", StudentID: "stu-1",
		PaymentID: &paymentID, PaymentAmount: &amount, PaymentMode: &mode, PaymentDate: &paidAt,
	}}
	handler := newTestApplicationHandler(store, &uploaderMock{})

	payload, _ := json.Marshal(dto.ConfirmPaymentRequest{PaymentID: "pay_123", PaymentAmount: 2.00})
	w := httptest.NewRecorder()
	c, setReq := authedContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/applications/confirm-payment", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	setReq(req)

	handler.ConfirmPayment(c)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestApplicationHandlerConfirmPaymentAlreadyPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	paymentID := "pay_old"
	store := &applicationStoreMock{
		confirmErr: sql.ErrNoRows,
		app:        &models.Application{ID: "app-1", StudentID: "stu-1", PaymentID: &paymentID},
	}
	handler := newTestApplicationHandler(store, &uploaderMock{})

	payload, _ := json.Marshal(dto.ConfirmPaymentRequest{PaymentID: "pay_new", PaymentAmount: 2.00})
	w := httptest.NewRecorder()
	c, setReq := authedContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/applications/confirm-payment", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	setReq(req)

	handler.ConfirmPayment(c)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestApplicationHandlerMyApplicationPaymentRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &applicationStoreMock{detail: &models.ApplicationDetail{
		Application: models.Application{ID: "app-1", StudentID: "stu-1"},
	}}
	handler := newTestApplicationHandler(store, &uploaderMock{})

	w := httptest.NewRecorder()
	c, setReq := authedContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/applications/my-application", nil)
	setReq(req)

	handler.MyApplication(c)
	require.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestApplicationHandlerMyApplicationPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)
	paymentID := "pay_123"
	store := &applicationStoreMock{detail: &models.ApplicationDetail{
		Application: models.Application{ID: "app-1", StudentID: "stu-1", PaymentID: &paymentID},
		Student:     models.Student{ID: "stu-1", StudentName: "RAHUL KUMAR"},
	}}
	handler := newTestApplicationHandler(store, &uploaderMock{})

	w := httptest.NewRecorder()
	c, setReq := authedContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/applications/my-application", nil)
	setReq(req)

	handler.MyApplication(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	student, ok := data["student"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RAHUL KUMAR", student["studentName"])
}
