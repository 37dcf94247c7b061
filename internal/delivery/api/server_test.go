package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"portal/config"
	apimiddleware "portal/internal/delivery/api/middleware"
	"portal/internal/delivery/api/router"
	"portal/internal/delivery/api/router/handler"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/infra/auth"
	ucmocks "portal/internal/mocks/usecase"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo         *echo.Echo
	cfg          *config.Config
	registration *ucmocks.MockRegistrationUsecase
	session      *ucmocks.MockSessionUsecase
	profile      *ucmocks.MockProfileUsecase
	draft        *ucmocks.MockDraftUsecase
}

func newTestServer(t *testing.T, exposeDerive bool) *testServer {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Auth.AccessSecret = "test-secret"
	cfg.Verification.ExposeDerive = exposeDerive

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		cfg:          cfg,
		registration: ucmocks.NewMockRegistrationUsecase(t),
		session:      ucmocks.NewMockSessionUsecase(t),
		profile:      ucmocks.NewMockProfileUsecase(t),
		draft:        ucmocks.NewMockDraftUsecase(t),
	}
	ts.echo = newEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			RegistrationUC: ts.registration,
			SessionUC:      ts.session,
			Logger:         logger,
		}),
		ProfileHandler: handler.NewProfileHandler(ts.profile),
		DraftHandler:   handler.NewDraftHandler(ts.draft),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens),
		Config:         cfg,
	})

	return ts
}

func (ts *testServer) token(t *testing.T, identity entity.Identity, role entity.Role) string {
	t.Helper()

	tokens, err := auth.NewJWTService(ts.cfg)
	require.NoError(t, err)
	token, _, err := tokens.IssueRoleToken(identity, role)
	require.NoError(t, err)

	return token
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-health")
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-health", rec.Header().Get(deliverycontext.HeaderXRequestID))
	env := decode(t, rec)
	assert.Equal(t, "req-health", env.Meta.RequestID)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestRegisterTeacher_VerificationFailed(t *testing.T) {
	ts := newTestServer(t, false)
	ts.registration.EXPECT().
		RegisterTeacher(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterTeacherInput) bool {
			return in.Name == "John" && in.TeacherID == "000000" && in.VerificationCode == ""
		})).
		Return(nil, domainerrors.ErrVerificationFailed).
		Once()

	rec := ts.do(jsonRequest(http.MethodPost, "/auth/register/teacher", map[string]string{
		"name":            "John",
		"email":           "john@example.com",
		"teacherId":       "000000",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VERIFICATION_FAILED", env.Error.Code)
}

func TestRegisterStudent_Created(t *testing.T) {
	ts := newTestServer(t, false)
	record := entity.NewRoleRecord(entity.RoleStudent, "uid-1", "Alice Smith", "alice@example.com", "S-1")
	ts.registration.EXPECT().
		RegisterStudent(mock.Anything, mock.Anything).
		Return(&usecase.RegisterOutput{Record: record}, nil).
		Once()

	rec := ts.do(jsonRequest(http.MethodPost, "/auth/register/student", map[string]string{
		"name": "Alice Smith", "email": "alice@example.com", "studentId": "S-1",
		"password": "secret1", "confirmPassword": "secret1",
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body handler.RecordResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, "uid-1", body.Identity)
	assert.Equal(t, "student", body.Role)
	assert.Equal(t, "S-1", body.RoleSpecificID)
}

func TestLogin_PassesRoleFromPath(t *testing.T) {
	ts := newTestServer(t, false)
	expiresAt := time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC)
	ts.session.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Role: entity.RoleTeacher, Email: "john@example.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{
			AccessToken: "token-1",
			ExpiresAt:   expiresAt,
			Identity:    "uid-7",
			Role:        entity.RoleTeacher,
		}, nil).
		Once()

	rec := ts.do(jsonRequest(http.MethodPost, "/auth/login/teacher", map[string]string{
		"email": "john@example.com", "password": "secret1",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body handler.SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, "token-1", body.AccessToken)
	assert.Equal(t, "Bearer", body.TokenType)
	assert.Equal(t, "teacher", body.Role)
	assert.True(t, expiresAt.Equal(body.ExpiresAt))
}

func TestLogin_Denied(t *testing.T) {
	ts := newTestServer(t, false)
	ts.session.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrNotRegisteredForRole).
		Once()

	rec := ts.do(jsonRequest(http.MethodPost, "/auth/login/student", map[string]string{
		"email": "john@example.com", "password": "secret1",
	}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "NOT_REGISTERED_FOR_ROLE", decode(t, rec).Error.Code)
}

func TestExchange_RequiresIDToken(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(jsonRequest(http.MethodPost, "/auth/exchange/student", map[string]string{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec).Error.Code)
}

func TestVerificationCode(t *testing.T) {
	t.Run("exposed", func(t *testing.T) {
		ts := newTestServer(t, true)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/verification/code?name=JOHN", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"name":"JOHN","code":"153416"}`, string(decode(t, rec).Data))
	})

	t.Run("rejects overlong names", func(t *testing.T) {
		ts := newTestServer(t, true)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/verification/code?name="+strings.Repeat("Z", 300), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})

	t.Run("hidden by default", func(t *testing.T) {
		ts := newTestServer(t, false)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/verification/code?name=JOHN", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProfile_RequiresToken(t *testing.T) {
	ts := newTestServer(t, false)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/student/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decode(t, rec).Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/student/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec = ts.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_RoleScoped(t *testing.T) {
	ts := newTestServer(t, false)
	studentToken := ts.token(t, "uid-1", entity.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teacher/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+studentToken)
	rec := ts.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	record := entity.NewRoleRecord(entity.RoleStudent, "uid-1", "Alice Smith", "alice@example.com", "S-1")
	ts.profile.EXPECT().
		GetProfile(mock.Anything, entity.RoleStudent, entity.Identity("uid-1")).
		Return(&usecase.ProfileOutput{Record: record, Complete: true}, nil).
		Once()

	req = httptest.NewRequest(http.MethodGet, "/api/v1/student/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+studentToken)
	rec = ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body handler.ProfileResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.True(t, body.Complete)
	assert.Equal(t, "Alice Smith", body.Record.Name)
}

func TestStudentCard(t *testing.T) {
	ts := newTestServer(t, false)
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	ts.profile.EXPECT().StudentCard(mock.Anything, entity.Identity("uid-1")).Return(png, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/student/me/card", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+ts.token(t, "uid-1", entity.RoleStudent))
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestDraft_NextIncomplete(t *testing.T) {
	ts := newTestServer(t, false)
	ts.draft.EXPECT().
		Next(mock.Anything, entity.Identity("uid-1"), "d-1").
		Return(&usecase.DraftView{ID: "d-1", Step: 1}, domainerrors.NewStepIncompleteError(1, []string{"firstName", "lastName"})).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/drafts/d-1/next", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+ts.token(t, "uid-1", entity.RoleStudent))
	rec := ts.do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "STEP_INCOMPLETE", env.Error.Code)
	assert.Equal(t, "firstName,lastName", env.Error.Details)
}

func TestDraft_SetFieldAndDiscard(t *testing.T) {
	ts := newTestServer(t, false)
	token := ts.token(t, "uid-1", entity.RoleStudent)

	view := &usecase.DraftView{ID: "d-1", Step: 1, Status: "editing"}
	view.Draft.FirstName = "Alice"
	ts.draft.EXPECT().
		SetField(mock.Anything, entity.Identity("uid-1"), "d-1", "firstName", "Alice").
		Return(view, nil).
		Once()
	ts.draft.EXPECT().Discard(mock.Anything, entity.Identity("uid-1"), "d-1").Return(nil).Once()

	req := jsonRequest(http.MethodPatch, "/api/v1/student/drafts/d-1/fields", map[string]string{"name": "firstName", "value": "Alice"})
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body handler.DraftResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
	assert.Equal(t, "Alice", body.Fields.FirstName)
	assert.Equal(t, "editing", body.Status)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/student/drafts/d-1", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = ts.do(req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDraft_SelectAsset(t *testing.T) {
	ts := newTestServer(t, false)
	content := []byte("fake-png")
	ts.draft.EXPECT().
		SelectAsset(mock.Anything, entity.Identity("uid-1"), "d-1", mock.MatchedBy(func(a entity.Asset) bool {
			return a.Filename == "me.png" && a.ContentType == "image/png" && bytes.Equal(a.Data, content)
		})).
		Return(&usecase.DraftView{ID: "d-1", Step: 4, AssetName: "me.png"}, nil).
		Once()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="me.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/v1/student/drafts/d-1/asset", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+ts.token(t, "uid-1", entity.RoleStudent))
	rec := ts.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"assetName":"me.png"`))
}

func TestDraft_TeacherTokenRefused(t *testing.T) {
	ts := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/student/drafts", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+ts.token(t, "uid-7", entity.RoleTeacher))
	rec := ts.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
}
