package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docshare/internal/config"
	"docshare/internal/model"
	"docshare/internal/service"
	serviceMocks "docshare/internal/service/mocks"
	"docshare/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSessionCfg = config.SessionConfig{CookieName: "session_token", TTLSec: 3600}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegister(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	app := fiber.New()
	app.Post("/api/register", Register(mockSvc))

	t.Run("created", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, "alice", "s3cret").
			Return(&model.User{ID: "u1", Username: "alice"}, nil).Once()

		req := jsonRequest(t, http.MethodPost, "/api/register", map[string]string{
			"username": "alice", "password": "s3cret",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, "alice", "s3cret").
			Return(nil, service.ErrUsernameTaken).Once()

		req := jsonRequest(t, http.MethodPost, "/api/register", map[string]string{
			"username": "alice", "password": "s3cret",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "CONFLICT", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing fields", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, "", "").
			Return(nil, service.ErrCredentialsRequired).Once()

		req := jsonRequest(t, http.MethodPost, "/api/register", map[string]string{})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, "alice", "s3cret").
			Return(nil, errors.New("db down")).Once()

		req := jsonRequest(t, http.MethodPost, "/api/register", map[string]string{
			"username": "alice", "password": "s3cret",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	mockSvc := new(serviceMocks.MockAuthService)
	sessions := session.NewMemory(time.Hour)
	app := fiber.New()
	app.Post("/api/login", Login(mockSvc, sessions, testSessionCfg))

	t.Run("success sets session cookie", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "alice", "s3cret").
			Return(&model.User{ID: "u1", Username: "alice"}, nil).Once()

		req := jsonRequest(t, http.MethodPost, "/api/login", map[string]string{
			"username": "alice", "password": "s3cret",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "alice", body["username"])

		var cookie *http.Cookie
		for _, ck := range resp.Cookies() {
			if ck.Name == testSessionCfg.CookieName {
				cookie = ck
			}
		}
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)

		s, err := sessions.Get(context.Background(), cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, "alice", s.Username)
		mockSvc.AssertExpectations(t)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "alice", "wrong").
			Return(nil, service.ErrInvalidCredentials).Once()

		req := jsonRequest(t, http.MethodPost, "/api/login", map[string]string{
			"username": "alice", "password": "wrong",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, service.ErrInvalidCredentials.Error(), res.Error.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown user gets the same message", func(t *testing.T) {
		mockSvc.On("Login", mock.Anything, "nobody", "s3cret").
			Return(nil, service.ErrInvalidCredentials).Once()

		req := jsonRequest(t, http.MethodPost, "/api/login", map[string]string{
			"username": "nobody", "password": "s3cret",
		})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, service.ErrInvalidCredentials.Error(), res.Error.Message)
		mockSvc.AssertExpectations(t)
	})
}
