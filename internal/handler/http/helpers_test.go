package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/werlleyg/boilerplate-api/internal/config"
	"github.com/werlleyg/boilerplate-api/internal/logger"
	"github.com/werlleyg/boilerplate-api/internal/metrics"
	"github.com/werlleyg/boilerplate-api/internal/mock"
	"github.com/werlleyg/boilerplate-api/internal/service"
	"github.com/werlleyg/boilerplate-api/models"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "valid-token"
	testUserID = "0195f0d2-7b1c-7c3e-9a4f-2d6b8e1f0a11"
)

type serviceMocks struct {
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	appInfo *mock.MockAppInfoService
	health  *mock.MockHealthService
}

// newMockedHandler builds a Handler whose services are gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
	}
	services := &service.Services{
		AuthService:    m.auth,
		UserService:    m.users,
		AppInfoService: m.appInfo,
		HealthService:  m.health,
	}

	prom := metrics.NewProm(prometheus.NewRegistry())
	h := NewHandler(services, prom, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())

	return h, m
}

// expectValidToken makes testToken resolve to testUserID.
func (m serviceMocks) expectValidToken() {
	m.auth.EXPECT().
		ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: testUserID, SignedString: testToken}, nil).
		AnyTimes()
}

func doRequest(t *testing.T, handler http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

// decodeJSON decodes the response body into a generic value.
func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type validationBody struct {
	Status  string `json:"status"`
	Message []struct {
		Field   string `json:"field"`
		Rule    string `json:"rule"`
		Param   string `json:"param"`
		Message string `json:"message"`
	} `json:"message"`
}

func sampleUser() models.User {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return models.User{
		ID:           testUserID,
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$04$never-leaves-the-server",
		Role:         models.RoleGuest,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}
