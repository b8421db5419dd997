package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/mock"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "header.payload.signature"

type handlerMocks struct {
	auth     *mock.MockAuthService
	vault    *mock.MockVaultService
	registre *mock.MockRegistreService
	appInfo  *mock.MockAppInfoService
}

var testServerConfig = config.Server{
	HTTPAddress:    "localhost:0",
	RequestTimeout: 5 * time.Second,
	AuthRateLimit:  100,
	AuthRateWindow: time.Minute,
	MaxUploadSize:  1 << 10,
}

// newTestHandler создаёт Handler с gomock-сервисами и nop-логгером.
func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		auth:     mock.NewMockAuthService(ctrl),
		vault:    mock.NewMockVaultService(ctrl),
		registre: mock.NewMockRegistreService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:     m.auth,
		VaultService:    m.vault,
		RegistreService: m.registre,
		AppInfoService:  m.appInfo,
	}

	return NewHandler(services, testServerConfig, logger.Nop()), m
}

// expectAuthorized makes every bearer testToken resolve to u-1 / s-1.
func (m handlerMocks) expectAuthorized() {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: "u-1", SessionID: "s-1"}, nil).AnyTimes()
}

// serve runs the request through the full router.
func serve(h *Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.RemoteAddr = "192.0.2.1:4242"
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func authed(extra ...string) map[string]string {
	headers := map[string]string{"Authorization": "Bearer " + testToken}
	for i := 0; i+1 < len(extra); i += 2 {
		headers[extra[i]] = extra[i+1]
	}
	return headers
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(data))
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), rec.Body.String())
	return msg.Message
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, testServerConfig, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.NotNil(t, h.authLimiter)
	assert.NotSame(t, h, NewHandler(svc, testServerConfig, log))
}

func TestRequestTimeout_Default(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	assert.Equal(t, 10*time.Second, h.requestTimeout())

	h.cfg.RequestTimeout = time.Second
	assert.Equal(t, time.Second, h.requestTimeout())
}
