package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/internal/utils"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST [ServerAdapter]. The base URL
// comes from cfg.HTTPAddress ("http://" is assumed when no scheme is
// given) and every request is bounded by cfg.RequestTimeout.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrUnreachable, err)
	}
	return mapHTTPError(resp)
}

// Register posts the credentials to POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("%w: register: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// Login posts the credentials to POST /api/auth/login. The bearer token is
// taken from the Authorization response header, or from the body when the
// header is absent, and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: login: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if token, parseErr := utils.ParseBearerToken(resp.Header().Get("Authorization")); parseErr == nil {
		auth.Token = token
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("login: no token in response")
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Logout revokes the current session with POST /api/auth/logout. The
// stored token is cleared whatever the outcome.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	h.SetToken("")
	if err != nil {
		return fmt.Errorf("%w: logout: %w", ErrUnreachable, err)
	}

	return mapHTTPError(resp)
}

// Session returns the principal of the current token.
func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionResponse, error) {
	var session models.SessionResponse

	resp, err := h.authedRequest(ctx).SetResult(&session).Get("/api/auth/session")
	if err != nil {
		return models.SessionResponse{}, fmt.Errorf("%w: session: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionResponse{}, err
	}

	return session, nil
}

func (h *httpServerAdapter) Download(ctx context.Context, url string, w io.Writer) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return fmt.Errorf("%w: download: %w", ErrUnreachable, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return NewResponseError(resp.StatusCode(), resp.Status())
	}

	if _, err = io.Copy(w, body); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
