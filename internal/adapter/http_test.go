// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/doc-vault/internal/config"
	"github.com/MKhiriev/doc-vault/internal/logger"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.fr", creds.Email)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Register(context.Background(), models.Credentials{Email: "a@b.fr", Password: "secret1"}))
	assert.Empty(t, a.Token())
}

func TestRegister_ConflictCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.MessageResponse{Message: "email already registered"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.Credentials{Email: "a@b.fr"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "email already registered", Message(err))
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer header-token")
		writeJSON(t, w, http.StatusOK, models.AuthResponse{UserID: "u1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Email: "a@b.fr", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "header-token", got.Token)
	assert.Equal(t, "header-token", a.Token())
}

func TestLogin_TokenFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{UserID: "u1", Token: "body-token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{})

	require.NoError(t, err)
	assert.Equal(t, "body-token", a.Token())
}

func TestLogin_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthResponse{UserID: "u1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "invalid credentials", Message(err))
}

func TestLogin_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Login(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestSession_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/session", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, models.SessionResponse{UserID: "u1", SessionID: "s1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Session(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken(" tok ")
	got, err := a.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "s1", got.SessionID)
}

func TestLogout_ClearsTokenEvenOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	err := a.Logout(context.Background())
	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, a.Token())
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ping", r.URL.Path)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.ErrorIs(t, a.Ping(context.Background()), ErrBadGateway)
}

// ── Vault ───────────────────────────────────────────────────────────────────

func TestCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/categories":
			writeJSON(t, w, http.StatusOK, []models.Category{{CategoryID: "c1", Name: "Factures"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/categories":
			var req models.NameRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(t, w, http.StatusCreated, models.Category{CategoryID: "c2", Name: req.Name})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/categories/c2":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	list, err := a.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Factures", list[0].Name)

	created, err := a.CreateCategory(ctx, "Impôts")
	require.NoError(t, err)
	assert.Equal(t, "c2", created.CategoryID)
	assert.Equal(t, "Impôts", created.Name)

	require.NoError(t, a.DeleteCategory(ctx, "c2"))
	assert.ErrorIs(t, a.DeleteCategory(ctx, "missing"), ErrNotFound)
}

func TestUploadDocument_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories/c1/documents", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Facture mars", r.FormValue("title"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "facture.pdf", hdr.Filename)
		assert.Equal(t, "application/pdf", hdr.Header.Get("Content-Type"))
		assert.Equal(t, "%PDF", string(body))

		writeJSON(t, w, http.StatusCreated, models.Document{DocumentID: "d1", Title: "Facture mars", Size: 4})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	doc, err := a.UploadDocument(context.Background(), "c1", "Facture mars", "/tmp/facture.pdf", strings.NewReader("%PDF"))

	require.NoError(t, err)
	assert.Equal(t, "d1", doc.DocumentID)
	assert.Equal(t, int64(4), doc.Size)
}

func TestUploadDocument_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusRequestEntityTooLarge, models.MessageResponse{Message: "file too large"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UploadDocument(context.Background(), "c1", "t", "big.bin", strings.NewReader("x"))

	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDocuments_SearchRenameURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/documents":
			assert.Equal(t, "fact", r.URL.Query().Get("q"))
			writeJSON(t, w, http.StatusOK, []models.Document{{DocumentID: "d1"}})
		case r.Method == http.MethodPatch && r.URL.Path == "/api/documents/d1":
			var req models.RenameRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(t, w, http.StatusOK, models.Document{DocumentID: "d1", Title: req.Title})
		case r.Method == http.MethodGet && r.URL.Path == "/api/documents/d1/url":
			writeJSON(t, w, http.StatusOK, models.URLResponse{URL: "https://signed/d1"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/documents/d1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	found, err := a.SearchDocuments(ctx, "fact")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	renamed, err := a.RenameDocument(ctx, "d1", "Nouveau")
	require.NoError(t, err)
	assert.Equal(t, "Nouveau", renamed.Title)

	url, err := a.DocumentURL(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "https://signed/d1", url)

	require.NoError(t, a.DeleteDocument(ctx, "d1"))
	assert.ErrorIs(t, a.DeleteDocument(ctx, "d2"), ErrUnexpectedStatus)
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		if r.URL.Path == "/files/ok.pdf" {
			_, _ = w.Write([]byte("contents"))
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	var buf bytes.Buffer
	require.NoError(t, a.Download(context.Background(), srv.URL+"/files/ok.pdf", &buf))
	assert.Equal(t, "contents", buf.String())

	err := a.Download(context.Background(), srv.URL+"/files/expired.pdf", &buf)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Registre ────────────────────────────────────────────────────────────────

func TestRegistres(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/folders":
			writeJSON(t, w, http.StatusOK, []models.Folder{{FolderID: "f1", Name: "2026"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/folders":
			writeJSON(t, w, http.StatusCreated, models.Folder{FolderID: "f2", Name: "2027"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/folders/f1/registres":
			assert.Equal(t, "dupont", r.URL.Query().Get("q"))
			writeJSON(t, w, http.StatusOK, []models.Registre{{RegistreID: "g1", FullName: "Jean Dupont"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/folders/f1/registres":
			var g models.Registre
			require.NoError(t, json.NewDecoder(r.Body).Decode(&g))
			g.RegistreID = "g2"
			writeJSON(t, w, http.StatusCreated, g)
		case r.Method == http.MethodGet && r.URL.Path == "/api/registres/g1":
			writeJSON(t, w, http.StatusOK, models.Registre{RegistreID: "g1"})
		case r.Method == http.MethodPut && r.URL.Path == "/api/registres/g1":
			var g models.Registre
			require.NoError(t, json.NewDecoder(r.Body).Decode(&g))
			writeJSON(t, w, http.StatusOK, g)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	folders, err := a.ListFolders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026", folders[0].Name)

	folder, err := a.CreateFolder(ctx, "2027")
	require.NoError(t, err)
	assert.Equal(t, "f2", folder.FolderID)

	list, err := a.ListRegistres(ctx, "f1", "dupont")
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", list[0].FullName)

	created, err := a.CreateRegistre(ctx, models.Registre{FolderID: "f1", FullName: "Marie Curie"})
	require.NoError(t, err)
	assert.Equal(t, "g2", created.RegistreID)
	assert.Equal(t, "Marie Curie", created.FullName)

	got, err := a.GetRegistre(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", got.RegistreID)

	updated, err := a.UpdateRegistre(ctx, models.Registre{RegistreID: "g1", Phone: "0601020304"})
	require.NoError(t, err)
	assert.Equal(t, "0601020304", updated.Phone)

	_, err = a.GetRegistre(ctx, "zz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUploadSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/signatures":
			assert.Equal(t, http.MethodPost, r.Method)
			f, hdr, err := r.FormFile("signature")
			require.NoError(t, err)
			defer f.Close()
			assert.Equal(t, "sig.png", hdr.Filename)
			assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
			writeJSON(t, w, http.StatusCreated, models.SignatureResponse{SignatureKey: "u1/signatures/1.png"})
		case "/api/registres/g1/signature/url":
			writeJSON(t, w, http.StatusOK, models.URLResponse{URL: "https://signed/sig"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	key, err := a.UploadSignature(context.Background(), "/home/me/sig.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "u1/signatures/1.png", key)

	url, err := a.SignatureURL(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "https://signed/sig", url)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "scheme added", in: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", in: "https://vault.example.fr/", want: "https://vault.example.fr"},
		{name: "spaces trimmed", in: "  http://h:1  ", want: "http://h:1"},
		{name: "empty", in: "", wantErr: true},
		{name: "no host", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
