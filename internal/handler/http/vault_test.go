package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/MKhiriev/doc-vault/internal/app"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/validators"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// multipartBody собирает multipart/form-data тело с полями и одним файлом.
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, contentType string, content []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestListCategories(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuthorized()
		m.vault.EXPECT().ListCategories(gomock.Any(), "u-1").Return([]models.Category{{CategoryID: "c-1", Name: "Factures"}}, nil)

		rec := serve(h, http.MethodGet, "/api/categories", nil, authed())
		require.Equal(t, http.StatusOK, rec.Code)

		var got []models.Category
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Factures", got[0].Name)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuthorized()
		m.vault.EXPECT().ListCategories(gomock.Any(), "u-1").Return(nil, nil)

		rec := serve(h, http.MethodGet, "/api/categories", nil, authed())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "duplicate", svcErr: store.ErrDuplicateName, wantStatus: http.StatusConflict, wantMsg: app.MsgNameAlreadyExists},
		{name: "empty", svcErr: validators.ErrEmptyName, wantStatus: http.StatusBadRequest, wantMsg: app.MsgNameRequired},
		{name: "too long", svcErr: validators.ErrNameTooLong, wantStatus: http.StatusBadRequest, wantMsg: app.MsgNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuthorized()
			m.vault.EXPECT().CreateCategory(gomock.Any(), "u-1", "Factures").
				Return(models.Category{CategoryID: "c-1", Name: "Factures"}, tt.svcErr)

			rec := serve(h, http.MethodPost, "/api/categories", jsonBody(t, models.NameRequest{Name: "Factures"}), authed())

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
			}
		})
	}
}

func TestDeleteCategory(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.vault.EXPECT().DeleteCategory(gomock.Any(), "u-1", "c-1").Return(nil)
	m.vault.EXPECT().DeleteCategory(gomock.Any(), "u-1", "c-2").Return(store.ErrNotFound)

	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodDelete, "/api/categories/c-1", nil, authed()).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodDelete, "/api/categories/c-2", nil, authed()).Code)
}

func TestSearchDocuments_PassesQuery(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.vault.EXPECT().SearchDocuments(gomock.Any(), "u-1", "bail 2026").Return([]models.Document{{DocumentID: "d-1"}}, nil)

	rec := serve(h, http.MethodGet, "/api/documents?q=bail+2026", nil, authed())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadDocument(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()

	body, contentType := multipartBody(t, map[string]string{"title": "Bail"}, "file", "bail.pdf", "application/pdf", []byte("%PDF-1.7"))

	m.vault.EXPECT().UploadDocument(gomock.Any(), gomock.Any(), "Bail", gomock.Any()).DoAndReturn(
		func(_ context.Context, upload models.DocumentUpload, title string, r io.Reader) (models.Document, error) {
			assert.Equal(t, models.DocumentUpload{
				UserID:      "u-1",
				CategoryID:  "c-1",
				FileName:    "bail.pdf",
				ContentType: "application/pdf",
				Size:        8,
			}, upload)

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.7", string(data))

			return models.Document{DocumentID: "d-1", Title: title}, nil
		},
	)

	rec := serve(h, http.MethodPost, "/api/categories/c-1/documents", body, authed("Content-Type", contentType))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got models.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "d-1", got.DocumentID)
}

func TestUploadDocument_Rejections(t *testing.T) {
	t.Run("no file part", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuthorized()
		body, contentType := multipartBody(t, map[string]string{"title": "Bail"}, "", "", "", nil)

		rec := serve(h, http.MethodPost, "/api/categories/c-1/documents", body, authed("Content-Type", contentType))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgFileRequired, decodeMessage(t, rec))
	})

	t.Run("not multipart", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuthorized()

		rec := serve(h, http.MethodPost, "/api/categories/c-1/documents", strings.NewReader("{}"), authed("Content-Type", "application/json"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too large", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.expectAuthorized()
		// MaxUploadSize в тестовом конфиге = 1 KiB
		body, contentType := multipartBody(t, nil, "file", "scan.png", "image/png", bytes.Repeat([]byte{0x42}, 4<<10))

		rec := serve(h, http.MethodPost, "/api/categories/c-1/documents", body, authed("Content-Type", contentType))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, app.MsgFileTooLarge, decodeMessage(t, rec))
	})
}

func TestRenameDocument(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.vault.EXPECT().RenameDocument(gomock.Any(), "u-1", "d-1", "Bail 2026").Return(models.Document{DocumentID: "d-1", Title: "Bail 2026"}, nil)
	m.vault.EXPECT().RenameDocument(gomock.Any(), "u-1", "d-1", "").Return(models.Document{}, validators.ErrEmptyTitle)

	rec := serve(h, http.MethodPatch, "/api/documents/d-1", jsonBody(t, models.RenameRequest{Title: "Bail 2026"}), authed())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodPatch, "/api/documents/d-1", jsonBody(t, models.RenameRequest{}), authed())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgTitleRequired, decodeMessage(t, rec))
}

func TestDeleteDocument_StorageFailure(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.vault.EXPECT().DeleteDocument(gomock.Any(), "u-1", "d-1").Return(store.ErrObjectStore)

	rec := serve(h, http.MethodDelete, "/api/documents/d-1", nil, authed())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, app.MsgStorageFailed, decodeMessage(t, rec))
}

func TestDocumentURL(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.vault.EXPECT().DocumentURL(gomock.Any(), "u-1", "d-1").Return("https://signed/d-1", nil)

	rec := serve(h, http.MethodGet, "/api/documents/d-1/url", nil, authed())
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.URLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "https://signed/d-1", got.URL)
}

func TestIsUploadPath(t *testing.T) {
	assert.True(t, isUploadPath("/api/signatures"))
	assert.True(t, isUploadPath("/api/categories/c-1/documents"))
	assert.False(t, isUploadPath("/api/categories"))
	assert.False(t, isUploadPath("/api/documents/d-1"))
}
