package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/doc-vault/internal/app"
	"github.com/MKhiriev/doc-vault/internal/service"
	"github.com/MKhiriev/doc-vault/internal/store"
	"github.com/MKhiriev/doc-vault/internal/validators"
	"github.com/MKhiriev/doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateFolder(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.registre.EXPECT().CreateFolder(gomock.Any(), "u-1", "Visiteurs").Return(models.Folder{FolderID: "f-1", Name: "Visiteurs"}, nil)

	rec := serve(h, http.MethodPost, "/api/folders", jsonBody(t, models.NameRequest{Name: "Visiteurs"}), authed())

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListRegistres(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.registre.EXPECT().ListRegistres(gomock.Any(), "u-1", "f-1", "").Return(nil, nil)
	m.registre.EXPECT().ListRegistres(gomock.Any(), "u-1", "f-1", "AB-123").Return([]models.Registre{{RegistreID: "r-1"}}, nil)
	m.registre.EXPECT().ListRegistres(gomock.Any(), "u-1", "f-9", "").Return(nil, store.ErrNotFound)

	rec := serve(h, http.MethodGet, "/api/folders/f-1/registres", nil, authed())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/folders/f-1/registres?q=AB-123", nil, authed())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/api/folders/f-9/registres", nil, authed())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRegistre_IdsComeFromRouteAndToken(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()

	// тело пытается подменить владельца и папку
	body := models.Registre{
		RegistreID:   "forged",
		UserID:       "u-2",
		FolderID:     "f-2",
		FullName:     "Jeanne Martin",
		SignatureKey: "u-1/signatures/1.png",
	}

	m.registre.EXPECT().CreateRegistre(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Registre) (models.Registre, error) {
			assert.Equal(t, "u-1", r.UserID)
			assert.Equal(t, "f-1", r.FolderID)
			assert.Empty(t, r.RegistreID)
			r.RegistreID = "r-1"
			return r, nil
		},
	)

	rec := serve(h, http.MethodPost, "/api/folders/f-1/registres", jsonBody(t, body), authed())
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Registre
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "r-1", got.RegistreID)
}

func TestCreateRegistre_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		svcErr  error
		wantMsg string
	}{
		{name: "no full name", svcErr: validators.ErrEmptyFullName, wantMsg: app.MsgFullNameRequired},
		{name: "no signature", svcErr: validators.ErrEmptySignature, wantMsg: app.MsgSignatureRequired},
		{name: "foreign signature", svcErr: service.ErrInvalidSignature, wantMsg: app.MsgInvalidSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectAuthorized()
			m.registre.EXPECT().CreateRegistre(gomock.Any(), gomock.Any()).Return(models.Registre{}, tt.svcErr)

			rec := serve(h, http.MethodPost, "/api/folders/f-1/registres", jsonBody(t, models.Registre{}), authed())

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
		})
	}
}

func TestUpdateRegistre(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.registre.EXPECT().UpdateRegistre(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Registre) (models.Registre, error) {
			assert.Equal(t, "r-1", r.RegistreID)
			assert.Equal(t, "u-1", r.UserID)
			return r, nil
		},
	)

	rec := serve(h, http.MethodPut, "/api/registres/r-1", jsonBody(t, models.Registre{RegistreID: "r-7", FullName: "Jeanne"}), authed())

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRegistre_And_SignatureURL(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()
	m.registre.EXPECT().GetRegistre(gomock.Any(), "u-1", "r-1").Return(models.Registre{RegistreID: "r-1"}, nil)
	m.registre.EXPECT().SignatureURL(gomock.Any(), "u-1", "r-1").Return("https://signed/sig", nil)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/registres/r-1", nil, authed()).Code)

	rec := serve(h, http.MethodGet, "/api/registres/r-1/signature/url", nil, authed())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://signed/sig"}`, rec.Body.String())
}

func TestUploadSignature(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuthorized()

	body, contentType := multipartBody(t, nil, "signature", "signature.png", "image/png", []byte("\x89PNG"))
	m.registre.EXPECT().UploadSignature(gomock.Any(), "u-1", "image/png", int64(4), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, _ int64, r io.Reader) (string, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "\x89PNG", string(data))
			return "u-1/signatures/1.png", nil
		},
	)

	rec := serve(h, http.MethodPost, "/api/signatures", body, authed("Content-Type", contentType))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"signature_key":"u-1/signatures/1.png"}`, rec.Body.String())
}
