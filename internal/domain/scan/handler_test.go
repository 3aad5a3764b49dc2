package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"pet-nutrition-guide/internal/domain/profile"
)

type fakeProfiles struct {
	rec profile.Record
	err error
}

func (f fakeProfiles) Get(context.Context) (profile.Record, error) {
	return f.rec, f.err
}

func multipartImage(t *testing.T, field, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="label.png"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func doScan(t *testing.T, svc *Service, profiles ProfileSource, body *bytes.Buffer, ct string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, svc, profiles)

	req := httptest.NewRequest(http.MethodPost, "/scans", body)
	req.Header.Set("Content-Type", ct)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateScanHandler_OK(t *testing.T) {
	svc := newTestService(ProviderFunc(func(_ context.Context, req AnalysisRequest) ([]byte, error) {
		require.Equal(t, "image/png", req.MIMEType)
		return []byte(okResponse), nil
	}), nil)
	profiles := fakeProfiles{rec: profile.Record{ID: "rec-1", Profile: testProfile()}}

	body, ct := multipartImage(t, "image", "", pngStub)
	rr := doScan(t, svc, profiles, body, ct)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var out ScanResponseDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	require.Equal(t, "succeeded", out.State)
	require.Equal(t, "추천합니다.", out.Summary)
	require.Equal(t, []IngredientDTO{{Name: "Salmon", Category: "Green", Reason: "오메가-3"}}, out.Ingredients)
}

func TestCreateScanHandler_ErrorMapping(t *testing.T) {
	profiles := fakeProfiles{rec: profile.Record{ID: "rec-1", Profile: testProfile()}}

	cases := []struct {
		name     string
		provider Provider
		ct       string
		want     int
	}{
		{"no provider", nil, "image/png", http.StatusServiceUnavailable},
		{"not an image", ProviderFunc(func(context.Context, AnalysisRequest) ([]byte, error) {
			return []byte(okResponse), nil
		}), "application/pdf", http.StatusBadRequest},
		{"schema violation", ProviderFunc(func(context.Context, AnalysisRequest) ([]byte, error) {
			return []byte(`{"summary":"x","ingredients":[{"name":"Corn","category":"Blue","reason":"?"}]}`), nil
		}), "image/png", http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, ct := multipartImage(t, "image", tc.ct, pngStub)
			rr := doScan(t, newTestService(tc.provider, nil), profiles, body, ct)
			require.Equal(t, tc.want, rr.Code, rr.Body.String())
		})
	}
}

func TestCreateScanHandler_MissingImageField(t *testing.T) {
	profiles := fakeProfiles{rec: profile.Record{ID: "rec-1", Profile: testProfile()}}

	body, ct := multipartImage(t, "photo", "image/png", pngStub)
	rr := doScan(t, newTestService(nil, nil), profiles, body, ct)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateScanHandler_NoProfile(t *testing.T) {
	body, ct := multipartImage(t, "image", "image/png", pngStub)
	rr := doScan(t, newTestService(nil, nil), fakeProfiles{err: profile.ErrNotFound}, body, ct)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStatusFor(t *testing.T) {
	require.Equal(t, http.StatusConflict, StatusFor(ErrSuperseded))
	require.Equal(t, http.StatusBadGateway, StatusFor(ErrMalformedResponse))
	require.Equal(t, http.StatusBadGateway, StatusFor(ErrProvider))
}
