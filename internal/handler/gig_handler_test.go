package handler_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onlydevs/internal/call"
	"onlydevs/internal/config"
	"onlydevs/internal/handler"
	"onlydevs/internal/model"
	"onlydevs/internal/payment"
	"onlydevs/internal/router"
	"onlydevs/internal/service"
	"onlydevs/internal/store"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	gigStore := store.NewFileStore(filepath.Join(t.TempDir(), "gigs.json"))
	require.NoError(t, gigStore.Reset(context.Background(), nil))

	gigService := service.NewGigService(gigStore, nil, rand.New(rand.NewSource(7)))
	paymentProvider := payment.NewSandboxProvider("0xmentor")
	payoutService := service.NewPayoutService(gigService, paymentProvider)
	callService := service.NewCallService(gigService, call.NewHuddleProvider(""))

	e := echo.New()
	router.Register(
		e,
		&config.Config{},
		handler.NewGigHandler(gigService),
		handler.NewPayoutHandler(payoutService, paymentProvider),
		handler.NewCallHandler(callService),
	)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeGig(t *testing.T, rec *httptest.ResponseRecorder) model.Gig {
	t.Helper()
	var gig model.Gig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gig))
	return gig
}

const createBody = `{"title":"X","description":"d","tags":["t"],"bounty":"5","status":"open","author":"A"}`

func TestGigAPI_CreateGetUpdateScenario(t *testing.T) {
	e := newTestServer(t)

	// Create
	rec := doJSON(e, http.MethodPost, "/api/gigs", createBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeGig(t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.GigStatusOpen, created.Status)
	require.Len(t, created.Mentors, 1)

	// Read back
	rec = doJSON(e, http.MethodGet, "/api/gigs/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeGig(t, rec)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "X", fetched.Title)

	// Update status by path
	rec = doJSON(e, http.MethodPut, "/api/gigs/"+created.ID, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeGig(t, rec)
	assert.Equal(t, model.GigStatusCompleted, updated.Status)
	assert.Equal(t, "X", updated.Title)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
}

func TestGigAPI_ListNewestFirst(t *testing.T) {
	e := newTestServer(t)

	first := decodeGig(t, doJSON(e, http.MethodPost, "/api/gigs", createBody))
	second := decodeGig(t, doJSON(e, http.MethodPost, "/api/gigs",
		`{"title":"Y","description":"d2","bounty":"10","author":"B"}`))

	rec := doJSON(e, http.MethodGet, "/api/gigs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Gigs []model.Gig `json:"gigs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Gigs, 2)
	assert.Equal(t, second.ID, list.Gigs[0].ID)
	assert.Equal(t, first.ID, list.Gigs[1].ID)
}

func TestGigAPI_BulkUpdate(t *testing.T) {
	e := newTestServer(t)
	created := decodeGig(t, doJSON(e, http.MethodPost, "/api/gigs", createBody))

	body := `{"id":"` + created.ID + `","updates":{"status":"in-progress"}}`
	rec := doJSON(e, http.MethodPut, "/api/gigs", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, model.GigStatusInProgress, decodeGig(t, rec).Status)
}

func TestGigAPI_MentorsReplacedWholesale(t *testing.T) {
	e := newTestServer(t)
	created := decodeGig(t, doJSON(e, http.MethodPost, "/api/gigs", createBody))

	body := `{"mentors":[{"id":"m9","name":"Nina","avatar":"","rating":4,"message":"hi","specialties":["Go"]}]}`
	rec := doJSON(e, http.MethodPut, "/api/gigs/"+created.ID, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeGig(t, rec)
	require.Len(t, updated.Mentors, 1)
	assert.Equal(t, "m9", updated.Mentors[0].ID)
}

func TestGigAPI_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/gigs/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/gigs/ghost", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/gigs", `{"id":"ghost","updates":{"status":"completed"}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGigAPI_CreateValidation(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/gigs", `{"title":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/gigs",
		`{"title":"X","description":"d","bounty":"free","author":"A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGigAPI_StoreFailure(t *testing.T) {
	// A store with no document behind it: every read is a hard 500.
	gigStore := store.NewFileStore(filepath.Join(t.TempDir(), "missing", "gigs.json"))
	gigService := service.NewGigService(gigStore, nil, rand.New(rand.NewSource(7)))
	paymentProvider := payment.NewSandboxProvider("0xmentor")

	e := echo.New()
	router.Register(
		e,
		&config.Config{},
		handler.NewGigHandler(gigService),
		handler.NewPayoutHandler(service.NewPayoutService(gigService, paymentProvider), paymentProvider),
		handler.NewCallHandler(service.NewCallService(gigService, call.NewHuddleProvider(""))),
	)

	rec := doJSON(e, http.MethodGet, "/api/gigs", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGigAPI_Payout(t *testing.T) {
	e := newTestServer(t)
	created := decodeGig(t, doJSON(e, http.MethodPost, "/api/gigs", createBody))

	// Not completed yet
	rec := doJSON(e, http.MethodPost, "/api/gigs/"+created.ID+"/payout", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	doJSON(e, http.MethodPut, "/api/gigs/"+created.ID, `{"status":"completed"}`)

	rec = doJSON(e, http.MethodPost, "/api/gigs/"+created.ID+"/payout", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var receipt payment.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.True(t, receipt.Success)
	assert.Equal(t, "5", receipt.Amount)
	assert.Equal(t, "0xmentor", receipt.Recipient)
}

func TestGigAPI_StartCall(t *testing.T) {
	e := newTestServer(t)
	created := decodeGig(t, doJSON(e, http.MethodPost, "/api/gigs", createBody))

	rec := doJSON(e, http.MethodPost, "/api/gigs/"+created.ID+"/call", `{"mentor_id":"m1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp handler.StartCallResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, created.ID)
}
