package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aitrends-dashboard/internal/aggregate"
	"aitrends-dashboard/internal/chart"
	"aitrends-dashboard/internal/dashboard"
	"aitrends-dashboard/internal/dataset"
	"aitrends-dashboard/internal/domain"
)

func newState() *dashboard.State {
	tbl := &dataset.Table{Records: []domain.JobRecord{
		{Industry: "Tech", JobTitle: "ML Engineer", ImpactLevel: domain.ImpactHigh, Openings2024: 1200, Projected2030: 1800},
		{Industry: "Tech", JobTitle: "Data Analyst", ImpactLevel: domain.ImpactModerate, Openings2024: 900, Projected2030: 1000},
		{Industry: "Tech", JobTitle: "AI Ethicist", ImpactLevel: domain.ImpactHigh, Openings2024: 100, Projected2030: 300},
		{Industry: "Retail", JobTitle: "Cashier", ImpactLevel: domain.ImpactHigh, Openings2024: 5000, Projected2030: 3000},
	}}
	sums := aggregate.Summarize(tbl.Records)
	return &dashboard.State{
		Table:     tbl,
		Summaries: sums,
		Figure:    chart.Build(sums, chart.DefaultOptions()),
		Titles:    tbl,
	}
}

func newServer(t *testing.T, lim *ClientLimiter) *httptest.Server {
	t.Helper()
	return newServerWith(t, newState(), lim)
}

func newServerWith(t *testing.T, state *dashboard.State, lim *ClientLimiter) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := NewMux(Deps{State: state, Limiter: lim, Logger: log, Debug: true})
	srv := httptest.NewServer(Chain(mux, RequestID, AccessLog(log), Recover(log)))
	t.Cleanup(srv.Close)
	return srv
}

func postCallback(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+dashboard.CallbackPath, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) APIError {
	t.Helper()
	var e APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e
}

// listError checks resp is an HTML error fragment for the job list and
// returns the rendered item.
func listError(t *testing.T, resp *http.Response, code string) *goquery.Selection {
	t.Helper()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Equal(t, code, resp.Header.Get("X-Error-Code"))

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	li := doc.Find("li.list-error")
	require.Equal(t, 1, li.Length())
	id, _ := li.Attr("data-request-id")
	assert.Equal(t, resp.Header.Get("X-Request-ID"), id)
	assert.NotEmpty(t, id)
	return li
}

type failingTitles struct{}

func (failingTitles) JobTitles(context.Context, string) ([]string, error) {
	return nil, errors.New("index closed")
}

func TestIndex(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "AI Job Trends Dashboard", doc.Find("h2").Text())
	assert.Equal(t, dashboard.PromptText, doc.Find("#job-list li").Text())
}

func TestIndexUnknownPath(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", decodeError(t, resp).Error.Code)
}

func TestJobListCallback(t *testing.T) {
	srv := newServer(t, nil)

	t.Run("NullClickData", func(t *testing.T) {
		resp := postCallback(t, srv, `{"clickData": null}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "<li>Click on a bubble to view job titles.</li>", string(b))
	})

	t.Run("EmptyBody", func(t *testing.T) {
		resp := postCallback(t, srv, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(b), dashboard.PromptText)
	})

	t.Run("ClickedIndustry", func(t *testing.T) {
		resp := postCallback(t, srv, `{"clickData":{"points":[{"curveNumber":0,"pointNumber":0,"x":3,"y":40.9,"hovertext":"Tech"}]}}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Industry: Tech (3 jobs)", doc.Find("h5").Text())

		var titles []string
		doc.Find("ul li").Each(func(_ int, s *goquery.Selection) { titles = append(titles, s.Text()) })
		assert.Equal(t, []string{"AI Ethicist", "Data Analyst", "ML Engineer"}, titles)
	})

	t.Run("UnknownIndustry", func(t *testing.T) {
		resp := postCallback(t, srv, `{"clickData":{"points":[{"hovertext":"Mining"}]}}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "<li>No job titles found for Mining</li>", string(b))
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		resp := postCallback(t, srv, `{"clickData":`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		li := listError(t, resp, "bad_request")
		assert.Equal(t, "Could not read the click event.", li.Text())
	})

	t.Run("WrongMethod", func(t *testing.T) {
		resp, err := http.Get(srv.URL + dashboard.CallbackPath)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestJobListRateLimited(t *testing.T) {
	srv := newServer(t, NewClientLimiter(0.001, 2))

	for i := 0; i < 2; i++ {
		resp := postCallback(t, srv, `{"clickData": null}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp := postCallback(t, srv, `{"clickData": null}`)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("Retry-After"))
	li := listError(t, resp, "rate_limited")
	assert.Equal(t, "Too many clicks, try again in a moment.", li.Text())
}

func TestJobListLookupFailure(t *testing.T) {
	state := newState()
	state.Titles = failingTitles{}
	srv := newServerWith(t, state, nil)

	resp := postCallback(t, srv, `{"clickData":{"points":[{"hovertext":"Tech"}]}}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	li := listError(t, resp, "lookup_failed")
	assert.Equal(t, "Could not load job titles.", li.Text())
}

func TestHealth(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, 4.0, body["records"])
	assert.Equal(t, 2.0, body["industries"])
}

func TestRecover(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }), RequestID, Recover(log))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, rec.Body.String(), "internal_error")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, dashboard.CallbackPath, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "internal_error", rec.Header().Get("X-Error-Code"))
	assert.Contains(t, rec.Body.String(), `<li class="list-error"`)
}
