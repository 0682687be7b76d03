package hubspot_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studentpages/internal/domain"
	"studentpages/internal/domain/assign"
	"studentpages/internal/infrastructure/hubspot"
)

const testToken = "pat-test-token"

func newStub(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestListTeams(t *testing.T) {
	srv, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/settings/v3/users/teams", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"id": "t1", "name": "Sales"},
				{"id": "t2", "name": "Marketing"},
			},
		})
	})

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	got := c.ListTeams(context.Background())

	require.False(t, got.Degraded)
	require.Equal(t, []domain.Team{{ID: "t1", Name: "Sales"}, {ID: "t2", Name: "Marketing"}}, got.Items)
}

func TestListTeams_DegradesOnFailure(t *testing.T) {
	srv, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	got := c.ListTeams(context.Background())

	require.True(t, got.Degraded)
	require.Empty(t, got.Items)
}

func TestListTeams_DegradesWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close()

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	got := c.ListTeams(context.Background())

	require.True(t, got.Degraded)
	require.Empty(t, got.Items)
}

func TestListPages_FirstPageOnly(t *testing.T) {
	srv, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cms/v3/pages/landing-pages", r.URL.Path)
		require.Equal(t, "100", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{{"id": "p1", "name": "Page One"}},
		})
	})

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	got := c.ListPages(context.Background())

	require.False(t, got.Degraded)
	require.Len(t, got.Items, 1)
	require.Equal(t, "p1", got.Items[0].ID)
}

func TestListTemplates_DefaultTemplateSkipsNetwork(t *testing.T) {
	srv, calls := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	c := hubspot.NewClient(srv.URL, testToken, "tmpl-default", zap.NewNop())
	got := c.ListTemplates(context.Background())

	require.False(t, got.Degraded)
	require.Empty(t, got.Items)
	require.EqualValues(t, 0, calls.Load())
}

func TestFetchPage(t *testing.T) {
	srv, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/cms/v3/pages/landing-pages/p1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":           "p1",
			"name":         "Template",
			"templatePath": "custom/tpl.html",
			"widgets":      map[string]any{"a": 1},
		})
	})

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	page, err := c.FetchPage(context.Background(), "p1")

	require.NoError(t, err)
	require.Equal(t, "p1", page.ID)
	require.Equal(t, "custom/tpl.html", page.TemplatePath)
	require.JSONEq(t, `{"a":1}`, string(page.Widgets))
}

func TestFetchPage_SurfacesRemoteMessage(t *testing.T) {
	srv, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Page not found"})
	})

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	_, err := c.FetchPage(context.Background(), "missing")

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, domain.ErrorCodeUpstream, de.Code)
	require.Equal(t, "Page not found", de.Message)
	require.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
}

func TestCreatePage(t *testing.T) {
	srv, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/cms/v3/pages/landing-pages", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "Jane - My Page", payload["name"])

		payload["id"] = "new-1"
		json.NewEncoder(w).Encode(payload)
	})

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	created, err := c.CreatePage(context.Background(), domain.Page{Name: "Jane - My Page", Slug: "student-jane-1"})

	require.NoError(t, err)
	require.Equal(t, "new-1", created.ID)
}

func TestUpdatePage(t *testing.T) {
	srv, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/cms/v3/pages/landing-pages/p1", r.URL.Path)

		var fields map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		require.Equal(t, "Landing Page - Team t1", fields["name"])
		require.Equal(t, "Team Access Updated", fields["metaDescription"])
		w.WriteHeader(http.StatusOK)
	})

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	err := c.UpdatePage(context.Background(), "p1", assign.PageUpdate{
		Name:            "Landing Page - Team t1",
		MetaDescription: "Team Access Updated",
	})
	require.NoError(t, err)
}

func TestGrantTeamPermission(t *testing.T) {
	srv, _ := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/cms/v3/permissions/teams/t1/content/p1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "EDIT_CONTENT", body["role"])
		w.WriteHeader(http.StatusNoContent)
	})

	c := hubspot.NewClient(srv.URL, testToken, "", zap.NewNop())
	require.NoError(t, c.GrantTeamPermission(context.Background(), "t1", "p1"))
}
