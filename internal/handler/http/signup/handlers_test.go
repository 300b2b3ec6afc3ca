package signup_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/signup"
	"github.com/Tubbz-alt/email-alert-frontend/internal/i18n"
	signupUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/signup"
)

type stubContentStore struct {
	items map[string]*entity.ContentItem
	err   error
}

func (s *stubContentStore) ContentItem(_ context.Context, path string) (*entity.ContentItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.items[path]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return item, nil
}

type stubLists struct {
	slug  string
	err   error
	calls int
}

func (s *stubLists) FindOrCreateSubscriberList(context.Context, entity.SubscriberListParams) (entity.SubscriberListRef, error) {
	s.calls++
	return entity.SubscriberListRef{Slug: s.slug}, s.err
}
func (s *stubLists) GetSubscriptions(context.Context, string) (entity.SubscriberSubscriptions, error) {
	return entity.SubscriberSubscriptions{}, errors.New("not used")
}
func (s *stubLists) ChangeSubscription(context.Context, string, entity.Frequency) error {
	return errors.New("not used")
}
func (s *stubLists) ChangeSubscriber(context.Context, string, string) error {
	return errors.New("not used")
}
func (s *stubLists) UnsubscribeSubscriber(context.Context, string) error {
	return errors.New("not used")
}

func newServer(t *testing.T) (*http.ServeMux, *stubContentStore, *stubLists) {
	t.Helper()
	content := &stubContentStore{items: map[string]*entity.ContentItem{
		"/education": {
			ContentID:    "edu-1",
			Title:        "Education",
			DocumentType: "taxon",
			BasePath:     "/education",
			Links: entity.ContentItemLinks{ChildTaxons: []entity.LinkedItem{
				{ContentID: "edu-2", Title: "Schools", BasePath: "/education/schools"},
			}},
		},
		"/government/organisations/hmrc": {
			ContentID:    "org-1",
			Title:        "HMRC",
			DocumentType: "organisation",
			BasePath:     "/government/organisations/hmrc",
		},
		"/old-topic": {
			DocumentType: "redirect",
			Redirects:    []entity.Redirect{{Path: "/old-topic", Destination: "/government/organisations/hmrc"}},
		},
		"/dead-end": {DocumentType: "redirect"},
		"/guidance":  {ContentID: "g-1", Title: "Guide", DocumentType: "guide"},
	}}
	lists := &stubLists{slug: "hmrc & co"}
	svc := &signupUC.Service{Content: content, Lists: lists}

	mux := http.NewServeMux()
	signup.Register(mux, svc, i18n.MustLoad("en"))
	return mux, content, lists
}

func serve(t *testing.T, mux http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return rr, body
}

func TestLookupHandler(t *testing.T) {
	mux, _, lists := newServer(t)

	rr, body := serve(t, mux, http.MethodGet, "/email-signup?link=/government/organisations/hmrc")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, signup.ViewConfirm, body["view"])
	assert.Equal(t, "HMRC", body["title"])
	assert.Equal(t, map[string]any{
		"title": "HMRC",
		"links": map[string]any{"organisations": []any{"org-1"}},
	}, body["subscriber_list"])
	assert.Zero(t, lists.calls, "lookup never creates a list")
}

func TestLookupHandler_TaxonView(t *testing.T) {
	mux, _, _ := newServer(t)

	for _, target := range []string{"/email-signup?link=/education", "/email-signup/confirm?topic=/education"} {
		rr, body := serve(t, mux, http.MethodGet, target)

		require.Equal(t, http.StatusOK, rr.Code, target)
		assert.Equal(t, signup.ViewTaxon, body["view"])
		children := body["child_taxons"].([]any)
		require.Len(t, children, 1)
		assert.Equal(t, "/education/schools", children[0].(map[string]any)["base_path"])
	}
}

func TestLookupHandler_Redirect(t *testing.T) {
	mux, _, _ := newServer(t)

	rr, body := serve(t, mux, http.MethodGet, "/email-signup?link=/old-topic")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	want := "/email-signup?link=%2Fgovernment%2Forganisations%2Fhmrc"
	assert.Equal(t, want, rr.Header().Get("Location"))
	assert.Equal(t, want, body["location"])
}

func TestLookupHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		storeErr   error
		wantStatus int
		wantCode   string
	}{
		{"missing link", "/email-signup", nil, http.StatusBadRequest, "invalid_link"},
		{"absolute url", "/email-signup?link=https://evil.example.com/x", nil, http.StatusBadRequest, "invalid_link"},
		{"unsupported", "/email-signup?link=/guidance", nil, http.StatusBadRequest, "unsupported_content_item"},
		{"unknown", "/email-signup?link=/nowhere", nil, http.StatusNotFound, "content_item_not_found"},
		{"redirect without destination", "/email-signup?link=/dead-end", nil, http.StatusNotFound, "content_item_not_found"},
		{"content store down", "/email-signup?link=/education", errors.New("503"), http.StatusServiceUnavailable, "service_unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, content, _ := newServer(t)
			content.err = tt.storeErr

			rr, body := serve(t, mux, http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSubscribeHandler(t *testing.T) {
	mux, _, lists := newServer(t)

	rr, body := serve(t, mux, http.MethodPost, "/email-signup?link=/government/organisations/hmrc")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	want := "/email/subscriptions/new?topic_id=hmrc+%26+co"
	assert.Equal(t, want, rr.Header().Get("Location"))
	assert.Equal(t, want, body["location"])
	assert.Equal(t, 1, lists.calls)
}

func TestSubscribeHandler_Errors(t *testing.T) {
	t.Run("unsupported makes no remote call", func(t *testing.T) {
		mux, _, lists := newServer(t)
		rr, _ := serve(t, mux, http.MethodPost, "/email-signup?link=/guidance")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Zero(t, lists.calls)
	})

	t.Run("redirect", func(t *testing.T) {
		mux, _, lists := newServer(t)
		rr, _ := serve(t, mux, http.MethodPost, "/email-signup?link=/old-topic")

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/email-signup?link=%2Fgovernment%2Forganisations%2Fhmrc", rr.Header().Get("Location"))
		assert.Zero(t, lists.calls)
	})

	t.Run("email alert API down", func(t *testing.T) {
		mux, _, lists := newServer(t)
		lists.err = errors.New("connection reset")
		rr, body := serve(t, mux, http.MethodPost, "/email-signup?link=/education")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "Sorry, there is a problem with the service. Try again later.", body["error"])
	})
}
