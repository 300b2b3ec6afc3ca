package signup

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/respond"
	"github.com/Tubbz-alt/email-alert-frontend/internal/i18n"
	signupUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/signup"
)

// SignupPath is where a redirect content item sends the visitor to start again.
const SignupPath = "/email-signup"

// Outcome codes specific to signup.
const (
	codeInvalidLink  = "invalid_link"
	codeUnsupported  = "unsupported_content_item"
	codeItemNotFound = "content_item_not_found"
)

// contentPath returns the requested content item path. The legacy "topic" parameter
// is honoured when "link" is absent.
func contentPath(r *http.Request) string {
	q := r.URL.Query()
	if link := q.Get("link"); link != "" {
		return link
	}
	return q.Get("topic")
}

// redirectTo sends the visitor to the signup page for another content path.
func redirectTo(w http.ResponseWriter, destination string) {
	location := SignupPath + "?" + url.Values{"link": {destination}}.Encode()
	w.Header().Set("Location", location)
	respond.JSON(w, http.StatusSeeOther, LocationDTO{Location: location})
}

// writeError maps a signup use case error to its response. A redirect is not an
// error for the visitor and is answered with 303.
func writeError(w http.ResponseWriter, catalog *i18n.Catalog, err error) {
	var redirect *signupUC.RedirectError
	switch {
	case errors.As(err, &redirect):
		redirectTo(w, redirect.Destination)
	case errors.Is(err, signupUC.ErrInvalidPath):
		respond.Error(w, http.StatusBadRequest, codeInvalidLink, catalog.Text("content_item_signups.invalid_link"))
	case errors.Is(err, signupUC.ErrUnsupportedContentItem):
		respond.Error(w, http.StatusBadRequest, codeUnsupported, catalog.Text("content_item_signups.unsupported_content_item"))
	case errors.Is(err, signupUC.ErrContentItemNotFound):
		respond.Error(w, http.StatusNotFound, codeItemNotFound, catalog.Text("content_item_signups.not_found"))
	case errors.Is(err, entity.ErrServiceUnavailable):
		respond.Fail(w, respond.NewAppError(http.StatusServiceUnavailable, "", catalog.Text("errors.service_unavailable"), err))
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type LookupHandler struct {
	Svc     *signupUC.Service
	Catalog *i18n.Catalog
}

// ServeHTTP resolves a content item to its subscriber list
// @Summary      Resolve a signup
// @Description  Looks the content item up and returns the subscriber list a visitor would join. Taxons with narrower topics use the "taxon" view. Redirect items answer 303 to the signup for their destination.
// @Tags         signup
// @Produce      json
// @Param        link  query string false "Content item base path, e.g. /education"
// @Param        topic query string false "Legacy name for link"
// @Success      200 {object} SignupDTO
// @Success      303 {object} LocationDTO "Content item redirects"
// @Failure      400 {object} respond.ErrorBody "Invalid link or unsupported content item"
// @Failure      404 {object} respond.ErrorBody "Content item not found"
// @Failure      503 {object} respond.ErrorBody "Content store unavailable"
// @Router       /email-signup [get]
// @Router       /email-signup/confirm [get]
func (h LookupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Lookup(r.Context(), contentPath(r))
	if err != nil {
		writeError(w, h.Catalog, err)
		return
	}
	respond.JSON(w, http.StatusOK, toSignupDTO(s))
}

type SubscribeHandler struct {
	Svc     *signupUC.Service
	Catalog *i18n.Catalog
}

// ServeHTTP finds or creates the subscriber list and hands over to the subscription flow
// @Summary      Start a subscription
// @Description  Finds or creates the subscriber list for the content item and answers 303 with the page where the visitor chooses how to subscribe.
// @Tags         signup
// @Produce      json
// @Param        link  query string false "Content item base path, e.g. /education"
// @Param        topic query string false "Legacy name for link"
// @Success      303 {object} LocationDTO
// @Failure      400 {object} respond.ErrorBody "Invalid link or unsupported content item"
// @Failure      404 {object} respond.ErrorBody "Content item not found"
// @Failure      503 {object} respond.ErrorBody "Content store or email alert API unavailable"
// @Router       /email-signup [post]
func (h SubscribeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target, err := h.Svc.Subscribe(r.Context(), contentPath(r))
	if err != nil {
		writeError(w, h.Catalog, err)
		return
	}
	w.Header().Set("Location", target)
	respond.JSON(w, http.StatusSeeOther, LocationDTO{Location: target})
}
