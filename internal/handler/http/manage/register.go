package manage

import (
	"net/http"

	manageUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/manage"
)

// Register adds the subscription management routes to mux. Every route sits behind
// requireSubscriber, which must place the subscriber id in the request context.
func Register(mux *http.ServeMux, svc *manageUC.Service, requireSubscriber func(http.Handler) http.Handler) {
	mux.Handle("GET /email/manage", requireSubscriber(ListHandler{svc}))
	mux.Handle("GET /email/manage/frequency/{id}", requireSubscriber(FrequencyFormHandler{svc}))
	mux.Handle("POST /email/manage/frequency/{id}/change", requireSubscriber(ChangeFrequencyHandler{svc}))
	mux.Handle("GET /email/manage/address", requireSubscriber(AddressFormHandler{svc}))
	mux.Handle("POST /email/manage/address/change", requireSubscriber(ChangeAddressHandler{svc}))
	mux.Handle("GET /email/manage/unsubscribe-all", requireSubscriber(UnsubscribeAllPromptHandler{svc}))
	mux.Handle("POST /email/manage/unsubscribe-all", requireSubscriber(UnsubscribeAllHandler{svc}))
}
