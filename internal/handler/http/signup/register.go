package signup

import (
	"net/http"

	"github.com/Tubbz-alt/email-alert-frontend/internal/i18n"
	signupUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/signup"
)

// Register adds the public signup routes to mux.
func Register(mux *http.ServeMux, svc *signupUC.Service, catalog *i18n.Catalog) {
	lookup := LookupHandler{Svc: svc, Catalog: catalog}
	mux.Handle("GET "+SignupPath, lookup)
	mux.Handle("GET "+SignupPath+"/confirm", lookup)
	mux.Handle("POST "+SignupPath, SubscribeHandler{Svc: svc, Catalog: catalog})
}
