package manage

import (
	"net/http"

	"github.com/Tubbz-alt/email-alert-frontend/internal/domain/entity"
	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/auth"
	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/pathutil"
	"github.com/Tubbz-alt/email-alert-frontend/internal/handler/http/respond"
	manageUC "github.com/Tubbz-alt/email-alert-frontend/internal/usecase/manage"
)

// load builds the per-request session for the authenticated subscriber.
// It writes the error response itself and returns nil on failure.
func load(w http.ResponseWriter, r *http.Request, svc *manageUC.Service) *manageUC.Session {
	subscriberID, ok := auth.SubscriberIDFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized, "authentication required")
		return nil
	}
	sess, err := svc.Load(r.Context(), subscriberID)
	if err != nil {
		writeError(w, err)
		return nil
	}
	return sess
}

// ownedID returns the path's subscription id when it belongs to the session.
// A malformed id cannot belong to anyone, so it answers 404 like any other stranger's id.
func ownedID(w http.ResponseWriter, r *http.Request, sess *manageUC.Session) (string, bool) {
	id, err := pathutil.ValidateID(r.PathValue("id"))
	if err == nil {
		if _, ok := sess.Subscription(id); ok {
			return id, true
		}
	}
	writeError(w, manageUC.ErrNotFound)
	return "", false
}

type ListHandler struct{ Svc *manageUC.Service }

// ServeHTTP lists the subscriber's subscriptions
// @Summary      List subscriptions
// @Description  Returns the authenticated subscriber's address and subscriptions.
// @Tags         manage
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} OverviewDTO
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      503 {object} respond.ErrorBody "Email alert API unavailable"
// @Router       /email/manage [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := load(w, r, h.Svc)
	if sess == nil {
		return
	}
	respond.JSON(w, http.StatusOK, toOverviewDTO(h.Svc.ListSubscriptions(sess)))
}

type FrequencyFormHandler struct{ Svc *manageUC.Service }

// ServeHTTP returns the frequency form for one subscription
// @Summary      Frequency change form
// @Description  Returns the current frequency and the choices for one of the subscriber's subscriptions.
// @Tags         manage
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Success      200 {object} FrequencyFormDTO
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      404 {object} respond.ErrorBody "Subscription not found"
// @Failure      503 {object} respond.ErrorBody "Email alert API unavailable"
// @Router       /email/manage/frequency/{id} [get]
func (h FrequencyFormHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := load(w, r, h.Svc)
	if sess == nil {
		return
	}
	id, ok := ownedID(w, r, sess)
	if !ok {
		return
	}

	form, err := h.Svc.BeginFrequencyChange(sess, id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toFrequencyFormDTO(form))
}

type ChangeFrequencyHandler struct{ Svc *manageUC.Service }

// ServeHTTP changes the frequency of one subscription
// @Summary      Change frequency
// @Description  Changes how often the subscriber is emailed about one subscription.
// @Tags         manage
// @Security     BearerAuth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Param        body body FrequencyRequest true "New frequency"
// @Success      200 {object} ConfirmationDTO
// @Failure      400 {object} respond.ErrorBody "Missing or invalid frequency"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      404 {object} respond.ErrorBody "Subscription not found"
// @Failure      503 {object} respond.ErrorBody "Email alert API unavailable"
// @Router       /email/manage/frequency/{id}/change [post]
func (h ChangeFrequencyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := load(w, r, h.Svc)
	if sess == nil {
		return
	}
	id, ok := ownedID(w, r, sess)
	if !ok {
		return
	}

	frequency, present, err := formField(r, "new_frequency")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeBadRequest, errMalformedBody.Error())
		return
	}
	if !present {
		respond.Error(w, http.StatusBadRequest, codeMissingFrequency, "new_frequency is required")
		return
	}

	conf, err := h.Svc.ApplyFrequencyChange(r.Context(), sess, id, entity.Frequency(frequency))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toConfirmationDTO(conf))
}

type AddressFormHandler struct{ Svc *manageUC.Service }

// ServeHTTP returns the address change form
// @Summary      Address change form
// @Description  Returns the address currently on record.
// @Tags         manage
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} AddressFormDTO
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      503 {object} respond.ErrorBody "Email alert API unavailable"
// @Router       /email/manage/address [get]
func (h AddressFormHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := load(w, r, h.Svc)
	if sess == nil {
		return
	}
	form := h.Svc.BeginAddressChange(sess)
	respond.JSON(w, http.StatusOK, AddressFormDTO{Address: form.Address, BackURL: form.BackURL})
}

type ChangeAddressHandler struct{ Svc *manageUC.Service }

// ServeHTTP changes the subscriber's address
// @Summary      Change address
// @Description  Changes the address every subscription is sent to. A rejected address is echoed back with the address still on record.
// @Tags         manage
// @Security     BearerAuth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body body AddressRequest true "New address"
// @Success      200 {object} ConfirmationDTO
// @Failure      400 {object} respond.ErrorBody "Malformed body"
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      422 {object} respond.ErrorBody "Missing or invalid address"
// @Failure      503 {object} respond.ErrorBody "Email alert API unavailable"
// @Router       /email/manage/address/change [post]
func (h ChangeAddressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	address, _, err := formField(r, "new_address")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeBadRequest, errMalformedBody.Error())
		return
	}

	sess := load(w, r, h.Svc)
	if sess == nil {
		return
	}
	conf, err := h.Svc.ApplyAddressChange(r.Context(), sess, address)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toConfirmationDTO(conf))
}

type UnsubscribeAllPromptHandler struct{ Svc *manageUC.Service }

// ServeHTTP returns the unsubscribe-all confirmation step
// @Summary      Unsubscribe-all confirmation
// @Tags         manage
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} UnsubscribeAllDTO
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      503 {object} respond.ErrorBody "Email alert API unavailable"
// @Router       /email/manage/unsubscribe-all [get]
func (h UnsubscribeAllPromptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := load(w, r, h.Svc)
	if sess == nil {
		return
	}
	prompt := h.Svc.ConfirmUnsubscribeAll(sess)
	respond.JSON(w, http.StatusOK, UnsubscribeAllDTO{Description: prompt.Description, BackURL: prompt.BackURL})
}

type UnsubscribeAllHandler struct{ Svc *manageUC.Service }

// ServeHTTP unsubscribes the subscriber from everything
// @Summary      Unsubscribe from everything
// @Description  Ends every subscription. Repeating the request succeeds.
// @Tags         manage
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} ConfirmationDTO
// @Failure      401 {object} respond.ErrorBody "Authentication required"
// @Failure      503 {object} respond.ErrorBody "Email alert API unavailable"
// @Router       /email/manage/unsubscribe-all [post]
func (h UnsubscribeAllHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := load(w, r, h.Svc)
	if sess == nil {
		return
	}
	conf, err := h.Svc.ApplyUnsubscribeAll(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toConfirmationDTO(conf))
}
