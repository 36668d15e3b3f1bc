package httphandler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"WooWithErp/internal/database"
	"WooWithErp/internal/handlers/woo"
	"WooWithErp/internal/telegram"
	"WooWithErp/internal/version"
	"WooWithErp/pkg/logging"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

const defaultMaxBodyBytes = 4 << 20

// SettingsFunc returns the settings snapshot for one request.
type SettingsFunc func() (woo.Settings, error)

type Handler struct {
	store        *database.Store
	settings     SettingsFunc
	notifier     telegram.Notifier
	maxBodyBytes int64
}

func NewHandler(store *database.Store, settings SettingsFunc, notifier telegram.Notifier, maxBodyBytes int64) *Handler {
	if notifier == nil {
		notifier = telegram.Nop{}
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{store: store, settings: settings, notifier: notifier, maxBodyBytes: maxBodyBytes}
}

// Router registers the routes of the service.
func (h *Handler) Router() *httprouter.Router {
	router := httprouter.New()
	router.GET("/", h.HandlerOtherAll)
	router.POST("/webhook/order", h.HandlerWebhookOrder)
	return router
}

func (h *Handler) HandlerOtherAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	logger := logging.GetLogger()
	logger.Debug("Start HandlerOtherAll")
	defer logger.Debug("End HandlerOtherAll")

	logger.Debug("Method\n\t", r.Method)
	logger.Debug("URL\n\t", r.URL)
	logger.Debug("Header\n\t", r.Header)

	v := version.GetVersion()
	if _, err := fmt.Fprintf(w, "Version %s", v.String()); err != nil {
		logger.Errorf("failed to send response, error: %v", err)
	}
}

// ErrorResponse is the body of every failed webhook delivery.
type ErrorResponse struct {
	Exception string `json:"exception"`
	Exc       string `json:"exc"`
	RequestID string `json:"request_id"`
}

func (h *Handler) HandlerWebhookOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := uuid.NewString()
	logger := logging.GetLogger().GetLoggerWithField("request_id", requestID)
	logger.Debug("Start HandlerWebhookOrder")
	defer logger.Debug("End HandlerWebhookOrder")

	event := r.Header.Get(woo.HEADER_EVENT)
	logger.Debugf("event %q, delivery %q", event, r.Header.Get(woo.HEADER_DELIVERY))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	r.Body.Close()
	if err != nil {
		h.fail(w, r, requestID, nil, &woo.MalformedPayloadError{Reason: "cannot read body", Err: err})
		return
	}
	logger.Debug("body\n\t", string(body))

	settings, err := h.settings()
	if err != nil {
		h.fail(w, r, requestID, body, err)
		return
	}

	payload, err := woo.NewValidator(settings.Secret).Validate(event, r.Header.Get(woo.HEADER_SIGNATURE), body)
	if err != nil {
		h.fail(w, r, requestID, body, err)
		return
	}

	result, err := woo.NewReconciler(h.store, settings).Process(r.Context(), payload)
	if err != nil {
		h.fail(w, r, requestID, body, err)
		return
	}
	if result.Skipped {
		logger.Infof("delivery skipped: %s", result.SkipReason)
	} else {
		logger.Infof("order %s imported as %s", result.SalesOrder.PONo, result.SalesOrder.Name)
	}

	if _, err := fmt.Fprint(w, "Ok"); err != nil {
		logger.Errorf("failed to send response, error: %v", err)
	}
}

// fail records err in the error log, alerts the operator and writes the
// error response.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, requestID string, body []byte, err error) {
	logger := logging.GetLogger().GetLoggerWithField("request_id", requestID)
	status := StatusCode(err)
	trace := fmt.Sprintf("%+v", err)
	logger.Errorf("webhook failed with %d: %v", status, err)

	record := fmt.Sprintf("%s\n\nrequest_id: %s\n%s %s\nheaders: %v\nbody:\n%s",
		trace, requestID, r.Method, r.URL, r.Header, string(body))
	// a cancelled request must not lose its error log
	if _, logErr := h.store.InsertErrorLog(context.Background(), "WooCommerce webhook", record); logErr != nil {
		logger.Errorf("failed InsertErrorLog, error: %v", logErr)
	}

	text := fmt.Sprintf("Failed to process WooCommerce order webhook (request %s): %v", requestID, err)
	if sendErr := h.notifier.SendMessage(text); sendErr != nil {
		logger.Errorf("failed telegram.SendMessage(), error: %v", sendErr)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := ErrorResponse{Exception: err.Error(), Exc: trace, RequestID: requestID}
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.Errorf("failed to send response, error: %v", encErr)
	}
}

// StatusCode maps a pipeline error to the HTTP status returned to WooCommerce.
func StatusCode(err error) int {
	var (
		authErr      *woo.AuthenticationError
		malformedErr *woo.MalformedPayloadError
		lineErr      *woo.InvalidLineItemError
		totalsErr    *woo.TotalsMismatchError
	)
	switch {
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &malformedErr):
		return http.StatusBadRequest
	case errors.As(err, &lineErr):
		if lineErr.NotFound {
			return http.StatusNotFound
		}
		return http.StatusUnprocessableEntity
	case errors.As(err, &totalsErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
