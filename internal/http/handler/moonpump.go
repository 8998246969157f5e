package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"moonpump/internal/core"
	"moonpump/internal/http/handler/middleware"
	"moonpump/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const authHeader = "AUTH_TOKEN"

var (
	Authenticate      = "POST /api/auth"
	ListTokens        = "GET /api/token"
	CreateToken       = "POST /api/token"
	GetToken          = "GET /api/token/{address}"
	ListTransactions  = "GET /api/transaction"
	CreateTransaction = "POST /api/transaction"
	GetStats          = "GET /api/stats"
	GetQuote          = "GET /api/quote"
)

type MoonPumpHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	moonPump         MoonPumpService
	quotes           QuoteService
}

func NewMoonPumpHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service MoonPumpService, quotes QuoteService) *MoonPumpHandler {
	return &MoonPumpHandler{
		logs:             logger,
		requestValidator: requestValidator,
		moonPump:         service,
		quotes:           quotes,
	}
}

// Register attaches every route to mux.
func (h *MoonPumpHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(ListTokens, h.HandleListTokens)
	mux.HandleFunc(CreateToken, h.HandleCreateToken)
	mux.HandleFunc(GetToken, h.HandleGetToken)
	mux.HandleFunc(ListTransactions, h.HandleListTransactions)
	mux.HandleFunc(CreateTransaction, h.HandleCreateTransaction)
	mux.HandleFunc(GetStats, h.HandleGetStats)
	mux.HandleFunc(GetQuote, h.HandleGetQuote)
}

func (h *MoonPumpHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not authenticate", err, Authenticate, requestId)
		return
	}

	token, err := h.moonPump.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidSignature) || errors.Is(err, core.ErrLoginExpired) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

func (h *MoonPumpHandler) HandleListTokens(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tokens, err := h.moonPump.ListTokens(r.Context())
	if err != nil {
		h.internalError(w, "Could not retrieve tokens", err, ListTokens, requestId)
		return
	}

	h.respond(w, tokens, http.StatusOK, requestId)
}

func (h *MoonPumpHandler) HandleCreateToken(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	session, ok := h.session(w, r, CreateToken, requestId)
	if !ok {
		return
	}

	var payload payload.CreateTokenRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not create token", err, CreateToken, requestId)
		return
	}

	token, err := h.moonPump.CreateToken(r.Context(), session, payload.ToNewToken())
	if err != nil {
		h.serviceError(w, "Could not create token", err, CreateToken, requestId)
		return
	}

	h.logs.Infow("token created",
		"token", token.Address,
		"handler", CreateToken,
		"request_id", requestId)
	h.respond(w, token, http.StatusCreated, requestId)
}

func (h *MoonPumpHandler) HandleGetToken(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tokenRequest := payload.TokenRequest{Address: r.PathValue("address")}
	if err := tokenRequest.Validate(); err != nil {
		h.badRequest(w, "Request failed", err, GetToken, requestId)
		return
	}

	token, err := h.moonPump.GetToken(r.Context(), tokenRequest.Address)
	if err != nil {
		h.serviceError(w, "Could not retrieve token", err, GetToken, requestId)
		return
	}

	h.respond(w, token, http.StatusOK, requestId)
}

func (h *MoonPumpHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	query := r.URL.Query()
	txRequest, err := payload.NewTransactionsRequest(query.Get("tokenAddress"), query.Get("page"))
	if err == nil {
		err = txRequest.Validate()
	}
	if err != nil {
		h.badRequest(w, "Request failed", err, ListTransactions, requestId)
		return
	}

	page, err := h.moonPump.ListTransactions(r.Context(), txRequest.TokenAddress, txRequest.Page)
	if err != nil {
		h.internalError(w, "Could not retrieve transactions", err, ListTransactions, requestId)
		return
	}

	h.respond(w, page, http.StatusOK, requestId)
}

func (h *MoonPumpHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	session, ok := h.session(w, r, CreateTransaction, requestId)
	if !ok {
		return
	}

	var payload payload.CreateTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.badRequest(w, "Could not save transaction", err, CreateTransaction, requestId)
		return
	}

	tx, err := h.moonPump.SaveTransaction(r.Context(), session, payload.ToNewTransaction())
	if err != nil {
		h.serviceError(w, "Could not save transaction", err, CreateTransaction, requestId)
		return
	}

	h.respond(w, tx, http.StatusCreated, requestId)
}

func (h *MoonPumpHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	stats, err := h.moonPump.Stats(r.Context())
	if err != nil {
		h.internalError(w, "Could not retrieve stats", err, GetStats, requestId)
		return
	}

	h.respond(w, stats, http.StatusOK, requestId)
}

// HandleGetQuote answers 200 with amountOut "0" when the quote fails so clients can reset.
func (h *MoonPumpHandler) HandleGetQuote(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	query := r.URL.Query()
	quoteRequest := payload.QuoteRequest{
		TokenIn:  query.Get("tokenIn"),
		TokenOut: query.Get("tokenOut"),
		AmountIn: query.Get("amountIn"),
	}
	if err := quoteRequest.Validate(); err != nil {
		h.badRequest(w, "Request failed", err, GetQuote, requestId)
		return
	}

	amountOut, err := h.quotes.GetQuote(r.Context(),
		common.HexToAddress(quoteRequest.TokenIn),
		common.HexToAddress(quoteRequest.TokenOut),
		quoteRequest.AmountIn)
	if err != nil {
		h.logs.Warnw("quote failed",
			"error", err,
			"handler", GetQuote,
			"request_id", requestId)
		h.respond(w, QuoteResponse{AmountOut: "0", Error: quoteUnavailable}, http.StatusOK, requestId)
		return
	}

	h.respond(w, QuoteResponse{AmountOut: amountOut.String()}, http.StatusOK, requestId)
}

func (h *MoonPumpHandler) session(w http.ResponseWriter, r *http.Request, handler, requestId string) (string, bool) {
	authToken := r.Header.Get(authHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", handler, "request_id", requestId)
		return "", false
	}
	return authToken, true
}

// serviceError maps domain errors to status codes.
func (h *MoonPumpHandler) serviceError(w http.ResponseWriter, message string, err error, handler, requestId string) {
	var code int
	switch {
	case errors.Is(err, core.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, core.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, core.ErrTokenNotFound):
		code = http.StatusNotFound
	case errors.Is(err, core.ErrTokenExists), errors.Is(err, core.ErrTransactionExists):
		code = http.StatusConflict
	default:
		h.internalError(w, message, err, handler, requestId)
		return
	}

	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, code, requestId)
	h.logs.Warnw("request rejected",
		"error", err,
		"status", code,
		"handler", handler,
		"request_id", requestId)
}

func (h *MoonPumpHandler) badRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   fmt.Errorf("invalid request: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *MoonPumpHandler) internalError(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   oopsErr,
	}, http.StatusInternalServerError,
		requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

func (h *MoonPumpHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
