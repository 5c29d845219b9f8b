package gateway

import (
	"net/http"

	"github.com/dmitrymomot/mailgate/internal"
	"github.com/dmitrymomot/mailgate/middlewares"
)

// Handler mounts the external API.
type Handler struct {
	svc    *Service
	apiKey string
}

func NewHandler(svc *Service, apiKey string) *Handler {
	return &Handler{svc: svc, apiKey: apiKey}
}

// Routes implements internal.Handler.
func (h *Handler) Routes(r internal.Router) {
	r.Route("/external", func(r internal.Router) {
		r.Use(middlewares.APIKey(h.apiKey))
		r.POST("/send-email", h.sendEmail)
		r.POST("/query-email", h.queryEmail)
	})
}

type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func success(c internal.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Code: http.StatusOK, Message: "success", Data: data})
}

func (h *Handler) sendEmail(c internal.Context) error {
	var req SendRequest
	if err := c.BindJSON(&req); err != nil {
		return err
	}

	res, err := h.svc.SendEmail(c.Context(), req)
	if err != nil {
		return err
	}
	return success(c, res)
}

func (h *Handler) queryEmail(c internal.Context) error {
	var req QueryRequest
	if err := c.BindJSON(&req); err != nil {
		return err
	}

	res, err := h.svc.QueryEmail(c.Context(), req)
	if err != nil {
		return err
	}
	return success(c, res)
}
