// Package server exposes the order form over HTTP: a server-rendered HTML
// page, a JSON validation endpoint, and a health check.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-pizzaform/pkg/form"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/render"
	"github.com/goliatone/go-pizzaform/pkg/renderers/jsonview"
	"github.com/goliatone/go-pizzaform/pkg/renderers/vanilla"
)

// MessageInvalidSelection is shown when a posted form names unknown fields
// or toppings.
const MessageInvalidSelection = "Invalid selection"

type Config struct {
	Submitter  form.Submitter
	Logger     *zap.Logger
	Theme      *theme.RendererConfig
	Title      string
	Production bool
}

type handler struct {
	submitter form.Submitter
	registry  *render.Registry
	json      render.Renderer
	options   render.RenderOptions
	logger    *zap.Logger
}

// NewRouter builds the gin engine serving the order form.
func NewRouter(cfg Config) (*gin.Engine, error) {
	if cfg.Submitter == nil {
		return nil, errors.New("server: submitter is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	jsonRenderer := jsonview.New()
	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(jsonRenderer)

	h := &handler{
		submitter: cfg.Submitter,
		registry:  registry,
		json:      jsonRenderer,
		options: render.RenderOptions{
			Action: "/",
			Title:  cfg.Title,
			Theme:  cfg.Theme,
		},
		logger: logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.StaticFS("/assets", http.FS(vanilla.AssetsFS()))
	router.GET("/", h.show)
	router.POST("/", h.submit)
	router.POST("/validate", h.validate)

	return router, nil
}

func (h *handler) show(c *gin.Context) {
	f := form.New(h.submitter)
	f.Wait()
	h.respond(c, http.StatusOK, h.negotiate(c), f.Snapshot())
}

func (h *handler) submit(c *gin.Context) {
	ctx := c.Request.Context()
	renderer := h.negotiate(c)

	f, err := h.fill(ctx, c)
	if err != nil {
		snap := f.Snapshot()
		snap.Failure = MessageInvalidSelection
		h.respond(c, http.StatusBadRequest, renderer, snap)
		return
	}
	if f.Snapshot().Disabled {
		h.respond(c, http.StatusUnprocessableEntity, renderer, f.Snapshot())
		return
	}

	outcome, err := f.Submit(ctx)
	if err != nil {
		h.respond(c, http.StatusUnprocessableEntity, renderer, f.Snapshot())
		return
	}
	if !outcome.Succeeded() {
		h.logger.Warn("order submission failed",
			zap.String("message", outcome.Message),
			zap.Error(outcome.Cause),
		)
		h.respond(c, http.StatusBadGateway, renderer, f.Snapshot())
		return
	}

	h.logger.Info("order placed", zap.String("message", outcome.Message))
	f.Wait()
	h.respond(c, http.StatusOK, renderer, f.Snapshot())
}

func (h *handler) validate(c *gin.Context) {
	f, err := h.fill(c.Request.Context(), c)
	status := http.StatusOK
	snap := f.Snapshot()
	if err != nil {
		status = http.StatusBadRequest
		snap.Failure = MessageInvalidSelection
	}
	h.respond(c, status, h.json, snap)
}

// fill replays the posted fields as change events on a fresh form and waits
// for validation to settle.
func (h *handler) fill(ctx context.Context, c *gin.Context) (*form.Form, error) {
	f := form.New(h.submitter)
	if err := c.Request.ParseForm(); err != nil {
		f.Wait()
		return f, err
	}

	events := []form.Event{
		form.TextChange(order.FieldFullName, c.PostForm(order.FieldFullName)),
		form.SelectChange(order.FieldSize, c.PostForm(order.FieldSize)),
	}
	for _, id := range c.PostFormArray(order.FieldToppings) {
		events = append(events, form.CheckboxChange(order.FieldToppings, id, true))
	}

	var changeErr error
	for _, ev := range events {
		if err := f.Change(ctx, ev); err != nil {
			changeErr = err
			break
		}
	}
	f.Wait()
	return f, changeErr
}

func (h *handler) negotiate(c *gin.Context) render.Renderer {
	renderer, err := h.registry.Negotiate(c.GetHeader("Accept"))
	if err != nil {
		return h.json
	}
	return renderer
}

func (h *handler) respond(c *gin.Context, status int, renderer render.Renderer, snap form.Snapshot) {
	body, err := renderer.Render(c.Request.Context(), snap, h.options)
	if err != nil {
		h.logger.Error("render form", zap.String("renderer", renderer.Name()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.Data(status, renderer.ContentType(), body)
}

func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
