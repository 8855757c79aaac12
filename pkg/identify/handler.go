// Package identify answers item lookups against the catalog.
package identify

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/joeydtaylor/armory/pkg/catalog"
	"github.com/joeydtaylor/armory/pkg/codec"
	"github.com/joeydtaylor/armory/pkg/core"
	"go.uber.org/zap"
)

const (
	// HandlerName is the manifest name of the lookup handler.
	HandlerName = "items.identify"

	ParamName  = "name"
	RandomName = "random"
)

// Item is the success payload.
type Item struct {
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	Description string `json:"description"`
	Power       int    `json:"power"`
}

type errorBody struct {
	Error string `json:"error"`
}

var fallbackInternal = []byte(`{"error":"` + internalMessage + `"}`)

// Headers returns the header pair carried by every response.
func Headers() map[string]string {
	return map[string]string{
		"Content-Type":                codec.ContentTypeJSON,
		"Access-Control-Allow-Origin": "*",
	}
}

type Handler struct {
	cat   *catalog.Catalog
	log   *zap.Logger
	codec codec.Codec
	pick  func(n int) int
	now   func() time.Time
}

type Option func(*Handler)

// WithPicker replaces the uniform index source used for "random".
func WithPicker(fn func(n int) int) Option { return func(h *Handler) { h.pick = fn } }

func WithClock(fn func() time.Time) Option { return func(h *Handler) { h.now = fn } }

func WithCodec(c codec.Codec) Option { return func(h *Handler) { h.codec = c } }

func New(cat *catalog.Catalog, zl *zap.Logger, opts ...Option) *Handler {
	if zl == nil {
		zl = zap.NewNop()
	}
	h := &Handler{
		cat:   cat,
		log:   zl,
		codec: codec.JSONStrict,
		pick:  rand.IntN,
		now:   time.Now,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Register exposes h to manifest routes under HandlerName.
func Register(h *Handler) {
	core.Register(HandlerName, h.Handle)
}

// Handle never returns an error: every failure, including a panic, becomes a
// structured response. The error result satisfies core.InprocHandler.
func (h *Handler) Handle(_ context.Context, req core.Request) (resp core.Response, _ error) {
	defer func() {
		if r := recover(); r != nil {
			resp = h.failure(fmt.Errorf("panic: %v", r))
		}
	}()

	h.log.Info("request received", zap.Time("at", h.now()))

	item, outcome, err := h.identify(req)
	if err != nil {
		return h.failure(err), nil
	}
	body, err := h.codec.Marshal(item)
	if err != nil {
		return h.failure(err), nil
	}
	itemLookups.WithLabelValues(outcome).Inc()
	return core.Response{StatusCode: http.StatusOK, Headers: Headers(), Body: body}, nil
}

func (h *Handler) identify(req core.Request) (Item, string, error) {
	name, ok := req.Param(ParamName)
	if !ok {
		return Item{}, "", ErrMissingName
	}
	h.log.Info("looking up item", zap.String("name", name))

	if strings.EqualFold(name, RandomName) {
		return view(h.cat.At(h.pick(h.cat.Len()))), outcomeRandom, nil
	}
	e, found := h.cat.Lookup(name)
	if !found {
		return Item{}, "", ErrNotFound
	}
	return view(e), outcomeFound, nil
}

func (h *Handler) failure(err error) core.Response {
	status := statusFor(err)
	itemLookups.WithLabelValues(outcomeFor(err)).Inc()

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error("error processing request", zap.Error(err))
		msg = internalMessage
	}
	body, mErr := h.codec.Marshal(errorBody{Error: msg})
	if mErr != nil {
		h.log.Error("error encoding response", zap.Error(mErr))
		status, body = http.StatusInternalServerError, fallbackInternal
	}
	return core.Response{StatusCode: status, Headers: Headers(), Body: body}
}

func view(e catalog.Entry) Item {
	return Item{
		Name:        e.Name,
		Rarity:      string(e.Rarity),
		Description: e.Description,
		Power:       e.Power,
	}
}
