// Copyright (c) 2025 Saluton Authors. All rights reserved.
// Use of this source code is governed by a MPL 2.0
// license that can be found in the LICENSE file.

package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saluton/saluton/core"
	"github.com/saluton/saluton/lib/format"
)

func newEngine(h *greetingHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	g := gin.New()
	g.Use(gin.Recovery())
	g.GET("/greeting", h.Handle)
	return g
}

type greetingHandler struct {
	log     *zap.Logger
	metrics Metrics
	conf    GreetingConfig
	greeter core.Greeter // Nil means capability is not available.
}

func newGreetingHandler(log *zap.Logger, m Metrics, conf GreetingConfig, greeter core.Greeter) *greetingHandler {
	return &greetingHandler{log: log, metrics: m, conf: conf, greeter: greeter}
}

// Handle serves GET /greeting?name=<name>&language=<code>.
// Name is required. Language is optional: without it the default
// greeting is used, with it the greeter capability is asked for a
// format, and unsupported languages get the fixed fallback greeting.
func (h *greetingHandler) Handle(c *gin.Context) {
	h.metrics.Request.Add(1)
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		h.metrics.BadRequest.Add(1)
		c.String(http.StatusBadRequest, "name parameter is required")
		return
	}
	lang := c.Query("language")
	if lang == "" {
		h.metrics.Default.Add(1)
		c.String(http.StatusOK, format.Render(h.conf.DefaultFormat, name))
		return
	}
	if h.greeter != nil {
		if langFormat, ok := h.greeter.FormatFor(lang); ok {
			h.metrics.Localized.Add(1)
			c.String(http.StatusOK, format.Render(langFormat, name))
			return
		}
	}
	h.log.Debug("Requested language is not available", zap.String("language", lang))
	h.metrics.Fallback.Add(1)
	c.String(http.StatusOK, format.Render(h.conf.UnknownFormat, name))
}
