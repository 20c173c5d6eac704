package cli

import (
	"time"

	"go.uber.org/zap"

	"github.com/saluton/saluton/lib/monitoring"
	"github.com/saluton/saluton/web"
)

func newWebMetrics() web.Metrics {
	return web.Metrics{
		Request:    monitoring.NewCounter("web_Requests"),
		Default:    monitoring.NewCounter("web_DefaultGreetings"),
		Localized:  monitoring.NewCounter("web_LocalizedGreetings"),
		Fallback:   monitoring.NewCounter("web_FallbackGreetings"),
		BadRequest: monitoring.NewCounter("web_BadRequests"),
	}
}

func startReport(m web.Metrics) {
	evReqPS := monitoring.NewCounter("web_ReqPS")
	requests := m.Request.Get()
	go func() {
		var requestsNew int64
		for range time.NewTicker(1 * time.Second).C {
			requestsNew = m.Request.Get()
			reqps := requestsNew - requests
			requests = requestsNew
			evReqPS.Set(reqps)
			if reqps == 0 {
				// Server is idle, nothing to report.
				continue
			}
			zap.S().Infof(
				"[WEB] %d req/s; %d localized; %d fallback; %d rejected",
				reqps, m.Localized.Get(), m.Fallback.Get(), m.BadRequest.Get())
		}
	}()
}
