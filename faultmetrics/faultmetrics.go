// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package faultmetrics exposes fault reporting state as Prometheus
// collectors on the default registry.
package faultmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"code.hybscloud.com/faultline"
)

var (
	faultsReported = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "faultline_faults_reported_total",
		Help: "Fault reports delivered to the registered sink.",
	})
	handlerRegistered = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "faultline_handler_registered",
		Help: "Whether a fault handler is currently registered. A halted process reads 0.",
	}, func() float64 {
		if faultline.State() == faultline.SlotRegistered {
			return 1
		}
		return 0
	})
)

func init() {
	prometheus.MustRegister(faultsReported, handlerRegistered)
}

// Observe wraps a hook so that each delivered report increments
// faultline_faults_reported_total. The counter moves before the report
// is written.
func Observe[W faultline.Sink](next faultline.Hook[W]) faultline.Hook[W] {
	if next == nil {
		panic("faultmetrics: nil hook")
	}
	return func(w W, info *faultline.Info) {
		faultsReported.Inc()
		next(w, info)
	}
}
