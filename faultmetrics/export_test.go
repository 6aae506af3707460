// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package faultmetrics

import "github.com/prometheus/client_golang/prometheus"

var (
	FaultsReported    prometheus.Counter   = faultsReported
	HandlerRegistered prometheus.GaugeFunc = handlerRegistered
)
