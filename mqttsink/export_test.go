// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mqttsink

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// NewWithClient wires a publisher around an already-connected client.
func NewWithClient(c mqtt.Client, topic string, timeout time.Duration) *Publisher {
	return &Publisher{client: c, topic: topic, timeout: timeout}
}
