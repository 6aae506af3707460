// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mqttsink publishes fault reports to an MQTT broker. Each
// report goes out as a retained message, so the last words of a dead
// process stay on the broker for whoever subscribes after the fact.
package mqttsink

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Options configure a fault publisher.
type Options struct {
	Broker   string        // host:port of the MQTT broker
	ClientID string        // defaults to "faultline"
	Username string        // optional credentials
	Password string
	Topic    string        // topic the reports are published to
	Timeout  time.Duration // per-operation wait bound, defaults to 5s
}

// Publisher is a sink that publishes each write as one retained MQTT
// message.
type Publisher struct {
	client  mqtt.Client
	topic   string
	timeout time.Duration
}

// Connect dials the broker and returns a publisher for o.Topic.
func Connect(o Options) (*Publisher, error) {
	if o.Broker == "" {
		return nil, errors.New("mqttsink: no broker address")
	}
	if o.Topic == "" {
		return nil, errors.New("mqttsink: no topic")
	}
	if o.ClientID == "" {
		o.ClientID = "faultline"
	}
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker("tcp://" + o.Broker)
	opts.SetClientID(o.ClientID)
	if o.Username != "" {
		opts.SetUsername(o.Username)
		opts.SetPassword(o.Password)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(o.Timeout) {
		return nil, fmt.Errorf("mqttsink: connect to %s: timed out", o.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqttsink: connect to %s: %w", o.Broker, err)
	}
	return &Publisher{client: client, topic: o.Topic, timeout: o.Timeout}, nil
}

// Write publishes p as one retained message at QoS 1. The wait is
// bounded: a fault report must not hang a dying process on a dead
// broker.
func (p *Publisher) Write(b []byte) (int, error) {
	payload := make([]byte, len(b))
	copy(payload, b)

	token := p.client.Publish(p.topic, 1, true, payload)
	if !token.WaitTimeout(p.timeout) {
		return 0, fmt.Errorf("mqttsink: publish to %s: timed out", p.topic)
	}
	if err := token.Error(); err != nil {
		return 0, fmt.Errorf("mqttsink: publish to %s: %w", p.topic, err)
	}
	return len(b), nil
}

// Close disconnects from the broker, allowing a short quiesce for
// in-flight messages.
func (p *Publisher) Close() error {
	p.client.Disconnect(250)
	return nil
}
