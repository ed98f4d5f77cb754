/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package iiop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessageReadCount counts inbound GIOP messages by message type.
	MessageReadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giopkg_iiop_messages_read_total",
			Help: "GIOP messages read, by message type",
		},
		[]string{"type"})

	// MessageWriteCount counts outbound GIOP messages by message type.
	MessageWriteCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giopkg_iiop_messages_written_total",
			Help: "GIOP messages written, by message type",
		},
		[]string{"type"})

	// ErrorCount counts stream-level failures.
	// Example usage:
	//   iiop.ErrorCount.WithLabelValues("timeout").Inc()
	ErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giopkg_iiop_errors_total",
			Help: "stream failures, by kind",
		},
		[]string{"kind"})
)
