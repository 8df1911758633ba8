// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var (
	// Encoding metrics
	keysEncoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verkey_keys_encoded_total",
			Help: "Total number of versions encoded through the API",
		},
		[]string{"mode", "result"},
	)

	bulkRequestSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "verkey_bulk_request_versions",
			Help:    "Number of versions per bulk request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		},
	)

	// Index metrics
	indexOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verkey_index_operations_total",
			Help: "Total number of index operations by type and result",
		},
		[]string{"op", "result"},
	)
)

func encodeMode(strict bool) string {
	if strict {
		return "strict"
	}
	return "lenient"
}

func resultLabel(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
