// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import "github.com/prometheus/client_golang/prometheus"

const resultLabel = "result"

var (
	hitLabels  = prometheus.Labels{resultLabel: "hit"}
	missLabels = prometheus.Labels{resultLabel: "miss"}
)

type cacheMetrics struct {
	getCount *prometheus.CounterVec
	getTime  *prometheus.CounterVec
	setCount prometheus.Counter
	setTime  prometheus.Counter
	len      prometheus.Gauge
}

func newMetrics(namespace string, registry prometheus.Registerer) (*cacheMetrics, error) {
	m := &cacheMetrics{
		getCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "get_count",
				Help:      "number of get calls",
			},
			[]string{resultLabel},
		),
		getTime: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "get_time",
				Help:      "cumulative seconds spent in get calls",
			},
			[]string{resultLabel},
		),
		setCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "set_count",
			Help:      "number of set calls",
		}),
		setTime: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "set_time",
			Help:      "cumulative seconds spent in set calls",
		}),
		len: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "len",
			Help:      "number of entries",
		}),
	}

	collectors := []prometheus.Collector{
		m.getCount,
		m.getTime,
		m.setCount,
		m.setTime,
		m.len,
	}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}
