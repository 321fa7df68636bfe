/*
Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/x-xyz/hofa/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"env:" + firstNonEmpty(viper.GetString("env_name"), env.EnvName()),
		"app:" + firstNonEmpty(viper.GetString("app_name"), env.AppName()),
	}
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{ddTags: ddTags},
	}
}

// Metrics prefixes every key with the package name and never lets a metric
// failure escape to the caller.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// bumpSumPanic counts panics raised while bumping.
func (mt *Metrics) bumpSumPanic(key, tag string) {
	mt.datadog.BumpSum(key, 1, 1, "tag", tag)
}

func (mt *Metrics) recoverBump(kind, key string, tags []string) {
	if err := recover(); err != nil {
		mt.bumpSumPanic(kind+".panic", mt.key(key)+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpavg", key, tags)
	mt.datadog.BumpAvg(mt.key(key), val, 1, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpsum", key, tags)
	mt.datadog.BumpSum(mt.key(key), val, 1, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumphistogram", key, tags)
	mt.datadog.BumpHistogram(mt.key(key), val, 1, tags...)
}

// BumpTime is a special version of BumpHistogram which is specialized for
// timers. A convenient way of recording the duration of a function is:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		ddEnd: mt.datadog.BumpTime(mt.key(key), 1, tags...),
		panicHandler: func() {
			mt.bumpSumPanic("bumptime.panic", mt.key(key)+"#"+strings.Join(tags, "#"))
		},
	}
}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()
	t.ddEnd.End()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
