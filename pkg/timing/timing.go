/*
Copyright 2018 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package timing

import (
	"bytes"
	"encoding/json"
	"sync"
	"text/template"
	"time"
)

// For testing
var currentTimeFunc = time.Now

// DefaultRun is the default "singleton" TimedRun instance.
var DefaultRun = NewTimedRun()

// TimedRun provides a running store of how long is spent in each category.
type TimedRun struct {
	cl         sync.Mutex
	categories map[string]time.Duration // protected by cl
}

// Timer represents a running timer.
type Timer struct {
	category  string
	startTime time.Time
}

// NewTimedRun returns an initialized TimedRun instance.
func NewTimedRun() *TimedRun {
	return &TimedRun{
		categories: map[string]time.Duration{},
	}
}

// Start starts a new Timer and returns it.
func Start(category string) *Timer {
	return &Timer{
		category:  category,
		startTime: currentTimeFunc(),
	}
}

// Category returns the category the timer adds to when stopped.
func (t *Timer) Category() string {
	return t.category
}

// Stop stops the specified timer and increments the time spent in that category.
func (tr *TimedRun) Stop(t *Timer) {
	stop := currentTimeFunc()
	tr.cl.Lock()
	defer tr.cl.Unlock()
	tr.categories[t.category] += stop.Sub(t.startTime)
}

// Time runs f and charges its duration to category, whether or not f fails.
func (tr *TimedRun) Time(category string, f func() error) error {
	t := Start(category)
	defer tr.Stop(t)
	return f()
}

// Elapsed returns the total time recorded for category.
func (tr *TimedRun) Elapsed(category string) time.Duration {
	tr.cl.Lock()
	defer tr.cl.Unlock()
	return tr.categories[category]
}

// Reset drops every recorded category.
func (tr *TimedRun) Reset() {
	tr.cl.Lock()
	defer tr.cl.Unlock()
	tr.categories = map[string]time.Duration{}
}

// DefaultFormat is a default format string used by Summary.
var DefaultFormat = template.Must(template.New("").Parse("{{range $c, $t := .}}{{$c}}: {{$t}}\n{{end}}"))

// Summary outputs a summary of the DefaultRun.
func Summary() string {
	return DefaultRun.Summary()
}

// JSON outputs the DefaultRun categories as a JSON object of nanoseconds.
func JSON() (string, error) {
	return DefaultRun.JSON()
}

// Summary outputs a summary of the specified TimedRun.
func (tr *TimedRun) Summary() string {
	b := bytes.Buffer{}

	tr.cl.Lock()
	defer tr.cl.Unlock()
	DefaultFormat.Execute(&b, tr.categories)
	return b.String()
}

func (tr *TimedRun) JSON() (string, error) {
	tr.cl.Lock()
	defer tr.cl.Unlock()
	b, err := json.Marshal(tr.categories)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
