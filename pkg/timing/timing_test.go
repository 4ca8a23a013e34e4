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
	"errors"
	"testing"
	"time"
)

func patchTime(timeFunc func() time.Time) func() {
	old := currentTimeFunc
	currentTimeFunc = timeFunc
	return func() {
		currentTimeFunc = old
	}
}

func mockTimeFunc(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}

func TestTimedRun_StartStop(t *testing.T) {
	type args struct {
		categories map[string]time.Duration
		category   string
		waitTime   time.Duration
	}
	tests := []struct {
		name string
		args args
		want time.Duration
	}{
		{
			name: "new category",
			args: args{
				categories: map[string]time.Duration{},
				category:   "Copying artifacts",
				waitTime:   3 * time.Second,
			},
			want: 3 * time.Second,
		},
		{
			name: "existing category",
			args: args{
				categories: map[string]time.Duration{
					"Copying artifacts": 4 * time.Second,
				},
				category: "Copying artifacts",
				waitTime: 2 * time.Second,
			},
			want: 6 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &TimedRun{
				categories: tt.args.categories,
			}

			timer := Timer{
				category:  tt.args.category,
				startTime: time.Time{},
			}

			defer patchTime(mockTimeFunc(timer.startTime.Add(tt.args.waitTime)))()
			tr.Stop(&timer)
			if got := tr.categories[tt.args.category]; got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestTimedRun_Summary(t *testing.T) {
	type fields struct {
		categories map[string]time.Duration
	}
	tests := []struct {
		name   string
		fields fields
		want   string
	}{
		{
			name: "single key",
			fields: fields{
				categories: map[string]time.Duration{
					"Copying artifacts": 3 * time.Second,
				},
			},
			want: "Copying artifacts: 3s\n",
		},
		{
			name: "two keys",
			fields: fields{
				categories: map[string]time.Duration{
					"Copying artifacts":         3 * time.Second,
					"Creating output directory": 1 * time.Second,
				},
			},
			want: "Copying artifacts: 3s\nCreating output directory: 1s\n",
		},
		{
			name: "units",
			fields: fields{
				categories: map[string]time.Duration{
					"Copying artifacts":         3 * time.Second,
					"Creating output directory": 1 * time.Millisecond,
				},
			},
			want: "Copying artifacts: 3s\nCreating output directory: 1ms\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &TimedRun{
				categories: tt.fields.categories,
			}
			if got := tr.Summary(); got != tt.want {
				t.Errorf("TimedRun.Summary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimedRun_Time(t *testing.T) {
	start := time.Time{}
	now := start
	defer patchTime(func() time.Time { return now })()

	tr := NewTimedRun()
	err := tr.Time("Verifying artifacts", func() error {
		now = start.Add(2 * time.Second)
		return errors.New("digest mismatch")
	})
	if err == nil {
		t.Fatal("expected the error of f to be returned")
	}
	if got := tr.Elapsed("Verifying artifacts"); got != 2*time.Second {
		t.Errorf("Expected %s, got %s", 2*time.Second, got)
	}
	if got := tr.Elapsed("unknown"); got != 0 {
		t.Errorf("Expected 0 for an unknown category, got %s", got)
	}

	tr.Reset()
	if got := tr.Summary(); got != "" {
		t.Errorf("Expected an empty summary after Reset, got %q", got)
	}
}

func TestTimedRun_JSON(t *testing.T) {
	tr := &TimedRun{
		categories: map[string]time.Duration{
			"Copying artifacts": 3 * time.Millisecond,
		},
	}
	got, err := tr.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if want := `{"Copying artifacts":3000000}`; got != want {
		t.Errorf("TimedRun.JSON() = %v, want %v", got, want)
	}
}
