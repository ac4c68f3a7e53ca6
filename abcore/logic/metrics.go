/*
   Copyright 2025 The tp Authors

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

package logic

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes recorded by the command counter.
const (
	OutcomeOK         = "ok"
	OutcomeParseError = "parse_error"
	OutcomeError      = "error"
	OutcomeSaveError  = "save_error"
)

// Metrics holds the collectors updated by Manager.
type Metrics struct {
	// Commands counts executed commands by command word and outcome.
	Commands *prometheus.CounterVec

	// Persons is the number of persons in the address book after the last
	// command.
	Persons prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := newUnregisteredMetrics()
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Commands, m.Persons} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

func newUnregisteredMetrics() *Metrics {
	return &Metrics{
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "addressbook_commands_total",
			Help: "Commands handled, by command word and outcome.",
		}, []string{"command", "outcome"}),
		Persons: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "addressbook_persons",
			Help: "Persons in the address book.",
		}),
	}
}

// WriteStats writes every counter and gauge gathered from g, one sample per
// line, for example:
//
//	addressbook_commands_total{command="find",outcome="ok"} 2
func WriteStats(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%s %g", name, value))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
