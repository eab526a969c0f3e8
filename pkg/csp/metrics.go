package csp

// metrics.go: prometheus export of solver statistics, for embedders
// that run solves inside long-lived services.

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a Monitor's counters as prometheus metrics.
// Register it with a prometheus.Registerer; each scrape reads a
// coherent snapshot via Monitor.Stats.
type Collector struct {
	monitor *Monitor

	nodes        *prometheus.Desc
	backtracks   *prometheus.Desc
	solutions    *prometheus.Desc
	maxDepth     *prometheus.Desc
	propagations *prometheus.Desc
	revisions    *prometheus.Desc
	pruned       *prometheus.Desc
}

// NewCollector creates a collector reading from the given monitor.
func NewCollector(monitor *Monitor) *Collector {
	return &Collector{
		monitor: monitor,
		nodes: prometheus.NewDesc("csp_search_nodes_total",
			"Search-tree nodes visited.", nil, nil),
		backtracks: prometheus.NewDesc("csp_search_backtracks_total",
			"Search nodes that exhausted every candidate value.", nil, nil),
		solutions: prometheus.NewDesc("csp_solutions_total",
			"Complete consistent assignments found.", nil, nil),
		maxDepth: prometheus.NewDesc("csp_search_max_depth",
			"Deepest search-tree node reached.", nil, nil),
		propagations: prometheus.NewDesc("csp_propagations_total",
			"Runs of the arc-consistency engine.", nil, nil),
		revisions: prometheus.NewDesc("csp_arc_revisions_total",
			"Individual arc revisions performed.", nil, nil),
		pruned: prometheus.NewDesc("csp_values_pruned_total",
			"Domain values removed by revision.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.backtracks
	ch <- c.solutions
	ch <- c.maxDepth
	ch <- c.propagations
	ch <- c.revisions
	ch <- c.pruned
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.monitor.Stats()
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.CounterValue, float64(stats.NodesExplored))
	ch <- prometheus.MustNewConstMetric(c.backtracks, prometheus.CounterValue, float64(stats.Backtracks))
	ch <- prometheus.MustNewConstMetric(c.solutions, prometheus.CounterValue, float64(stats.SolutionsFound))
	ch <- prometheus.MustNewConstMetric(c.maxDepth, prometheus.GaugeValue, float64(stats.MaxDepth))
	ch <- prometheus.MustNewConstMetric(c.propagations, prometheus.CounterValue, float64(stats.Propagations))
	ch <- prometheus.MustNewConstMetric(c.revisions, prometheus.CounterValue, float64(stats.ReviseCalls))
	ch <- prometheus.MustNewConstMetric(c.pruned, prometheus.CounterValue, float64(stats.ValuesPruned))
}
