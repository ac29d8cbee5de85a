// Package triage provides the business boundary for sift's alert triage
// pipeline. It defines the Pipeline (normalize, score, rank), the Report (an
// ordered scored batch plus skipped-record warnings), composable Filters,
// and batch summary statistics for the presenters.
package triage
