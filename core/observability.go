package core

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
)

// fetchObservation collects what a single API fetch reports once it ends.
type fetchObservation struct {
	operation  string
	resource   string
	resourceID string
	statusCode int
	startedAt  time.Time
}

func (o fetchObservation) tags(outcome string) map[string]string {
	tags := map[string]string{
		"resource": o.resource,
		"status":   outcome,
	}
	if o.statusCode > 0 {
		tags["status_code"] = strconv.Itoa(o.statusCode)
	}
	return tags
}

func (o fetchObservation) fields(outcome string, elapsed time.Duration, err error) map[string]any {
	fields := map[string]any{
		"operation":   o.operation,
		"resource":    o.resource,
		"resource_id": o.resourceID,
		"status":      outcome,
		"duration_ms": elapsed.Milliseconds(),
	}
	if o.statusCode > 0 {
		fields["status_code"] = o.statusCode
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	return fields
}

func (s *Service) observeFetch(ctx context.Context, obs fetchObservation, err error) {
	if s == nil {
		return
	}
	obs.operation = normalizeOperation(obs.operation)
	if obs.operation == "" {
		obs.operation = "unknown"
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	elapsed := time.Since(obs.startedAt)
	tags := obs.tags(outcome)

	s.recordCounter(ctx, "trello."+obs.operation+".total", 1, tags)
	s.recordHistogram(ctx, "trello."+obs.operation+".duration_ms", float64(elapsed.Milliseconds()), tags)

	if err != nil {
		s.logError(ctx, "trello fetch failed", obs.fields(outcome, elapsed, err))
		return
	}
	s.logDebug(ctx, "trello fetch completed", obs.fields(outcome, elapsed, nil))
}

func (s *Service) logDebug(ctx context.Context, message string, fields map[string]any) {
	s.logWithLevel(ctx, "debug", message, fields)
}

func (s *Service) logError(ctx context.Context, message string, fields map[string]any) {
	s.logWithLevel(ctx, "error", message, fields)
}

func (s *Service) logWithLevel(ctx context.Context, level string, message string, fields map[string]any) {
	if s == nil || s.logger == nil {
		return
	}
	LogWithFields(ctx, s.logger, level, message, fields)
}

// LogWithFields writes message at level, attaching fields through
// FieldsLogger when supported and as key/value args otherwise.
func LogWithFields(ctx context.Context, logger Logger, level string, message string, fields map[string]any) {
	if logger == nil {
		return
	}
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if fieldsLogger, ok := logger.(FieldsLogger); ok {
		logger = fieldsLogger.WithFields(cloneFields(fields))
	}
	args := flattenFields(fields)
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		logger.Error(message, args...)
	case "warn":
		logger.Warn(message, args...)
	case "debug":
		logger.Debug(message, args...)
	default:
		logger.Info(message, args...)
	}
}

func (s *Service) recordCounter(ctx context.Context, name string, value int64, tags map[string]string) {
	if s == nil || s.metricsRecorder == nil {
		return
	}
	s.metricsRecorder.IncCounter(ctx, strings.TrimSpace(name), value, cloneTags(tags))
}

func (s *Service) recordHistogram(ctx context.Context, name string, value float64, tags map[string]string) {
	if s == nil || s.metricsRecorder == nil {
		return
	}
	s.metricsRecorder.ObserveHistogram(ctx, strings.TrimSpace(name), value, cloneTags(tags))
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}

func normalizeOperation(operation string) string {
	operation = strings.TrimSpace(strings.ToLower(operation))
	operation = strings.ReplaceAll(operation, " ", "_")
	operation = strings.ReplaceAll(operation, "-", "_")
	return operation
}
