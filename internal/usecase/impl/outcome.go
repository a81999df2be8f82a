package impl

import (
	"fmt"

	"venmito/internal/usecase"
)

// rowSkip is a recoverable row outcome. It travels as an error so that the row's savepoint rolls back.
type rowSkip struct {
	reason usecase.SkipReason
	key    string
	detail string
}

func (e *rowSkip) Error() string {
	if e.key == "" {
		return fmt.Sprintf("%s: %s", e.reason, e.detail)
	}

	return fmt.Sprintf("%s (%s): %s", e.reason, e.key, e.detail)
}

func skipRow(reason usecase.SkipReason, key string, format string, args ...any) error {
	return &rowSkip{
		reason: reason,
		key:    key,
		detail: fmt.Sprintf(format, args...),
	}
}

// rowResult holds either the written entity or the reason the row was skipped.
type rowResult[T any] struct {
	index int
	value T
	skip  *rowSkip
}

// accumulator collects row results in input order.
type accumulator[T any] struct {
	result *usecase.BatchResult[T]
}

func newAccumulator[T any](received int) *accumulator[T] {
	return &accumulator[T]{
		result: &usecase.BatchResult[T]{
			Received:  received,
			Succeeded: make([]T, 0, received),
			Skipped:   []usecase.SkippedRow{},
		},
	}
}

func (a *accumulator[T]) add(r rowResult[T]) {
	if r.skip != nil {
		a.result.Skipped = append(a.result.Skipped, usecase.SkippedRow{
			Index:  r.index,
			Reason: r.skip.reason,
			Key:    r.skip.key,
			Detail: r.skip.detail,
		})

		return
	}

	a.result.Succeeded = append(a.result.Succeeded, r.value)
}

// skipSummary counts skipped rows per reason, in first-seen order, e.g. "sender_not_found=2, recipient_not_found=1".
func (a *accumulator[T]) skipSummary() string {
	counts := map[usecase.SkipReason]int{}
	var order []usecase.SkipReason
	for _, row := range a.result.Skipped {
		if counts[row.Reason] == 0 {
			order = append(order, row.Reason)
		}
		counts[row.Reason]++
	}

	summary := ""
	for i, reason := range order {
		if i > 0 {
			summary += ", "
		}
		summary += fmt.Sprintf("%s=%d", reason, counts[reason])
	}

	return summary
}
