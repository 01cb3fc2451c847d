package interfaces

import "time"

// IQuoteMetrics receives domain-level observations from the use cases.
type IQuoteMetrics interface {
	RecordReconciliation(outcome string)
	RecordSweep(expired, failed int, took time.Duration)
	RecordOutboxRelayed(n int)
}
