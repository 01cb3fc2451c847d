package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"insurance_quotes/internal/adapter/persistence/memory"
	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/infrastructure/lock"
	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/usecase/interfaces"
	mock_interfaces "insurance_quotes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSweeper(repo interfaces.IQuoteRequestRepository, publisher interfaces.IEventPublisher, now time.Time) *ExpirationSweeper {
	return NewExpirationSweeper(repo, publisher, lock.NewKeyedMutex(), nil, logger.NewNop(), time.Minute, 0).
		WithClock(func() time.Time { return now })
}

func TestExpirationSweeper_RunOnce(t *testing.T) {
	t.Run("expires lapsed quotes only", func(t *testing.T) {
		repo := memory.NewQuoteRequestMemoryRepository()
		publisher := &recordingPublisher{}
		seed(t, repo, "lapsed", withQuote(day(10)))
		seed(t, repo, "lapsed-accepted", withQuote(day(10)), accepted(day(5)))
		seed(t, repo, "valid", withQuote(day(20)))
		seed(t, repo, "no-quote")
		seed(t, repo, "rejected", withQuote(day(10)), func(q *entities.QuoteRequest) error { return q.RejectQuote(day(5)) })

		report := newSweeper(repo, publisher, day(11)).RunOnce(context.Background())

		if report.Candidates != 2 || report.Expired != 2 || report.Failed != 0 {
			t.Fatalf("unexpected report %+v", report)
		}
		for _, id := range []string{"lapsed", "lapsed-accepted"} {
			q := mustGet(t, repo, id)
			last := q.StatusHistory[len(q.StatusHistory)-1]
			if last.Status != entities.RequestStatusQuoteExpired || !last.Date.Equal(day(10)) {
				t.Fatalf("%s: expected EXPIRED(10), got %+v", id, last)
			}
		}
		for id, want := range map[string]entities.RequestStatus{
			"valid":    entities.RequestStatusQuoteReceived,
			"no-quote": entities.RequestStatusSubmitted,
			"rejected": entities.RequestStatusQuoteRejected,
		} {
			if got := mustGet(t, repo, id).Status(); got != want {
				t.Fatalf("%s: expected %s, got %s", id, want, got)
			}
		}

		published := publisher.ofKind(events.KindQuoteExpired)
		if len(published) != 2 {
			t.Fatalf("expected one QuoteExpired per aggregate, got %d", len(published))
		}
		var msg events.QuoteExpired
		_ = published[0].Decode(&msg)
		if !msg.Date.Equal(day(10)) {
			t.Fatalf("expected expiration date in event, got %v", msg.Date)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo := memory.NewQuoteRequestMemoryRepository()
		publisher := &recordingPublisher{}
		seed(t, repo, "req-1", withQuote(day(10)))
		sweeper := newSweeper(repo, publisher, day(11))

		sweeper.RunOnce(context.Background())
		second := sweeper.RunOnce(context.Background())

		if second.Expired != 0 || second.Candidates != 0 {
			t.Fatalf("second run must be a no-op, got %+v", second)
		}
		if n := len(mustGet(t, repo, "req-1").StatusHistory); n != 3 {
			t.Fatalf("expected three entries, got %d", n)
		}
		if len(publisher.ofKind(events.KindQuoteExpired)) != 1 {
			t.Fatalf("expected a single QuoteExpired")
		}
	})

	t.Run("failure on one aggregate does not stop the others", func(t *testing.T) {
		mem := memory.NewQuoteRequestMemoryRepository()
		seed(t, mem, "broken", withQuote(day(10)))
		seed(t, mem, "healthy", withQuote(day(10)))
		repo := &failingSaves{IQuoteRequestRepository: mem, fail: map[string]error{"broken": errStoreDown}}
		publisher := &recordingPublisher{}
		sweeper := newSweeper(repo, publisher, day(11))

		report := sweeper.RunOnce(context.Background())
		if report.Expired != 1 || report.Failed != 1 {
			t.Fatalf("unexpected report %+v", report)
		}
		if got := mustGet(t, mem, "healthy").Status(); got != entities.RequestStatusQuoteExpired {
			t.Fatalf("healthy aggregate must expire, got %s", got)
		}
		if got := mustGet(t, mem, "broken").Status(); got != entities.RequestStatusQuoteReceived {
			t.Fatalf("broken aggregate must be untouched, got %s", got)
		}

		repo.heal("broken")
		report = sweeper.RunOnce(context.Background())
		if report.Expired != 1 || report.Failed != 0 {
			t.Fatalf("next run must pick up the failed aggregate, got %+v", report)
		}
	})

	t.Run("publish failure is relayed on the next run", func(t *testing.T) {
		repo := memory.NewQuoteRequestMemoryRepository()
		publisher := &recordingPublisher{}
		seed(t, repo, "req-1", withQuote(day(10)))
		sweeper := newSweeper(repo, publisher, day(11))

		publisher.setFail(errors.New("broker down"))
		report := sweeper.RunOnce(context.Background())
		if report.Expired != 1 {
			t.Fatalf("expiration must be stored despite publish failure, got %+v", report)
		}
		if len(mustGet(t, repo, "req-1").PendingEvents) != 1 {
			t.Fatalf("expected event kept in the outbox")
		}

		publisher.setFail(nil)
		report = sweeper.RunOnce(context.Background())
		if report.Relayed != 1 || len(publisher.ofKind(events.KindQuoteExpired)) != 1 {
			t.Fatalf("expected the pending event relayed once, got %+v", report)
		}
		if len(mustGet(t, repo, "req-1").PendingEvents) != 0 {
			t.Fatalf("outbox must be empty after relay")
		}
	})

	t.Run("listing failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRequestRepository(ctrl)
		metrics := mock_interfaces.NewMockIQuoteMetrics(ctrl)
		sweeper := NewExpirationSweeper(repo, &recordingPublisher{}, lock.NewKeyedMutex(), metrics, logger.NewNop(), time.Minute, 0)

		repo.EXPECT().ListWithPendingEvents(gomock.Any()).Return(nil, nil)
		repo.EXPECT().ListByStatus(gomock.Any(), entities.RequestStatusQuoteReceived, entities.RequestStatusQuoteAccepted).Return(nil, errStoreDown)
		metrics.EXPECT().RecordSweep(0, 1, gomock.Any())

		if report := sweeper.RunOnce(context.Background()); report.Failed != 1 {
			t.Fatalf("expected failed listing in report, got %+v", report)
		}
	})
}

func TestExpirationSweeper_SkipsAggregateDecidedMeanwhile(t *testing.T) {
	repo := memory.NewQuoteRequestMemoryRepository()
	seed(t, repo, "req-1", withQuote(day(10)))
	sweeper := newSweeper(repo, &recordingPublisher{}, day(11))

	q := mustGet(t, repo, "req-1")
	_ = q.RejectQuote(day(9))
	if err := repo.Save(context.Background(), q); err != nil {
		t.Fatalf("save: %v", err)
	}

	expired, err := sweeper.expire(context.Background(), "req-1", day(11))
	if err != nil || expired {
		t.Fatalf("expected skip, got %v %v", expired, err)
	}
}

func TestExpirationSweeper_StartStopsWithContext(t *testing.T) {
	repo := memory.NewQuoteRequestMemoryRepository()
	seed(t, repo, "req-1", withQuote(day(10)))
	sweeper := NewExpirationSweeper(repo, &recordingPublisher{}, lock.NewKeyedMutex(), nil, logger.NewNop(), 10*time.Millisecond, 0).
		WithClock(func() time.Time { return day(11) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = sweeper.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for mustGet(t, repo, "req-1").Status() != entities.RequestStatusQuoteExpired {
		select {
		case <-deadline:
			t.Fatalf("sweeper never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("sweeper did not stop")
	}
}

func TestOutboxRelay_RunOnce(t *testing.T) {
	f := newCustomerFixture(day(1))
	f.publisher.setFail(errors.New("broker down"))
	q, err := f.uc.SubmitRequest(context.Background(), testCustomer(), testOptions())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	metrics := mock_interfaces.NewMockIQuoteMetrics(ctrl)
	metrics.EXPECT().RecordOutboxRelayed(1)
	relay := NewOutboxRelay(f.repo, f.publisher, lock.NewKeyedMutex(), metrics, logger.NewNop(), time.Minute)

	f.publisher.setFail(nil)
	n, err := relay.RunOnce(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected one relayed event, got %d %v", n, err)
	}
	submitted := f.publisher.ofKind(events.KindQuoteRequestSubmitted)
	if len(submitted) != 1 || submitted[0].AggregateID != q.ID {
		t.Fatalf("unexpected published events %+v", submitted)
	}

	if n, _ := relay.RunOnce(context.Background()); n != 0 {
		t.Fatalf("second relay must find nothing, got %d", n)
	}
}
