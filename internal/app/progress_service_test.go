package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/semester-progress/internal/domain"
	"github.com/jsamuelsen11/semester-progress/internal/domain/semester"
	"github.com/jsamuelsen11/semester-progress/internal/platform/clock"
	"github.com/jsamuelsen11/semester-progress/internal/platform/logging"
	"github.com/jsamuelsen11/semester-progress/internal/platform/telemetry"
	"github.com/jsamuelsen11/semester-progress/mocks"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func hs24() *semester.Semester {
	return &semester.Semester{
		ID:        "hs24",
		Name:      "Autumn semester 2024",
		Start:     date(2024, time.September, 15),
		End:       date(2024, time.December, 20),
		ElementID: semester.DefaultElementID,
	}
}

func TestNewProgressService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewProgressService(mocks.NewMockSemesterCatalog(t), clock.System{}, "hs24", nil, nil)
	if svc.logger == nil {
		t.Fatal("NewProgressService(nil logger) left logger nil")
	}
	if got := svc.DefaultSemesterID(); got != "hs24" {
		t.Errorf("DefaultSemesterID() = %q, want hs24", got)
	}
}

func TestProgressService_ListSemesters(t *testing.T) {
	t.Parallel()

	t.Run("returns catalog semesters", func(t *testing.T) {
		t.Parallel()

		catalog := mocks.NewMockSemesterCatalog(t)
		catalog.EXPECT().ListSemesters(mock.Anything).Return([]semester.Semester{*hs24()}, nil)

		svc := NewProgressService(catalog, clock.System{}, "hs24", nil, logging.Discard())
		got, err := svc.ListSemesters(context.Background())
		if err != nil {
			t.Fatalf("ListSemesters() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "hs24" {
			t.Errorf("ListSemesters() = %+v, want [hs24]", got)
		}
	})

	t.Run("propagates catalog error", func(t *testing.T) {
		t.Parallel()

		catalog := mocks.NewMockSemesterCatalog(t)
		catalog.EXPECT().ListSemesters(mock.Anything).Return(nil, domain.ErrUnavailable)

		svc := NewProgressService(catalog, clock.System{}, "hs24", nil, logging.Discard())
		if _, err := svc.ListSemesters(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("ListSemesters() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestProgressService_GetProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		now         time.Time
		at          time.Time
		wantPercent int
		wantPhase   semester.Phase
	}{
		{"clock inside semester", date(2024, time.October, 15), time.Time{}, 32, semester.PhaseInProgress},
		{"clock before start", date(2024, time.August, 1), time.Time{}, 0, semester.PhaseUpcoming},
		{"clock after end", date(2025, time.January, 10), time.Time{}, 100, semester.PhaseFinished},
		{"explicit at overrides clock", date(2030, time.January, 1), date(2024, time.October, 15), 32, semester.PhaseInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog := mocks.NewMockSemesterCatalog(t)
			catalog.EXPECT().GetSemester(mock.Anything, "hs24").Return(hs24(), nil)

			svc := NewProgressService(catalog, clock.Fixed{At: tt.now}, "hs24", nil, logging.Discard())
			got, err := svc.GetProgress(context.Background(), "hs24", tt.at)
			if err != nil {
				t.Fatalf("GetProgress() error = %v", err)
			}
			if got.Percent != tt.wantPercent {
				t.Errorf("Percent = %d, want %d", got.Percent, tt.wantPercent)
			}
			if got.Phase != tt.wantPhase {
				t.Errorf("Phase = %q, want %q", got.Phase, tt.wantPhase)
			}
			if got.Width() != fmt.Sprintf("%d%%", tt.wantPercent) {
				t.Errorf("Width() = %q", got.Width())
			}
		})
	}
}

func TestProgressService_GetProgress_ReadsClockOnce(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockSemesterCatalog(t)
	catalog.EXPECT().GetSemester(mock.Anything, "hs24").Return(hs24(), nil)

	clk := mocks.NewMockClock(t)
	clk.EXPECT().Now().Return(date(2024, time.November, 1)).Once()

	svc := NewProgressService(catalog, clk, "hs24", nil, logging.Discard())
	got, err := svc.GetProgress(context.Background(), "hs24", time.Time{})
	if err != nil {
		t.Fatalf("GetProgress() error = %v", err)
	}
	if !got.At.Equal(date(2024, time.November, 1)) {
		t.Errorf("At = %v, want clock time", got.At)
	}
}

func TestProgressService_GetProgress_NotFound(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockSemesterCatalog(t)
	catalog.EXPECT().GetSemester(mock.Anything, "fs99").
		Return(nil, fmt.Errorf("semester %q: %w", "fs99", domain.ErrNotFound))

	svc := NewProgressService(catalog, mocks.NewMockClock(t), "hs24", nil, logging.Discard())
	if _, err := svc.GetProgress(context.Background(), "fs99", time.Time{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetProgress() error = %v, want ErrNotFound", err)
	}
}

func TestProgressService_CurrentProgress(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockSemesterCatalog(t)
	catalog.EXPECT().GetSemester(mock.Anything, "hs24").Return(hs24(), nil)

	svc := NewProgressService(catalog, clock.Fixed{At: date(2024, time.October, 15)}, "hs24", nil, logging.Discard())
	got, err := svc.CurrentProgress(context.Background(), time.Time{})
	if err != nil {
		t.Fatalf("CurrentProgress() error = %v", err)
	}
	if got.Semester.ID != "hs24" || got.Percent != 32 {
		t.Errorf("CurrentProgress() = %s %d%%, want hs24 32%%", got.Semester.ID, got.Percent)
	}
}

func TestProgressService_RecordsMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "semester-progress")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	catalog := mocks.NewMockSemesterCatalog(t)
	catalog.EXPECT().GetSemester(mock.Anything, "hs24").Return(hs24(), nil)

	svc := NewProgressService(catalog, clock.Fixed{At: date(2024, time.October, 15)}, "hs24", metrics, logging.Discard())
	if _, err := svc.CurrentProgress(ctx, time.Time{}); err != nil {
		t.Fatalf("CurrentProgress() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var percent int64 = -1
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if g, ok := m.Data.(metricdata.Gauge[int64]); ok && m.Name == "semester.progress.percent" {
				percent = g.DataPoints[0].Value
			}
		}
	}
	if percent != 32 {
		t.Errorf("semester.progress.percent = %d, want 32", percent)
	}
}
