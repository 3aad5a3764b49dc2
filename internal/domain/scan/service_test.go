package scan

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/profile"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const okResponse = `{"summary":"추천합니다.","ingredients":[{"name":"Salmon","category":"Green","reason":"오메가-3"}]}`

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveScan(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func (o *recordingObserver) all() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.outcomes...)
}

func newTestService(p Provider, obs Observer) *Service {
	return NewService(NewContract(catalog.Default(), profile.ValidateOptions{}), p, nil, obs)
}

func TestScan_Success(t *testing.T) {
	var seen AnalysisRequest
	obs := &recordingObserver{}
	svc := newTestService(ProviderFunc(func(_ context.Context, req AnalysisRequest) ([]byte, error) {
		seen = req
		return []byte(okResponse), nil
	}), obs)

	a, err := svc.Scan(context.Background(), "p1", testProfile(), pngStub, "image/png")
	require.NoError(t, err)
	require.Equal(t, StateSucceeded, a.State)
	require.NotNil(t, a.Result)
	require.Equal(t, "Salmon", a.Result.Ingredients[0].Name)
	require.NotEmpty(t, a.ID)

	require.Equal(t, "image/png", seen.MIMEType)
	require.NotEmpty(t, seen.Prompt)
	require.NotNil(t, seen.Schema)
	require.Equal(t, []string{"succeeded"}, obs.all())
}

func TestScan_ProviderErrorKeepsCause(t *testing.T) {
	cause := errors.New("quota exceeded")
	svc := newTestService(ProviderFunc(func(context.Context, AnalysisRequest) ([]byte, error) {
		return nil, cause
	}), nil)

	a, err := svc.Scan(context.Background(), "p1", testProfile(), pngStub, "image/png")
	require.ErrorIs(t, err, ErrProvider)
	require.ErrorIs(t, err, cause)
	require.Equal(t, StateFailed, a.State)
	require.Equal(t, FailureProvider, a.Failure)
	require.Nil(t, a.Result)
}

func TestScan_InvalidResponses(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want error
	}{
		"malformed": {"not json", ErrMalformedResponse},
		"schema":    {`{"summary":"x","ingredients":[{"name":"Corn"}]}`, ErrSchemaViolation},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(ProviderFunc(func(context.Context, AnalysisRequest) ([]byte, error) {
				return []byte(tc.raw), nil
			}), nil)

			a, err := svc.Scan(context.Background(), "p1", testProfile(), pngStub, "image/png")
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, StateFailed, a.State)
		})
	}
}

func TestScan_ValidationFailsBeforeProvider(t *testing.T) {
	var calls atomic.Int32
	obs := &recordingObserver{}
	svc := newTestService(ProviderFunc(func(context.Context, AnalysisRequest) ([]byte, error) {
		calls.Add(1)
		return []byte(okResponse), nil
	}), obs)

	a, err := svc.Scan(context.Background(), "p1", testProfile(), nil, "image/png")
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, StateFailed, a.State)
	require.True(t, a.RequestedAt.IsZero())
	require.Zero(t, calls.Load())
	require.Equal(t, []string{"validation"}, obs.all())
}

func TestScan_NoProvider(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.Scan(context.Background(), "p1", testProfile(), pngStub, "image/png")
	require.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestScan_NewScanSupersedesInFlight(t *testing.T) {
	started := make(chan struct{})
	var calls atomic.Int32

	svc := newTestService(ProviderFunc(func(ctx context.Context, _ AnalysisRequest) ([]byte, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-ctx.Done()
			// respuesta tardía pero válida: igual debe descartarse
			return []byte(okResponse), nil
		}
		return []byte(`{"summary":"두 번째","ingredients":[]}`), nil
	}), nil)

	var (
		wg       sync.WaitGroup
		first    *Attempt
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = svc.Scan(context.Background(), "p1", testProfile(), pngStub, "image/png")
	}()

	<-started
	second, err := svc.Scan(context.Background(), "p1", testProfile(), pngStub, "image/png")
	wg.Wait()

	require.NoError(t, err)
	require.Equal(t, "두 번째", second.Result.Summary)

	require.ErrorIs(t, firstErr, ErrSuperseded)
	require.Equal(t, StateFailed, first.State)
	require.Nil(t, first.Result)
	require.Zero(t, svc.coord.InFlight())
}

func TestScan_CallerCancellationIsProviderFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc := newTestService(ProviderFunc(func(ctx context.Context, _ AnalysisRequest) ([]byte, error) {
		cancel()
		<-ctx.Done()
		return nil, ctx.Err()
	}), nil)

	_, err := svc.Scan(ctx, "p1", testProfile(), pngStub, "image/png")
	require.ErrorIs(t, err, ErrProvider)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCoordinator_KeysAreIndependent(t *testing.T) {
	c := NewCoordinator()

	ctxA, doneA := c.Begin(context.Background(), "a")
	ctxB, doneB := c.Begin(context.Background(), "b")
	require.NoError(t, ctxA.Err())
	require.NoError(t, ctxB.Err())
	require.Equal(t, 2, c.InFlight())

	ctxA2, doneA2 := c.Begin(context.Background(), "a")
	require.True(t, Superseded(ctxA))
	require.False(t, Superseded(ctxB))

	// el done del intento viejo no borra el slot del nuevo
	doneA()
	require.Equal(t, 2, c.InFlight())
	require.NoError(t, ctxA2.Err())

	doneA2()
	doneB()
	require.Zero(t, c.InFlight())
	require.False(t, Superseded(ctxB))
}

func TestAttempt_Transitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	a := NewAttempt("a1", now)
	require.ErrorIs(t, a.Succeed(IngredientClassification{}, now), ErrInvalidTransition)
	require.NoError(t, a.MarkRequested(now))
	require.ErrorIs(t, a.MarkRequested(now), ErrInvalidTransition)
	require.NoError(t, a.Succeed(IngredientClassification{Summary: "ok"}, now.Add(2*time.Second)))
	require.Equal(t, 2*time.Second, a.Duration())

	// terminal
	require.ErrorIs(t, a.Fail(ErrProvider, now), ErrInvalidTransition)
	require.ErrorIs(t, a.MarkRequested(now), ErrInvalidTransition)

	b := NewAttempt("b1", now)
	require.NoError(t, b.Fail(ErrInvalidInput, now))
	require.Equal(t, FailureValidation, b.Failure)
	require.True(t, b.State.Terminal())
}
