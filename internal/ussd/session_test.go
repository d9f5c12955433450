package ussd

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

type sinkRecorder struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (s *sinkRecorder) SaveOrder(_ context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

func (s *sinkRecorder) saved() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	opts = append([]Option{WithClock(testClock)}, opts...)
	s := NewSession(testSeed(), opts...)
	t.Cleanup(s.Close)
	return s
}

func TestSession_SubmitNavigates(t *testing.T) {
	s := newTestSession(t)

	s.Submit("1")
	assert.Equal(t, MenuConsumer, s.Snapshot().CurrentMenu)
	assert.Contains(t, s.Screen(), "Consumer Menu")
}

func TestSession_SubmitIgnoresBlankInput(t *testing.T) {
	s := newTestSession(t)

	s.Submit("   ")
	assert.Equal(t, MenuMain, s.Snapshot().CurrentMenu)
}

func TestSession_KeypadBufferSemantics(t *testing.T) {
	s := newTestSession(t)

	s.Press('1')
	s.Press('2')
	assert.Equal(t, "12", s.Buffer())

	s.Press('*')
	assert.Equal(t, "", s.Buffer())

	// submitting an empty buffer does nothing
	s.Press('#')
	assert.Equal(t, MenuMain, s.Snapshot().CurrentMenu)

	s.Press('1')
	s.Press('#')
	assert.Equal(t, "", s.Buffer())
	assert.Equal(t, MenuConsumer, s.Snapshot().CurrentMenu)
}

func TestSession_NotificationAutoClears(t *testing.T) {
	s := newTestSession(t, WithNotificationTTL(20*time.Millisecond))

	s.Submit("9") // invalid option on main
	n, ok := s.Notification()
	require.True(t, ok)
	assert.Equal(t, "Invalid option. Please try again.", n.Message)

	require.Eventually(t, func() bool {
		_, ok := s.Notification()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestSession_NewNotificationReplacesPending(t *testing.T) {
	s := newTestSession(t, WithNotificationTTL(time.Hour))

	s.Submit("9")
	s.Submit("1") // consumer
	s.Submit("3") // empty cart warning replaces the invalid-option message

	n, ok := s.Notification()
	require.True(t, ok)
	assert.Equal(t, "Your cart is empty.", n.Message)
	assert.Equal(t, KindWarning, n.Kind)
}

func TestSession_ExitResetsToPristineState(t *testing.T) {
	s := newTestSession(t, WithResetDelay(20*time.Millisecond))

	// mutate everything that can be mutated
	for _, in := range []string{"1", "1", "1", "1", "1", "0", "0", "0"} {
		s.Submit(in)
	}
	for _, in := range []string{"0", "2", "1", "2", "anything"} {
		s.Submit(in)
	}
	st := s.Snapshot()
	require.Len(t, st.Products, 7, "demo product should have been added")
	require.Len(t, st.Cart.Lines, 1)

	s.Submit("0")  // back to farmer
	s.Submit("00") // farewell + scheduled reset

	n, ok := s.Notification()
	require.True(t, ok)
	assert.Equal(t, "Thank you for using Farm2City!", n.Message)

	require.Eventually(t, func() bool {
		return s.Snapshot().CurrentMenu == MenuMain
	}, time.Second, 5*time.Millisecond)

	st = s.Snapshot()
	assert.Empty(t, st.Cart.Lines)
	assert.Len(t, st.Products, 6)
	assert.Equal(t, "Tomatoes", st.Products[0].Name)
	assert.Len(t, st.Orders, 2)
	assert.InDelta(t, 1845.97, st.Balance, 0.001)
	assert.Equal(t, UserType(""), st.UserType)
}

func TestSession_OrderSinkReceivesCompletedOrder(t *testing.T) {
	sink := &sinkRecorder{}
	s := newTestSession(t, WithOrderSink(sink))

	for _, in := range []string{"1", "1", "1", "1", "1", "0", "0", "0", "3", "1", "1", "1"} {
		s.Submit(in)
	}
	require.Equal(t, MenuConsumer, s.Snapshot().CurrentMenu)

	require.Eventually(t, func() bool {
		return len(sink.saved()) == 1
	}, time.Second, 5*time.Millisecond)

	order := sink.saved()[0]
	assert.Equal(t, int64(3), order.ID)
	assert.InDelta(t, 18.99, order.Total, 0.001)
	assert.Equal(t, []string{"Tomatoes (1)"}, order.Items)
	assert.Equal(t, domain.OrderStatusDelivered, order.Status)
}

func TestSession_SnapshotIsACopy(t *testing.T) {
	s := newTestSession(t)

	snap := s.Snapshot()
	snap.Products[0].Name = "Mutated"
	snap.Cart.Add(snap.Products[0])

	st := s.Snapshot()
	assert.Equal(t, "Tomatoes", st.Products[0].Name)
	assert.True(t, st.Cart.IsEmpty())
}

func TestSession_IDsAreUnique(t *testing.T) {
	a := newTestSession(t)
	b := newTestSession(t)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEmpty(t, a.ID())
}
