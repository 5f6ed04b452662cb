package events

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHubFanOut(t *testing.T) {
	t.Parallel()
	h := NewHub()
	a, b := h.Subscribe(Subscriber{UserID: "u1"}), h.Subscribe(Subscriber{UserID: "u2"})

	h.Publish(MakeEvent("req-1", GoalChanged, 1, map[string]string{"id": "g1"}))

	for _, ch := range []chan string{a, b} {
		var e Event
		if err := json.Unmarshal([]byte(<-ch), &e); err != nil {
			t.Fatal(err)
		}
		if e.Type != GoalChanged || e.RequestID != "req-1" || e.Version != 1 {
			t.Fatalf("event: got=%+v", e)
		}
	}

	h.Unsubscribe(a)
	h.Unsubscribe(a)
	if got := h.Subscribers(); got != 1 {
		t.Fatalf("subscribers: got=%d want=1", got)
	}
}

func TestHubDropsForSlowSubscriber(t *testing.T) {
	t.Parallel()
	h := NewHub()
	ch := h.Subscribe(Subscriber{UserID: "u1"})
	for i := 0; i < h.buffer+5; i++ {
		h.Publish("x")
	}
	if got := len(ch); got != h.buffer {
		t.Fatalf("buffered: got=%d want=%d", got, h.buffer)
	}
}

func TestHubAudience(t *testing.T) {
	t.Parallel()
	h := NewHub()
	owner := h.Subscribe(Subscriber{UserID: "u1"})
	other := h.Subscribe(Subscriber{UserID: "u2"})
	admin := h.Subscribe(Subscriber{UserID: "root", Admin: true})

	h.PublishTo(ForUser("u1"), "mine")
	h.PublishTo(Admins(), "snapshot")
	h.PublishTo(Everyone, "config")

	cases := []struct {
		name string
		ch   chan string
		want []string
	}{
		{"owner", owner, []string{"mine", "config"}},
		{"other student", other, []string{"config"}},
		{"admin", admin, []string{"mine", "snapshot", "config"}},
	}
	for _, tc := range cases {
		var got []string
		for len(tc.ch) > 0 {
			got = append(got, <-tc.ch)
		}
		if strings.Join(got, ",") != strings.Join(tc.want, ",") {
			t.Fatalf("%s: got=%v want=%v", tc.name, got, tc.want)
		}
	}
}
