package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	is, err := NewIssuer("s3cret", "careerguide", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	tok, err := is.Sign("user-1", RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	id, err := is.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.UserID != "user-1" || !id.IsAdmin() {
		t.Fatalf("identity: got=%+v", id)
	}
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	is, _ := NewIssuer("s3cret", "careerguide", time.Hour)
	other, _ := NewIssuer("different", "careerguide", time.Hour)
	foreignIssuer, _ := NewIssuer("s3cret", "someone-else", time.Hour)
	expired, _ := NewIssuer("s3cret", "careerguide", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	wrongKey, _ := other.Sign("u", RoleStudent)
	wrongIss, _ := foreignIssuer.Sign("u", RoleStudent)
	old, _ := expired.Sign("u", RoleStudent)

	cases := map[string]string{
		"garbage":   "not-a-token",
		"wrong key": wrongKey,
		"wrong iss": wrongIss,
		"expired":   old,
		"empty":     "",
	}
	for name, tok := range cases {
		if _, err := is.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: got=%v want=%v", name, err, ErrInvalidToken)
		}
	}
}

func TestUnknownRoleIsStudent(t *testing.T) {
	t.Parallel()
	is, _ := NewIssuer("s3cret", "careerguide", time.Hour)
	tok, _ := is.Sign("u", Role("superuser"))
	id, err := is.Verify(tok)
	if err != nil || id.Role != RoleStudent {
		t.Fatalf("role: got=%q err=%v want=%q", id.Role, err, RoleStudent)
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"Bearer abc", "abc"},
		{"bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := BearerToken(tc.in); got != tc.want {
			t.Fatalf("BearerToken(%q): got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestIdentityContext(t *testing.T) {
	t.Parallel()
	if _, ok := IdentityFrom(context.Background()); ok {
		t.Fatal("empty context should be anonymous")
	}
	ctx := WithIdentity(context.Background(), Identity{UserID: "u1", Role: RoleStudent})
	id, ok := IdentityFrom(ctx)
	if !ok || id.UserID != "u1" {
		t.Fatalf("got=%+v ok=%v", id, ok)
	}
}

func TestRotateInvalidatesOldTokens(t *testing.T) {
	t.Parallel()
	is, _ := NewIssuer("first", "careerguide", time.Hour)
	old, _ := is.Sign("u", RoleStudent)
	if err := is.Rotate("second"); err != nil {
		t.Fatal(err)
	}
	if _, err := is.Verify(old); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("old token: got=%v want=%v", err, ErrInvalidToken)
	}
	fresh, _ := is.Sign("u", RoleStudent)
	if _, err := is.Verify(fresh); err != nil {
		t.Fatalf("fresh token: %v", err)
	}
	if err := is.Rotate(" "); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
