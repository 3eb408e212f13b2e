package auth

import (
	"errors"
	"testing"
	"time"

	"construtora_xpto/internal/domain/entities"
)

func TestTokenService_RoundTrip(t *testing.T) {
	ts := NewTokenService([]byte("test-secret"), time.Hour)

	t.Run("user token", func(t *testing.T) {
		tok, err := ts.IssueToken("joe@acme.com", entities.RoleUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		payload := ts.Verify(tok)
		if payload == nil {
			t.Fatalf("expected payload, got nil")
		}
		if payload.Email != "joe@acme.com" || payload.Role != entities.RoleUser {
			t.Fatalf("unexpected payload: %+v", payload)
		}
	})

	t.Run("supervisor token", func(t *testing.T) {
		tok, err := ts.IssueToken("sup@acme.com", entities.RoleSupervisor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := ts.Verify(tok)
		if payload == nil || payload.Role != entities.RoleSupervisor {
			t.Fatalf("unexpected payload: %+v", payload)
		}
	})

	t.Run("admin token only through the admin path", func(t *testing.T) {
		if _, err := ts.IssueToken("admin@acme.com", entities.RoleAdmin); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}

		tok, err := ts.IssueAdminToken("admin@acme.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		payload := ts.Verify(tok)
		if payload == nil || payload.Role != entities.RoleAdmin {
			t.Fatalf("unexpected payload: %+v", payload)
		}
	})

	t.Run("unknown role refused", func(t *testing.T) {
		if _, err := ts.IssueToken("x@acme.com", entities.Role("root")); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})
}

func TestTokenService_VerifyFailures(t *testing.T) {
	ts := NewTokenService([]byte("test-secret"), time.Hour)

	t.Run("garbage", func(t *testing.T) {
		if ts.Verify("not-a-token") != nil {
			t.Fatalf("expected nil payload")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other := NewTokenService([]byte("other-secret"), time.Hour)
		tok, err := other.IssueToken("joe@acme.com", entities.RoleUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ts.Verify(tok) != nil {
			t.Fatalf("expected nil payload for foreign signature")
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewTokenService([]byte("test-secret"), -time.Minute)
		tok, err := expired.IssueToken("joe@acme.com", entities.RoleUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ts.Verify(tok) != nil {
			t.Fatalf("expected nil payload for expired token")
		}
	})

	t.Run("empty secret never verifies", func(t *testing.T) {
		empty := NewTokenService(nil, time.Hour)
		if empty.Verify("anything") != nil {
			t.Fatalf("expected nil payload")
		}
	})
}

func TestTokenService_MissingSecret(t *testing.T) {
	ts := NewTokenService(nil, time.Hour)
	if _, err := ts.IssueToken("joe@acme.com", entities.RoleUser); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
	if _, err := ts.IssueAdminToken("admin@acme.com"); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "well formed", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "extra whitespace", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
		{name: "wrong scheme", header: "Basic abc", want: ""},
		{name: "lowercase scheme", header: "bearer abc", want: ""},
		{name: "three parts", header: "Bearer abc def", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractBearerToken(tc.header); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
