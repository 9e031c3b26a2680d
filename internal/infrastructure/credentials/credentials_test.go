package credentials

import (
	"errors"
	"strings"
	"testing"

	"github.com/northroot-labs/pagesops/internal/domain"
)

func sourceWith(values map[string]string) *Source {
	return NewFromGetenv(func(name string) string {
		return values[name]
	})
}

func TestSource_Require(t *testing.T) {
	src := sourceWith(map[string]string{
		"SET":   "value",
		"SPACE": "  padded  ",
	})

	t.Run("present", func(t *testing.T) {
		got, err := src.Require("SET")
		if err != nil || got != "value" {
			t.Fatalf("Require(SET) = %q, %v", got, err)
		}
	})

	t.Run("trimmed", func(t *testing.T) {
		got, err := src.Require("SPACE")
		if err != nil || got != "padded" {
			t.Fatalf("Require(SPACE) = %q, %v", got, err)
		}
	})

	t.Run("missing names the variable", func(t *testing.T) {
		_, err := src.Require("CLOUDFLARE_API_TOKEN")
		if !errors.Is(err, domain.ErrMissingCredential) {
			t.Fatalf("Require() error = %v, want ErrMissingCredential", err)
		}
		if !strings.Contains(err.Error(), "CLOUDFLARE_API_TOKEN") {
			t.Fatalf("Require() error %q does not name the variable", err)
		}
	})

	t.Run("whitespace only counts as missing", func(t *testing.T) {
		src := sourceWith(map[string]string{"BLANK": "   "})
		if _, err := src.Require("BLANK"); !errors.Is(err, domain.ErrMissingCredential) {
			t.Fatalf("Require(BLANK) error = %v, want ErrMissingCredential", err)
		}
	})
}

func TestSource_Missing(t *testing.T) {
	src := sourceWith(map[string]string{
		EnvNamecheapAPIUser:  "ops",
		EnvNamecheapClientIP: "203.0.113.7",
	})

	missing := src.Missing(NamecheapVars()...)
	want := []string{EnvNamecheapAPIKey, EnvNamecheapUsername}
	if len(missing) != len(want) {
		t.Fatalf("Missing() = %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("Missing() = %v, want %v", missing, want)
		}
	}
}

func TestSource_Namecheap(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		src := sourceWith(map[string]string{
			EnvNamecheapAPIUser:  "ops",
			EnvNamecheapAPIKey:   "secret",
			EnvNamecheapUsername: "ops",
			EnvNamecheapClientIP: "203.0.113.7",
		})
		auth, err := src.Namecheap()
		if err != nil {
			t.Fatalf("Namecheap() error = %v", err)
		}
		if auth.APIKey != "secret" || auth.ClientIP != "203.0.113.7" {
			t.Fatalf("Namecheap() = %+v", auth)
		}
	})

	t.Run("fails fast on the first missing variable", func(t *testing.T) {
		src := sourceWith(map[string]string{EnvNamecheapAPIUser: "ops"})
		_, err := src.Namecheap()
		if !errors.Is(err, domain.ErrMissingCredential) {
			t.Fatalf("Namecheap() error = %v, want ErrMissingCredential", err)
		}
		if !strings.Contains(err.Error(), EnvNamecheapAPIKey) {
			t.Fatalf("Namecheap() error %q should name %s", err, EnvNamecheapAPIKey)
		}
	})
}
