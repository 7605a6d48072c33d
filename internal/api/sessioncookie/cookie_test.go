package sessioncookie

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestEncodeDecode_RoundTrip(t *testing.T) {
	value := Encode("deadbeef", secret)
	token, ok := Decode(value, secret)
	if !ok || token != "deadbeef" {
		t.Fatalf("Decode = %q, %v; want deadbeef, true", token, ok)
	}
}

func TestDecode_RejectsTampering(t *testing.T) {
	value := Encode("deadbeef", secret)

	cases := map[string]string{
		"swapped token": strings.Replace(value, "deadbeef", "deadbee0", 1),
		"truncated mac": value[:len(value)-2],
		"no separator":  "deadbeef",
		"empty":         "",
		"empty token":   "." + strings.SplitN(value, ".", 2)[1],
		"wrong secret":  Encode("deadbeef", []byte("other-secret")),
		"garbage":       "x.y.z",
	}
	for name, v := range cases {
		if _, ok := Decode(v, secret); ok {
			t.Fatalf("%s: Decode accepted %q", name, v)
		}
	}
}

func TestNew_CookieAttributes(t *testing.T) {
	c := New("deadbeef", secret, 24*time.Hour, true)

	if c.Name != Name {
		t.Fatalf("unexpected cookie name %q", c.Name)
	}
	if !c.HttpOnly {
		t.Fatalf("cookie must be HTTP-only")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie must be SameSite=Lax")
	}
	if !c.Secure {
		t.Fatalf("expected secure cookie when requested")
	}
	if c.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("unexpected MaxAge %d", c.MaxAge)
	}
	if strings.Contains(c.Value, " ") {
		t.Fatalf("cookie value must not contain spaces: %q", c.Value)
	}
}

func TestExpired_DropsCookie(t *testing.T) {
	c := Expired(false)
	if c.MaxAge >= 0 || c.Value != "" {
		t.Fatalf("expected expiring cookie, got MaxAge=%d Value=%q", c.MaxAge, c.Value)
	}
}
