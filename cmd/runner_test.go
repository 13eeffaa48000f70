package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/focusdeck/internal/client"
	"github.com/desertthunder/focusdeck/internal/shared"
	tu "github.com/desertthunder/focusdeck/internal/testing"
)

func TestNewRunner(t *testing.T) {
	t.Run("fills in defaults", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})

		if r.config == nil {
			t.Error("config should default")
		}
		if r.logger == nil {
			t.Error("logger should default")
		}
		if r.api == nil {
			t.Error("api client should be constructed from config")
		}
		if r.output == nil {
			t.Error("output should default to stdout")
		}
	})

	t.Run("keeps provided dependencies", func(t *testing.T) {
		var buf bytes.Buffer
		config := shared.DefaultConfig()
		config.Client.BaseURL = "http://localhost:9999"

		r := NewRunner(RunnerOpts{Config: config, Output: &buf})
		if r.config != config {
			t.Error("config should not be replaced")
		}
		if r.output != &buf {
			t.Error("output should not be replaced")
		}
	})
}

func TestWriteJSON(t *testing.T) {
	data := map[string]string{"name": "lofi"}

	t.Run("compact", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writeJSON(data, false); err != nil {
			t.Fatalf("writeJSON() error: %v", err)
		}
		if got := buf.String(); got != "{\"name\":\"lofi\"}\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("pretty", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writeJSON(data, true); err != nil {
			t.Fatalf("writeJSON() error: %v", err)
		}
		if !strings.Contains(buf.String(), "  \"name\": \"lofi\"") {
			t.Errorf("output = %q, want indented", buf.String())
		}
	})

	t.Run("write failure surfaces", func(t *testing.T) {
		r := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		if err := r.writeJSON(data, false); err == nil {
			t.Error("expected error from failing writer")
		}
	})

	t.Run("unmarshalable data surfaces", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(RunnerOpts{Output: &buf})

		if err := r.writeJSON(make(chan int), false); err == nil {
			t.Error("expected marshal error")
		}
	})
}

func TestWritePlain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(RunnerOpts{Output: &buf})

	if err := r.writePlain("%d videos\n", 3); err != nil {
		t.Fatalf("writePlain() error: %v", err)
	}
	if buf.String() != "3 videos\n" {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := r.writePlainln("done"); err != nil {
		t.Fatalf("writePlainln() error: %v", err)
	}
	if buf.String() != "\ndone\n" {
		t.Errorf("output = %q", buf.String())
	}

	fr := NewRunner(RunnerOpts{Output: &tu.FWriter{}})
	if err := fr.writePlain("x"); err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestParseID(t *testing.T) {
	tc := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "valid", raw: "42", want: 42},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "decimal", raw: "1.5", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(tt.raw, "playlist id")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseID(%q) should fail", tt.raw)
				}
				if !errors.Is(err, shared.ErrInvalidArgument) {
					t.Errorf("error = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseID(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSessionPath(t *testing.T) {
	config := shared.DefaultConfig()
	config.Client.SessionPath = "/tmp/custom-session.json"
	r := NewRunner(RunnerOpts{Config: config})

	if got := r.sessionPath(); got != "/tmp/custom-session.json" {
		t.Errorf("sessionPath() = %q, want config override", got)
	}

	config.Client.SessionPath = ""
	if got := r.sessionPath(); got != client.DefaultSessionPath() {
		t.Errorf("sessionPath() = %q, want default", got)
	}
}

func TestRestoreSession(t *testing.T) {
	newRunnerWithSession := func(t *testing.T, session *client.Session) *Runner {
		t.Helper()
		path := filepath.Join(t.TempDir(), "session.json")
		if session != nil {
			if err := client.SaveSession(path, session); err != nil {
				t.Fatalf("failed to save session: %v", err)
			}
		}
		config := shared.DefaultConfig()
		config.Client.SessionPath = path
		return NewRunner(RunnerOpts{Config: config})
	}

	t.Run("valid session is installed", func(t *testing.T) {
		r := newRunnerWithSession(t, &client.Session{
			Token:     "token",
			UserID:    1,
			Username:  "desertthunder",
			IssuedAt:  time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		})

		if !r.restoreSession() {
			t.Fatal("restoreSession should succeed for a valid session")
		}
		if s := r.api.Session(); s == nil || s.Username != "desertthunder" {
			t.Errorf("session = %+v, want installed identity", s)
		}
	})

	t.Run("expired session is rejected", func(t *testing.T) {
		r := newRunnerWithSession(t, &client.Session{
			Token:     "token",
			ExpiresAt: time.Now().Add(-time.Hour),
		})

		if r.restoreSession() {
			t.Error("restoreSession should reject an expired session")
		}
	})

	t.Run("missing file is rejected", func(t *testing.T) {
		r := newRunnerWithSession(t, nil)

		if r.restoreSession() {
			t.Error("restoreSession should fail without a session file")
		}
	})
}
