package aoc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainAoc "github.com/adventcli/aoc/domain/external/aoc"
)

func TestAocClient_FetchInput(t *testing.T) {
	t.Run("returns the body with the session cookie set", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2024/day/3/input", r.URL.Path)
			assert.Equal(t, "session=token123", r.Header.Get("Cookie"))
			w.Write([]byte("1 2 3\n"))
		}))
		defer srv.Close()

		client := NewAocClient()
		client.BaseURL = srv.URL

		input, err := client.FetchInput("token123", 2024, 3)
		assert.NoError(t, err)
		assert.Equal(t, "1 2 3\n", input)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewAocClient()
		client.BaseURL = srv.URL

		_, err := client.FetchInput("token123", 2024, 3)
		assert.ErrorContains(t, err, "400")
	})
}

func TestAocClient_SubmitAnswer(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		verdict domainAoc.Verdict
	}{
		{
			name:    "correct",
			body:    "<p>That's the right answer! You got a star.</p>",
			verdict: domainAoc.VerdictCorrect,
		},
		{
			name:    "incorrect",
			body:    "<p>That's not the right answer. Please wait one minute.</p>",
			verdict: domainAoc.VerdictIncorrect,
		},
		{
			name:    "throttled",
			body:    "<p>You gave an answer too recently. You have 42s left to wait.</p>",
			verdict: domainAoc.VerdictThrottled,
		},
		{
			name:    "completed",
			body:    "<p>Did you already complete it.</p>",
			verdict: domainAoc.VerdictCompleted,
		},
		{
			name:    "unclassified page",
			body:    "<p>Service temporarily unavailable.</p>",
			verdict: domainAoc.VerdictUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/2021/day/9/answer", r.URL.Path)
				assert.NoError(t, r.ParseForm())
				assert.Equal(t, "2", r.PostForm.Get("level"))
				assert.Equal(t, "1234", r.PostForm.Get("answer"))
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewAocClient()
			client.BaseURL = srv.URL

			verdict, message, err := client.SubmitAnswer("token123", 2021, 9, 2, "1234")
			assert.NoError(t, err)
			assert.Equal(t, tt.verdict, verdict)
			if tt.verdict != domainAoc.VerdictUnknown {
				assert.NotEmpty(t, message)
			}
		})
	}
}
