package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContentParsesFirstCandidate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "systemInstruction")

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Stretch daily."}]}}]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("secret")
	svc.BaseURL = srv.URL

	text, err := svc.GenerateContent(context.Background(), "coach", "tips?")
	require.NoError(t, err)
	assert.Equal(t, "Stretch daily.", text)
}

func TestGenerateContentErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewGeminiService("secret")
	svc.BaseURL = srv.URL

	_, err := svc.GenerateContent(context.Background(), "coach", "tips?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestGenerateContentWithoutCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("secret")
	svc.BaseURL = srv.URL

	_, err := svc.GenerateContent(context.Background(), "", "tips?")
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}
