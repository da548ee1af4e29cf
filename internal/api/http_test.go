package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, WithHTTPClient(srv.Client()))
}

func TestRoadmap_Success(t *testing.T) {
	var gotPath, gotSkill, gotRequestID string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSkill = r.URL.Query().Get("skill")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"skill": "go & rust",
			"modules": [
				{"title": "Module 1: Basics", "subtopics": [
					{"title": "Syntax", "resources": {"youtube": "go syntax", "unknownplat": "x", "articles": "go tour"}}
				]},
				{"title": "Module 2: Concurrency", "subtopics": []}
			]
		}`))
	})

	rm, err := c.Roadmap(context.Background(), "go & rust")
	require.NoError(t, err)

	assert.Equal(t, EndpointRoadmap, gotPath)
	assert.Equal(t, "go & rust", gotSkill)
	assert.NotEmpty(t, gotRequestID)

	assert.Equal(t, "go & rust", rm.Skill)
	require.Len(t, rm.Modules, 2)
	assert.Equal(t, "Module 1: Basics", rm.Modules[0].Title)
	assert.Equal(t, "Module 2: Concurrency", rm.Modules[1].Title)

	res := rm.Modules[0].Subtopics[0].Resources
	require.Len(t, res, 3)
	assert.Equal(t, "youtube", res[0].Platform)
	assert.Equal(t, "unknownplat", res[1].Platform)
	assert.Equal(t, "articles", res[2].Platform)
}

func TestRoadmap_ServerErrorWithMessage(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})

	_, err := c.Roadmap(context.Background(), "go")
	require.Error(t, err)

	var se *ServerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Status)
	assert.Equal(t, "boom", Message(err))
}

func TestRoadmap_ErrorFieldOnOK(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Skill parameter is required."}`))
	})

	_, err := c.Roadmap(context.Background(), "go")
	var se *ServerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusOK, se.Status)
	assert.Equal(t, "Skill parameter is required.", Message(err))
}

func TestRoadmap_NonOKWithoutMessageFallsBack(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := c.Roadmap(context.Background(), "go")
	var se *ServerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, FallbackMessage, Message(err))
}

func TestRoadmap_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `this is not json`},
		{"missing modules", `{"skill":"go"}`},
		{"wrong module shape", `{"skill":"go","modules":[{"title":1,"subtopics":[]}]}`},
		{"non-string resource", `{"skill":"go","modules":[{"title":"m","subtopics":[{"title":"s","resources":{"youtube":3}}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Roadmap(context.Background(), "go")
			var de *DecodeError
			require.True(t, errors.As(err, &de), "got %v", err)
			assert.NotEmpty(t, Message(err))
		})
	}
}

func TestRoadmap_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewHTTPClient(base)
	_, err := c.Roadmap(context.Background(), "go")

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Contains(t, Message(err), "Could not reach the server")
}

func TestQuiz_Success(t *testing.T) {
	var gotTopic string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointQuiz, r.URL.Path)
		gotTopic = r.URL.Query().Get("topic")
		_, _ = w.Write([]byte(`{"question":"Q","options":["A","B","C"],"answer":"B"}`))
	})

	q, err := c.Quiz(context.Background(), "Goroutines & Channels")
	require.NoError(t, err)
	assert.Equal(t, "Goroutines & Channels", gotTopic)
	assert.Equal(t, "Q", q.Question)
	assert.Equal(t, []string{"A", "B", "C"}, q.Options)
	assert.Equal(t, "B", q.Answer)
}

func TestQuiz_ErrorField(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Could not generate quiz for 'x'."}`))
	})

	_, err := c.Quiz(context.Background(), "x")
	assert.Equal(t, "Could not generate quiz for 'x'.", Message(err))
}

func TestQuiz_MissingOptionsIsDecodeError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"question":"Q","answer":"B"}`))
	})

	_, err := c.Quiz(context.Background(), "x")
	var de *DecodeError
	assert.True(t, errors.As(err, &de))
}

func TestRequestIDFromContextIsSent(t *testing.T) {
	var got string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"question":"Q","options":["A"],"answer":"A"}`))
	})

	_, err := c.Quiz(WithRequestID(context.Background(), "req-123"), "x")
	require.NoError(t, err)
	assert.Equal(t, "req-123", got)
}

func TestWithTimeout(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c = NewHTTPClient(c.BaseURL(), WithTimeout(20*time.Millisecond))

	_, err := c.Roadmap(context.Background(), "go")
	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestContextCancel(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Roadmap(ctx, "go")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:5000/")
	assert.Equal(t, "http://127.0.0.1:5000", c.BaseURL())
}
