package api

import (
	"context"
	"errors"
	"sync"
)

// errNoCannedResponse is returned by MockClient when its queue is empty.
var errNoCannedResponse = errors.New("mock: no canned response")

// MockResponse is a canned MockClient result.
type MockResponse struct {
	Roadmap *Roadmap
	Quiz    *Quiz
	Err     error
}

// MockClient is a deterministic Client for tests. Roadmap and quiz
// responses are served from separate FIFO queues unless QuizFunc is set.
type MockClient struct {
	mu       sync.Mutex
	roadmaps []MockResponse
	quizzes  []MockResponse

	// QuizFunc, when set, answers every Quiz call instead of the queue.
	QuizFunc func(topic string) (*Quiz, error)

	RoadmapCalls []string
	QuizCalls    []string
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// AddRoadmap queues a roadmap response.
func (m *MockClient) AddRoadmap(rm *Roadmap, err error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roadmaps = append(m.roadmaps, MockResponse{Roadmap: rm, Err: err})
	return m
}

// AddQuiz queues a quiz response.
func (m *MockClient) AddQuiz(q *Quiz, err error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes = append(m.quizzes, MockResponse{Quiz: q, Err: err})
	return m
}

func (m *MockClient) Roadmap(_ context.Context, skill string) (*Roadmap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RoadmapCalls = append(m.RoadmapCalls, skill)
	if len(m.roadmaps) == 0 {
		return nil, &TransportError{Endpoint: EndpointRoadmap, Err: errNoCannedResponse}
	}
	resp := m.roadmaps[0]
	m.roadmaps = m.roadmaps[1:]
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Roadmap, nil
}

func (m *MockClient) Quiz(_ context.Context, topic string) (*Quiz, error) {
	m.mu.Lock()
	m.QuizCalls = append(m.QuizCalls, topic)
	fn := m.QuizFunc
	if fn != nil {
		m.mu.Unlock()
		return fn(topic)
	}
	defer m.mu.Unlock()

	if len(m.quizzes) == 0 {
		return nil, &TransportError{Endpoint: EndpointQuiz, Err: errNoCannedResponse}
	}
	resp := m.quizzes[0]
	m.quizzes = m.quizzes[1:]
	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Quiz, nil
}

// RoadmapCallCount returns the number of Roadmap calls made.
func (m *MockClient) RoadmapCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RoadmapCalls)
}

// QuizCallCount returns the number of Quiz calls made.
func (m *MockClient) QuizCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.QuizCalls)
}
