package testsupport

import (
	"context"
	"sync"

	"fitness-backend/pkg/ai"
	"fitness-backend/pkg/oauthsession"
)

// Resolver answers session exchanges from a fixed table
type Resolver struct {
	mu       sync.Mutex
	Sessions map[string]*oauthsession.SessionData
	Err      error
	Calls    int
}

func NewResolver() *Resolver {
	return &Resolver{Sessions: map[string]*oauthsession.SessionData{}}
}

func (r *Resolver) Resolve(_ context.Context, sessionID string) (*oauthsession.SessionData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	if r.Err != nil {
		return nil, r.Err
	}
	data, ok := r.Sessions[sessionID]
	if !ok {
		return nil, oauthsession.ErrRejected
	}
	cp := *data
	return &cp, nil
}

// ChatProvider returns a canned answer and records every request
type ChatProvider struct {
	mu       sync.Mutex
	Answer   string
	Err      error
	Requests []ai.ChatRequest
}

func (p *ChatProvider) Complete(_ context.Context, req ai.ChatRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Requests = append(p.Requests, req)
	if p.Err != nil {
		return "", p.Err
	}
	return p.Answer, nil
}

func (p *ChatProvider) Name() string { return "fake" }

// Published is one event captured by Publisher
type Published struct {
	Topic string
	Key   string
	Event interface{}
}

// Publisher captures events instead of sending them
type Publisher struct {
	mu     sync.Mutex
	Events []Published
	Err    error
	Closed bool
}

func (p *Publisher) Publish(_ context.Context, topic, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, Published{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Closed = true
	return nil
}
