package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	topic  string
	msgs   []kafka.Message
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher() (*KafkaPublisher, map[string]*recordingWriter) {
	created := make(map[string]*recordingWriter)
	p := NewKafkaPublisher([]string{"broker:9092"})
	p.newWriter = func(_ []string, topic string) messageWriter {
		w := &recordingWriter{topic: topic}
		created[topic] = w
		return w
	}
	return p, created
}

func TestPublishEncodesEventKeyedByUser(t *testing.T) {
	p, created := newTestPublisher()
	topics := NewTopics("")

	event := WorkoutLogged{WorkoutID: "w1", UserID: "u1", Name: "Leg Day", Date: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), ExerciseCount: 1}
	require.NoError(t, p.Publish(context.Background(), topics.Workouts, "u1", event))

	w := created["fitness.workouts"]
	require.NotNil(t, w)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "u1", string(w.msgs[0].Key))

	var decoded WorkoutLogged
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestWriterIsReusedPerTopicAndClosed(t *testing.T) {
	p, created := newTestPublisher()
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, "a.progress", "u1", ProgressRecorded{ProgressID: "p1"}))
	require.NoError(t, p.Publish(ctx, "a.progress", "u2", ProgressRecorded{ProgressID: "p2"}))
	assert.Len(t, created, 1)
	assert.Len(t, created["a.progress"].msgs, 2)

	require.NoError(t, p.Close())
	assert.True(t, created["a.progress"].closed)
}

func TestNewTopicsUsesPrefix(t *testing.T) {
	topics := NewTopics("gym")
	assert.Equal(t, "gym.workouts", topics.Workouts)
	assert.Equal(t, "gym.progress", topics.Progress)
}
