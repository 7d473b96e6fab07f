package logger

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	common_models "go-fieldops/internal/common/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from zap to the writer goroutine.
type LogEntry struct {
	Level     zapcore.Level
	Message   string
	Caller    string
	RequestID string
	Context   map[string]string
}

// LogInserter is the part of *mongo.Collection the writer needs.
type LogInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// DBLogWriter persists log entries asynchronously through a buffered channel.
type DBLogWriter struct {
	collection LogInserter
	logChan    chan LogEntry
	appId      string
	done       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex
	closed     bool
}

// NewDBLogWriter starts the background worker immediately.
func NewDBLogWriter(collection LogInserter, appId string) *DBLogWriter {
	writer := &DBLogWriter{
		collection: collection,
		logChan:    make(chan LogEntry, 1000),
		appId:      appId,
		done:       make(chan struct{}),
	}

	go writer.processLogs()

	return writer
}

// AddLog never blocks: with a full buffer the entry is dropped.
func (w *DBLogWriter) AddLog(entry LogEntry) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}

	select {
	case w.logChan <- entry:
	default:
		fmt.Fprintln(os.Stderr, "DB log channel full, dropping log:", entry.Message)
	}
}

// Close stops accepting entries and waits for the queue to drain or ctx to end.
func (w *DBLogWriter) Close(ctx context.Context) error {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		close(w.logChan)
		w.mu.Unlock()
	})

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *DBLogWriter) processLogs() {
	defer close(w.done)
	for entry := range w.logChan {
		logRecord := common_models.Log{
			Message:      entry.Message,
			LogLevelId:   mapLevelToInt(entry.Level),
			Caller:       entry.Caller,
			RequestID:    entry.RequestID,
			Context:      entry.Context,
			AppId:        w.appId,
			CreatedOnUtc: time.Now().UTC(),
		}

		// a failed insert must not take the service down
		_, _ = w.collection.InsertOne(context.Background(), logRecord)
	}
}

func mapLevelToInt(l zapcore.Level) int {
	switch l {
	case zapcore.DebugLevel:
		return 10
	case zapcore.InfoLevel:
		return 20
	case zapcore.WarnLevel:
		return 30
	case zapcore.ErrorLevel:
		return 40
	case zapcore.FatalLevel:
		return 50
	default:
		return 20
	}
}
