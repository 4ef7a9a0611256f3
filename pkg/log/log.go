package log

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

// Options vem de APP_ENV e LOG_LEVEL
type Options struct {
	Level       string
	Development bool
}

const (
	CorrelationIDField = "correlation_id"
	UserIDField        = "user_id"
	CompanyField       = "company"
)

// Campos mantidos no formato compacto de desenvolvimento
var compactFields = map[string]bool{
	CorrelationIDField: true,
	UserIDField:        true,
	CompanyField:       true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"panic":            true,
}

type ctxKey int

const (
	correlationIDKey ctxKey = iota
	requestFieldsKey
)

type logger struct {
	entry   *logrus.Entry
	compact bool
}

// L é o logger global, trocado por Setup na inicialização
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// New monta um logger sobre out. Nível inválido cai para info e devolve o erro.
func New(out io.Writer, opts Options) (Logger, error) {
	base := logrus.New()
	base.SetOutput(out)

	if opts.Development {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	return &logger{entry: logrus.NewEntry(base), compact: opts.Development}, err
}

// Setup aplica as opções ao logger global e ao logger padrão do logrus
func Setup(opts Options) error {
	l, err := New(os.Stdout, opts)

	std := l.(*logger).entry.Logger
	logrus.SetOutput(std.Out)
	logrus.SetFormatter(std.Formatter)
	logrus.SetLevel(std.Level)

	L = l
	return err
}

func (l *logger) WithField(key string, value any) Logger {
	if l.compact && !compactFields[key] {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value), compact: l.compact}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := logrus.Fields{}
	for k, v := range fields {
		if !l.compact || compactFields[k] {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept), compact: l.compact}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err), compact: l.compact}
}

func (l *logger) Debug(args ...any)                { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)                 { l.entry.Info(args...) }
func (l *logger) Warn(args ...any)                 { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...any)                { l.entry.Error(args...) }

// WithCorrelationID guarda o ID no contexto, gerando um novo quando vazio
func WithCorrelationID(ctx context.Context, id string) (context.Context, string) {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, correlationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// requestFields acumula campos descobertos ao longo da requisição
// (usuário no AuthMiddleware, empresa no handler).
type requestFields struct {
	mu     sync.Mutex
	fields Fields
}

// WithRequestFields prepara o contexto para receber campos via AddRequestField
func WithRequestFields(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestFieldsKey, &requestFields{fields: Fields{}})
}

// AddRequestField é ignorado quando o contexto não passou por WithRequestFields
func AddRequestField(ctx context.Context, key string, value any) {
	rf, ok := ctx.Value(requestFieldsKey).(*requestFields)
	if !ok {
		return
	}
	rf.mu.Lock()
	rf.fields[key] = value
	rf.mu.Unlock()
}

// RequestFields devolve uma cópia dos campos acumulados
func RequestFields(ctx context.Context) Fields {
	out := Fields{}
	rf, ok := ctx.Value(requestFieldsKey).(*requestFields)
	if !ok {
		return out
	}
	rf.mu.Lock()
	defer rf.mu.Unlock()
	for k, v := range rf.fields {
		out[k] = v
	}
	return out
}

// ForContext devolve L com o correlation_id e os campos da requisição
func ForContext(ctx context.Context) Logger {
	if ctx == nil {
		return L
	}

	fields := RequestFields(ctx)
	if id := GetCorrelationID(ctx); id != "" {
		fields[CorrelationIDField] = id
	}
	return L.WithFields(fields)
}
