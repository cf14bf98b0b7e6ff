/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timestampKey  = "time"
	levelKey      = "level"
	moduleKey     = "logger"
	callerKey     = "caller"
	messageKey    = "msg"
	stacktraceKey = "stacktrace"
)

// DefaultEncoding sets the default logger encoding.
// It may be overridden at build time using the -ldflags option.
var DefaultEncoding = Console //nolint gochecknoglobals

// Level defines a log level for logging messages.
type Level int

// Log levels.
const (
	DEBUG   = Level(zapcore.DebugLevel)
	INFO    = Level(zapcore.InfoLevel)
	WARNING = Level(zapcore.WarnLevel)
	ERROR   = Level(zapcore.ErrorLevel)
	PANIC   = Level(zapcore.PanicLevel)
	FATAL   = Level(zapcore.FatalLevel)

	minLogLevel  = DEBUG
	defaultLevel = INFO
)

var levelNames = map[Level]string{ //nolint:gochecknoglobals
	DEBUG:   "DEBUG",
	INFO:    "INFO",
	WARNING: "WARN",
	ERROR:   "ERROR",
	PANIC:   "PANIC",
	FATAL:   "FATAL",
}

// String returns string representation of given log level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return fmt.Sprintf("Level(%d)", l)
}

// ParseLevel returns the level from the given string.
func ParseLevel(level string) (Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARNING, nil
	case "ERROR":
		return ERROR, nil
	case "PANIC":
		return PANIC, nil
	case "FATAL":
		return FATAL, nil
	default:
		return ERROR, errors.New("logger: invalid log level")
	}
}

// Encoding defines the log encoding.
type Encoding = string

// Log encodings.
const (
	Console Encoding = "console"
	JSON    Encoding = "json"
)

const defaultModuleName = ""

var levels = &moduleLevels{levels: make(map[string]Level)} //nolint: gochecknoglobals

type options struct {
	encoding Encoding
	stdOut   zapcore.WriteSyncer
	stdErr   zapcore.WriteSyncer
	fields   []zap.Field
}

// Option is a logger option.
type Option func(o *options)

// WithStdOut sets the output for logs of type DEBUG, INFO, and WARN.
func WithStdOut(stdOut zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.stdOut = stdOut
	}
}

// WithStdErr sets the output for logs of type ERROR, PANIC, and FATAL.
func WithStdErr(stdErr zapcore.WriteSyncer) Option {
	return func(o *options) {
		o.stdErr = stdErr
	}
}

// WithFields sets the fields that will be output with every log.
func WithFields(fields ...zap.Field) Option {
	return func(o *options) {
		o.fields = fields
	}
}

// WithEncoding sets the output encoding (console or json).
func WithEncoding(encoding Encoding) Option {
	return func(o *options) {
		o.encoding = encoding
	}
}

// Log is a module-scoped structured logger backed by zap.
type Log struct {
	*zap.Logger
	module string
}

// New creates a structured Logger implementation based on given module name.
func New(module string, opts ...Option) *Log {
	o := &options{
		encoding: DefaultEncoding,
		stdOut:   os.Stdout,
		stdErr:   os.Stderr,
	}

	for _, opt := range opts {
		opt(o)
	}

	return &Log{
		Logger: newZap(module, o).With(o.fields...),
		module: module,
	}
}

// IsEnabled returns true if given log level is enabled.
func (l *Log) IsEnabled(level Level) bool {
	return levels.isEnabled(l.module, level)
}

// SetLevel sets the log level for given module and level.
func SetLevel(module string, level Level) {
	levels.set(module, level)
}

// SetDefaultLevel sets the default log level.
func SetDefaultLevel(level Level) {
	levels.set(defaultModuleName, level)
}

// GetLevel returns the log level for the given module.
func GetLevel(module string) Level {
	return levels.get(module)
}

// SetSpec sets the log levels for individual modules as well as the default log level.
// The format of the spec is as follows:
//
//	module1=level1:module2=level2:module3=level3:defaultLevel
//
// Example:
//
//	admission=debug:settlement=warning:info
func SetSpec(spec string) error {
	defaultLogLevel := minLogLevel - 1

	moduleLevels := make(map[string]Level)

	for _, part := range strings.Split(spec, ":") {
		module, level, isModule := strings.Cut(part, "=")
		if !isModule {
			if defaultLogLevel >= minLogLevel {
				return errors.New("multiple default values found")
			}

			l, err := ParseLevel(part)
			if err != nil {
				return err
			}

			defaultLogLevel = l

			continue
		}

		l, err := ParseLevel(level)
		if err != nil {
			return err
		}

		moduleLevels[module] = l
	}

	if defaultLogLevel < minLogLevel {
		defaultLogLevel = INFO
	}

	levels.set(defaultModuleName, defaultLogLevel)

	for module, l := range moduleLevels {
		levels.set(module, l)
	}

	return nil
}

// GetSpec returns the log spec which specifies the log level of each individual module.
// Modules are listed in alphabetical order followed by the default level.
func GetSpec() string {
	all := levels.all()

	modules := make([]string, 0, len(all))

	for module := range all {
		if module != defaultModuleName {
			modules = append(modules, module)
		}
	}

	sort.Strings(modules)

	var spec strings.Builder

	for _, module := range modules {
		spec.WriteString(fmt.Sprintf("%s=%s:", module, all[module]))
	}

	defaultLvl, ok := all[defaultModuleName]
	if !ok {
		defaultLvl = defaultLevel
	}

	spec.WriteString(defaultLvl.String())

	return spec.String()
}

type moduleLevels struct {
	levels map[string]Level
	mutex  sync.RWMutex
}

func (l *moduleLevels) get(module string) Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if level, ok := l.levels[module]; ok {
		return level
	}

	if level, ok := l.levels[defaultModuleName]; ok {
		return level
	}

	return defaultLevel
}

func (l *moduleLevels) all() map[string]Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	levelsCopy := make(map[string]Level, len(l.levels))

	for module, level := range l.levels {
		levelsCopy[module] = level
	}

	return levelsCopy
}

func (l *moduleLevels) set(module string, level Level) {
	l.mutex.Lock()
	l.levels[module] = level
	l.mutex.Unlock()
}

func (l *moduleLevels) isEnabled(module string, level Level) bool {
	return level >= l.get(module)
}

func newZap(module string, o *options) *zap.Logger {
	encoder := newZapEncoder(o.encoding)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(o.stdErr),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return lvl >= zapcore.ErrorLevel && levels.isEnabled(module, Level(lvl))
			}),
		),
		zapcore.NewCore(encoder, zapcore.Lock(o.stdOut),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return lvl < zapcore.ErrorLevel && levels.isEnabled(module, Level(lvl))
			}),
		),
	)

	return zap.New(core, zap.AddCaller()).Named(module)
}

func newZapEncoder(encoding Encoding) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        timestampKey,
		LevelKey:       levelKey,
		NameKey:        moduleKey,
		CallerKey:      callerKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     messageKey,
		StacktraceKey:  stacktraceKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch strings.ToLower(encoding) {
	case JSON:
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder

		return zapcore.NewJSONEncoder(cfg)
	case Console:
		cfg.EncodeName = func(moduleName string, encoder zapcore.PrimitiveArrayEncoder) {
			encoder.AppendString(fmt.Sprintf("[%s]", moduleName))
		}

		return zapcore.NewConsoleEncoder(cfg)
	default:
		panic("unsupported encoding " + encoding)
	}
}
