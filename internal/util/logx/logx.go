package logx

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a line. The four values mirror the four console
// methods the playground captures.
type Level int

const (
	Log Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "log"
	}
}

// ParseLevel maps "log", "debug", "info", "warn", "error" to a Level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "log", "debug":
		return Log, true
	case "info":
		return Info, true
	case "warn", "warning":
		return Warn, true
	case "error":
		return Error, true
	}
	return Log, false
}

// Line is what a Sink observes.
type Line struct {
	Channel string
	Level   Level
	Text    string
	When    time.Time
}

// Sink receives every line written to a Logger it is subscribed to.
// Capture may be called from any goroutine and must not block.
type Sink interface {
	Capture(Line)
}

type SinkFunc func(Line)

func (f SinkFunc) Capture(l Line) { f(l) }

var (
	mu       sync.Mutex
	level    = Log
	buf      = make([]string, 0, 500)
	maxLines = 500
	// stderr output breaks the TUI; enable via PERFPLAYGROUND_LOG_STDERR=1
	toStderr = false

	std = New("")
)

func SetLevel(l Level) { mu.Lock(); level = l; mu.Unlock() }

func SetLevelFromEnv() {
	if lv, ok := ParseLevel(os.Getenv("PERFPLAYGROUND_LOG_LEVEL")); ok {
		SetLevel(lv)
	}
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("PERFPLAYGROUND_LOG_STDERR"))); v != "" {
		mu.Lock()
		toStderr = v != "0" && v != "false" && v != "no"
		mu.Unlock()
	}
}

// Default returns the application logger used by the package-level helpers.
func Default() *Logger { return std }

func Logf(format string, a ...any)   { std.emit(Log, format, a...) }
func Infof(format string, a ...any)  { std.emit(Info, format, a...) }
func Warnf(format string, a ...any)  { std.emit(Warn, format, a...) }
func Errorf(format string, a ...any) { std.emit(Error, format, a...) }

// Logger is a named channel. Lines always reach the shared application
// buffer; subscribed sinks see them in addition.
type Logger struct {
	name string

	mu     sync.Mutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id   int
	sink Sink
}

func New(name string) *Logger {
	return &Logger{name: name}
}

func (l *Logger) Name() string { return l.name }

// Subscribe attaches s and returns a function that detaches it. Calling the
// returned function more than once is harmless.
func (l *Logger) Subscribe(s Sink) func() {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscription{id: id, sink: s})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.unsubscribe(id) })
	}
}

func (l *Logger) unsubscribe(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.subs {
		if s.id == id {
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			return
		}
	}
}

// Subscribers reports how many sinks are attached.
func (l *Logger) Subscribers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

func (l *Logger) Logf(format string, a ...any)   { l.emit(Log, format, a...) }
func (l *Logger) Infof(format string, a ...any)  { l.emit(Info, format, a...) }
func (l *Logger) Warnf(format string, a ...any)  { l.emit(Warn, format, a...) }
func (l *Logger) Errorf(format string, a ...any) { l.emit(Error, format, a...) }

func (l *Logger) emit(lv Level, format string, a ...any) {
	if l == nil {
		return
	}
	line := Line{Channel: l.name, Level: lv, Text: fmt.Sprintf(format, a...), When: time.Now()}
	write(line)

	l.mu.Lock()
	sinks := make([]Sink, len(l.subs))
	for i, s := range l.subs {
		sinks[i] = s.sink
	}
	l.mu.Unlock()
	// sinks run outside the lock so they may log themselves
	for _, s := range sinks {
		s.Capture(line)
	}
}

func write(line Line) {
	mu.Lock()
	defer mu.Unlock()
	if line.Level < level {
		return
	}
	ts := line.When.Format("2006-01-02T15:04:05.000Z07:00")
	tag := strings.ToUpper(line.Level.String())
	text := line.Text
	if line.Channel != "" {
		text = "[" + line.Channel + "] " + text
	}
	formatted := fmt.Sprintf("%s %-5s %s", ts, tag, text)
	if len(buf) >= maxLines {
		// drop oldest
		copy(buf[0:], buf[1:])
		buf = buf[:len(buf)-1]
	}
	buf = append(buf, formatted)
	if toStderr {
		fmt.Fprintln(os.Stderr, formatted)
	}
}

func Dump() string {
	mu.Lock()
	defer mu.Unlock()
	return strings.Join(buf, "\n")
}

func Lines() []string {
	mu.Lock()
	defer mu.Unlock()
	out := make([]string, len(buf))
	copy(out, buf)
	return out
}
