package logx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeFansOutToEverySink(t *testing.T) {
	l := New("render")
	var a, b []Line
	stopA := l.Subscribe(SinkFunc(func(line Line) { a = append(a, line) }))
	stopB := l.Subscribe(SinkFunc(func(line Line) { b = append(b, line) }))

	l.Warnf("row %d rendered", 7)

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, "row 7 rendered", a[0].Text)
	assert.Equal(t, Warn, a[0].Level)
	assert.Equal(t, "render", a[0].Channel)

	stopA()
	l.Logf("second")
	assert.Len(t, a, 1)
	assert.Len(t, b, 2)

	stopB()
	stopB()
	assert.Equal(t, 0, l.Subscribers())
}

func TestLinesAlwaysReachApplicationBuffer(t *testing.T) {
	l := New("probe")
	l.Errorf("unique-marker-%s", "x1")

	found := false
	for _, s := range Lines() {
		if strings.Contains(s, "[probe] unique-marker-x1") && strings.Contains(s, "ERROR") {
			found = true
		}
	}
	assert.True(t, found, "line missing from buffer:\n%s", Dump())
}

func TestParseLevel(t *testing.T) {
	lv, ok := ParseLevel(" Warning ")
	assert.True(t, ok)
	assert.Equal(t, Warn, lv)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, "log", Log.String())
	assert.Equal(t, "error", Error.String())
}
