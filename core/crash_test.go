package core

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeScreen struct{ finis int }

func (f *fakeScreen) Fini() { f.finis++ }

func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)
	oldOut, oldExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, crashExit = oldOut, oldExit
		SetCrashScreen(nil)
	})
	return &buf, codes
}

func TestGoRecoversAndRestoresScreen(t *testing.T) {
	buf, codes := captureCrash(t)
	screen := &fakeScreen{}
	SetCrashScreen(screen)

	Go(func() { panic("boom") })

	assert.Equal(t, 1, <-codes)
	assert.Equal(t, 1, screen.finis)
	assert.Contains(t, buf.String(), "CRASH DETECTED: boom")
	assert.Contains(t, buf.String(), "Stack Trace:")
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	buf, codes := captureCrash(t)
	HandleCrash(nil)
	assert.Empty(t, buf.String())
	assert.Empty(t, codes)
}

func TestRecoverOnCallingGoroutine(t *testing.T) {
	buf, codes := captureCrash(t)
	screen := &fakeScreen{}
	SetCrashScreen(screen)

	func() {
		defer Recover()
		panic("render failed")
	}()

	assert.Equal(t, 1, <-codes)
	assert.Equal(t, 1, screen.finis)
	assert.Contains(t, buf.String(), "CRASH DETECTED: render failed")
}

func TestRecoverWithoutPanic(t *testing.T) {
	buf, codes := captureCrash(t)
	func() {
		defer Recover()
	}()
	assert.Empty(t, buf.String())
	assert.Empty(t, codes)
}
