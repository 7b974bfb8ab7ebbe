package applog

import "testing"

func TestWithComponentDoesNotPanic(t *testing.T) {
	l := WithComponent("test")
	l.Info().Msg("hello")
}

func TestLoggerReturnsNonNil(t *testing.T) {
	if Logger() == nil {
		t.Fatal("expected a non-nil logger")
	}
}
