package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "removed %d components\n", 3)
	assert.Equal(t, "removed 3 components\n", buf.String())
}

func TestWritefFailureDoesNotPanic(t *testing.T) {
	Writef(failWriter{}, "ignored %s", "output")
}
