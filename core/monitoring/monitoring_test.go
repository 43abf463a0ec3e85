package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	errs    []error
	panics  []any
	flushed int
}

func (r *recorder) CaptureException(err error, _ map[string]string) { r.errs = append(r.errs, err) }
func (r *recorder) CapturePanic(v any)                              { r.panics = append(r.panics, v) }
func (r *recorder) Flush(time.Duration)                             { r.flushed++ }

func install(t *testing.T) *recorder {
	t.Helper()
	prev := Current()
	rec := &recorder{}
	Init(rec)
	t.Cleanup(func() { Init(prev) })
	return rec
}

func TestCaptureException(t *testing.T) {
	rec := install(t)
	CaptureException(nil, nil)
	CaptureException(errors.New("boom"), map[string]string{"module": "test"})
	assert.Len(t, rec.errs, 1)

	Init(nil)
	assert.Same(t, rec, Current())
}

func TestRecover_RepanicsAfterCapture(t *testing.T) {
	rec := install(t)
	assert.PanicsWithValue(t, "kaboom", func() {
		defer Recover()
		panic("kaboom")
	})
	assert.Equal(t, []any{"kaboom"}, rec.panics)
	assert.Equal(t, 1, rec.flushed)
}
