package checks

import (
	"fmt"

	"github.com/roach88/buildassert"
)

// recordingT collects failure messages instead of failing a Go test.
// FailNow unwinds the check with a stopped panic that execute recovers.
type recordingT struct {
	messages []string
}

type stopped struct{}

func (r *recordingT) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	panic(stopped{})
}

func (r *recordingT) Helper() {}

func (r *recordingT) failed() bool {
	return len(r.messages) > 0
}

func (r *recordingT) message() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[0]
}

// execute runs fn against r. A usage error raised by the library is
// returned; any other panic propagates.
func execute(r *recordingT, fn func()) (usage *buildassert.UsageError) {
	defer func() {
		switch p := recover().(type) {
		case nil, stopped:
		case *buildassert.UsageError:
			usage = p
		case *buildassert.Failure:
			if !r.failed() {
				r.messages = append(r.messages, p.Message)
			}
		default:
			panic(p)
		}
	}()

	fn()
	return nil
}
