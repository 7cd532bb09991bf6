package safe_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/chatdesk/pkg/utils/safe"
)

type trackingBody struct {
	io.Reader
	closed  bool
	closeFn func() error
}

func (b *trackingBody) Close() error {
	b.closed = true
	if b.closeFn != nil {
		return b.closeFn()
	}
	return nil
}

func TestDrainAndClose(t *testing.T) {
	r := strings.NewReader("leftover body")
	body := &trackingBody{Reader: r}

	safe.DrainAndClose(context.Background(), body)

	gt.B(t, body.closed).True()
	gt.Value(t, r.Len()).Equal(0)
}

func TestCloseSwallowsError(t *testing.T) {
	body := &trackingBody{Reader: strings.NewReader(""), closeFn: func() error { return errors.New("boom") }}
	safe.Close(context.Background(), body)
	gt.B(t, body.closed).True()

	safe.Close(context.Background(), nil)
	safe.DrainAndClose(context.Background(), nil)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	safe.Write(context.Background(), &buf, []byte("csv"))
	gt.Value(t, buf.String()).Equal("csv")

	safe.Write(context.Background(), nil, []byte("ignored"))
}
