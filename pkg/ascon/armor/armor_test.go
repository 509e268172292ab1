package armor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	message := bytes.Repeat([]byte("hello world "), 12)
	dst := bytes.NewBuffer(nil)

	enc := NewEncoder(dst)
	if _, err := enc.Write(message); err != nil {
		t.Fatal(err)
	}

	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	// All lines must be wrapped.
	for _, line := range strings.Split(dst.String(), "\n") {
		if len(line) > 76 {
			t.Errorf("line too long: %q", line)
		}
	}

	decoded, err := io.ReadAll(NewDecoder(dst))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "de-armored output", message, decoded)
}
