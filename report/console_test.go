package report

import (
	"bytes"
	"sync"
	"testing"
)

func TestConsolePlain(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, false)
	c.FoundFrame("/walk/0")
	c.WithPrefix("[hero] ").FoundFrame("/walk/1")

	want := "Found frame /walk/0\n[hero] Found frame /walk/1\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestConsoleConcurrent(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, false)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := c.WithPrefix("> ")
			for j := 0; j < 50; j++ {
				p.FoundFrame("x")
			}
		}()
	}
	wg.Wait()

	if got, want := bytes.Count(buf.Bytes(), []byte("> Found frame x\n")), 400; got != want {
		t.Errorf("got %d complete lines; want %d", got, want)
	}
}
