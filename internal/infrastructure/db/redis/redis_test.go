package redis

import (
	"testing"
	"time"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions(Config{
		Addr:     "redis:6379",
		Password: "secret",
		DB:       3,
		Timeout:  2 * time.Second,
	})

	if opts.Addr != "redis:6379" || opts.Password != "secret" || opts.DB != 3 {
		t.Fatalf("connection settings not carried over: %+v", opts)
	}
	if opts.ClientName != clientName {
		t.Fatalf("client name %q, want %q", opts.ClientName, clientName)
	}
	if opts.DialTimeout != 2*time.Second || opts.ReadTimeout != 2*time.Second || opts.WriteTimeout != 2*time.Second {
		t.Fatalf("timeouts not applied: %+v", opts)
	}
}

func TestClientOptions_DefaultTimeout(t *testing.T) {
	opts := clientOptions(Config{Addr: "redis:6379"})
	if opts.DialTimeout != defaultTimeout {
		t.Fatalf("dial timeout %v, want %v", opts.DialTimeout, defaultTimeout)
	}
}
