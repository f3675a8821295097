package storage

import "testing"

func TestNewReturnsNilWithoutConfig(t *testing.T) {
	c, err := New("", "eu-central", "", "", "assets", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client when storage is not configured")
	}
}

func TestFileURL(t *testing.T) {
	c, err := New("https://s3.example.com/", "eu-central", "ak", "sk", "assets", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.FileURL("logos/acme.png"); got != "https://s3.example.com/assets/logos/acme.png" {
		t.Errorf("path-style URL: %q", got)
	}

	c, err = New("https://s3.example.com", "eu-central", "ak", "sk", "assets", "https://cdn.example.com/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.FileURL("logos/acme.png"); got != "https://cdn.example.com/logos/acme.png" {
		t.Errorf("CDN URL: %q", got)
	}
}

func TestExtractKey(t *testing.T) {
	c, err := New("https://s3.example.com", "eu-central", "ak", "sk", "assets", "https://cdn.example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	key, ok := c.ExtractKey("https://cdn.example.com/banners/acme.png")
	if !ok || key != "banners/acme.png" {
		t.Errorf("CDN URL: got (%q, %v)", key, ok)
	}

	key, ok = c.ExtractKey("https://s3.example.com/assets/banners/acme.png")
	if !ok || key != "banners/acme.png" {
		t.Errorf("path-style URL: got (%q, %v)", key, ok)
	}

	if _, ok := c.ExtractKey("https://elsewhere.example.com/x.png"); ok {
		t.Error("foreign URL must not extract")
	}
}
