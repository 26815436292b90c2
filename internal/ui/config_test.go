package ui

import (
	"bufio"
	"strings"
	"testing"

	"github.com/javiermolinar/pixsearch/internal/config"
)

func TestEditConfig_KeepsDefaultsOnEmptyInput(t *testing.T) {
	cfg := config.Default()
	want := *cfg

	editConfig(bufio.NewReader(strings.NewReader(strings.Repeat("\n", 20))), cfg)

	if *cfg != want {
		t.Fatalf("config changed on empty input:\ngot  %+v\nwant %+v", *cfg, want)
	}
}

func TestEditConfig_AppliesAnswers(t *testing.T) {
	cfg := config.Default()
	answers := strings.Join([]string{
		"abc123",       // key
		"",             // base url
		"not-a-number", // per page, rejected
		"24",           // per page
		"illustration", // image type
		"",             // orientation
		"no",           // safe search
		"5s",           // timeout
		"maybe",        // dedupe, rejected
		"n",            // dedupe
		"LATTE",        // theme
		"1500",         // toast ms
		"",             // debug path
	}, "\n") + "\n"

	editConfig(bufio.NewReader(strings.NewReader(answers)), cfg)

	if cfg.API.Key != "abc123" || cfg.API.PerPage != 24 || cfg.API.ImageType != "illustration" {
		t.Fatalf("unexpected api config: %+v", cfg.API)
	}
	if cfg.API.SafeSearch || cfg.Search.Dedupe {
		t.Fatalf("expected safesearch and dedupe disabled")
	}
	if cfg.API.Timeout != "5s" || cfg.UI.Theme != "latte" || cfg.UI.ToastMS != 1500 {
		t.Fatalf("unexpected values: timeout=%q theme=%q toast=%d", cfg.API.Timeout, cfg.UI.Theme, cfg.UI.ToastMS)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("edited config invalid: %v", err)
	}
}

func TestMaskKey(t *testing.T) {
	tests := map[string]string{
		"":           "(not set)",
		"abc":        "***",
		"0123456789": "******6789",
	}
	for in, want := range tests {
		if got := maskKey(in); got != want {
			t.Errorf("maskKey(%q) = %q, want %q", in, got, want)
		}
	}
}
