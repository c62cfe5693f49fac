package css

import (
	"strings"
	"testing"
	"time"
)

func TestBanner(t *testing.T) {
	values := BannerValues{
		App:       "tabletpl",
		Version:   "1.2.3",
		Source:    "templates.yaml",
		Templates: []string{"t1", "t2"},
		Generated: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("expanded", func(t *testing.T) {
		got, err := Banner(`/* {{ .App }} {{ .Version }}: {{ join ", " .Templates }} from {{ .Source | base }} at {{ .Generated.Format "2006-01-02" }} */`, values)
		if err != nil {
			t.Fatalf("Banner() error: %v", err)
		}
		want := "/* tabletpl 1.2.3: t1, t2 from templates.yaml at 2024-03-01 */"
		if got != want {
			t.Errorf("Banner() = %q, want %q", got, want)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, err := Banner("  {{ if false }}x{{ end }} ", values)
		if err != nil || got != "" {
			t.Errorf("Banner() = %q, %v", got, err)
		}
	})

	t.Run("not a comment", func(t *testing.T) {
		for _, field := range []string{"body {}", "/* a */ body {}", "/* a */ b /* c */", "/*/"} {
			if _, err := Banner(field, values); err == nil || !strings.Contains(err.Error(), "single css comment") {
				t.Errorf("Banner(%q) = %v, want rejection", field, err)
			}
		}
	})

	t.Run("bad template", func(t *testing.T) {
		if _, err := Banner("/* {{ .Nope */", values); err == nil {
			t.Error("expected parse error")
		}
	})
}
