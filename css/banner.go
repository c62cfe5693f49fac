package css

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"
)

// BannerValues is a struct that holds variables we make available for
// stylesheet header expansion.
type BannerValues struct {
	App       string
	Version   string
	Source    string
	Templates []string
	Generated time.Time
}

// Banner expands stylesheet header template. Result is supposed to be a css
// comment, anything else is rejected.
func Banner(field string, values BannerValues) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New("header").Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse stylesheet header: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand stylesheet header: %w", err)
	}

	out := bytes.TrimSpace(buf.Bytes())
	if len(out) == 0 {
		return "", nil
	}
	if len(out) < 4 || !bytes.HasPrefix(out, []byte("/*")) || !bytes.HasSuffix(out, []byte("*/")) || bytes.Contains(out[2:len(out)-2], []byte("*/")) {
		return "", fmt.Errorf("stylesheet header must be a single css comment, got %q", string(out))
	}
	return string(out), nil
}
