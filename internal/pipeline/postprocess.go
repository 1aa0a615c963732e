package pipeline

import (
	"context"

	"github.com/conneroisu/prettytext/internal/onebox"
	"github.com/conneroisu/prettytext/internal/shorturl"
)

// Postprocessor rewrites final HTML against a remote service. It runs after
// sanitizing, so its output must already be trusted.
type Postprocessor func(ctx context.Context, html string) (string, error)

// ResolveUploads rewrites upload:// references through r.
func ResolveUploads(r *shorturl.Resolver) Postprocessor {
	return func(ctx context.Context, html string) (string, error) {
		return shorturl.ResolveHTML(ctx, html, r)
	}
}

// LoadOneboxes replaces onebox placeholders with previews fetched through l.
func LoadOneboxes(l *onebox.Loader) Postprocessor {
	return func(ctx context.Context, html string) (string, error) {
		return onebox.EnrichHTML(ctx, html, l)
	}
}

// RenderContext renders raw and then applies post in order. A failing
// postprocessor is logged and skipped so the document still renders.
func (p *Pipeline) RenderContext(ctx context.Context, raw string, post ...Postprocessor) (string, error) {
	out, err := p.Render(raw)
	if err != nil {
		return "", err
	}
	for i, fn := range post {
		next, err := fn(ctx, out)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			p.logger.Warn(ctx, err, "Postprocessor failed, keeping previous output", "index", i)
			continue
		}
		out = next
	}
	return out, nil
}
