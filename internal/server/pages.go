package server

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

const pageCSS = `
body{font-family:system-ui,-apple-system,sans-serif;margin:0;background:#f6f6f6;color:#222}
main{max-width:860px;margin:2rem auto;background:#fff;padding:2rem;border-radius:8px;box-shadow:0 2px 10px rgba(0,0,0,.08)}
header{display:flex;justify-content:space-between;align-items:baseline}
#status{font-size:.8rem;padding:.2rem .6rem;border-radius:4px;color:#fff;background:#999}
#status.connected{background:#2e7d32}
#status.disconnected{background:#c62828}
.documents li{margin:.4rem 0}
.documents small{color:#777;margin-left:.5rem}
img.emoji{width:20px;height:20px;vertical-align:middle}
.spoiler{filter:blur(4px)}
.spoiler:hover{filter:none}
aside.quote{border-left:4px solid #ddd;padding-left:1rem;margin-left:0}
pre{background:#f3f3f3;padding:1rem;overflow:auto}
`

// liveReloadScript swaps the rendered body on "rendered" messages for the
// current document and reloads on "reload".
const liveReloadScript = `
(function(){
  var status=document.getElementById("status");
  var body=document.getElementById("content");
  var target=body?body.dataset.path:"";
  function connect(){
    var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+"/ws");
    ws.onopen=function(){status.textContent="live";status.className="connected";};
    ws.onclose=function(){status.textContent="offline";status.className="disconnected";setTimeout(connect,1000);};
    ws.onmessage=function(ev){
      var msg=JSON.parse(ev.data);
      if(msg.type==="reload"){location.reload();return;}
      if(!body||msg.target!==target){if(!body&&msg.type!=="error"){location.reload();}return;}
      if(msg.type==="rendered"){body.innerHTML=msg.content;}
      if(msg.type==="removed"){location.href="/";}
    };
  }
  connect();
})();
`

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

// Layout wraps body in the preview page chrome.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := write(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(title), ` · prettytext</title>`,
			`<style>`, pageCSS, `</style></head><body><main>`,
			`<header><h1>`, templ.EscapeString(title), `</h1><span id="status">connecting</span></header>`,
		)
		if err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</main><script>`, liveReloadScript, `</script></body></html>`)
	})
}

// IndexPage lists the documents under the preview root.
func IndexPage(docs []Document) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(docs) == 0 {
			return write(w, `<p>No documents found.</p>`)
		}
		var b strings.Builder
		b.WriteString(`<ul class="documents">`)
		for _, d := range docs {
			b.WriteString(`<li><a href="`)
			b.WriteString(templ.EscapeString(documentURL(d.Path)))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(d.Title))
			b.WriteString(`</a><small>`)
			b.WriteString(templ.EscapeString(d.Path))
			b.WriteString(`</small></li>`)
		}
		b.WriteString(`</ul>`)
		return write(w, b.String())
	})
	return Layout("Documents", body)
}

// DocumentPage shows one rendered document. html must already be sanitized.
func DocumentPage(doc Document, html string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := write(w,
			`<p><a href="/">&larr; all documents</a></p>`,
			`<article id="content" data-path="`, templ.EscapeString(doc.Path), `">`,
		)
		if err != nil {
			return err
		}
		if err := templ.Raw(html).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</article>`)
	})
	return Layout(doc.Title, body)
}

func documentURL(rel string) string {
	segments := strings.Split(rel, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/doc/" + strings.Join(segments, "/")
}
