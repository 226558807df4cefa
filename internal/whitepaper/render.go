package whitepaper

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"

	"github.com/skip2/go-qrcode"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

const qrSize = 160

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

const printCSS = `
@page { size: A4; margin: 20mm 18mm; }
body { font-family: "Inter", "Helvetica Neue", Arial, sans-serif; color: #1a1a2e; line-height: 1.6; font-size: 11pt; }
header { display: flex; justify-content: space-between; align-items: center; border-bottom: 2px solid #6c3ce1; padding-bottom: 8mm; margin-bottom: 8mm; }
header h1 { font-size: 22pt; margin: 0; color: #6c3ce1; }
header .brand { font-size: 9pt; letter-spacing: 0.2em; text-transform: uppercase; color: #555; }
header img { width: 28mm; height: 28mm; }
h2 { color: #2d1b69; border-bottom: 1px solid #ddd; padding-bottom: 2mm; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
code { background: #f3f0ff; padding: 1px 4px; border-radius: 3px; }
footer { margin-top: 12mm; font-size: 8pt; color: #777; text-align: center; }
`

var page = template.Must(template.New("whitepaper").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<header>
<div><div class="brand">Megapayer Whitepaper</div><h1>{{.Title}}</h1></div>
{{if .QR}}<img src="{{.QR}}" alt="Read online">{{end}}
</header>
<main>{{.Body}}</main>
<footer>Excerpt. The full whitepaper is available at {{.URL}}</footer>
</body>
</html>`))

// ViewerURL is the online location of a whitepaper.
func ViewerURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/whitepaper/" + id
}

// QRDataURI encodes url as a PNG QR code data URI.
func QRDataURI(url string) (template.URL, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)), nil
}

// Markdown converts an excerpt body to HTML. Raw HTML in the source is dropped.
func Markdown(src []byte) (string, error) {
	var body bytes.Buffer
	if err := md.Convert(src, &body); err != nil {
		return "", fmt.Errorf("markdown: %w", err)
	}
	return body.String(), nil
}

// RenderHTML turns an excerpt into a standalone printable HTML page.
func RenderHTML(doc Document, baseURL string) ([]byte, error) {
	body, err := Markdown(doc.Markdown)
	if err != nil {
		return nil, err
	}

	url := ViewerURL(baseURL, doc.ID)
	qr, err := QRDataURI(url)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = page.Execute(&out, struct {
		Title string
		CSS   template.CSS
		QR    template.URL
		Body  template.HTML
		URL   string
	}{
		Title: doc.Title,
		CSS:   template.CSS(printCSS),
		QR:    qr,
		Body:  template.HTML(body),
		URL:   url,
	})
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
