package tplimpl

// The embedded templates. A project can override any of these by placing
// a file with the same relative name in its layouts directory.
var embeddedTemplates = map[string]string{
	"_default/single.html": `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }} | {{ .Site.Title }}</title>
</head>
<body>
<main>
<article>
<h1>{{ .Title }}</h1>
{{ .Content }}
</article>
</main>
</body>
</html>
`,

	"_default/list.html": `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Site.Title }}</title>
</head>
<body>
<main>
<h1>{{ .Site.Title }}</h1>
<ul>
{{ range .Posts -}}
<li><a href="{{ .Permalink }}">{{ .Title }}</a></li>
{{ end -}}
</ul>
</main>
</body>
</html>
`,

	"_default/terms.html": `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }} | {{ .Site.Title }}</title>
</head>
<body>
<main>
<h1>{{ .Title }}</h1>
{{ template "partials/terms.html" .Terms }}</main>
</body>
</html>
`,

	// The term listing itself: one heading per term, followed by the posts
	// carrying it. Kept as its own template so it renders the same whether
	// it is embedded in a page or rendered stand-alone.
	"partials/terms.html": `{{ range . -}}
<h3 id="{{ .Name | urlize }}">{{ .Name }}</h3>
<ul>
{{ range .Posts -}}
<li><a href="{{ .Permalink }}">{{ .Title }}</a></li>
{{ end -}}
</ul>
{{ end -}}
`,
}
