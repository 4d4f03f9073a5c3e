package templates

// Base template - shared structure for all HTML pages.
// Page templates define the "content" block.

func GetBaseTemplates() string {
	return baseTemplate + footerTemplate
}

var baseTemplate = `{{define "base"}}{{$site := siteConfig}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <meta name="theme-color" content="{{$site.Meta.ThemeColor}}">
  <meta name="description" content="{{$site.Site.Description}}">
  <meta property="og:title" content="{{$site.FormatTitle .Title}}">
  <meta property="og:description" content="{{$site.Site.Description}}">
  <meta property="og:type" content="website">
  {{if .CanonicalURL}}<meta property="og:url" content="{{.CanonicalURL}}">
  <link rel="canonical" href="{{.CanonicalURL}}">{{end}}
  <title>{{$site.FormatTitle .Title}}</title>
  <link rel="icon" href="{{$site.Links.Favicon}}">
  <link rel="stylesheet" href="{{$site.Links.Stylesheet}}">
</head>
<body id="top">
  <a href="#main-content" class="skip-link">{{i18n "a11y.skip_to_main"}}</a>
  <div id="page-content">
    <main id="main-content">
      {{template "content" .}}
    </main>
  </div>
  {{template "footer" .}}
</body>
</html>{{end}}
`

var footerTemplate = `{{define "footer"}}
<footer>
<a href="#top" class="scroll-top" aria-label="Scroll to top">↑</a>
</footer>
{{end}}`
