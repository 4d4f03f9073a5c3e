package templates

// Fragment template - renders just the content block without the base wrapper.
// Used for hypermedia partial page updates where only the main content swaps.

// GetFragmentTemplate returns the fragment wrapper template.
// Parse together with content templates to enable fragment rendering.
func GetFragmentTemplate() string {
	return fragmentTemplate
}

var fragmentTemplate = `{{define "fragment"}}{{$site := siteConfig}}<title>{{$site.FormatTitle .Title}}</title>
<main id="main-content">
  {{template "content" .}}
</main>{{end}}`
