package templates

// Webinars template - page header, card grid and call to action.

func GetWebinarsTemplate() string {
	return webinarsContent + webinarCard
}

var webinarsContent = `{{define "content"}}{{$site := siteConfig}}
<section class="page-header">
  <h1 class="page-title"><span class="icon" aria-hidden="true">🎥</span> {{$site.Page.Heading}}</h1>
  <p class="page-subtitle">{{$site.Page.Subtitle}}</p>
  <ul class="page-stats">
    <li class="stat-joined"><span aria-hidden="true">👥</span> {{.ParentsJoined}} {{i18n "label.parents_joined"}}</li>
    {{if $site.Page.RatingText}}<li class="stat-rating"><span aria-hidden="true">⭐</span> {{$site.Page.RatingText}}</li>{{end}}
  </ul>
</section>

<section class="webinar-grid" id="webinar-grid">
{{range .Webinars}}
{{template "webinar-card" .}}
{{else}}
<p class="empty-state">{{i18n "msg.no_webinars"}}</p>
{{end}}
</section>

<section class="cta">
  <h2 class="cta-title">{{$site.Page.CTA.Heading}}</h2>
  <p class="cta-text">{{$site.Page.CTA.Text}}</p>
  <div class="cta-actions">
    <a href="{{$site.Page.CTA.RequestTopicHref}}" class="btn btn-outline">{{i18n "btn.request_topic"}}</a>
    <a href="{{$site.Page.CTA.ConsultationHref}}" class="btn btn-secondary">{{i18n "btn.consultation"}}</a>
  </div>
</section>
{{end}}`

// webinarCard renders one webinar. The topic badge classes come from
// topicColor and the date from formatDate; time and duration are verbatim.
var webinarCard = `{{define "webinar-card"}}
<article class="webinar-card" id="webinar-{{.ID}}" data-webinar-id="{{.ID}}" aria-labelledby="webinar-title-{{.ID}}">
  <header class="webinar-card-header">
    <div class="webinar-badges">
      <span class="badge badge-topic {{topicColor .Topic}}">{{.Topic}}</span>
      {{if .IsPopular}}<span class="badge badge-popular"><span aria-hidden="true">★</span> {{i18n "badge.popular"}}</span>{{end}}
    </div>
    <h2 class="webinar-title" id="webinar-title-{{.ID}}">{{.Title}}</h2>
    <div class="webinar-description">{{.DescriptionHTML}}</div>
  </header>
  <div class="webinar-card-body">
    <div class="webinar-people">
      <span class="webinar-speaker">{{.Speaker}}</span>
      <span class="webinar-registrations">{{.Registrations}} {{i18n "label.registered"}}</span>
    </div>
    <div class="webinar-schedule">
      <time class="webinar-date" datetime="{{.Date}}">{{formatDate .Date}}</time>
      <span class="webinar-time">{{.Time}} • {{.Duration}}</span>
    </div>
  </div>
  <footer class="webinar-card-footer">
    <form method="POST" action="/webinars/{{.ID}}/details" class="details-form" h-post h-swap="none">
      <button type="submit" class="btn btn-primary webinar-details-btn" aria-label="{{i18n "a11y.view_details_for"}} {{.Title}}">{{i18n "btn.view_details"}}</button>
    </form>
    <a href="/webinars/{{.ID}}/qr.png" class="webinar-share" title="{{i18n "a11y.webinar_qr"}}">{{i18n "label.share"}}</a>
  </footer>
</article>
{{end}}`
