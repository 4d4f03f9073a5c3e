package main

import (
	"fmt"

	"webinar-server/internal/config"
	"webinar-server/internal/webinar"
)

type SirenEntity struct {
	Class      []string               `json:"class,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Entities   []SirenSubEntity       `json:"entities,omitempty"`
	Links      []SirenLink            `json:"links,omitempty"`
	Actions    []SirenAction          `json:"actions,omitempty"`
}

type SirenSubEntity struct {
	Class      []string               `json:"class,omitempty"`
	Rel        []string               `json:"rel,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Links      []SirenLink            `json:"links,omitempty"`
	Actions    []SirenAction          `json:"actions,omitempty"`
}

type SirenLink struct {
	Rel  []string `json:"rel"`
	Href string   `json:"href"`
	Type string   `json:"type,omitempty"`
}

type SirenAction struct {
	Name   string       `json:"name"`
	Title  string       `json:"title,omitempty"`
	Method string       `json:"method"`
	Href   string       `json:"href"`
	Type   string       `json:"type,omitempty"`
	Fields []SirenField `json:"fields,omitempty"`
}

type SirenField struct {
	Name  string      `json:"name"`
	Type  string      `json:"type,omitempty"`
	Value interface{} `json:"value,omitempty"`
	Title string      `json:"title,omitempty"`
}

func toSirenWebinars(c *webinar.Catalog) SirenEntity {
	site := config.GetSiteConfig()

	entity := SirenEntity{
		Class: []string{"webinars", "collection"},
		Properties: map[string]interface{}{
			"title":               site.Page.Heading,
			"count":               c.Len(),
			"total_registrations": c.TotalRegistrations(),
			"version":             c.Version(),
		},
		Entities: []SirenSubEntity{},
		Links: []SirenLink{
			{Rel: []string{"self"}, Href: "/webinars"},
		},
	}

	for _, w := range c.Webinars() {
		entity.Entities = append(entity.Entities, toSirenWebinar(w))
	}

	return entity
}

func toSirenWebinar(w webinar.Webinar) SirenSubEntity {
	return SirenSubEntity{
		Class: []string{"webinar"},
		Rel:   []string{"item"},
		Properties: map[string]interface{}{
			"id":             w.ID,
			"title":          w.Title,
			"speaker":        w.Speaker,
			"description":    w.Description,
			"topic":          w.Topic,
			"topic_style":    w.TopicStyle(),
			"date":           w.Date,
			"formatted_date": w.FormattedDate(),
			"time":           w.Time,
			"duration":       w.Duration,
			"registrations":  w.Registrations,
			"is_popular":     w.IsPopular,
		},
		Links: []SirenLink{
			{Rel: []string{"self"}, Href: fmt.Sprintf("/webinars#webinar-%d", w.ID)},
			{Rel: []string{"qr-code"}, Href: fmt.Sprintf("/webinars/%d/qr.png", w.ID), Type: "image/png"},
		},
		Actions: []SirenAction{
			{
				Name:   "view-details",
				Title:  config.I18n("btn.view_details"),
				Method: "POST",
				Href:   fmt.Sprintf("/webinars/%d/details", w.ID),
			},
		},
	}
}
