package service

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"qbrain-backend/internal/domains/blog/model"
)

// staticPages luôn có trong sitemap
var staticPages = []string{"", "about", "achievements", "team", "blog", "join", "contact"}

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Author      string   `xml:"author,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        rssGUID  `xml:"guid"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (s *blogService) RSSFeed(ctx context.Context) ([]byte, error) {
	posts, err := s.ListPublished(ctx, model.ListPostsFilter{})
	if err != nil {
		return nil, err
	}

	items := make([]rssItem, 0, len(posts))
	var lastBuild string
	for _, p := range posts {
		link := s.postURL(p.Slug)
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Excerpt,
			Author:      p.Author,
			Categories:  append([]string{p.Category}, p.Tags...),
			GUID:        rssGUID{Value: link, IsPermaLink: true},
		}
		if p.PublishedAt != nil {
			item.PubDate = p.PublishedAt.Format(time.RFC1123Z)
			if lastBuild == "" {
				lastBuild = item.PubDate
			}
		}
		items = append(items, item)
	}

	return encodeXML(rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:         s.site.Name,
			Link:          s.site.URL,
			Description:   s.site.Description,
			LastBuildDate: lastBuild,
			Items:         items,
		},
	})
}

func (s *blogService) Sitemap(ctx context.Context) ([]byte, error) {
	posts, err := s.ListPublished(ctx, model.ListPostsFilter{})
	if err != nil {
		return nil, err
	}

	urls := make([]sitemapURL, 0, len(staticPages)+len(posts))
	for _, page := range staticPages {
		urls = append(urls, sitemapURL{Loc: s.pageURL(page)})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     s.postURL(p.Slug),
			LastMod: p.UpdatedAt.UTC().Format("2006-01-02"),
		})
	}

	return encodeXML(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

func (s *blogService) pageURL(page string) string {
	if page == "" {
		return s.site.URL + "/"
	}
	return s.site.URL + "/" + strings.Trim(page, "/")
}

func (s *blogService) postURL(slug string) string {
	return s.site.URL + "/blog/" + slug
}

func encodeXML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	return buf.Bytes(), nil
}
