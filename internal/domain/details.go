package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel price texts substituted when no numeric price is available.
const (
	PriceFree        = "Безкоштовна"
	PriceUnavailable = "Недоступна"
)

// DetailsPayload is a tolerant decoding of the raw details JSON. Every field
// is optional upstream; optional objects are pointers so absence stays
// distinguishable from a zero value.
type DetailsPayload struct {
	AppID              int              `json:"steam_appid"`
	Name               string           `json:"name"`
	IsFree             bool             `json:"is_free"`
	ShortDescription   string           `json:"short_description"`
	SupportedLanguages string           `json:"supported_languages"`
	PriceOverview      *PriceOverview   `json:"price_overview"`
	PCRequirements     json.RawMessage  `json:"pc_requirements"`
	Metacritic         *Metacritic      `json:"metacritic"`
	Recommendations    *Recommendations `json:"recommendations"`
	Genres             []Descriptor     `json:"genres"`
	Categories         []Descriptor     `json:"categories"`
	Movies             []Movie          `json:"movies"`
}

// PriceOverview carries the store-formatted price strings.
type PriceOverview struct {
	InitialFormatted string `json:"initial_formatted"`
	FinalFormatted   string `json:"final_formatted"`
	DiscountPercent  int    `json:"discount_percent"`
}

// Metacritic score; Score is a pointer because 0 is a legal value.
type Metacritic struct {
	Score *int `json:"score"`
}

// Recommendations holds the user review counter.
type Recommendations struct {
	Total int `json:"total"`
}

// Descriptor is a genre or category entry.
type Descriptor struct {
	Description string `json:"description"`
}

// Movie is a trailer entry.
type Movie struct {
	MP4 struct {
		Max string `json:"max"`
	} `json:"mp4"`
}

// MinimumRequirements extracts pc_requirements.minimum. The upstream sends
// an empty array instead of an object when there is no data, so the field is
// kept raw and decoded lazily.
func (p *DetailsPayload) MinimumRequirements() string {
	if len(p.PCRequirements) == 0 {
		return ""
	}
	var reqs struct {
		Minimum string `json:"minimum"`
	}
	if err := json.Unmarshal(p.PCRequirements, &reqs); err != nil {
		return ""
	}
	return reqs.Minimum
}

// GameDetails is the per-request display model for a single game. It is
// built fresh for every details request and never cached.
type GameDetails struct {
	AppID             int
	Name              string
	PriceText         string
	ShortDescription  string
	MinRequirements   string
	HasUALocalization bool
	MetacriticScore   string
	ReviewsCount      int
	Genres            []string
	Hashtags          []string
	StoreURL          string
	TrailerURL        string
	InWishlist        bool
}

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	nonTagCharPattern = regexp.MustCompile(`[^a-z0-9]`)
)

// BuildGameDetails maps a raw payload into the display model.
func BuildGameDetails(p *DetailsPayload, appID int, wishlist []int) *GameDetails {
	d := &GameDetails{
		AppID:            appID,
		Name:             p.Name,
		PriceText:        p.priceText(),
		ShortDescription: p.ShortDescription,
		MinRequirements:  strings.TrimSpace(stripTags(p.MinimumRequirements())),
		MetacriticScore:  "-",
		StoreURL:         fmt.Sprintf("https://store.steampowered.com/app/%d", appID),
		InWishlist:       containsID(wishlist, appID),
	}

	langs := strings.ToLower(stripTags(p.SupportedLanguages))
	d.HasUALocalization = strings.Contains(langs, "ukrainian")

	if p.Metacritic != nil && p.Metacritic.Score != nil {
		d.MetacriticScore = strconv.Itoa(*p.Metacritic.Score)
	}
	if p.Recommendations != nil {
		d.ReviewsCount = p.Recommendations.Total
	}

	for _, g := range p.Genres {
		if g.Description != "" {
			d.Genres = append(d.Genres, g.Description)
		}
	}
	d.Hashtags = hashtags(p.Genres, p.Categories)

	for _, m := range p.Movies {
		if m.MP4.Max != "" {
			d.TrailerURL = m.MP4.Max
			break
		}
	}

	return d
}

func (p *DetailsPayload) priceText() string {
	po := p.PriceOverview
	if po == nil || po.FinalFormatted == "" {
		if p.IsFree {
			return PriceFree
		}
		return PriceUnavailable
	}
	if po.DiscountPercent > 0 && po.InitialFormatted != "" {
		return fmt.Sprintf("%s ➔ %s (-%d%%)", po.InitialFormatted, po.FinalFormatted, po.DiscountPercent)
	}
	return po.FinalFormatted
}

// hashtags derives tags from genre then category descriptions: lower-cased,
// stripped to [a-z0-9], one-character fragments dropped, first occurrence
// wins on duplicates.
func hashtags(genres, categories []Descriptor) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, d := range append(append([]Descriptor{}, genres...), categories...) {
		tag := nonTagCharPattern.ReplaceAllString(strings.ToLower(d.Description), "")
		if len(tag) <= 1 {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, "#"+tag)
	}
	return tags
}

// stripTags removes every <...> sequence. Not an HTML parser on purpose: the
// upstream only embeds simple markup in requirements and language lists.
func stripTags(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}

// Caption renders the HTML message body with a fixed field order.
func (d *GameDetails) Caption() string {
	localized := "❌"
	if d.HasUALocalization {
		localized = "✅"
	}
	lines := []string{
		fmt.Sprintf("🎮 <b>Гра:</b> %s", EscapeHTML(d.Name)),
		"",
		fmt.Sprintf("💰 <b>Ціна:</b> %s", EscapeHTML(d.PriceText)),
		"",
		fmt.Sprintf("📝 <b>Опис:</b> %s", EscapeHTML(d.ShortDescription)),
		"",
		fmt.Sprintf("🖥️ <b>Мін. вимоги:</b> %s", EscapeHTML(d.MinRequirements)),
		"",
		fmt.Sprintf("🌐 <b>Локалізація UA:</b> %s", localized),
		"",
		fmt.Sprintf("⭐ <b>Metacritic:</b> %s", EscapeHTML(d.MetacriticScore)),
		fmt.Sprintf("💬 <b>Відгуки:</b> %d user ratings", d.ReviewsCount),
		"",
		fmt.Sprintf("📂 <b>Жанри:</b> %s", EscapeHTML(strings.Join(d.Genres, ", "))),
		"🔖 " + strings.Join(d.Hashtags, " "),
	}
	return strings.Join(lines, "\n")
}

// ConvertiblePrice reports whether a currency toggle makes sense: sentinel
// and free prices have nothing to convert. Tokens of both locales are checked
// because the caption may carry either.
func (d *GameDetails) ConvertiblePrice() bool {
	t := strings.ToLower(d.PriceText)
	for _, token := range []string{
		strings.ToLower(PriceUnavailable),
		strings.ToLower(PriceFree),
		"free",
		"unavailable",
	} {
		if strings.Contains(t, token) {
			return false
		}
	}
	return true
}

// EscapeHTML neutralizes &, < and > for Telegram HTML mode. Minimal escaping
// only; the caption is not general sanitization.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
