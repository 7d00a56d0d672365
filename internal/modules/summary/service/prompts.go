package service

import (
	"strings"
	"text/template"

	sourceDomain "github.com/reshetovitsme/news-digest-bot/internal/modules/source/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/modules/summary/domain"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

const (
	templateStock         = "stock"
	templateBiotech       = "biotech"
	templateCurationPosts = "curation_posts"
	templateCurationBlog  = "curation_blog"
)

var prompts = template.Must(template.New("prompts").Parse(`
{{define "stock"}}You are a professional stock market analyst writing for Korean retail investors.
Summarize the following recent news about {{.Subject}} into a concise X post written in Korean.

Requirements:
1. Start with a catchy headline about the key trend.
2. Add 2-3 bullet points with investment-relevant insights: partnerships, financial results, product developments, regulatory news.
3. Convert USD amounts to KRW at 1 USD = 1,450 KRW and show both, e.g. "약 X억원 ($Y million)".
4. Keep the tone professional but accessible and explain technical terms simply.
5. Stay strictly under 10 lines.
6. End with the hashtags #{{.Subject}} #바이오주 #미국주식

News:
{{range .Items}}{{.Index}}. {{.Title}} (Source: {{.Publisher}})
{{end}}{{end}}

{{define "biotech"}}You write attention-grabbing biotech posts on X for Korean science fans. The tone is candid, witty and a little provocative, focused on shocking or revolutionary technology news people want to share.

Rules:
- Open with one bold sentence.
- Emphasize 3-5 key claims in total, never more.
- Use 2-4 fitting emojis such as 🧬 💉 🤯 🔬 🚀.
- End with a question that invites replies, then 3-5 hashtags such as #바이오테크 #유전자편집 #미래의학.
- Always close with "출처: <short source name and date>". Never write a post without a source.
- Stay under 280 characters, ideally 150-220.
- Output only the finished post text, ready to paste.

Topics:
{{range .Items}}{{.Index}}. Title: {{.Title}}
Summary: {{.Summary}}
Source: {{.Publisher}}

{{end}}{{end}}

{{define "curation_posts"}}You are a biotech analyst. Below are recent posts by industry experts about {{.Subject}}.
Summarize and explain them in Korean for Korean investors.

Requirements:
1. Headline: the key trend in one line.
2. For each post: who the author is and why they are credible, a Korean translation or summary, and the investment takeaway.
3. Professional but easy to follow, at most 10 lines.
4. Credit each author and end with #DNA #깅코바이오웍스 #바이오테크

Posts:
{{range .Items}}{{.Index}}. {{.Author}} ({{.AuthorName}}):
   "{{.Summary}}"
   (likes: {{.Likes}}, reposts: {{.Reposts}})

{{end}}{{end}}

{{define "curation_blog"}}You are a biotech analyst. Below are the latest official announcements from {{.Subject}}.
Summarize and explain them in Korean for Korean investors.

Requirements:
1. Headline: the key trend in one line.
2. For each entry: its title, a Korean summary, and the investment takeaway.
3. Professional but easy to follow, at most 10 lines.
4. Cite the official source and end with #DNA #깅코바이오웍스 #바이오테크

Entries:
{{range .Items}}{{.Index}}. {{.Title}}
   {{.Summary}}
   Link: {{.Link}}

{{end}}{{end}}
`))

type promptItem struct {
	sourceDomain.Item
	Index int
}

type promptData struct {
	Subject string
	Items   []promptItem
}

// RenderPrompt builds the summarizer prompt for the top items of a request.
func RenderPrompt(req domain.Request) (string, error) {
	name, err := templateName(req)
	if err != nil {
		return "", err
	}

	top := req.Top
	if top <= 0 {
		top = domain.DefaultTop
	}

	data := promptData{
		Subject: req.Subject,
		Items: lo.Map(lo.Slice(req.Items, 0, top), func(item sourceDomain.Item, i int) promptItem {
			return promptItem{Item: item, Index: i + 1}
		}),
	}

	var b strings.Builder
	if err := prompts.ExecuteTemplate(&b, name, data); err != nil {
		return "", oops.With("template", name).Wrap(err)
	}
	return strings.TrimSpace(b.String()), nil
}

func templateName(req domain.Request) (string, error) {
	switch req.Kind {
	case domain.PromptKindStock:
		return templateStock, nil
	case domain.PromptKindBiotech:
		return templateBiotech, nil
	case domain.PromptKindCuration:
		if req.SourceKind == sourceDomain.KindSocialSearch {
			return templateCurationPosts, nil
		}
		return templateCurationBlog, nil
	default:
		return "", oops.With("prompt_kind", req.Kind).Wrap(errors.ErrUnsupportedKind)
	}
}
