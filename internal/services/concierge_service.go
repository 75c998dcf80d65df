package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"

	cm "rionido/internal/models/catalog_models"
	"rionido/pkg/utils"
)

type ConciergeServiceInterface interface {
	// EmailItinerary renders the itinerary and sends it to the guest. The
	// welcome paragraph comes from the narrative client when one is
	// configured; any model failure falls back to the stock intro.
	EmailItinerary(ctx context.Context, to string, itinerary *cm.Itinerary) error
}

type ConciergeService struct {
	mail      MailServiceInterface
	narrative utils.NarrativeClientInterface
	htmlTpl   *template.Template
}

func NewConciergeService(mail MailServiceInterface, narrative utils.NarrativeClientInterface) ConciergeServiceInterface {
	return &ConciergeService{
		mail:      mail,
		narrative: narrative,
		htmlTpl:   template.Must(template.New("itineraryHTML").Parse(itineraryHTMLTemplate)),
	}
}

func (s *ConciergeService) EmailItinerary(ctx context.Context, to string, itinerary *cm.Itinerary) error {
	if to == "" || itinerary == nil || len(itinerary.Days) == 0 {
		return utils.ErrInvalidInput
	}

	intro := s.intro(ctx, itinerary)

	html, err := s.renderHTML(itinerary, intro)
	if err != nil {
		return err
	}
	text := renderText(itinerary, intro)

	subject := fmt.Sprintf("Your %d-Day Rio Nido Lodge Itinerary", len(itinerary.Days))
	if err := s.mail.SendItinerary(to, subject, html, text); err != nil {
		log.Printf("itinerary mail to %s failed: %v", to, err)
		return utils.ErrMailDeliveryFailed
	}
	return nil
}

func (s *ConciergeService) intro(ctx context.Context, itinerary *cm.Itinerary) string {
	stock := stockIntro(itinerary)
	if s.narrative == nil {
		return stock
	}

	var highlights []string
	for _, day := range itinerary.Days {
		for _, a := range day.Activities {
			if a.IsTrail || a.IsDistrict || a.IsSignature {
				highlights = append(highlights, a.Name)
			}
		}
	}

	intro, err := s.narrative.GenerateIntro(ctx, itinerary.GuestName, len(itinerary.Days), highlights)
	if err != nil || strings.TrimSpace(intro) == "" {
		if err != nil {
			log.Printf("narrative intro unavailable, using stock text: %v", err)
		}
		return stock
	}
	return strings.TrimSpace(intro)
}

func stockIntro(itinerary *cm.Itinerary) string {
	name := strings.TrimSpace(itinerary.GuestName)
	if name == "" {
		name = "friend of the lodge"
	}
	return fmt.Sprintf(
		"Dear %s, here is your %d-day Russian River itinerary, hand-built from our favorite neighbors: wineries, trails, markets and tables we trust. Every stop is within an easy drive of the lodge.",
		name, len(itinerary.Days))
}

type itineraryEmailData struct {
	Intro string
	Days  []cm.Day
}

const itineraryHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>Your Rio Nido Lodge Itinerary</title></head>
<body style="font-family:Georgia,serif;color:#2d2a26;background:#faf7f2;margin:0;padding:24px;">
  <div style="max-width:640px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px;">
    <h1 style="color:#6b4e2e;">Rio Nido Lodge</h1>
    <p>{{.Intro}}</p>
    {{range .Days}}
    <h2 style="color:#6b4e2e;border-bottom:1px solid #e4dccb;padding-bottom:4px;">
      Day {{.Day}} · {{.Theme.Icon}} {{.Theme.Name}}
    </h2>
    <p style="color:#8a8070;margin-top:0;">{{.RouteName}}</p>
    {{range .Activities}}
    <div style="margin:12px 0;">
      <strong>{{.TimeSlot}}</strong> — {{.Badge}}<br>
      <span style="font-size:17px;">{{.Name}}</span><br>
      {{if .Description}}<span style="color:#5a544a;">{{.Description}}</span><br>{{end}}
      {{if .Address}}<span style="color:#8a8070;font-size:13px;">{{.Address}}</span>{{end}}
    </div>
    {{end}}
    {{end}}
    <p style="color:#8a8070;font-size:13px;margin-top:32px;">
      Questions? The front desk is happy to adjust any stop. Safe travels!
    </p>
  </div>
</body>
</html>`

func (s *ConciergeService) renderHTML(itinerary *cm.Itinerary, intro string) (string, error) {
	var buf bytes.Buffer
	err := s.htmlTpl.Execute(&buf, itineraryEmailData{Intro: intro, Days: itinerary.Days})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(itinerary *cm.Itinerary, intro string) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n")

	for _, day := range itinerary.Days {
		fmt.Fprintf(&b, "Day %d · %s %s (%s)\n", day.Day, day.Theme.Icon, day.Theme.Name, day.RouteName)
		for _, a := range day.Activities {
			fmt.Fprintf(&b, "  %s  %s\n    %s\n", a.TimeSlot, a.Badge, a.Name)
			if a.Address != "" {
				fmt.Fprintf(&b, "    %s\n", a.Address)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("— The Rio Nido Lodge Concierge\n")
	return b.String()
}
