package usecase

import (
	"context"
	"fmt"
	"log"
	"time"
)

// FollowupReport summarizes one processing pass.
type FollowupReport struct {
	Fetched int
	Matched int
	Sent    int
	Failed  int
}

// FollowupProcessor walks every registrant of the configured schedule,
// classifies engagement and pushes the matching ones to the GHL webhook.
// WebinarID/ScheduleID are echoed into each payload so the GHL automation
// can tell campaigns apart.
type FollowupProcessor struct {
	Webinar    WebinarAPI
	Webhook    WebhookSender
	WebinarID  string
	ScheduleID string

	// Tags selects which engagement tags get forwarded. Empty means all.
	Tags map[string]bool

	// SendDelay keeps us under the GHL inbound rate limit.
	SendDelay time.Duration
	sleep     func(time.Duration)
}

func NewFollowupProcessor(webinar WebinarAPI, webhook WebhookSender, webinarID, scheduleID string, tags []string) *FollowupProcessor {
	selected := make(map[string]bool, len(tags))
	for _, t := range tags {
		selected[t] = true
	}
	return &FollowupProcessor{
		Webinar:    webinar,
		Webhook:    webhook,
		WebinarID:  webinarID,
		ScheduleID: scheduleID,
		Tags:       selected,
		SendDelay:  2 * time.Second,
		sleep:      time.Sleep,
	}
}

// Run performs one full pass over the registrant pages. Per-registrant
// webhook failures are logged and counted, they do not stop the pass; a
// failed page fetch does.
func (p *FollowupProcessor) Run(ctx context.Context) (*FollowupReport, error) {
	report := &FollowupReport{}

	for page := 1; ; page++ {
		listing, err := p.Webinar.Registrants(ctx, page)
		if err != nil {
			return report, fmt.Errorf("fetch registrants page %d: %w", page, err)
		}

		current, total := listing.PageInfo()
		if len(listing.Data) == 0 {
			break
		}

		for i := range listing.Data {
			reg := &listing.Data[i]
			report.Fetched++

			if reg.Email == "" {
				log.Printf("⚠️ skipping registrant with no email (page %d)", page)
				continue
			}

			tag := ClassifyEngagement(reg.AttendedLive, reg.TimeLive)
			if len(p.Tags) > 0 && !p.Tags[tag] {
				continue
			}
			report.Matched++

			payload := FollowupPayload{
				WebinarID:       p.WebinarID,
				ScheduleID:      p.ScheduleID,
				FirstName:       reg.FirstName,
				LastName:        reg.LastName,
				Email:           reg.Email,
				Phone:           reg.BestPhone(),
				Tag:             tag,
				Purchased:       Purchased(reg.PurchasedLive),
				HotLead:         HotLead(reg.AttendedLive, reg.TimeLive),
				TimeLive:        reg.TimeLive,
				AttendedLiveAPI: reg.AttendedLive,
			}

			if err := p.Webhook.Send(ctx, payload); err != nil {
				log.Printf("❌ followup for %s failed: %v", reg.Email, err)
				report.Failed++
			} else {
				log.Printf("✅ followup sent for %s (tag=%q hot_lead=%d)", reg.Email, tag, payload.HotLead)
				report.Sent++
			}

			if p.SendDelay > 0 {
				p.sleep(p.SendDelay)
			}
		}

		if current >= total {
			break
		}
	}

	return report, nil
}
