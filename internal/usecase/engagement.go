package usecase

import (
	"strconv"
	"strings"
)

// Engagement tags applied in GHL. The thresholds come from the funnel
// playbook: 90 minutes of watch time separates high from low engagement,
// two hours marks a hot lead.
const (
	TagHighEngagement = "high engagement"
	TagLowEngagement  = "low engagement"
	TagNoShow         = "no-show"

	highEngagementSeconds = 5400
	hotLeadSeconds        = 7200
)

// ParseWatchTime converts WebinarJam's "HH:MM:SS" (or "MM:SS") watch time
// into seconds. Anything unparseable counts as zero.
func ParseWatchTime(s string) int {
	if !strings.Contains(s, ":") {
		return 0
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0
		}
		nums[i] = n
	}

	if len(nums) == 3 {
		return nums[0]*3600 + nums[1]*60 + nums[2]
	}
	return nums[0]*60 + nums[1]
}

func attended(attendedLive string) bool {
	return strings.EqualFold(strings.TrimSpace(attendedLive), "yes")
}

// ClassifyEngagement maps a registrant's attendance record to its follow-up
// tag.
func ClassifyEngagement(attendedLive, timeLive string) string {
	if !attended(attendedLive) {
		return TagNoShow
	}
	if ParseWatchTime(timeLive) >= highEngagementSeconds {
		return TagHighEngagement
	}
	return TagLowEngagement
}

// HotLead returns 1 for attendees who watched at least two hours, 0
// otherwise. GHL custom fields want the numeric form.
func HotLead(attendedLive, timeLive string) int {
	if !attended(attendedLive) {
		return 0
	}
	if ParseWatchTime(timeLive) >= hotLeadSeconds {
		return 1
	}
	return 0
}

// Purchased converts the API's "Yes"/"No" purchase flag to 0/1.
func Purchased(purchasedLive string) int {
	if strings.EqualFold(strings.TrimSpace(purchasedLive), "yes") {
		return 1
	}
	return 0
}
