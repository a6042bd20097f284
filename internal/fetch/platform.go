package fetch

import (
	"net/url"
	"strings"
)

// Platform identifies the applicant-tracking system hosting a posting.
// Each known board gets tuned content and noise selectors; unknown hosts
// fall back to the generic job posting selectors.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

// platformHosts maps host substrings to platforms. Order matters only for
// readability; the substrings do not overlap.
var platformHosts = []struct {
	needle   string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
}

// DetectPlatform identifies the job board platform from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	for _, entry := range platformHosts {
		if strings.Contains(host, entry.needle) {
			return entry.platform
		}
	}
	return PlatformUnknown
}

// contentSelectors holds per-platform selectors for the posting body, most
// specific first.
var contentSelectors = map[Platform][]string{
	PlatformGreenhouse: {
		".job__description.body",
		".job__description",
		".job-description__content",
		"#content",
		".job-post-container",
	},
	PlatformLever: {
		".posting-page",
		".section-wrapper.page-full-width",
		".posting-description",
		".content",
	},
	PlatformWorkday: {
		"[data-automation-id='jobDescription']",
		".WDXK",
		".gwt-HTML",
		".job-description",
	},
	PlatformAshby: {
		"[class*='job-posting']",
		"[class*='description']",
		"main",
	},
}

// commonNoise matches application forms, legal boilerplate, and share
// widgets that every board mixes into posting pages.
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".application--container",
	".apply-button-container",
	"[data-testid='application-form']",

	".voluntary-disclosure",
	".eeo-statement",
	".eeo-section",
	"[data-testid='eeo']",
	".legal-disclosure",
	".self-identification",

	".social-share",
	".share-buttons",
	".social-links",

	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

var platformNoise = map[Platform][]string{
	PlatformGreenhouse: {
		".application--wrapper",
		".voluntary-self-id",
		".voluntary-self-id-wrapper",
		"#usa_self_id_section",
		".post-apply",
	},
	PlatformLever: {
		".apply-section",
		".lever-application-form",
		".posting-apply",
	},
	PlatformWorkday: {
		"[data-automation-id='applyButton']",
		".application-section",
		".WDAF",
	},
	PlatformAshby: {
		"[class*='application-form']",
		"[class*='apply']",
	},
}

// PlatformContentSelectors returns the posting-body selectors for a platform.
func PlatformContentSelectors(platform Platform) []string {
	if selectors, ok := contentSelectors[platform]; ok {
		return selectors
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns the noise selectors for a platform, always
// including the board-independent common set.
func PlatformNoiseSelectors(platform Platform) []string {
	selectors := make([]string, 0, len(commonNoise)+8)
	selectors = append(selectors, commonNoise...)
	return append(selectors, platformNoise[platform]...)
}
