package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL tags connections with application_name unless the URL
// already sets one. Both URL and key=value DSN forms are handled.
func normalizeDBURL(raw, applicationName string) string {
	raw = strings.TrimSpace(raw)
	applicationName = strings.TrimSpace(applicationName)
	if raw == "" || applicationName == "" {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err == nil && parsed != nil && (parsed.Scheme == "postgres" || parsed.Scheme == "postgresql") {
		query := parsed.Query()
		if query.Get("application_name") != "" {
			return raw
		}
		query.Set("application_name", applicationName)
		parsed.RawQuery = query.Encode()
		return parsed.String()
	}

	if strings.Contains(raw, "application_name=") {
		return raw
	}
	return raw + " application_name='" + strings.ReplaceAll(applicationName, "'", `\'`) + "'"
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/")); name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(strings.TrimSpace(name), `"'`); name != "" {
			return name
		}
	}

	return ""
}
