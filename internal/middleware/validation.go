package middleware

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/tubeboard/tubeboard-go/internal/model"
)

// Field limits matching database schema constraints.
const (
	MaxChannelIDLen = 64
	MaxVideoIDLen   = 64
	MaxLimit        = 100
)

// idRe matches YouTube channel and video IDs: alphanumeric, dash, underscore.
var idRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse returns the standard API error body: {"message": ...}.
func ErrorResponse(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// ValidateChannelID checks that a channel ID is well-formed. Returns the
// cleaned ID and an error message ("" when valid).
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channel id is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channel id is too long"
	}
	if !idRe.MatchString(id) {
		return "", "channel id contains invalid characters"
	}
	return id, ""
}

// ValidateVideoID checks that a video ID is well-formed.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "video id is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "video id is too long"
	}
	if !idRe.MatchString(id) {
		return "", "video id contains invalid characters"
	}
	return id, ""
}

// ParseChannelFilter validates the /api/channels query parameters and builds
// the filter before anything touches the store.
func ParseChannelFilter(c fiber.Ctx) (model.ChannelFilter, string) {
	var f model.ChannelFilter

	f.Category = strings.TrimSpace(fiber.Query[string](c, "category"))
	f.Country = strings.TrimSpace(fiber.Query[string](c, "country"))

	sortBy, errMsg := ParseChannelSort(fiber.Query[string](c, "sortBy"))
	if errMsg != "" {
		return f, errMsg
	}
	f.SortBy = sortBy

	limit, errMsg := parseLimit(fiber.Query[string](c, "limit"))
	if errMsg != "" {
		return f, errMsg
	}
	f.Limit = limit

	return f, ""
}

// ParseVideoFilter validates the /api/videos query parameters.
func ParseVideoFilter(c fiber.Ctx) (model.VideoFilter, string) {
	var f model.VideoFilter

	if channelID := strings.TrimSpace(fiber.Query[string](c, "channelId")); channelID != "" {
		id, errMsg := ValidateChannelID(channelID)
		if errMsg != "" {
			return f, errMsg
		}
		f.ChannelID = id
	}

	if isLive := fiber.Query[string](c, "isLive"); isLive != "" {
		b, err := strconv.ParseBool(isLive)
		if err != nil {
			return f, "isLive must be true or false"
		}
		f.IsLive = &b
	}

	sortBy, errMsg := ParseVideoSort(fiber.Query[string](c, "sortBy"))
	if errMsg != "" {
		return f, errMsg
	}
	f.SortBy = sortBy

	limit, errMsg := parseLimit(fiber.Query[string](c, "limit"))
	if errMsg != "" {
		return f, errMsg
	}
	f.Limit = limit

	return f, ""
}

// ParseChannelSort validates a channel sort key. Empty input is valid and
// leaves the repository default in place.
func ParseChannelSort(raw string) (model.ChannelSort, string) {
	switch raw {
	case "":
		return "", ""
	case string(model.ChannelSortSubscribers), string(model.ChannelSortViews), string(model.ChannelSortGrowth):
		return model.ChannelSort(raw), ""
	default:
		return "", "sortBy must be one of: subscribers, views, growth"
	}
}

// ParseVideoSort validates a video sort key.
func ParseVideoSort(raw string) (model.VideoSort, string) {
	switch raw {
	case "":
		return "", ""
	case string(model.VideoSortViews), string(model.VideoSortLikes), string(model.VideoSortRevenue), string(model.VideoSortDate):
		return model.VideoSort(raw), ""
	default:
		return "", "sortBy must be one of: views, likes, revenue, date"
	}
}

// ParseRankingQuery validates period and limit for the ranking endpoints.
// allowAllTime is true for the revenue board only.
func ParseRankingQuery(c fiber.Ctx, allowAllTime bool) (model.RankingPeriod, int, string) {
	period, errMsg := ParseRankingPeriod(fiber.Query[string](c, "period"), allowAllTime)
	if errMsg != "" {
		return period, 0, errMsg
	}

	limit, errMsg := parseLimit(fiber.Query[string](c, "limit"))
	if errMsg != "" {
		return period, 0, errMsg
	}

	return period, limit, ""
}

// ParseRankingPeriod validates a leaderboard period. Empty input is valid;
// the service applies its own default.
func ParseRankingPeriod(raw string, allowAllTime bool) (model.RankingPeriod, string) {
	switch raw {
	case "":
		return "", ""
	case string(model.PeriodDaily), string(model.PeriodWeekly), string(model.PeriodMonthly):
		return model.RankingPeriod(raw), ""
	case string(model.PeriodAllTime):
		if allowAllTime {
			return model.PeriodAllTime, ""
		}
	}
	if allowAllTime {
		return "", "period must be one of: daily, weekly, monthly, all-time"
	}
	return "", "period must be one of: daily, weekly, monthly"
}

func parseLimit(raw string) (int, string) {
	if raw == "" {
		return 0, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, "limit must be a positive integer"
	}
	if n > MaxLimit {
		return 0, "limit must be at most 100"
	}
	return n, ""
}
