package timezone

import (
	"time"
	"tripdesk/config"
	"tripdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

var location = Resolve(config.Get().App.Timezone)

// Resolve loads the named IANA zone. An empty or unknown name resolves to UTC.
func Resolve(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("no timezone configured, using UTC")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("application timezone loaded")

	return loc
}

func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}

// Format renders t in the application zone.
func Format(t time.Time, layout string) string {
	return t.In(location).Format(layout)
}

// ParseTravelDate parses a YYYY-MM-DD travel date at midnight in the application zone.
func ParseTravelDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.TravelDateFormat, value, location) //nolint:wrapcheck
}
