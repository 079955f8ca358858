package availability

import (
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// parseAnchorLocation best-effort разбор свободного текста локации якорного
// события вида "улица, город, штат индекс". Первый сегмент до запятой -
// улица, второй - город; если сегментов меньше двух, возвращается
// фиксированный плейсхолдер. Пятизначный индекс ищется в остатке строки
func parseAnchorLocation(raw string) domain.Location {
	segments := strings.Split(raw, ",")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return domain.PlaceholderLocation()
	}

	loc := domain.Location{
		Street:  segments[0],
		City:    segments[1],
		ZipCode: domain.PlaceholderZipCode,
	}

	for _, segment := range segments[2:] {
		for _, token := range strings.Fields(segment) {
			if isZipCode(token) {
				loc.ZipCode = token
				return loc
			}
		}
	}

	return loc
}

func isZipCode(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
