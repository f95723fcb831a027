package validators

import (
	"regexp"
	"time"
)

// Celular saudita: 05 seguido de 8 dígitos.
var mobileRe = regexp.MustCompile(`^05\d{8}$`)

func IsValidMobile(phone string) bool {
	return mobileRe.MatchString(phone)
}

const RequiredPreferredDays = 3

// HasValidPreferredDays exige exatamente 3 dias da semana distintos,
// com os nomes em inglês que o motor de agendamento usa.
func HasValidPreferredDays(days []string) bool {
	if len(days) != RequiredPreferredDays {
		return false
	}

	seen := make(map[string]bool, len(days))
	for _, day := range days {
		if !isWeekdayName(day) || seen[day] {
			return false
		}
		seen[day] = true
	}
	return true
}

func isWeekdayName(name string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == name {
			return true
		}
	}
	return false
}
