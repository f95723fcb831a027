package schedule

import "time"

// Todo o motor trabalha com dias de calendário em ISO YYYY-MM-DD e
// horários HH:MM. Datas são interpretadas em UTC à meia-noite, o que
// torna a aritmética de dias exata (sem horário de verão).

const ISODate = "2006-01-02"

func parseISO(iso string) (time.Time, bool) {
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func IsValidISODate(iso string) bool {
	_, ok := parseISO(iso)
	return ok
}

// GenerateMonthDates lista todos os dias do mês em ordem crescente,
// do primeiro ao último, inclusive.
func GenerateMonthDates(year, month int) []string {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	var dates []string
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(ISODate))
	}
	return dates
}

// WeekdayName devolve o nome do dia da semana ("Saturday", ...), o
// mesmo vocabulário usado em preferredDays. Vazio para data inválida.
func WeekdayName(iso string) string {
	t, ok := parseISO(iso)
	if !ok {
		return ""
	}
	return t.Weekday().String()
}

// AddDays soma n dias de calendário, cruzando mês e ano.
func AddDays(iso string, n int) string {
	t, ok := parseISO(iso)
	if !ok {
		return iso
	}
	return t.AddDate(0, 0, n).Format(ISODate)
}

// DaysBetween devolve b-a em dias (negativo se b antecede a).
func DaysBetween(a, b string) int {
	ta, okA := parseISO(a)
	tb, okB := parseISO(b)
	if !okA || !okB {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// YearMonthOf extrai ano e mês de uma data ISO.
func YearMonthOf(iso string) (year int, month int, ok bool) {
	t, ok := parseISO(iso)
	if !ok {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

func containsDay(days []string, name string) bool {
	for _, d := range days {
		if d == name {
			return true
		}
	}
	return false
}
