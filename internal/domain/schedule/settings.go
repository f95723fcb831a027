package schedule

// ===============================
// Períodos
// ===============================

type Period string

const (
	PeriodMorning Period = "morning"
	PeriodEvening Period = "evening"
)

// Preferência do cliente: além dos dois períodos, aceita "flexible".
type PreferredPeriod string

const (
	PreferMorning  PreferredPeriod = "morning"
	PreferEvening  PreferredPeriod = "evening"
	PreferFlexible PreferredPeriod = "flexible"
)

func (p PreferredPeriod) Valid() bool {
	switch p {
	case PreferMorning, PreferEvening, PreferFlexible:
		return true
	}
	return false
}

// ===============================
// Settings
// ===============================

// Parâmetros operacionais do motor de agendamento. Os valores padrão
// refletem o plano mensal (10 lavagens, 8 pagas + 2 grátis) e a grade
// fixa de horários; tudo pode ser sobrescrito via configuração.
type Settings struct {
	MorningSlots []string
	EveningSlots []string

	MorningCapacity int
	EveningCapacity int

	TotalWashes  int
	PaidWashes   int
	PricePerWash float64

	MinGapDays           int
	RescheduleWindowDays int
}

func DefaultSettings() Settings {
	return Settings{
		MorningSlots: []string{
			"07:00", "07:30", "08:00", "08:30",
			"09:00", "09:30", "10:00", "10:30",
			"11:00", "11:30", "12:00",
		},
		EveningSlots: []string{
			"13:00", "13:30", "14:00", "14:30",
			"15:00", "15:30", "16:00", "16:30",
			"17:00", "17:30", "18:00", "18:30", "19:00",
		},
		MorningCapacity:      15,
		EveningCapacity:      18,
		TotalWashes:          10,
		PaidWashes:           8,
		PricePerWash:         10,
		MinGapDays:           3,
		RescheduleWindowDays: 30,
	}
}

func (s Settings) DailyCapacity() int {
	return s.MorningCapacity + s.EveningCapacity
}

func (s Settings) PeriodCapacity(p Period) int {
	if p == PeriodMorning {
		return s.MorningCapacity
	}
	return s.EveningCapacity
}

func (s Settings) SlotsFor(p Period) []string {
	if p == PeriodMorning {
		return s.MorningSlots
	}
	return s.EveningSlots
}
