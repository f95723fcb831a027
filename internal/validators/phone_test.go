package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/washera/carwash-scheduler/internal/validators"
)

func TestIsValidMobile(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0512345678", true},
		{"0598765432", true},
		{"051234567", false},   // curto
		{"05123456789", false}, // longo
		{"0612345678", false},  // prefixo errado
		{"+966512345678", false},
		{"05a2345678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, validators.IsValidMobile(tt.phone))
		})
	}
}

func TestHasValidPreferredDays(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want bool
	}{
		{"three distinct days", []string{"Saturday", "Monday", "Wednesday"}, true},
		{"two days", []string{"Saturday", "Monday"}, false},
		{"four days", []string{"Saturday", "Monday", "Wednesday", "Friday"}, false},
		{"duplicate day", []string{"Saturday", "Saturday", "Monday"}, false},
		{"unknown day", []string{"Saturday", "Monday", "Caturday"}, false},
		{"lowercase rejected", []string{"saturday", "monday", "wednesday"}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validators.HasValidPreferredDays(tt.days))
		})
	}
}
