package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomPassword(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 20; i++ {
		password := GenerateRandomPassword(16)
		require.Len(t, password, 16)
		for _, r := range password {
			assert.Contains(t, string(letters), string(r))
		}
		seen[password] = true
	}

	// 20 contraseñas de 16 caracteres repetidas delatarían un generador roto
	assert.Greater(t, len(seen), 1)
}

func TestGenerateRandomSchedule(t *testing.T) {
	for i := 0; i < 50; i++ {
		schedule := GenerateRandomSchedule()

		require.NotEmpty(t, schedule)
		assert.NoError(t, ValidateSchedule(schedule))

		// días sin repetir
		days := map[string]bool{}
		for _, entry := range schedule {
			assert.False(t, days[entry.Day], entry.Day)
			days[entry.Day] = true
		}
	}
}

func TestGenerateRandomParkingLot(t *testing.T) {
	for i := 0; i < 50; i++ {
		lot := GenerateRandomParkingLot()
		assert.NoError(t, ValidateParkingLotCapacity(*lot), lot.Name)
	}
}

func TestGenerateEmailFromName(t *testing.T) {
	email := GenerateEmailFromName("María", "Flórez", "pascualbravo.edu.co")

	assert.True(t, strings.HasPrefix(email, "maria.florez"))
	assert.True(t, strings.HasSuffix(email, "@pascualbravo.edu.co"))
	assert.Equal(t, email, strings.ToLower(email))
}

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateRandomOTP()
		require.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
