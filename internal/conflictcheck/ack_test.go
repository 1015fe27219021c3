package conflictcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

func TestAckToken(t *testing.T) {
	sessions := []domain.Session{hallASession("10:00", "12:00")}

	base := AckToken("enq-1", sessions, domain.StatusConverted)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, base, AckToken("enq-1", sessions, domain.StatusConverted))
	})

	t.Run("differs by record", func(t *testing.T) {
		assert.NotEqual(t, base, AckToken("enq-2", sessions, domain.StatusConverted))
	})

	t.Run("differs by target status", func(t *testing.T) {
		assert.NotEqual(t, base, AckToken("enq-1", sessions, domain.StatusBooked))
	})

	t.Run("differs by sessions", func(t *testing.T) {
		changed := []domain.Session{hallASession("10:00", "12:30")}
		assert.NotEqual(t, base, AckToken("enq-1", changed, domain.StatusConverted))
	})

	t.Run("differs by session order", func(t *testing.T) {
		a := []domain.Session{hallASession("10:00", "12:00"), hallASession("14:00", "15:00")}
		b := []domain.Session{hallASession("14:00", "15:00"), hallASession("10:00", "12:00")}
		assert.NotEqual(t, AckToken("enq-1", a, domain.StatusConverted), AckToken("enq-1", b, domain.StatusConverted))
	})
}
