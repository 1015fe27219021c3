package conflictcheck

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// AckToken derives the bypass-once acknowledgment token for a warning-only
// evaluation. The caller shows the warnings to the user once and passes the
// token back with the retried request; matching tokens mean the user already
// reviewed exactly this evaluation.
//
// Токен детерминированно зависит от записи, ее сессий и целевого статуса:
// любое изменение сессий или цели дает другой токен, и проверка
// выполняется заново. Токен нигде не персистится.
func AckToken(candidateID string, sessions []domain.Session, target domain.RecordStatus) string {
	var b strings.Builder

	b.WriteString(candidateID)
	b.WriteByte('|')
	b.WriteString(string(target))

	for _, s := range sessions {
		fmt.Fprintf(&b, "|%s;%s;%s;%s", s.Venue, s.SessionDate, s.StartTime, s.EndTime)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
